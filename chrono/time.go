package chrono

import (
	"fmt"
	"time"
)

const (
	SecondsPerMinute = 60
	SecondsPerHour   = 60 * SecondsPerMinute
	SecondsPerDay    = 24 * SecondsPerHour
	SecondsPerWeek   = 7 * SecondsPerDay

	DaysPer400Years = 365*400 + 97
	DaysPer100Years = 365*100 + 24
	DaysPer4Years   = 365*4 + 1

	// YearAbsolute is the year at which absolute second counts start.
	YearAbsolute int64 = -292277022399

	// QuantaToAbsolute is added to a Time's seconds to obtain the
	// absolute second count (modulo 2^64).
	QuantaToAbsolute uint64 = 9223371966579724800

	// PosixToQuanta is the number of seconds between the epoch and
	// 1970-01-01T00:00:00Z.
	PosixToQuanta int64 = (1969*365 + 1969/4 - 1969/100 + 1969/400) * SecondsPerDay
	QuantaToPosix int64 = -PosixToQuanta
)

// Duration is a signed number of seconds.
type Duration = int64

// Time is a point in time, in seconds since 0001-01-01T00:00:00Z, with a
// fixed zone offset in seconds east of UTC.
type Time struct {
	Sec        int64
	ZoneOffset int32
}

// Date is a Gregorian calendar date. Month, Day and YearDay are 1-based.
type Date struct {
	Year    int64
	Month   int
	Day     int
	YearDay int
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// FromPosix returns the UTC time for a POSIX second count.
func FromPosix(s int64) Time {
	return Time{Sec: s + PosixToQuanta}
}

// FromGo converts a time.Time, keeping its zone offset and dropping
// sub-second precision.
func FromGo(t time.Time) Time {
	_, off := t.Zone()
	return Time{Sec: t.Unix() + PosixToQuanta, ZoneOffset: int32(off)}
}

// Go returns t as a time.Time in a fixed zone with t's offset.
func (t Time) Go() time.Time {
	return time.Unix(t.Posix(), 0).In(time.FixedZone("", int(t.ZoneOffset)))
}

// Posix returns the POSIX second count of t.
func (t Time) Posix() int64 {
	return t.Sec + QuantaToPosix
}

// AbsoluteUTC returns the absolute second count of t's UTC instant.
func (t Time) AbsoluteUTC() uint64 {
	return uint64(t.Sec) + QuantaToAbsolute
}

// Absolute returns the absolute second count of t's wall clock.
func (t Time) Absolute() uint64 {
	return uint64(t.Sec+int64(t.ZoneOffset)) + QuantaToAbsolute
}

// FromAbsoluteUTC returns the time whose UTC instant has the absolute
// second count abs, with the given zone offset.
func FromAbsoluteUTC(abs uint64, zoneOffset int32) Time {
	return Time{Sec: int64(abs - QuantaToAbsolute), ZoneOffset: zoneOffset}
}

// Equal reports whether t and u denote the same instant, regardless of
// their offsets.
func (t Time) Equal(u Time) bool {
	return t.Sec == u.Sec
}

// Add returns t shifted by d seconds.
func (t Time) Add(d Duration) Time {
	t.Sec += d
	return t
}

// Sub returns t shifted back by d seconds.
func (t Time) Sub(d Duration) Time {
	t.Sec -= d
	return t
}

// Difference returns l - r in seconds.
func Difference(l, r Time) Duration {
	return l.Sec - r.Sec
}

// SetZoneOffset changes the offset while keeping the instant, so the
// wall clock moves.
func (t *Time) SetZoneOffset(off int32) {
	t.ZoneOffset = off
}

// SetZoneClock is SetZoneOffset with the offset given as hours and
// minutes. A negative hour makes the minutes negative too.
func (t *Time) SetZoneClock(h, m int) {
	t.SetZoneOffset(zoneClock(h, m))
}

func (t *Time) SetZoneUTC() {
	t.ZoneOffset = 0
}

// AdjustZoneOffset changes the offset while keeping the wall clock, so
// the instant moves.
func (t *Time) AdjustZoneOffset(off int32) {
	t.Sec += int64(t.ZoneOffset) - int64(off)
	t.ZoneOffset = off
}

func (t *Time) AdjustZoneClock(h, m int) {
	t.AdjustZoneOffset(zoneClock(h, m))
}

func (t *Time) AdjustZoneUTC() {
	t.AdjustZoneOffset(0)
}

// AsUTC returns the instant of t with a zero offset.
func (t Time) AsUTC() Time {
	t.ZoneOffset = 0
	return t
}

// AsUTCAdjusted returns t's wall clock as a UTC time.
func (t Time) AsUTCAdjusted() Time {
	t.AdjustZoneUTC()
	return t
}

func zoneClock(h, m int) int32 {
	if h < 0 && m > 0 {
		m = -m
	}
	return int32(h*SecondsPerHour + m*SecondsPerMinute)
}

// ZoneClock splits an offset into hours and minutes, both carrying the
// sign of the offset.
func ZoneClock(off int32) (h, m int) {
	v := int(off) / SecondsPerMinute
	return v / 60, v % 60
}

func (t Time) Hour() int   { return int(t.Absolute()%SecondsPerDay) / SecondsPerHour }
func (t Time) Minute() int { return int(t.Absolute()%SecondsPerHour) / SecondsPerMinute }
func (t Time) Second() int { return int(t.Absolute() % SecondsPerMinute) }

func (t Time) HourUTC() int   { return int(t.AbsoluteUTC()%SecondsPerDay) / SecondsPerHour }
func (t Time) MinuteUTC() int { return int(t.AbsoluteUTC()%SecondsPerHour) / SecondsPerMinute }
func (t Time) SecondUTC() int { return int(t.AbsoluteUTC() % SecondsPerMinute) }

// Clock returns the local hour, minute and second.
func (t Time) Clock() (h, m, s int) {
	return splitClock(t.ClockSeconds())
}

func (t Time) ClockUTC() (h, m, s int) {
	return splitClock(t.ClockSecondsUTC())
}

func splitClock(sec int64) (h, m, s int) {
	v := int(sec)
	return v / SecondsPerHour, v % SecondsPerHour / SecondsPerMinute, v % SecondsPerMinute
}

// ClockSeconds returns the seconds elapsed since local midnight.
func (t Time) ClockSeconds() int64 {
	return int64(t.Absolute() % SecondsPerDay)
}

func (t Time) ClockSecondsUTC() int64 {
	return int64(t.AbsoluteUTC() % SecondsPerDay)
}

// DateSeconds returns the time of local midnight starting t's local day.
func (t Time) DateSeconds() Time {
	t.Sec -= t.ClockSeconds()
	return t
}

func (t Time) DateSecondsUTC() Time {
	t.Sec -= t.ClockSecondsUTC()
	return t
}

// SetClockUTC keeps t's UTC day and replaces the clock. Out of range
// values carry into neighbouring days.
func (t *Time) SetClockUTC(h, m, s int) {
	abs := t.AbsoluteUTC()
	abs -= abs % SecondsPerDay
	abs += uint64(int64(h)*SecondsPerHour + int64(m)*SecondsPerMinute + int64(s))
	t.Sec = int64(abs - QuantaToAbsolute)
}

// SetClock keeps t's local day and replaces the local clock.
func (t *Time) SetClock(h, m, s int) {
	off := int(t.ZoneOffset)
	t.Sec += int64(off)
	t.SetClockUTC(h, m, s-off)
}

func (t Time) String() string {
	h, m, s := t.Clock()
	zh, zm := ZoneClock(t.ZoneOffset)
	if zm < 0 {
		zm = -zm
	}
	return fmt.Sprintf("%ds %02d:%02d:%02d%+03d:%02d", t.Sec, h, m, s, zh, zm)
}
