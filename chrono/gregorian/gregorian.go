// Package gregorian decomposes and composes [chrono.Time] values in the
// proleptic Gregorian calendar.
//
// Decomposition is constant time: the absolute day count is divided into
// 400, 100, 4 and 1 year cycles, and the remaining day of the year is
// mapped to a month through a cumulative days-before-month table.
// Composition normalizes out of range fields by carrying into the next
// larger unit, so no input is rejected.
package gregorian

import (
	"github.com/quanta-format/go-quanta/chrono"
)

// daysBefore[m] counts the days before month m+1 in a non-leap year.
var daysBefore = [13]int{
	0,
	31,
	31 + 28,
	31 + 28 + 31,
	31 + 28 + 31 + 30,
	31 + 28 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31 + 30 + 31,
}

func IsLeapYear(y int64) bool {
	return y%4 == 0 && (y%100 != 0 || y%400 == 0)
}

// DaysInMonth returns the number of days of month m (1-12) in year y.
func DaysInMonth(y int64, m int) int {
	if m == 2 && IsLeapYear(y) {
		return 29
	}
	return daysBefore[m] - daysBefore[m-1]
}

// fromAbsolute decomposes an absolute second count.
func fromAbsolute(abs uint64) chrono.Date {
	d := abs / chrono.SecondsPerDay

	n := d / chrono.DaysPer400Years
	y := 400 * n
	d -= chrono.DaysPer400Years * n

	// the last 100 year cycle of a 400 year cycle has one extra day,
	// which would make its last day count as a fifth cycle.
	n = d / chrono.DaysPer100Years
	n -= n >> 2
	y += 100 * n
	d -= chrono.DaysPer100Years * n

	n = d / chrono.DaysPer4Years
	y += 4 * n
	d -= chrono.DaysPer4Years * n

	// same for the leap year closing a 4 year cycle.
	n = d / 365
	n -= n >> 2
	y += n
	d -= 365 * n

	res := chrono.Date{
		Year:    int64(y) + chrono.YearAbsolute,
		YearDay: int(d) + 1,
	}
	day := int(d)
	if IsLeapYear(res.Year) {
		switch {
		case day > 31+29-1:
			day--
		case day == 31+29-1:
			res.Month = 2
			res.Day = 29
			return res
		}
	}
	// months have at most 31 days, so this guess is at most one short.
	m := day / 31
	end := daysBefore[m+1]
	begin := daysBefore[m]
	if day >= end {
		m++
		begin = end
	}
	res.Month = m + 1
	res.Day = day - begin + 1
	return res
}

// DateUTC returns the date of t's UTC instant.
func DateUTC(t chrono.Time) chrono.Date {
	return fromAbsolute(t.AbsoluteUTC())
}

// Date returns the date of t's wall clock.
func Date(t chrono.Time) chrono.Date {
	return fromAbsolute(t.Absolute())
}

func Year(t chrono.Time) int64 { return Date(t).Year }
func Month(t chrono.Time) int  { return Date(t).Month }
func Day(t chrono.Time) int    { return Date(t).Day }
func YearDay(t chrono.Time) int {
	return Date(t).YearDay
}

func YearUTC(t chrono.Time) int64 { return DateUTC(t).Year }
func MonthUTC(t chrono.Time) int  { return DateUTC(t).Month }
func DayUTC(t chrono.Time) int    { return DateUTC(t).Day }

func norm(hi, lo, base int64) (int64, int64) {
	if lo < 0 {
		n := (-lo-1)/base + 1
		hi -= n
		lo += n * base
	}
	if lo >= base {
		n := lo / base
		hi += n
		lo -= n * base
	}
	return hi, lo
}

// daysSinceAbsolute counts the days from the absolute origin to the
// first of January of year y.
func daysSinceAbsolute(y int64) uint64 {
	v := uint64(y - chrono.YearAbsolute)
	n := v / 400
	v -= 400 * n
	d := chrono.DaysPer400Years * n
	n = v / 100
	v -= 100 * n
	d += chrono.DaysPer100Years * n
	n = v / 4
	v -= 4 * n
	d += chrono.DaysPer4Years * n
	d += 365 * v
	return d
}

// absoluteDay returns the absolute day count of y-m-d after
// normalizing the month into the year.
func absoluteDay(y int64, m, d int) uint64 {
	y, mm := norm(y, int64(m)-1, 12)
	days := daysSinceAbsolute(y)
	days += uint64(daysBefore[mm])
	if IsLeapYear(y) && mm >= 2 {
		days++
	}
	return days + uint64(int64(d)-1)
}

// SetUTC replaces the UTC date of t, keeping its UTC clock.
func SetUTC(t *chrono.Time, y int64, m, d int) {
	clock := t.ClockSecondsUTC()
	abs := absoluteDay(y, m, d)*chrono.SecondsPerDay + uint64(clock)
	*t = chrono.FromAbsoluteUTC(abs, t.ZoneOffset)
}

// Set replaces the local date of t, keeping its local clock.
func Set(t *chrono.Time, y int64, m, d int) {
	off := int64(t.ZoneOffset)
	t.Sec += off
	SetUTC(t, y, m, d)
	t.Sec -= off
}

// SetDateClockUTC sets the UTC date and clock of t. The clock fields
// carry into the day, and the month carries into the year.
func SetDateClockUTC(t *chrono.Time, y int64, m, d, h, mi, s int) {
	minute, second := norm(int64(mi), int64(s), 60)
	hour, minute := norm(int64(h), minute, 60)
	day, hour := norm(int64(d), hour, 24)
	abs := absoluteDay(y, m, int(day))*chrono.SecondsPerDay +
		uint64(hour*chrono.SecondsPerHour+minute*chrono.SecondsPerMinute+second)
	*t = chrono.FromAbsoluteUTC(abs, t.ZoneOffset)
}

// SetDateClock sets the local date and clock of t.
func SetDateClock(t *chrono.Time, y int64, m, d, h, mi, s int) {
	off := int64(t.ZoneOffset)
	SetDateClockUTC(t, y, m, d, h, mi, s)
	t.Sec -= off
}
