package gregorian

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/quanta-format/go-quanta/chrono"
)

type fields struct {
	Year                int64
	Month, Day, YearDay int
	Hour, Min, Sec      int
}

func fieldsOf(t chrono.Time) fields {
	d := Date(t)
	h, m, s := t.Clock()
	return fields{d.Year, d.Month, d.Day, d.YearDay, h, m, s}
}

func checkFields(t *testing.T, tm chrono.Time, want fields) {
	t.Helper()
	if diff := cmp.Diff(want, fieldsOf(tm)); diff != "" {
		t.Errorf("fields of %v (-want +got):\n%s", tm, diff)
	}
}

func TestEpoch(t *testing.T) {
	var tm chrono.Time
	checkFields(t, tm, fields{1, 1, 1, 1, 0, 0, 0})

	tm = chrono.Time{Sec: chrono.SecondsPerDay}
	checkFields(t, tm, fields{1, 1, 2, 2, 0, 0, 0})
	tm = tm.Add(1*chrono.SecondsPerHour + 2*chrono.SecondsPerMinute + 30)
	checkFields(t, tm, fields{1, 1, 2, 2, 1, 2, 30})
	tm = tm.Sub(60)
	checkFields(t, tm, fields{1, 1, 2, 2, 1, 1, 30})
}

func TestClockCarry(t *testing.T) {
	var tm chrono.Time
	tm.SetClock(12, 15, 45)
	checkFields(t, tm, fields{1, 1, 1, 1, 12, 15, 45})
	tm.SetClock(25, -59, -60)
	checkFields(t, tm, fields{1, 1, 2, 2, 0, 0, 0})
}

func TestZones(t *testing.T) {
	var tm chrono.Time
	tm.SetClock(18, 0, 0)
	tm.AdjustZoneOffset(-6 * chrono.SecondsPerHour)
	checkFields(t, tm, fields{1, 1, 1, 1, 18, 0, 0})

	tm.AdjustZoneUTC()
	tm.SetZoneOffset(-6 * chrono.SecondsPerHour)
	checkFields(t, tm, fields{1, 1, 1, 1, 12, 0, 0})

	tm = chrono.Time{}
	tm.SetZoneClock(-3, 30)
	if tm.ZoneOffset != -(3*chrono.SecondsPerHour + 30*chrono.SecondsPerMinute) {
		t.Errorf("negative zone clock: got offset %d", tm.ZoneOffset)
	}
}

func TestSet(t *testing.T) {
	var tm chrono.Time
	tm.AdjustZoneClock(1, 0)
	Set(&tm, 2, 3, 4)
	checkFields(t, tm, fields{2, 3, 4, 31 + 28 + 4, 0, 0, 0})

	tm.SetClock(11, 22, 33)
	checkFields(t, tm, fields{2, 3, 4, 31 + 28 + 4, 11, 22, 33})

	Set(&tm, 9, 6, 7)
	checkFields(t, tm, fields{9, 6, 7, 31 + 28 + 31 + 30 + 31 + 7, 11, 22, 33})

	SetDateClock(&tm, 2, 4, 14, 2, 3, 1)
	checkFields(t, tm, fields{2, 4, 14, 31 + 28 + 31 + 14, 2, 3, 1})
}

func TestNormalize(t *testing.T) {
	var tm chrono.Time
	SetDateClockUTC(&tm, 2015, 13, 1, 0, 0, 0)
	checkFields(t, tm, fields{2016, 1, 1, 1, 0, 0, 0})
	SetDateClockUTC(&tm, 2015, 0, 1, 0, 0, 0)
	checkFields(t, tm, fields{2014, 12, 1, 335, 0, 0, 0})
	SetDateClockUTC(&tm, 2016, 2, 30, 0, 0, 0)
	checkFields(t, tm, fields{2016, 3, 1, 61, 0, 0, 0})
	SetDateClockUTC(&tm, 2015, 12, 31, 23, 59, 60)
	checkFields(t, tm, fields{2016, 1, 1, 1, 0, 0, 0})
}

func TestLeapYear(t *testing.T) {
	for y := int64(-800); y <= 2800; y++ {
		want := y%4 == 0 && (y%100 != 0 || y%400 == 0)
		if IsLeapYear(y) != want {
			t.Fatalf("IsLeapYear(%d) = %v", y, !want)
		}
		var tm chrono.Time
		SetUTC(&tm, y, 2, 29)
		d := DateUTC(tm)
		if want != (d.Month == 2 && d.Day == 29) {
			t.Fatalf("year %d: feb 29 decomposes to %v", y, d)
		}
	}
}

func TestInverse(t *testing.T) {
	years := []int64{-292277022399 + 1, -1000000, -4713, -1, 0, 1, 4, 100, 400, 1582, 1969, 1970,
		2000, 2015, 2024, 9999, 1000000, 292277024000}
	for _, y := range years {
		for m := 1; m <= 12; m++ {
			for _, d := range []int{1, 15, DaysInMonth(y, m)} {
				clocks := [][3]int{{0, 0, 0}, {3, 4, 5}, {23, 59, 59}}
				for _, c := range clocks {
					var tm chrono.Time
					SetDateClockUTC(&tm, y, m, d, c[0], c[1], c[2])
					got := DateUTC(tm)
					if got.Year != y || got.Month != m || got.Day != d {
						t.Fatalf("%d-%d-%d: decomposed to %v", y, m, d, got)
					}
					h, mi, s := tm.ClockUTC()
					if h != c[0] || mi != c[1] || s != c[2] {
						t.Fatalf("%d-%d-%d %v: clock %d:%d:%d", y, m, d, c, h, mi, s)
					}
				}
			}
		}
	}
}

func TestAgreesWithTimePackage(t *testing.T) {
	start := time.Date(1600, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 400*366; i += 13 {
		gt := start.AddDate(0, 0, i).Add(time.Duration(i%86400) * time.Second)
		qt := chrono.FromGo(gt)
		d := DateUTC(qt)
		if d.Year != int64(gt.Year()) || d.Month != int(gt.Month()) || d.Day != gt.Day() || d.YearDay != gt.YearDay() {
			t.Fatalf("%v: got %v (yday %d)", gt, d, d.YearDay)
		}
		if !qt.Go().Equal(gt) {
			t.Fatalf("%v: round trip through chrono gives %v", gt, qt.Go())
		}
	}
}
