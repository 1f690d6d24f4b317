package ir

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/quanta-format/go-quanta/chrono"
	"github.com/quanta-format/go-quanta/chrono/gregorian"
)

func TestTimeFlags(t *testing.T) {
	n := FromTime(chrono.Time{})
	if !n.Zoned() || n.YearContextual() || n.MonthContextual() || !n.HasDate() || !n.HasClock() {
		t.Fatalf("new time has flags")
	}
	n.SetTimeType(DateOnly)
	if !n.HasDate() || n.HasClock() {
		t.Errorf("date only: HasDate=%v HasClock=%v", n.HasDate(), n.HasClock())
	}
	n.SetTimeType(ClockOnly)
	if n.HasDate() || !n.HasClock() {
		t.Errorf("clock only: HasDate=%v HasClock=%v", n.HasDate(), n.HasClock())
	}
	n.SetMonthContextual(true)
	if !n.YearContextual() {
		t.Errorf("month contextual did not imply year contextual")
	}
	n.SetYearContextual(false)
	if n.MonthContextual() {
		t.Errorf("clearing year contextual kept month contextual")
	}

	z := chrono.Time{}
	z.SetClock(10, 0, 0)
	z.AdjustZoneClock(-4, 0)
	n.SetTime(z)
	n.SetZoned(false)
	if n.TimeValue().ZoneOffset != 0 || n.TimeValue().Hour() != 10 {
		t.Errorf("floating time lost its wall clock: %v", n.TimeValue())
	}
}

func TestResolveClock(t *testing.T) {
	wow := chrono.Time{}
	wow.SetClock(10, 16, 0)

	n := Null()
	n.SetTimeValue(wow)
	n.SetZoned(false)
	n.SetTimeType(ClockOnly)

	wow.AdjustZoneClock(-4, 0)
	gregorian.Set(&wow, 1977, 8, 15)
	n.ResolveTime(wow)
	if !n.Zoned() || n.TimeType() != DateAndClock {
		t.Fatalf("resolved time: zoned=%v type=%v", n.Zoned(), n.TimeType())
	}
	if !n.TimeValue().Equal(wow) || n.TimeValue().ZoneOffset != wow.ZoneOffset {
		t.Errorf("got %v, want %v", n.TimeValue(), wow)
	}
}

func TestResolveContextual(t *testing.T) {
	ymd := func(y int64, m, d int) chrono.Time {
		var t chrono.Time
		gregorian.Set(&t, y, m, d)
		return t
	}
	date := func(n *Node) []int64 {
		d := gregorian.Date(n.TimeValue())
		return []int64{d.Year, int64(d.Month), int64(d.Day)}
	}

	n := FromTime(ymd(1, 10, 15))
	n.SetYearContextual(true)
	n.ResolveTime(ymd(2, 3, 10))
	if diff := cmp.Diff([]int64{2, 10, 15}, date(n)); diff != "" {
		t.Errorf("year contextual (-want +got):\n%s", diff)
	}
	if n.YearContextual() {
		t.Errorf("resolved time still contextual")
	}

	n.SetMonthContextual(true)
	n.ResolveTime(ymd(4, 6, 20))
	if diff := cmp.Diff([]int64{4, 6, 15}, date(n)); diff != "" {
		t.Errorf("month contextual (-want +got):\n%s", diff)
	}
}

func TestReduceTime(t *testing.T) {
	ctx := chrono.Time{}
	ctx.SetZoneClock(-3, 0)
	gregorian.SetDateClock(&ctx, 2015, 1, 20, 9, 0, 0)

	tests := []struct {
		name     string
		y        int64
		m, d     int
		off      int32
		unzoned  bool
		yearCtx  bool
		monthCtx bool
	}{
		{name: "same month", y: 2015, m: 1, d: 2, off: -3 * 3600, unzoned: true, yearCtx: true, monthCtx: true},
		{name: "same year", y: 2015, m: 7, d: 2, off: -3 * 3600, unzoned: true, yearCtx: true},
		{name: "other year", y: 2014, m: 1, d: 2, off: -3 * 3600, unzoned: true},
		{name: "other zone", y: 2015, m: 7, d: 2, off: 3600, yearCtx: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var v chrono.Time
			v.SetZoneOffset(tc.off)
			gregorian.SetDateClock(&v, tc.y, tc.m, tc.d, 12, 30, 0)
			n := FromTime(v)
			n.ReduceTime(ctx)
			if n.Zoned() == tc.unzoned || n.YearContextual() != tc.yearCtx || n.MonthContextual() != tc.monthCtx {
				t.Fatalf("zoned=%v year=%v month=%v", n.Zoned(), n.YearContextual(), n.MonthContextual())
			}
			if h, m, _ := n.TimeValue().Clock(); h != 12 || m != 30 {
				t.Errorf("wall clock changed to %02d:%02d", h, m)
			}
			n.ResolveTime(ctx)
			if !n.TimeValue().Equal(v) || n.TimeValue().ZoneOffset != v.ZoneOffset {
				t.Errorf("reduce then resolve: got %v, want %v", n.TimeValue(), v)
			}
		})
	}
}
