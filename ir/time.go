package ir

import (
	"github.com/quanta-format/go-quanta/chrono"
	"github.com/quanta-format/go-quanta/chrono/gregorian"
)

func (n *Node) mustTime(method string) {
	if !n.Is(TimeType) {
		badAccess(method, n)
	}
}

func (n *Node) TimeType() TimeKind {
	n.mustTime("TimeType")
	return TimeKind(n.props.field(propTimeTypeMask, propTimeTypeShift))
}

func (n *Node) SetTimeType(tt TimeKind) {
	n.mustTime("SetTimeType")
	if tt < DateAndClock || tt > ClockOnly {
		panic("ir: SetTimeType called with invalid time type")
	}
	n.props.setField(propTimeTypeMask, propTimeTypeShift, int(tt))
}

// HasDate reports whether the time has a date part.
func (n *Node) HasDate() bool { return n.TimeType() != ClockOnly }

// HasClock reports whether the time has a clock part.
func (n *Node) HasClock() bool { return n.TimeType() != DateOnly }

// Zoned reports whether the time carries its own zone offset. An
// unzoned time is a floating wall clock with offset 0.
func (n *Node) Zoned() bool {
	n.mustTime("Zoned")
	return !n.props.has(propUnzoned)
}

// SetZoned marks the time zoned or floating. Making a zoned time
// floating keeps its wall clock and drops the offset.
func (n *Node) SetZoned(zoned bool) {
	n.mustTime("SetZoned")
	if !zoned && n.time.ZoneOffset != 0 {
		n.time.AdjustZoneUTC()
	}
	n.props.set(propUnzoned, !zoned)
}

func (n *Node) YearContextual() bool {
	n.mustTime("YearContextual")
	return n.props.has(propYearContextual)
}

func (n *Node) MonthContextual() bool {
	n.mustTime("MonthContextual")
	return n.props.has(propMonthContextual)
}

// SetYearContextual marks the year as taken from context. Clearing it
// also clears month-contextual.
func (n *Node) SetYearContextual(v bool) {
	n.mustTime("SetYearContextual")
	n.props.set(propYearContextual, v)
	if !v {
		n.props.set(propMonthContextual, false)
	}
}

// SetMonthContextual marks the month as taken from context, which
// implies the year is too.
func (n *Node) SetMonthContextual(v bool) {
	n.mustTime("SetMonthContextual")
	n.props.set(propMonthContextual, v)
	if v {
		n.props.set(propYearContextual, true)
	}
}

// ResolveTime fills in what the time leaves to context. A floating time
// takes the offset of ctx with its wall clock kept. A clock without a date
// is placed on the local date of ctx; a contextual year (and month) is
// replaced by that of ctx. Afterwards the time is zoned and dated, with
// no contextual parts.
func (n *Node) ResolveTime(ctx chrono.Time) {
	n.mustTime("ResolveTime")
	t := n.time
	if !n.Zoned() {
		t.AdjustZoneOffset(ctx.ZoneOffset)
	}
	cd := gregorian.Date(ctx)
	tt := n.TimeType()
	switch {
	case tt == ClockOnly:
		gregorian.Set(&t, cd.Year, cd.Month, cd.Day)
		tt = DateAndClock
	case n.props.has(propYearContextual):
		d := gregorian.Date(t)
		d.Year = cd.Year
		if n.props.has(propMonthContextual) {
			d.Month = cd.Month
		}
		gregorian.Set(&t, d.Year, d.Month, d.Day)
	}
	n.time = t
	n.props &^= propUnzoned | propYearContextual | propMonthContextual
	n.SetTimeType(tt)
}

// ReduceTime is the inverse of ResolveTime: an offset equal to that of
// ctx becomes implicit, and a year (and month) equal to that of ctx
// becomes contextual. Resolving the result against ctx gives back the
// original time.
func (n *Node) ReduceTime(ctx chrono.Time) {
	n.mustTime("ReduceTime")
	if n.Zoned() && n.time.ZoneOffset == ctx.ZoneOffset {
		n.time.AdjustZoneUTC()
		n.props.set(propUnzoned, true)
	}
	if !n.HasDate() || n.props.has(propYearContextual) {
		return
	}
	d := gregorian.Date(n.time)
	cd := gregorian.Date(ctx)
	if d.Year != cd.Year {
		return
	}
	n.props.set(propYearContextual, true)
	if d.Month == cd.Month {
		n.props.set(propMonthContextual, true)
	}
}
