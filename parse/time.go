package parse

import (
	"github.com/quanta-format/go-quanta/chrono"
	"github.com/quanta-format/go-quanta/chrono/gregorian"
	"github.com/quanta-format/go-quanta/ir"
	"github.com/quanta-format/go-quanta/token"
)

// timeValue stores lit in n. Parts the literal leaves out read as the
// first month or day; the contextual flags record which were written.
func timeValue(n *ir.Node, lit *token.TimeLit) {
	var t chrono.Time
	if lit.Zoned {
		t.SetZoneOffset(lit.ZoneOffset)
	}
	m, d := 1, 1
	if lit.HasMonth {
		m = lit.Month
	}
	if lit.HasDate {
		d = lit.Day
	}
	gregorian.SetDateClock(&t, lit.Year, m, d, lit.Hour, lit.Minute, lit.Second)
	n.SetTime(t)

	switch {
	case lit.HasDate && lit.HasClock:
		n.SetTimeType(ir.DateAndClock)
	case lit.HasDate:
		n.SetTimeType(ir.DateOnly)
	default:
		n.SetTimeType(ir.ClockOnly)
	}
	n.SetZoned(lit.Zoned)
	if !lit.HasDate {
		return
	}
	switch {
	case !lit.HasMonth:
		n.SetMonthContextual(true)
	case !lit.HasYear:
		n.SetYearContextual(true)
	}
}
