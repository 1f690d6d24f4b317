package token

import "fmt"

// TimeLit is a decoded time literal. Fields not written in the literal
// are zero and flagged absent.
type TimeLit struct {
	HasYear, HasMonth, HasDate bool
	Year                       int64
	Month, Day                 int

	HasClock             bool
	Hour, Minute, Second int

	Zoned      bool
	ZoneOffset int32
}

// timeStart reports whether the digits at the start of d open a time
// literal rather than a number. signed reports a preceding sign, which
// only a year may carry.
func timeStart(d []byte, signed bool) bool {
	n := asciiDigits(d)
	if n >= 4 {
		return n < len(d) && d[n] == '-'
	}
	if n != 2 || signed || len(d) < 3 {
		return false
	}
	switch d[2] {
	case '-':
		return true
	case ':':
		return len(d) > 3 && asciiDigit(d[3])
	case 'T':
		if len(d) > 3 && asciiDigit(d[3]) {
			return true
		}
		fallthrough
	case 'Z':
		if len(d) == 3 {
			return true
		}
		return unit(d[2:]) == 1
	}
	return false
}

// maxYear bounds the magnitude of a written year to what chrono.Time
// can hold.
const maxYear = 292277022398

type timeErr string

func (e timeErr) Error() string { return string(e) }

// scanTime decodes the time literal at the start of d, which must
// satisfy timeStart. neg is the sign of the year.
func scanTime(d []byte, neg bool) (*TimeLit, int, error) {
	lit := &TimeLit{}
	i := 0
	n := asciiDigits(d)
	switch {
	case n == 2 && d[2] == ':':
		j, err := scanClock(d, lit)
		if err != nil {
			return nil, 0, err
		}
		i = j
		j, err = scanZone(d[i:], lit)
		if err != nil {
			return nil, 0, err
		}
		return lit, i + j, nil
	case n >= 4:
		y := int64(0)
		for _, c := range d[:n] {
			y = y*10 + int64(c-'0')
			if y > maxYear {
				return nil, 0, timeErr("year out of range")
			}
		}
		if neg {
			y = -y
		}
		lit.HasYear, lit.Year = true, y
		i = n + 1
		m, ok := atoiN(d[i:], 2)
		if !ok || (len(d) > i+2 && asciiDigit(d[i+2])) {
			return nil, 0, timeErr("month must have 2 digits")
		}
		i += 2
		if i >= len(d) || d[i] != '-' {
			return nil, 0, timeErr("date has year and month but no day")
		}
		i++
		lit.HasMonth, lit.Month = true, m
		day, ok := atoiN(d[i:], 2)
		if !ok || (len(d) > i+2 && asciiDigit(d[i+2])) {
			return nil, 0, timeErr("day must have 2 digits")
		}
		i += 2
		lit.HasDate, lit.Day = true, day
	case d[2] == '-':
		m, _ := atoiN(d, 2)
		lit.HasMonth, lit.Month = true, m
		i = 3
		day, ok := atoiN(d[i:], 2)
		if !ok || (len(d) > i+2 && asciiDigit(d[i+2])) {
			return nil, 0, timeErr("day must have 2 digits")
		}
		i += 2
		lit.HasDate, lit.Day = true, day
	default:
		day, _ := atoiN(d, 2)
		lit.HasDate, lit.Day = true, day
		i = 2
	}
	if err := checkDate(lit); err != nil {
		return nil, 0, err
	}
	if i >= len(d) {
		return lit, i, nil
	}
	switch d[i] {
	case 'T':
		i++
		if i < len(d) && asciiDigit(d[i]) {
			j, err := scanClock(d[i:], lit)
			if err != nil {
				return nil, 0, err
			}
			i += j
		}
	case '-', '+':
		return nil, 0, timeErr("date followed by a dangling separator")
	}
	j, err := scanZone(d[i:], lit)
	if err != nil {
		return nil, 0, err
	}
	return lit, i + j, nil
}

func checkDate(lit *TimeLit) error {
	if lit.HasMonth && (lit.Month < 1 || lit.Month > 12) {
		return timeErr(fmt.Sprintf("month %d out of range", lit.Month))
	}
	if lit.Day < 1 || lit.Day > 31 {
		return timeErr(fmt.Sprintf("day %d out of range", lit.Day))
	}
	return nil
}

// scanClock decodes HH:MM[:SS].
func scanClock(d []byte, lit *TimeLit) (int, error) {
	h, ok := atoiN(d, 2)
	if !ok || len(d) < 3 || d[2] != ':' {
		return 0, timeErr("clock must be HH:MM[:SS]")
	}
	m, ok := atoiN(d[3:], 2)
	if !ok || (len(d) > 5 && asciiDigit(d[5])) {
		return 0, timeErr("minutes must have 2 digits")
	}
	i := 5
	s := 0
	if len(d) > 6 && d[5] == ':' && asciiDigit(d[6]) {
		s, ok = atoiN(d[6:], 2)
		if !ok || (len(d) > 8 && asciiDigit(d[8])) {
			return 0, timeErr("seconds must have 2 digits")
		}
		i = 8
	}
	if h > 23 || m > 59 || s > 59 {
		return 0, timeErr(fmt.Sprintf("clock %02d:%02d:%02d out of range", h, m, s))
	}
	lit.HasClock = true
	lit.Hour, lit.Minute, lit.Second = h, m, s
	return i, nil
}

// scanZone decodes an optional Z or ±HH[:MM].
func scanZone(d []byte, lit *TimeLit) (int, error) {
	if len(d) == 0 {
		return 0, nil
	}
	switch d[0] {
	case 'Z':
		lit.Zoned = true
		return 1, nil
	case '+', '-':
	default:
		return 0, nil
	}
	h, ok := atoiN(d[1:], 2)
	if !ok || (len(d) > 3 && asciiDigit(d[3])) {
		return 0, timeErr("zone must be ±HH[:MM]")
	}
	i := 3
	m := 0
	// A ':' not followed by a digit starts a tag.
	if len(d) > 4 && d[3] == ':' && asciiDigit(d[4]) {
		m, ok = atoiN(d[4:], 2)
		if !ok || (len(d) > 6 && asciiDigit(d[6])) {
			return 0, timeErr("zone minutes must have 2 digits")
		}
		i = 6
	}
	if h > 23 || m > 59 {
		return 0, timeErr(fmt.Sprintf("zone %02d:%02d out of range", h, m))
	}
	off := int32(h*3600 + m*60)
	if d[0] == '-' {
		off = -off
	}
	lit.Zoned = true
	lit.ZoneOffset = off
	return i, nil
}
