package token

// number scans the numeric part of a number literal at the start of d,
// after any sign: digits with an optional fraction and exponent, or a
// fraction alone when signed. It returns the length and whether the
// literal is a decimal.
func number(d []byte, signed bool) (int, bool, error) {
	digits := asciiDigits(d)
	if digits == 0 {
		if !signed || fract(d) == 0 {
			return 0, false, ErrMalformed
		}
	}
	if digits < len(d) && d[digits] == '.' && fract(d[digits:]) == 0 {
		// 1. and 1.x
		return digits, false, ErrMalformed
	}
	f := fract(d[digits:])
	e := exp(d[digits+f:])
	return digits + f + e, f+e != 0, nil
}

func asciiDigits(d []byte) int {
	i := 0
	for i < len(d) {
		if !asciiDigit(d[i]) {
			return i
		}
		i++
	}
	return i
}

func asciiDigit(c byte) bool {
	switch c {
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return true
	default:
		return false
	}
}

// exp scans an exponent. An e not followed by digits is not an
// exponent: it starts a unit.
func exp(d []byte) int {
	if len(d) < 2 {
		return 0
	}
	switch d[0] {
	case 'e', 'E':
	default:
		return 0
	}
	i := 1
	switch d[1] {
	case '+', '-':
		i++
	default:
	}
	if i == len(d) {
		return 0
	}
	n := asciiDigits(d[i:])
	if n == 0 {
		return 0
	}
	return n + i
}

// fract scans a '.' followed by 1 or more digits.
func fract(d []byte) int {
	if len(d) < 2 || d[0] != '.' {
		return 0
	}
	n := asciiDigits(d[1:])
	if n == 0 {
		return 0
	}
	return n + 1
}

// atoiN decodes exactly n ASCII digits at the start of d.
func atoiN(d []byte, n int) (int, bool) {
	if len(d) < n || asciiDigits(d[:n]) != n {
		return 0, false
	}
	v := 0
	for _, c := range d[:n] {
		v = v*10 + int(c-'0')
	}
	return v, true
}
