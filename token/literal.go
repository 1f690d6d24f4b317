package token

import (
	"unicode"
	"unicode/utf8"
)

func isIdentLead(r rune) bool {
	return r == '_' || r == '.' || unicode.IsLetter(r)
}

func isIdentMid(r rune) bool {
	if isIdentLead(r) {
		return true
	}
	return unicode.IsDigit(r) || unicode.In(r, unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc)
}

func isUnitLead(r rune) bool {
	switch r {
	case '°', '%', 'µ':
		return true
	}
	return unicode.IsLetter(r)
}

func isUnitMid(r rune) bool {
	switch r {
	case '_', '/':
		return true
	}
	return isUnitLead(r) || unicode.IsDigit(r)
}

// identifier returns the length of the identifier at the start of d,
// or 0.
func identifier(d []byte) int {
	r, sz := utf8.DecodeRune(d)
	if !isIdentLead(r) {
		return 0
	}
	i := sz
	for i < len(d) {
		r, sz = utf8.DecodeRune(d[i:])
		if !isIdentMid(r) {
			break
		}
		i += sz
	}
	return i
}

// unit returns the length of the unit word at the start of d, or 0.
func unit(d []byte) int {
	r, sz := utf8.DecodeRune(d)
	if !isUnitLead(r) {
		return 0
	}
	i := sz
	for i < len(d) {
		r, sz = utf8.DecodeRune(d[i:])
		if !isUnitMid(r) {
			break
		}
		i += sz
	}
	return i
}

// IsIdentifier reports whether s reads back as a single bare identifier
// or keyword, so that it can be written without quotes.
func IsIdentifier(s string) bool {
	if s == "" || !utf8.ValidString(s) {
		return false
	}
	return identifier([]byte(s)) == len(s)
}

// IsUnit reports whether s is a valid unit word.
func IsUnit(s string) bool {
	return s != "" && unit([]byte(s)) == len(s)
}
