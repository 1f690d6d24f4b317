package token

import (
	"unicode/utf8"
)

type tkState struct {
	d     []byte
	doc   *PosDoc
	space bool
	last  *Token
}

// Tokenize appends the tokens of src to dst. The result always ends in
// a TEOF token. Errors are *Error.
func Tokenize(dst []Token, src []byte) ([]Token, error) {
	ts := &tkState{
		d:     src,
		doc:   NewPosDoc(src),
		space: true,
	}
	n := len(src)
	i := 0
	for i < n {
		start := len(dst)
		var err error
		dst, i, err = ts.one(dst, i)
		if err != nil {
			return nil, err
		}
		if len(dst) > start {
			ts.last = &dst[len(dst)-1]
			ts.space = ts.last.Type == TNewline
		}
	}
	dst = append(dst, Token{
		Type:        TEOF,
		Pos:         ts.doc.end(),
		SpaceBefore: true,
	})
	return dst, nil
}

func (ts *tkState) emit(dst []Token, tt TokenType, i, j int) []Token {
	return append(dst, Token{
		Type:        tt,
		Pos:         ts.doc.Pos(i),
		Bytes:       ts.d[i:j],
		SpaceBefore: ts.space,
	})
}

func (ts *tkState) errAt(err error, i int, format string, args ...any) error {
	return NewError(err, ts.doc.Pos(i), format, args...)
}

// signStartsNumber reports whether a sign at i belongs to a number: it
// must be followed by a digit or a fraction and must not directly
// follow a value.
func (ts *tkState) signStartsNumber(i int) bool {
	d := ts.d[i+1:]
	if len(d) == 0 || !(asciiDigit(d[0]) || fract(d) != 0) {
		return false
	}
	return ts.last == nil || ts.space || !ts.last.endsValue()
}

// one scans the token or skippable run at i, returning the updated
// token slice and the offset after it.
func (ts *tkState) one(dst []Token, i int) ([]Token, int, error) {
	d := ts.d
	c := d[i]
	switch c {
	case ' ', '\t', '\r':
		ts.space = true
		return dst, i + 1, nil
	case '\n':
		return ts.emit(dst, TNewline, i, i+1), i + 1, nil
	case '\\':
		j, err := ts.comment(i)
		if err != nil {
			return nil, 0, err
		}
		ts.space = true
		return dst, j, nil
	case ',':
		return ts.emit(dst, TComma, i, i+1), i + 1, nil
	case ';':
		return ts.emit(dst, TSemi, i, i+1), i + 1, nil
	case '=':
		return ts.emit(dst, TEquals, i, i+1), i + 1, nil
	case ':':
		return ts.emit(dst, TColon, i, i+1), i + 1, nil
	case '{':
		return ts.emit(dst, TLCurl, i, i+1), i + 1, nil
	case '}':
		return ts.emit(dst, TRCurl, i, i+1), i + 1, nil
	case '[':
		return ts.emit(dst, TLSquare, i, i+1), i + 1, nil
	case ']':
		return ts.emit(dst, TRSquare, i, i+1), i + 1, nil
	case '(':
		return ts.emit(dst, TLParen, i, i+1), i + 1, nil
	case ')':
		return ts.emit(dst, TRParen, i, i+1), i + 1, nil
	case '?':
		return ts.emit(dst, TUncertain, i, i+1), i + 1, nil
	case '~', '^':
		j := i
		for j < len(d) && d[j] == c {
			j++
		}
		return ts.emit(dst, TApprox, i, j), j, nil
	case '$':
		return ts.source(dst, i)
	case '"':
		n, err := quoted(d[i:])
		if err != nil {
			return nil, 0, ts.errAt(err, i, "string not closed on its line")
		}
		return ts.emit(dst, TString, i, i+n), i + n, nil
	case '`':
		n, err := fenced(d[i:])
		if err != nil {
			return nil, 0, ts.errAt(err, i, "fenced string not closed")
		}
		return ts.emit(dst, TRawString, i, i+n), i + n, nil
	case '+', '-':
		if ts.signStartsNumber(i) {
			return ts.number(dst, i, i+1)
		}
		return ts.emit(dst, TOp, i, i+1), i + 1, nil
	case '*', '/':
		return ts.emit(dst, TOp, i, i+1), i + 1, nil
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return ts.number(dst, i, i)
	}
	r, sz := utf8.DecodeRune(d[i:])
	if r == utf8.RuneError && sz <= 1 {
		return nil, 0, ts.errAt(ErrBadUTF8, i, "invalid utf-8")
	}
	if r == '¤' {
		return ts.currency(dst, i, i+sz)
	}
	n := identifier(d[i:])
	if n == 0 {
		return nil, 0, ts.errAt(ErrSyntax, i, "unexpected character %q", r)
	}
	j := i + n
	if n == 1 && c == 'G' && j < len(d) && d[j] == '~' {
		return ts.emit(dst, TGuess, i, j+1), j + 1, nil
	}
	return ts.emit(dst, keywordType(d[i:j]), i, j), j, nil
}

// comment skips the comment at i, which starts with a backslash.
func (ts *tkState) comment(i int) (int, error) {
	d := ts.d
	if i+1 >= len(d) {
		return 0, ts.errAt(ErrSyntax, i, "lone backslash")
	}
	switch d[i+1] {
	case '\\':
		j := i + 2
		for j < len(d) && d[j] != '\n' {
			j++
		}
		return j, nil
	case '*':
		depth := 1
		j := i + 2
		for j+1 < len(d) {
			switch {
			case d[j] == '\\' && d[j+1] == '*':
				depth++
				j += 2
			case d[j] == '*' && d[j+1] == '\\':
				depth--
				j += 2
				if depth == 0 {
					return j, nil
				}
			default:
				j++
			}
		}
		return 0, ts.errAt(ErrUnterminated, i, "block comment not closed")
	}
	return 0, ts.errAt(ErrSyntax, i, "lone backslash")
}

// source scans $[?][digits].
func (ts *tkState) source(dst []Token, i int) ([]Token, int, error) {
	d := ts.d
	j := i + 1
	if j < len(d) && d[j] == '?' {
		j++
	}
	j += asciiDigits(d[j:])
	if j == i+1 {
		return nil, 0, ts.errAt(ErrMalformed, i, "source needs a number or ?")
	}
	return ts.emit(dst, TSource, i, j), j, nil
}

// number scans a number or time literal starting at i, whose digits
// start at k (after the sign, if any).
func (ts *tkState) number(dst []Token, i, k int) ([]Token, int, error) {
	d := ts.d
	signed := k > i
	if timeStart(d[k:], signed) {
		lit, n, err := scanTime(d[k:], signed && d[i] == '-')
		if err != nil {
			return nil, 0, ts.errAt(ErrMalformed, i, "time: %s", err.Error())
		}
		dst = ts.emit(dst, TTime, i, k+n)
		dst[len(dst)-1].Time = lit
		return dst, k + n, nil
	}
	n, _, err := number(d[k:], signed)
	if err != nil {
		return nil, 0, ts.errAt(ErrMalformed, i, "number %q", d[i:min(k+n+1, len(d))])
	}
	j := k + n
	if exp(d[j:]) != 0 {
		// 1e1e3
		return nil, 0, ts.errAt(ErrMalformed, i, "number %q has a unit that reads as an exponent", d[i:j+exp(d[j:])])
	}
	u := unit(d[j:])
	dst = ts.emit(dst, TNumber, i, j)
	if u != 0 {
		dst[len(dst)-1].Unit = d[j : j+u]
	}
	return dst, j + u, nil
}

// currency scans ¤[+-]digits[.digits]unit starting at i, with k after
// the sigil.
func (ts *tkState) currency(dst []Token, i, k int) ([]Token, int, error) {
	d := ts.d
	s := k
	if s < len(d) && (d[s] == '+' || d[s] == '-') {
		s++
	}
	digits := asciiDigits(d[s:])
	if digits == 0 {
		return nil, 0, ts.errAt(ErrMalformed, i, "currency needs digits")
	}
	j := s + digits
	if j < len(d) && d[j] == '.' {
		f := fract(d[j:])
		if f == 0 {
			return nil, 0, ts.errAt(ErrMalformed, i, "currency fraction needs digits")
		}
		j += f
	}
	u := unit(d[j:])
	if u == 0 {
		return nil, 0, ts.errAt(ErrUnit, i, "currency needs a unit")
	}
	tok := Token{
		Type:        TCurrency,
		Pos:         ts.doc.Pos(i),
		Bytes:       d[k:j],
		Unit:        d[j : j+u],
		SpaceBefore: ts.space,
	}
	return append(dst, tok), j + u, nil
}
