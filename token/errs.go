package token

import (
	"errors"
	"fmt"
)

var (
	ErrSyntax       = errors.New("syntax error")
	ErrUnterminated = errors.New("unterminated")
	ErrMalformed    = errors.New("malformed literal")
	ErrDepth        = errors.New("nesting too deep")
	ErrTrailing     = errors.New("trailing content")
	ErrUnit         = errors.New("missing unit")
	ErrBadUTF8      = errors.New("bad utf8")
)

// Error is a positioned error in a document. Line and Column are
// 1-based; Column counts runes.
type Error struct {
	Line   int
	Column int
	Msg    string
	Err    error
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: %s: %s", e.Line, e.Column, e.Err.Error(), e.Msg)
}

// NewError returns an error of kind err at p.
func NewError(err error, p *Pos, format string, args ...any) *Error {
	line, col := p.LineCol()
	return &Error{
		Line:   line,
		Column: col,
		Msg:    fmt.Sprintf(format, args...),
		Err:    err,
	}
}

func ExpectedErr(what string, t *Token) error {
	return NewError(ErrSyntax, t.Pos, "expected %s, got %s", what, describe(t))
}

func UnexpectedErr(t *Token) error {
	return NewError(ErrSyntax, t.Pos, "unexpected %s", describe(t))
}

func describe(t *Token) string {
	switch t.Type {
	case TEOF:
		return "end of input"
	case TNewline:
		return "newline"
	}
	return fmt.Sprintf("%q", t.Bytes)
}
