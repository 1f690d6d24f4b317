package token

import (
	"fmt"
)

type TokenType int

const (
	TEOF TokenType = iota
	TNewline
	TComma
	TSemi
	TEquals
	TColon
	TLCurl
	TRCurl
	TLSquare
	TRSquare
	TLParen
	TRParen
	TOp
	TUncertain
	TGuess
	TApprox
	TSource
	TNull
	TTrue
	TFalse
	TIdent
	TNumber
	TCurrency
	TTime
	TString
	TRawString
)

var tokenTypeNames = map[TokenType]string{
	TEOF:       "TEOF",
	TNewline:   "TNewline",
	TComma:     "TComma",
	TSemi:      "TSemi",
	TEquals:    "TEquals",
	TColon:     "TColon",
	TLCurl:     "TLCurl",
	TRCurl:     "TRCurl",
	TLSquare:   "TLSquare",
	TRSquare:   "TRSquare",
	TLParen:    "TLParen",
	TRParen:    "TRParen",
	TOp:        "TOp",
	TUncertain: "TUncertain",
	TGuess:     "TGuess",
	TApprox:    "TApprox",
	TSource:    "TSource",
	TNull:      "TNull",
	TTrue:      "TTrue",
	TFalse:     "TFalse",
	TIdent:     "TIdent",
	TNumber:    "TNumber",
	TCurrency:  "TCurrency",
	TTime:      "TTime",
	TString:    "TString",
	TRawString: "TRawString",
}

func (t TokenType) String() string {
	s, ok := tokenTypeNames[t]
	if !ok {
		return fmt.Sprintf("TokenType(%d)", int(t))
	}
	return s
}

// Token is one lexical unit of a document.
//
// For TNumber and TCurrency, Bytes holds the numeric text (sign and
// digits, without the currency sigil) and Unit the unit word. For TTime,
// Time holds the decoded literal.
type Token struct {
	Type  TokenType
	Pos   *Pos
	Bytes []byte

	Unit []byte
	Time *TimeLit

	// SpaceBefore is set when whitespace, a comment or the start of the
	// document precedes the token.
	SpaceBefore bool
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}

// String returns the decoded text of string tokens and the literal
// bytes of all others.
func (t *Token) String() string {
	switch t.Type {
	case TString:
		return QuotedToString(t.Bytes)
	case TRawString:
		return FencedToString(t.Bytes)
	default:
		return string(t.Bytes)
	}
}

// IsKeyword reports whether t is null, true or false.
func (t *Token) IsKeyword() bool {
	switch t.Type {
	case TNull, TTrue, TFalse:
		return true
	}
	return false
}

// IsString reports whether t is a quoted or fenced string.
func (t *Token) IsString() bool {
	return t.Type == TString || t.Type == TRawString
}

// endsValue reports whether a sign directly after t is an operator
// rather than the sign of a number.
func (t *Token) endsValue() bool {
	switch t.Type {
	case TIdent, TNull, TTrue, TFalse, TNumber, TCurrency, TTime,
		TString, TRawString, TSource, TRParen, TRCurl, TRSquare:
		return true
	}
	return false
}
