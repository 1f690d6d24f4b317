package main

import (
	"bytes"
	"context"
	"unicode/utf8"

	"go.lsp.dev/protocol"

	"github.com/quanta-format/go-quanta/token"
)

var tokenLegend = []protocol.SemanticTokenTypes{
	protocol.SemanticTokenKeyword,
	protocol.SemanticTokenString,
	protocol.SemanticTokenNumber,
	protocol.SemanticTokenOperator,
	protocol.SemanticTokenProperty,
	protocol.SemanticTokenVariable,
}

var modifierLegend = []protocol.SemanticTokenModifiers{
	protocol.SemanticTokenModifierDefinition,
}

// indices into tokenLegend
const (
	semKeyword = iota
	semString
	semNumber
	semOperator
	semProperty
	semVariable
)

func (s *Server) SemanticTokensFull(ctx context.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}
	return &protocol.SemanticTokens{Data: semanticTokens(doc.content, nil)}, nil
}

func (s *Server) SemanticTokensRange(ctx context.Context, params *protocol.SemanticTokensRangeParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}
	return &protocol.SemanticTokens{Data: semanticTokens(doc.content, &params.Range)}, nil
}

type semToken struct {
	line, col, length uint32
	typ, mods         uint32
}

// semanticTokens classifies the tokens of content, limited to the lines
// of r when it is not nil, in the relative encoding of the protocol.
// Content that does not tokenize gives no tokens.
func semanticTokens(content string, r *protocol.Range) []uint32 {
	src := []byte(content)
	toks, err := token.Tokenize(nil, src)
	if err != nil {
		return []uint32{}
	}
	var sems []semToken
	for i := range toks {
		t := &toks[i]
		typ, mods, ok := classify(toks, i)
		if !ok {
			continue
		}
		line, col := t.Pos.LineCol()
		if r != nil && (uint32(line-1) < r.Start.Line || uint32(line-1) > r.End.Line) {
			continue
		}
		end := len(src)
		if i+1 < len(toks) {
			end = toks[i+1].Pos.I
		}
		length := tokenLength(src, t, end)
		if length == 0 {
			continue
		}
		sems = append(sems, semToken{
			line:   uint32(line - 1),
			col:    uint32(col - 1),
			length: uint32(length),
			typ:    typ,
			mods:   mods,
		})
	}
	data := make([]uint32, 0, 5*len(sems))
	var prevLine, prevCol uint32
	for _, st := range sems {
		dl := st.line - prevLine
		dc := st.col
		if dl == 0 {
			dc = st.col - prevCol
		}
		data = append(data, dl, dc, st.length, st.typ, st.mods)
		prevLine, prevCol = st.line, st.col
	}
	return data
}

func classify(toks []token.Token, i int) (typ, mods uint32, ok bool) {
	t := &toks[i]
	switch t.Type {
	case token.TNull, token.TTrue, token.TFalse:
		return semKeyword, 0, true
	case token.TString, token.TRawString:
		return semString, 0, true
	case token.TNumber, token.TCurrency, token.TTime:
		return semNumber, 0, true
	case token.TOp, token.TUncertain, token.TGuess, token.TApprox, token.TSource:
		return semOperator, 0, true
	case token.TIdent:
		switch {
		case i+1 < len(toks) && toks[i+1].Type == token.TEquals:
			return semProperty, 1, true
		case i > 0 && toks[i-1].Type == token.TColon:
			return semKeyword, 0, true
		}
		return semVariable, 0, true
	}
	return 0, 0, false
}

// tokenLength returns the length in runes of t on its first line. A
// token other than a string ends before end, the start of the next
// token, and before any whitespace or comment preceding it.
func tokenLength(src []byte, t *token.Token, end int) int {
	text := src[t.Pos.I:end]
	if t.IsString() {
		text = t.Bytes
	} else if j := bytes.IndexByte(text, '\\'); j >= 0 {
		text = text[:j]
	}
	if j := bytes.IndexByte(text, '\n'); j >= 0 {
		text = text[:j]
	}
	text = bytes.TrimRight(text, " \t\r")
	return utf8.RuneCount(text)
}
