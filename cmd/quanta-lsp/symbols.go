package main

import (
	"context"
	"fmt"

	"go.lsp.dev/protocol"

	"github.com/quanta-format/go-quanta/ir"
	"github.com/quanta-format/go-quanta/token"
)

func (s *Server) DocumentSymbol(ctx context.Context, params *protocol.DocumentSymbolParams) ([]interface{}, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.node == nil {
		return nil, nil
	}
	res := []interface{}{}
	for _, sym := range documentSymbols(doc, doc.node) {
		res = append(res, sym)
	}
	return res, nil
}

// documentSymbols returns the outline of the members of n.
func documentSymbols(doc *document, n *ir.Node) []protocol.DocumentSymbol {
	var res []protocol.DocumentSymbol
	for i, c := range n.Children() {
		name := c.Name()
		if !c.HasName() {
			name = fmt.Sprintf("#%d", i)
		}
		r := nodeRange(doc, c)
		sel := protocol.Range{
			Start: r.Start,
			End:   protocol.Position{Line: r.Start.Line, Character: r.Start.Character + uint32(len([]rune(name)))},
		}
		if !c.HasName() {
			sel.End = sel.Start
		}
		sym := protocol.DocumentSymbol{
			Name:           name,
			Detail:         c.Type().String(),
			Kind:           symbolKind(c),
			Range:          r,
			SelectionRange: sel,
		}
		if c.HasChildren() {
			sym.Children = documentSymbols(doc, c)
			last := sym.Children[len(sym.Children)-1].Range.End
			if last.Line > sym.Range.End.Line {
				sym.Range.End = last
			}
		}
		res = append(res, sym)
	}
	return res
}

func symbolKind(n *ir.Node) protocol.SymbolKind {
	if n.HasChildren() {
		return protocol.SymbolKindObject
	}
	switch n.Type() {
	case ir.NullType:
		return protocol.SymbolKindNull
	case ir.BoolType:
		return protocol.SymbolKindBoolean
	case ir.IntegerType, ir.DecimalType, ir.CurrencyType:
		return protocol.SymbolKindNumber
	case ir.StringType:
		return protocol.SymbolKindString
	case ir.ExpressionType:
		return protocol.SymbolKindOperator
	default:
		return protocol.SymbolKindVariable
	}
}

func (s *Server) FoldingRanges(ctx context.Context, params *protocol.FoldingRangeParams) ([]protocol.FoldingRange, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}
	return foldingRanges(doc.content), nil
}

// foldingRanges returns a range for every pair of braces or brackets
// spanning more than one line. Content that does not tokenize has none.
func foldingRanges(content string) []protocol.FoldingRange {
	res := []protocol.FoldingRange{}
	toks, err := token.Tokenize(nil, []byte(content))
	if err != nil {
		return res
	}
	var open []int
	for _, tok := range toks {
		switch tok.Type {
		case token.TLCurl, token.TLSquare:
			open = append(open, tok.Pos.Line())
		case token.TRCurl, token.TRSquare:
			if len(open) == 0 {
				continue
			}
			start := open[len(open)-1]
			open = open[:len(open)-1]
			end := tok.Pos.Line()
			if end > start {
				res = append(res, protocol.FoldingRange{
					StartLine: uint32(start - 1),
					EndLine:   uint32(end - 1),
				})
			}
		}
	}
	return res
}
