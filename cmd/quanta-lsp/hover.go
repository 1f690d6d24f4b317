package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.lsp.dev/protocol"

	"github.com/quanta-format/go-quanta/chrono"
	"github.com/quanta-format/go-quanta/encode"
	"github.com/quanta-format/go-quanta/eval"
	"github.com/quanta-format/go-quanta/ir"
)

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.node == nil {
		return nil, nil
	}
	pos := params.Position
	n, path := findNode(doc, int(pos.Line)+1, int(pos.Character)+1)
	if n == nil {
		return nil, nil
	}
	hoverText := buildHoverText(n, path, chrono.FromGo(time.Now()))
	if hoverText == "" {
		return nil, nil
	}
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: hoverText,
		},
	}, nil
}

// findNode returns the node starting closest before the 1-based line and
// column, and the nodes enclosing the member it belongs to.
func findNode(doc *document, line, col int) (*ir.Node, []*ir.Node) {
	var (
		best     *ir.Node
		bestPath []*ir.Node
		bestCol  int
	)
	consider := func(n *ir.Node, path []*ir.Node) {
		p := doc.positions[n]
		if p == nil {
			return
		}
		l, c := p.LineCol()
		if l != line || c > col || (best != nil && c < bestCol) {
			return
		}
		best, bestPath, bestCol = n, path, c
	}
	walkScopes(doc.node, nil, func(m *ir.Node, path []*ir.Node) {
		consider(m, path)
		var parts func(n *ir.Node)
		parts = func(n *ir.Node) {
			for _, t := range n.Tags() {
				consider(t, path)
				parts(t)
				for _, c := range t.Children() {
					consider(c, path)
					parts(c)
				}
			}
			if n.Is(ir.ExpressionType) {
				for _, o := range n.Operands() {
					consider(o, path)
					parts(o)
				}
			}
			if q := n.Quantity(); q != nil {
				consider(q, path)
				parts(q)
			}
		}
		parts(m)
	})
	return best, bestPath
}

func buildHoverText(n *ir.Node, path []*ir.Node, now chrono.Time) string {
	var parts []string
	if n.HasName() {
		parts = append(parts, fmt.Sprintf("**Name:** `%s`", n.Name()))
	}
	parts = append(parts, "**Type:** "+typeInfo(n))

	shell := ir.Null()
	shell.CopyFrom(n, false)
	shell.ClearName()
	if v := encode.MustString(shell); v != "" {
		parts = append(parts, fmt.Sprintf("**Value:** `%s`", truncate(v, 60)))
	}
	if m := markerInfo(n); m != "" {
		parts = append(parts, "**Markers:** "+m)
	}
	if s := sourceInfo(n); s != "" {
		parts = append(parts, "**Source:** "+s)
	}
	if n.Is(ir.TimeType) {
		parts = append(parts, "**Time:** "+timeInfo(n, now))
	}
	if n.Is(ir.ExpressionType) {
		parts = append(parts, "**Result:** "+resultInfo(n, path))
	}
	if k := n.NumChildren(); k != 0 {
		parts = append(parts, fmt.Sprintf("**Members:** %d", k))
	}
	return strings.Join(parts, "\n\n")
}

func typeInfo(n *ir.Node) string {
	res := n.Type().String()
	switch {
	case n.Type().IsNumeric() && n.HasUnit():
		res += fmt.Sprintf(" in `%s`", n.Unit())
	case n.Is(ir.StringType) && n.TypeTag() != "":
		res += fmt.Sprintf(" tagged `%s`", n.TypeTag())
	case n.Is(ir.ExpressionType):
		res += fmt.Sprintf(" of %d operands", n.NumOperands())
	}
	return res
}

func markerInfo(n *ir.Node) string {
	var res []string
	if n.MarkerValueUncertain() {
		res = append(res, "uncertain")
	}
	if n.MarkerValueGuess() {
		res = append(res, "guess")
	}
	if a := n.ValueApproximation(); a != 0 {
		res = append(res, fmt.Sprintf("approximate (%d)", a))
	}
	return strings.Join(res, ", ")
}

func sourceInfo(n *ir.Node) string {
	if !n.HasSourceMarkers() {
		return ""
	}
	one := func(v uint16, uncertain bool) string {
		s := "unspecified"
		if v != 0 {
			s = fmt.Sprintf("%d", v)
		}
		if uncertain {
			s += " (uncertain)"
		}
		return s
	}
	res := one(n.Source(), n.MarkerSourceUncertain())
	if n.HasSubSource() || n.MarkerSubSourceUncertain() {
		res += ", sub-source " + one(n.SubSource(), n.MarkerSubSourceUncertain())
	}
	return res
}

func timeInfo(n *ir.Node, now chrono.Time) string {
	res := n.TimeType().String()
	if !n.Zoned() {
		res += ", floating"
	}
	if n.YearContextual() {
		res += ", year from context"
	}
	if n.MonthContextual() {
		res += ", month from context"
	}
	r := n.Clone()
	r.ResolveTime(now)
	return res + fmt.Sprintf("; resolved `%s`", r.TimeValue().Go().Format(time.RFC3339))
}

func resultInfo(n *ir.Node, path []*ir.Node) string {
	v, err := eval.Eval(n, eval.Scope(nil, path...))
	switch {
	case errors.Is(err, eval.ErrUndefined):
		return "not computable: " + err.Error()
	case err != nil:
		return "error: " + err.Error()
	}
	return fmt.Sprintf("`%s`", encode.MustString(v))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
