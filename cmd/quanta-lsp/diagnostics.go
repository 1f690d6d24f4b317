package main

import (
	"context"
	"errors"
	"strings"

	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"

	"github.com/quanta-format/go-quanta/debug"
	"github.com/quanta-format/go-quanta/eval"
	"github.com/quanta-format/go-quanta/ir"
	"github.com/quanta-format/go-quanta/token"
)

const diagSource = "quanta"

func (s *Server) publishDiagnostics(ctx context.Context, doc *document) {
	diagnostics := validateDocument(doc)
	if debug.LSP() {
		debug.Logf("%s: %d diagnostics", displayName(doc.uri), len(diagnostics))
	}
	if s.conn != nil {
		s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
			URI:         protocol.DocumentURI(doc.uri),
			Diagnostics: diagnostics,
		})
	}
}

// displayName returns the file name of a file URI, or the URI.
func displayName(u string) string {
	if strings.HasPrefix(u, uri.FileScheme+"://") {
		return uri.URI(u).Filename()
	}
	return u
}

// validateDocument reports the parse error of doc, or else an error for
// every expression that cannot be computed for a reason other than an
// undefined name.
func validateDocument(doc *document) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	if doc.err != nil {
		d := protocol.Diagnostic{
			Severity: protocol.DiagnosticSeverityError,
			Message:  doc.err.Error(),
			Source:   diagSource,
		}
		var te *token.Error
		if errors.As(doc.err, &te) {
			d.Message = te.Err.Error()
			if te.Msg != "" {
				d.Message += ": " + te.Msg
			}
			start := protocol.Position{Line: uint32(te.Line - 1), Character: uint32(te.Column - 1)}
			d.Range = protocol.Range{Start: start, End: protocol.Position{Line: start.Line, Character: start.Character + 1}}
		}
		return append(diagnostics, d)
	}
	walkScopes(doc.node, nil, func(n *ir.Node, path []*ir.Node) {
		if !n.Is(ir.ExpressionType) {
			return
		}
		_, err := eval.Eval(n, eval.Scope(nil, path...))
		if err == nil || errors.Is(err, eval.ErrUndefined) {
			return
		}
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range:    nodeRange(doc, n),
			Severity: protocol.DiagnosticSeverityWarning,
			Message:  err.Error(),
			Source:   diagSource,
		})
	})
	return diagnostics
}

// walkScopes calls fn on every member under n with the chain of nodes
// enclosing it, outermost first.
func walkScopes(n *ir.Node, path []*ir.Node, fn func(*ir.Node, []*ir.Node)) {
	path = append(path, n)
	for _, c := range n.Children() {
		fn(c, path)
		walkScopes(c, path, fn)
	}
}

// nodeRange returns the range of the line of n from its start.
func nodeRange(doc *document, n *ir.Node) protocol.Range {
	p := doc.positions[n]
	if p == nil {
		return protocol.Range{}
	}
	line, col := p.LineCol()
	text := lineText(doc.content, line-1)
	start := protocol.Position{Line: uint32(line - 1), Character: uint32(col - 1)}
	end := protocol.Position{Line: start.Line, Character: uint32(len([]rune(text)))}
	return protocol.Range{Start: start, End: end}
}

// lineText returns line i, counting from 0, of content.
func lineText(content string, i int) string {
	lines := strings.Split(content, "\n")
	if i < 0 || i >= len(lines) {
		return ""
	}
	return lines[i]
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	doc := s.docs.put(string(params.TextDocument.URI), params.TextDocument.Text, params.TextDocument.Version)
	s.publishDiagnostics(ctx, doc)
	return nil
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	old := s.docs.get(string(params.TextDocument.URI))
	if old == nil {
		return nil
	}
	content := old.content
	for _, change := range params.ContentChanges {
		content = applyChange(content, change)
	}
	doc := s.docs.put(string(params.TextDocument.URI), content, params.TextDocument.Version)
	s.publishDiagnostics(ctx, doc)
	return nil
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.remove(string(params.TextDocument.URI))
	return nil
}

// applyChange applies one content change to content. A change without a
// range replaces the whole document.
func applyChange(content string, change protocol.TextDocumentContentChangeEvent) string {
	r := change.Range
	if r.Start == r.End && r.Start == (protocol.Position{}) && change.RangeLength == 0 {
		return change.Text
	}
	start := lineColToOffset(content, int(r.Start.Line), int(r.Start.Character))
	end := lineColToOffset(content, int(r.End.Line), int(r.End.Character))
	if start > end {
		return content
	}
	return content[:start] + change.Text + content[end:]
}

// lineColToOffset returns the byte offset of a 0-based line and rune
// column, clamped to the end of the line or of content.
func lineColToOffset(content string, line, col int) int {
	currentLine := 0
	currentCol := 0
	for i, r := range content {
		if currentLine == line && (currentCol == col || r == '\n') {
			return i
		}
		if r == '\n' {
			currentLine++
			currentCol = 0
		} else {
			currentCol++
		}
	}
	return len(content)
}
