package main

import (
	"context"
	"strings"

	"go.lsp.dev/protocol"

	"github.com/quanta-format/go-quanta/encode"
)

func (s *Server) Formatting(ctx context.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.node == nil {
		return nil, nil
	}
	return formatEdits(doc)
}

// formatEdits returns a single edit replacing the content of doc with its
// canonical form, or no edits when it is already canonical.
func formatEdits(doc *document) ([]protocol.TextEdit, error) {
	formatted, err := encode.EncodeString(doc.node, encode.Document())
	if err != nil {
		return nil, err
	}
	if doc.node.HasChildren() {
		formatted += "\n"
	}
	if formatted == doc.content {
		return []protocol.TextEdit{}, nil
	}
	lines := strings.Count(doc.content, "\n")
	if len(doc.content) > 0 && doc.content[len(doc.content)-1] != '\n' {
		lines++
	}
	return []protocol.TextEdit{
		{
			Range: protocol.Range{
				Start: protocol.Position{Line: 0, Character: 0},
				End:   protocol.Position{Line: uint32(lines), Character: 0},
			},
			NewText: formatted,
		},
	}, nil
}
