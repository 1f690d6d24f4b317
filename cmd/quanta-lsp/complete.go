package main

import (
	"context"
	"sort"

	"go.lsp.dev/protocol"

	"github.com/quanta-format/go-quanta/ir"
)

var keywords = []string{"null", "true", "false"}

func (s *Server) Completion(ctx context.Context, params *protocol.CompletionParams) (*protocol.CompletionList, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}
	return &protocol.CompletionList{Items: completions(doc)}, nil
}

// completions offers the keywords and every member name of doc, which
// expressions may refer to.
func completions(doc *document) []protocol.CompletionItem {
	var items []protocol.CompletionItem
	for _, k := range keywords {
		items = append(items, protocol.CompletionItem{
			Label: k,
			Kind:  protocol.CompletionItemKindKeyword,
		})
	}
	if doc.node == nil {
		return items
	}
	seen := map[string]bool{}
	var names []string
	walkScopes(doc.node, nil, func(n *ir.Node, _ []*ir.Node) {
		if n.HasName() && !seen[n.Name()] {
			seen[n.Name()] = true
			names = append(names, n.Name())
		}
	})
	sort.Strings(names)
	for _, name := range names {
		items = append(items, protocol.CompletionItem{
			Label: name,
			Kind:  protocol.CompletionItemKindVariable,
		})
	}
	return items
}
