package main

import (
	"sync"

	"github.com/quanta-format/go-quanta/ir"
	"github.com/quanta-format/go-quanta/parse"
	"github.com/quanta-format/go-quanta/token"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

// document is an open document and the result of parsing it. On a parse
// error node is nil and err is set.
type document struct {
	uri       string
	content   string
	version   int32
	node      *ir.Node
	positions map[*ir.Node]*token.Pos
	err       error
}

func newDocument(uri, content string, version int32) *document {
	doc := &document{
		uri:       uri,
		content:   content,
		version:   version,
		positions: make(map[*ir.Node]*token.Pos),
	}
	doc.node, doc.err = parse.ParseString(content, parse.ParsePositions(doc.positions))
	if doc.err != nil {
		doc.node = nil
	}
	return doc
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri string, content string, version int32) *document {
	doc := newDocument(uri, content, version)
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.docs[uri] = doc
	return doc
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}
