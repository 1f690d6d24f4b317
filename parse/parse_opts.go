package parse

import (
	"github.com/quanta-format/go-quanta/ir"
	"github.com/quanta-format/go-quanta/token"
)

// DefaultMaxDepth is the nesting limit used when MaxDepth is not given.
const DefaultMaxDepth = 256

type parseOpts struct {
	single    bool
	maxDepth  int
	positions map[*ir.Node]*token.Pos
}

type ParseOption func(*parseOpts)

// SingleValue parses exactly one member instead of a document. Empty
// input gives a null value; anything after the member is an error.
func SingleValue() ParseOption {
	return func(o *parseOpts) { o.single = true }
}

// MaxDepth limits how deeply values may nest.
func MaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}

// ParsePositions records where each parsed node starts in m. Tags are
// included.
func ParsePositions(m map[*ir.Node]*token.Pos) ParseOption {
	return func(o *parseOpts) {
		o.positions = m
	}
}

func newOpts(opts []ParseOption) *parseOpts {
	pOpts := &parseOpts{maxDepth: DefaultMaxDepth}
	for _, f := range opts {
		f(pOpts)
	}
	if pOpts.maxDepth <= 0 {
		pOpts.maxDepth = DefaultMaxDepth
	}
	return pOpts
}
