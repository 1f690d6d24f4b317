package parse

import (
	"fmt"
	"io"
	"os"

	"github.com/quanta-format/go-quanta/debug"
	"github.com/quanta-format/go-quanta/ir"
	"github.com/quanta-format/go-quanta/token"
)

// Parse parses d into a new root node.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	root := ir.Null()
	if err := ParseInto(root, d, opts...); err != nil {
		return nil, err
	}
	return root, nil
}

func ParseString(s string, opts ...ParseOption) (*ir.Node, error) {
	return Parse([]byte(s), opts...)
}

func ParseReader(r io.Reader, opts ...ParseOption) (*ir.Node, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return Parse(d, opts...)
}

func ParseFile(path string, opts ...ParseOption) (*ir.Node, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(d, opts...)
}

// ParseInto clears root and parses d into it. In document mode the
// members become the children of root; with SingleValue root is the
// member itself, name included. On error root is left cleared.
func ParseInto(root *ir.Node, d []byte, opts ...ParseOption) error {
	pOpts := newOpts(opts)
	root.Clear()
	toks, err := token.Tokenize(nil, d)
	if err != nil {
		return err
	}
	if debug.Tokens() {
		token.LogTokens(toks, "parse")
	}
	p := &parser{toks: toks, opts: pOpts}
	if pOpts.single {
		err = p.single(root)
	} else {
		err = p.members(root, nil, token.TEOF)
	}
	if err != nil {
		root.Clear()
		if debug.Parse() {
			debug.Logf("parse failed: %v", err)
		}
		return err
	}
	if debug.Parse() {
		debug.Logf("parsed %d tokens into %d members", len(toks), root.NumChildren())
	}
	return nil
}

type parser struct {
	toks  []token.Token
	i     int
	depth int
	opts  *parseOpts
}

func (p *parser) peek() *token.Token {
	return &p.toks[p.i]
}

func (p *parser) peekAt(k int) *token.Token {
	return &p.toks[min(p.i+k, len(p.toks)-1)]
}

func (p *parser) next() *token.Token {
	t := &p.toks[p.i]
	if t.Type != token.TEOF {
		p.i++
	}
	return t
}

// adjacent reports whether the next token directly follows the previous
// one, with no space, comment or newline between.
func (p *parser) adjacent() bool {
	t := p.peek()
	return !t.SpaceBefore && t.Type != token.TEOF && t.Type != token.TNewline
}

// attached reports whether the next token continues the current value:
// once something of the value has been read, only adjacent tokens do.
func (p *parser) attached(lead bool) bool {
	if lead {
		return p.adjacent()
	}
	t := p.peek()
	return t.Type != token.TEOF && t.Type != token.TNewline
}

func (p *parser) skipNewlines() {
	for p.peek().Type == token.TNewline {
		p.i++
	}
}

func (p *parser) trackPos(n *ir.Node, t *token.Token) {
	if p.opts.positions == nil {
		return
	}
	if _, ok := p.opts.positions[n]; !ok {
		p.opts.positions[n] = t.Pos
	}
}

func (p *parser) single(root *ir.Node) error {
	p.skipNewlines()
	if p.peek().Type == token.TEOF {
		return nil
	}
	if err := p.member(root); err != nil {
		return err
	}
	for {
		switch t := p.peek(); t.Type {
		case token.TNewline, token.TComma, token.TSemi:
			p.i++
		case token.TEOF:
			return nil
		default:
			return token.NewError(token.ErrTrailing, t.Pos, "%s after the value", describe(t))
		}
	}
}

// members parses members into the children of n until a close token,
// which is consumed. open is the token that opened the scope, or nil
// for a document closed by the end of input.
func (p *parser) members(n *ir.Node, open *token.Token, close token.TokenType) error {
	sep := true
	since := false
	for {
		t := p.peek()
		if t.Type == close {
			p.next()
			return nil
		}
		switch t.Type {
		case token.TEOF:
			return token.NewError(token.ErrUnterminated, open.Pos, "%q is not closed", open.Bytes)
		case token.TNewline:
			p.i++
			sep = true
			continue
		case token.TComma, token.TSemi:
			if !since {
				return token.UnexpectedErr(t)
			}
			p.i++
			sep, since = true, false
			continue
		}
		if !sep && !t.SpaceBefore {
			return token.UnexpectedErr(t)
		}
		c := &ir.Node{}
		if err := p.member(c); err != nil {
			return err
		}
		n.PushChild(c)
		sep, since = false, true
	}
}

func isName(t *token.Token) bool {
	return t.Type == token.TIdent || t.IsKeyword() || t.IsString()
}

// member parses [name =] expression into n.
func (p *parser) member(n *ir.Node) error {
	t := p.peek()
	if isName(t) && p.peekAt(1).Type == token.TEquals {
		p.trackPos(n, t)
		n.SetName(t.String())
		p.i += 2
		p.skipNewlines()
	}
	return p.expression(n)
}

// expression parses a value and any infix operands that follow it. A
// newline may follow an operator but ends the expression elsewhere.
func (p *parser) expression(n *ir.Node) error {
	if err := p.value(n); err != nil {
		return err
	}
	if p.peek().Type != token.TOp {
		return nil
	}
	first := &ir.Node{}
	name := n.Name()
	first.MoveFrom(n)
	first.ClearName()
	if pos, ok := p.opts.positions[n]; ok {
		p.opts.positions[first] = pos
	}
	n.SetExpression()
	if name != "" {
		n.SetName(name)
	}
	n.PushOperand(ir.OpNone, first)
	for p.peek().Type == token.TOp {
		opTok := p.next()
		op, _ := ir.OperatorFromSymbol(string(opTok.Bytes))
		p.skipNewlines()
		if t := p.peek(); !valueStart(t) {
			return token.ExpectedErr("operand", t)
		}
		c := &ir.Node{}
		if err := p.value(c); err != nil {
			return err
		}
		n.PushOperand(op, c)
	}
	return nil
}

func valueStart(t *token.Token) bool {
	switch t.Type {
	case token.TUncertain, token.TGuess, token.TApprox, token.TColon,
		token.TIdent, token.TNull, token.TTrue, token.TFalse,
		token.TNumber, token.TCurrency, token.TTime, token.TString, token.TRawString,
		token.TLParen, token.TLCurl, token.TLSquare, token.TSource:
		return true
	}
	return false
}

func describe(t *token.Token) string {
	switch t.Type {
	case token.TNewline:
		return "newline"
	case token.TEOF:
		return "end of input"
	}
	return fmt.Sprintf("%q", t.Bytes)
}
