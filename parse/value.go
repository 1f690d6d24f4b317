package parse

import (
	"bytes"
	"math"
	"strconv"
	"strings"

	"github.com/quanta-format/go-quanta/ir"
	"github.com/quanta-format/go-quanta/token"
)

type valueMarkers struct {
	set       bool
	uncertain bool
	guess     bool
	approx    int
}

func (m *valueMarkers) apply(n *ir.Node) {
	switch {
	case m.guess:
		n.SetValueGuess(true)
	case m.uncertain:
		n.SetValueCertain(false)
	}
	if m.approx != 0 {
		n.SetValueApproximation(m.approx)
	}
}

// markers reads an optional ? or G~ followed by an optional
// approximation run. With lead set the first marker must be adjacent.
func (p *parser) markers(lead bool) (valueMarkers, error) {
	var m valueMarkers
	if t := p.peek(); (t.Type == token.TUncertain || t.Type == token.TGuess) && p.attached(lead) {
		p.next()
		m.set = true
		m.uncertain = t.Type == token.TUncertain
		m.guess = t.Type == token.TGuess
		if u := p.peek(); (u.Type == token.TUncertain || u.Type == token.TGuess) && p.adjacent() {
			return m, token.NewError(token.ErrSyntax, u.Pos, "value is already %s", t.Bytes)
		}
		lead = true
	}
	if t := p.peek(); t.Type == token.TApprox && p.attached(lead) {
		a, err := approximation(t)
		if err != nil {
			return m, err
		}
		p.next()
		m.set = true
		m.approx = a
	}
	return m, nil
}

func approximation(t *token.Token) (int, error) {
	n := len(t.Bytes)
	if n > ir.MaxApproximation {
		return 0, token.NewError(token.ErrSyntax, t.Pos, "approximation %s is longer than %d", t.Bytes, ir.MaxApproximation)
	}
	if t.Bytes[0] == '~' {
		return -n, nil
	}
	return n, nil
}

// value parses one value with its annotations into n:
//
//	markers prefix-tags core [approx] [source] postfix-tags [{children}] [[quantity]]
//
// Everything after the first token must be adjacent to what precedes it.
func (p *parser) value(n *ir.Node) error {
	p.depth++
	defer func() { p.depth-- }()
	start := p.peek()
	if p.depth > p.opts.maxDepth {
		return token.NewError(token.ErrDepth, start.Pos, "values nest deeper than %d", p.opts.maxDepth)
	}
	p.trackPos(n, start)

	m, err := p.markers(false)
	if err != nil {
		return err
	}
	lead := m.set
	var tags []*ir.Node
	for p.peek().Type == token.TColon && p.attached(lead) {
		tag, err := p.tag()
		if err != nil {
			return err
		}
		tags = append(tags, tag)
		lead = true
	}

	if p.attached(lead) {
		switch t := p.peek(); t.Type {
		case token.TNull, token.TTrue, token.TFalse, token.TIdent,
			token.TNumber, token.TCurrency, token.TTime, token.TString, token.TRawString:
			if err := p.literal(n); err != nil {
				return err
			}
			lead = true
		case token.TLParen:
			if err := p.paren(n); err != nil {
				return err
			}
			lead = true
		case token.TLCurl, token.TLSquare, token.TSource:
		default:
			if !lead {
				return token.ExpectedErr("value", t)
			}
		}
	} else if !lead {
		return token.ExpectedErr("value", p.peek())
	}
	m.apply(n)
	for _, tag := range tags {
		n.PushTag(tag)
	}
	return p.postfix(n, lead)
}

// postfix reads the annotations that follow a core value.
func (p *parser) postfix(n *ir.Node, lead bool) error {
	var source, children, quantity bool
loop:
	for p.attached(lead) {
		t := p.peek()
		switch t.Type {
		case token.TApprox:
			if !lead || n.ValueApproximation() != 0 {
				break loop
			}
			a, err := approximation(t)
			if err != nil {
				return err
			}
			p.next()
			n.SetValueApproximation(a)
		case token.TSource:
			if source {
				break loop
			}
			if err := p.source(n); err != nil {
				return err
			}
			source = true
		case token.TColon:
			tag, err := p.tag()
			if err != nil {
				return err
			}
			n.PushTag(tag)
		case token.TLCurl:
			if children {
				break loop
			}
			open := p.next()
			if err := p.members(n, open, token.TRCurl); err != nil {
				return err
			}
			children = true
		case token.TLSquare:
			if quantity {
				break loop
			}
			if err := p.quantity(n); err != nil {
				return err
			}
			quantity = true
		default:
			break loop
		}
		lead = true
	}
	return nil
}

// tag parses :[markers][name][=value][(args)]. At least one part must
// be present.
func (p *parser) tag() (*ir.Node, error) {
	colon := p.next()
	tag := &ir.Node{}
	p.trackPos(tag, colon)
	m, err := p.markers(true)
	if err != nil {
		return nil, err
	}
	empty := !m.set
	if t := p.peek(); p.adjacent() && (t.Type == token.TIdent || t.IsKeyword()) {
		p.next()
		tag.SetName(string(t.Bytes))
		empty = false
	}
	if p.adjacent() && p.peek().Type == token.TEquals {
		p.next()
		if err := p.tagValue(tag); err != nil {
			return nil, err
		}
		empty = false
	}
	if t := p.peek(); p.adjacent() && t.Type == token.TLParen {
		p.next()
		p.depth++
		err := p.members(tag, t, token.TRParen)
		p.depth--
		if err != nil {
			return nil, err
		}
		empty = false
	}
	if empty {
		return nil, token.ExpectedErr("tag", p.peek())
	}
	m.apply(tag)
	return tag, nil
}

// tagValue parses the value of a tag, which is a literal or a
// parenthesized expression without annotations of its own.
func (p *parser) tagValue(tag *ir.Node) error {
	t := p.peek()
	if !p.adjacent() {
		return token.ExpectedErr("tag value", t)
	}
	switch t.Type {
	case token.TNull, token.TTrue, token.TFalse, token.TIdent,
		token.TNumber, token.TCurrency, token.TTime, token.TString, token.TRawString:
		return p.literal(tag)
	case token.TLParen:
		p.depth++
		defer func() { p.depth-- }()
		return p.paren(tag)
	}
	return token.ExpectedErr("tag value", t)
}

// paren parses ( [operand (op operand)*] ) into n, which becomes an
// expression. Newlines are allowed anywhere inside.
func (p *parser) paren(n *ir.Node) error {
	open := p.next()
	n.SetExpression()
	p.skipNewlines()
	if p.peek().Type == token.TRParen {
		p.next()
		return nil
	}
	op := ir.OpNone
	for {
		if t := p.peek(); !valueStart(t) {
			if t.Type == token.TEOF {
				return token.NewError(token.ErrUnterminated, open.Pos, "\"(\" is not closed")
			}
			return token.ExpectedErr("operand", t)
		}
		c := &ir.Node{}
		if err := p.value(c); err != nil {
			return err
		}
		n.PushOperand(op, c)
		p.skipNewlines()
		switch t := p.peek(); t.Type {
		case token.TRParen:
			p.next()
			return nil
		case token.TOp:
			p.next()
			op, _ = ir.OperatorFromSymbol(string(t.Bytes))
			p.skipNewlines()
		case token.TEOF:
			return token.NewError(token.ErrUnterminated, open.Pos, "\"(\" is not closed")
		default:
			return token.UnexpectedErr(t)
		}
	}
}

// quantity parses [members]. No members gives no quantity, a single
// unnamed member is the quantity itself, and otherwise the quantity is
// a null holding the members.
func (p *parser) quantity(n *ir.Node) error {
	open := p.next()
	q := &ir.Node{}
	if err := p.members(q, open, token.TRSquare); err != nil {
		return err
	}
	switch {
	case q.NumChildren() == 0:
	case q.NumChildren() == 1 && !q.ChildAt(0).HasName():
		n.SetQuantity(q.PopChild())
	default:
		n.SetQuantity(q)
	}
	return nil
}

// source parses $[?][N] and an adjacent sub-source marker. The
// sub-source is kept only when the source is given or uncertain.
func (p *parser) source(n *ir.Node) error {
	t := p.next()
	uncertain, v, err := sourceMarker(t)
	if err != nil {
		return err
	}
	n.SetSource(v)
	if uncertain {
		n.SetSourceCertain(false)
	}
	s := p.peek()
	if s.Type != token.TSource || !p.adjacent() {
		return nil
	}
	p.next()
	uncertain, v, err = sourceMarker(s)
	if err != nil {
		return err
	}
	if n.HasSource() || n.MarkerSourceUncertain() {
		n.SetSubSource(v)
		if uncertain {
			n.SetSubSourceCertain(false)
		}
	}
	return nil
}

func sourceMarker(t *token.Token) (bool, uint16, error) {
	d := t.Bytes[1:]
	uncertain := len(d) != 0 && d[0] == '?'
	if uncertain {
		d = d[1:]
	}
	if len(d) == 0 {
		return uncertain, 0, nil
	}
	v, err := strconv.ParseUint(string(d), 10, 16)
	if err != nil {
		return false, 0, token.NewError(token.ErrMalformed, t.Pos, "source %s is larger than %d", d, math.MaxUint16)
	}
	return uncertain, uint16(v), nil
}

// literal parses a scalar token into n. An identifier directly followed
// by a string is the type tag of that string.
func (p *parser) literal(n *ir.Node) error {
	t := p.next()
	switch t.Type {
	case token.TNull:
		n.SetNull()
	case token.TTrue:
		n.SetBool(true)
	case token.TFalse:
		n.SetBool(false)
	case token.TNumber:
		return number(n, t)
	case token.TCurrency:
		c, err := ir.ParseCurrency(strings.TrimPrefix(string(t.Bytes), "+"))
		if err != nil {
			return token.NewError(token.ErrMalformed, t.Pos, "%v", err)
		}
		n.SetCurrency(c)
		n.SetUnit(string(t.Unit))
	case token.TTime:
		timeValue(n, t.Time)
	case token.TString, token.TRawString:
		n.SetString(t.String())
	case token.TIdent:
		if s := p.peek(); s.IsString() && p.adjacent() {
			p.next()
			n.SetTypedString(string(t.Bytes), s.String())
			return nil
		}
		n.SetIdentifier(string(t.Bytes))
	}
	return nil
}

func number(n *ir.Node, t *token.Token) error {
	text := string(t.Bytes)
	if bytes.ContainsAny(t.Bytes, ".eE") {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return token.NewError(token.ErrMalformed, t.Pos, "decimal %s is out of range", text)
		}
		n.SetDecimal(f)
	} else {
		v, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return token.NewError(token.ErrMalformed, t.Pos, "integer %s is out of range", text)
		}
		n.SetInteger(v)
	}
	if len(t.Unit) != 0 {
		n.SetUnit(string(t.Unit))
	}
	return nil
}
