package ir

import (
	"github.com/quanta-format/go-quanta/debug"
)

func (n *Node) Children() []*Node  { return n.children }
func (n *Node) NumChildren() int    { return len(n.children) }
func (n *Node) HasChildren() bool   { return len(n.children) != 0 }
func (n *Node) ChildAt(i int) *Node { return n.children[i] }

// PushChild appends c, which n now owns, and returns it.
func (n *Node) PushChild(c *Node) *Node {
	n.children = append(n.children, c)
	return c
}

// NewChild appends a new null child and returns it.
func (n *Node) NewChild() *Node {
	return n.PushChild(&Node{})
}

func (n *Node) InsertChild(i int, c *Node) {
	n.children = insertAt(n.children, i, c)
}

// RemoveChild removes and returns the child at index i.
func (n *Node) RemoveChild(i int) *Node {
	var c *Node
	n.children, c = removeAt(n.children, i)
	return c
}

// PopChild removes and returns the last child, or nil.
func (n *Node) PopChild() *Node {
	if len(n.children) == 0 {
		return nil
	}
	return n.RemoveChild(len(n.children) - 1)
}

func (n *Node) ClearChildren() { n.children = nil }

// FindChild returns the first child named name, or nil.
func (n *Node) FindChild(name string) *Node {
	return find(n.children, HashName(name), name)
}

// FindChildHash returns the first child whose name hash is h, or nil.
func (n *Node) FindChildHash(h NameHash) *Node {
	return find(n.children, h, "")
}

func (n *Node) Tags() []*Node     { return n.tags }
func (n *Node) NumTags() int      { return len(n.tags) }
func (n *Node) HasTags() bool     { return len(n.tags) != 0 }
func (n *Node) TagAt(i int) *Node { return n.tags[i] }

func (n *Node) PushTag(t *Node) *Node {
	n.tags = append(n.tags, t)
	return t
}

// NewTag appends a new null tag named name and returns it.
func (n *Node) NewTag(name string) *Node {
	return n.PushTag((&Node{}).WithName(name))
}

func (n *Node) RemoveTag(i int) *Node {
	var t *Node
	n.tags, t = removeAt(n.tags, i)
	return t
}

func (n *Node) ClearTags() { n.tags = nil }

func (n *Node) FindTag(name string) *Node {
	return find(n.tags, HashName(name), name)
}

func (n *Node) FindTagHash(h NameHash) *Node {
	return find(n.tags, h, "")
}

// Operands returns the operands of an expression.
func (n *Node) Operands() []*Node {
	if !n.Is(ExpressionType) {
		badAccess("Operands", n)
	}
	return n.operands
}

func (n *Node) NumOperands() int { return len(n.operands) }

// PushOperand appends an operand with operator op to an expression.
func (n *Node) PushOperand(op Operator, c *Node) *Node {
	if !n.Is(ExpressionType) {
		badAccess("PushOperand", n)
	}
	c.SetOp(op)
	n.operands = append(n.operands, c)
	return c
}

// NewOperand appends a new null operand with operator op.
func (n *Node) NewOperand(op Operator) *Node {
	return n.PushOperand(op, &Node{})
}

func (n *Node) ClearOperands() { n.operands = nil }

func (n *Node) Quantity() *Node  { return n.quantity }
func (n *Node) HasQuantity() bool { return n.quantity != nil }

// MakeQuantity returns a cleared quantity, creating it if needed.
func (n *Node) MakeQuantity() *Node {
	if n.quantity == nil {
		n.quantity = &Node{}
	} else {
		n.quantity.Clear()
	}
	return n.quantity
}

// SetQuantity replaces the quantity with q, which n now owns.
func (n *Node) SetQuantity(q *Node) { n.quantity = q }

// ReleaseQuantity detaches and returns the quantity.
func (n *Node) ReleaseQuantity() *Node {
	q := n.quantity
	n.quantity = nil
	return q
}

// ClearQuantity clears the content of the quantity if there is one.
func (n *Node) ClearQuantity() {
	if n.quantity != nil {
		n.quantity.Clear()
	}
}

func find(nodes []*Node, h NameHash, name string) *Node {
	if h == NameHashNull || len(nodes) == 0 {
		return nil
	}
	for _, c := range nodes {
		if c.nameHash != h {
			continue
		}
		if name != "" && c.name != name && debug.Lookup() {
			debug.Logf("ir: name hash collision between %q and %q", name, c.name)
		}
		return c
	}
	return nil
}

func insertAt(nodes []*Node, i int, c *Node) []*Node {
	nodes = append(nodes, nil)
	copy(nodes[i+1:], nodes[i:])
	nodes[i] = c
	return nodes
}

func removeAt(nodes []*Node, i int) ([]*Node, *Node) {
	c := nodes[i]
	copy(nodes[i:], nodes[i+1:])
	nodes[len(nodes)-1] = nil
	return nodes[:len(nodes)-1], c
}
