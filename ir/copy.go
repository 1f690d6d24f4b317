package ir

// CopyFrom makes n a deep copy of src: properties, source, name, value,
// unit, operands, tags and quantity, and children if children is true.
// Without children, n keeps no children of its own either.
func (n *Node) CopyFrom(src *Node, children bool) {
	if n == src {
		if !children {
			n.children = nil
		}
		return
	}
	*n = Node{
		name:      src.name,
		nameHash:  src.nameHash,
		props:     src.props,
		source:    src.source,
		subSource: src.subSource,
		b:         src.b,
		i:         src.i,
		f:         src.f,
		currency:  src.currency,
		time:      src.time,
		text:      src.text,
		typeTag:   src.typeTag,
		unit:      src.unit,
		operands:  cloneAll(src.operands),
		tags:      cloneAll(src.tags),
	}
	if children {
		n.children = cloneAll(src.children)
	}
	if src.quantity != nil {
		n.quantity = src.quantity.Clone()
	}
}

// Clone returns a deep copy of n.
func (n *Node) Clone() *Node {
	res := &Node{}
	res.CopyFrom(n, true)
	return res
}

// MoveFrom transfers the content of src to n. src is left null and
// unnamed.
func (n *Node) MoveFrom(src *Node) {
	if n == src {
		return
	}
	*n = *src
	*src = Node{}
}

func cloneAll(nodes []*Node) []*Node {
	if len(nodes) == 0 {
		return nil
	}
	res := make([]*Node, len(nodes))
	for i, c := range nodes {
		res[i] = c.Clone()
	}
	return res
}
