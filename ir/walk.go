package ir

// Walk calls fn on n and then, if fn returns true, on the tags,
// operands, children and quantity of n, depth first.
func Walk(n *Node, fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, t := range n.tags {
		Walk(t, fn)
	}
	for _, o := range n.operands {
		Walk(o, fn)
	}
	for _, c := range n.children {
		Walk(c, fn)
	}
	if n.quantity != nil {
		Walk(n.quantity, fn)
	}
}

// Equal reports whether a and b are structurally identical: same name,
// properties, value, source and substructure.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.name != b.name || a.props != b.props ||
		a.source != b.source || a.subSource != b.subSource ||
		a.unit != b.unit {
		return false
	}
	switch a.Type() {
	case BoolType:
		if a.b != b.b {
			return false
		}
	case IntegerType:
		if a.i != b.i {
			return false
		}
	case DecimalType:
		if a.f != b.f {
			return false
		}
	case CurrencyType:
		if a.currency != b.currency {
			return false
		}
	case TimeType:
		if a.time != b.time {
			return false
		}
	case StringType, IdentifierType:
		if a.text != b.text || a.typeTag != b.typeTag {
			return false
		}
	}
	return equalAll(a.operands, b.operands) &&
		equalAll(a.children, b.children) &&
		equalAll(a.tags, b.tags) &&
		Equal(a.quantity, b.quantity)
}

func equalAll(a, b []*Node) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}
