package ir

// MaxApproximation bounds the magnitude of a value's approximation.
const MaxApproximation = 3

func (n *Node) MarkerValueUncertain() bool { return n.props.has(propValueUncertain) }
func (n *Node) MarkerValueGuess() bool     { return n.props.has(propValueGuess) }

// ValueApproximation is negative for "approximately less", positive for
// "approximately more" and 0 for exact values.
func (n *Node) ValueApproximation() int { return n.props.approximation() }

// ValueCertain reports whether n has no value markers at all.
func (n *Node) ValueCertain() bool {
	return !n.props.has(propValueMarkers)
}

// ValueGuess reports whether n is marked as a guess.
func (n *Node) ValueGuess() bool { return n.MarkerValueGuess() }

func (n *Node) HasValueMarkers() bool { return n.props.has(propValueMarkers) }

// SetValueCertain clears the uncertain and guess markers, or marks n
// uncertain (clearing guess).
func (n *Node) SetValueCertain(certain bool) {
	n.props.set(propValueGuess, false)
	n.props.set(propValueUncertain, !certain)
}

// SetValueGuess marks n as a guess (clearing uncertain), or clears the
// guess marker.
func (n *Node) SetValueGuess(guess bool) {
	if guess {
		n.props.set(propValueUncertain, false)
	}
	n.props.set(propValueGuess, guess)
}

func (n *Node) SetValueApproximation(v int) {
	if v < -MaxApproximation || v > MaxApproximation {
		panic("ir: SetValueApproximation called with value out of range")
	}
	n.props.setApproximation(v)
}

func (n *Node) ClearValueMarkers() {
	n.props &^= propValueMarkers
}

func (n *Node) Source() uint16    { return n.source }
func (n *Node) SubSource() uint16 { return n.subSource }

func (n *Node) HasSource() bool    { return n.source != 0 }
func (n *Node) HasSubSource() bool { return n.subSource != 0 }

func (n *Node) MarkerSourceUncertain() bool    { return n.props.has(propSourceUncertain) }
func (n *Node) MarkerSubSourceUncertain() bool { return n.props.has(propSubSourceUncertain) }

// SourceCertain reports whether n has a source and neither source
// marker is uncertain.
func (n *Node) SourceCertain() bool {
	return n.HasSource() && !n.props.has(propSourceMarks)
}

// SourceCertainOrUnspecified is SourceCertain, except that a node with
// no source and no uncertainty counts as certain.
func (n *Node) SourceCertainOrUnspecified() bool {
	return !n.props.has(propSourceMarks)
}

// SetSource sets the source. Source 0 means unspecified: it also clears
// the sub-source and both uncertainty markers.
func (n *Node) SetSource(v uint16) {
	n.source = v
	if v == 0 {
		n.subSource = 0
		n.props &^= propSourceMarks
	}
}

func (n *Node) SetSubSource(v uint16) { n.subSource = v }

func (n *Node) SetSourceCertain(certain bool) {
	n.props.set(propSourceUncertain, !certain)
}

func (n *Node) SetSubSourceCertain(certain bool) {
	n.props.set(propSubSourceUncertain, !certain)
}

func (n *Node) ClearSourceUncertainty() {
	n.props &^= propSourceMarks
}

func (n *Node) ClearSource() { n.SetSource(0) }

// HasSourceMarkers reports whether anything about the source would be
// written.
func (n *Node) HasSourceMarkers() bool {
	return n.source != 0 || n.props.has(propSourceMarks) || n.subSource != 0
}
