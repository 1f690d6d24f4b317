package ir

// props is the packed property word of a node. The low bits hold the
// value type; the rest are marker, source, operator and time flags.
type props uint32

const (
	propTypeMask props = 0x7f
	propBase           = 7

	propValueUncertain props = 1 << (propBase + 0)
	propValueGuess     props = 1 << (propBase + 1)

	// approximation: a sign bit and a 2 bit magnitude
	propApproxNegative props = 1 << (propBase + 2)
	propApproxShift          = propBase + 3
	propApproxMask     props = 0x3 << propApproxShift

	propSourceUncertain    props = 1 << (propBase + 5)
	propSubSourceUncertain props = 1 << (propBase + 6)

	propOpShift       = propBase + 7
	propOpMask  props = 0x3 << propOpShift

	propTimeTypeShift       = propBase + 9
	propTimeTypeMask  props = 0x3 << propTimeTypeShift

	propUnzoned         props = 1 << (propBase + 11)
	propMonthContextual props = 1 << (propBase + 12)
	propYearContextual  props = 1 << (propBase + 13)

	propValueMarkers = propValueUncertain | propValueGuess | propApproxNegative | propApproxMask
	propSourceMarks  = propSourceUncertain | propSubSourceUncertain
	propTimeFlags    = propTimeTypeMask | propUnzoned | propMonthContextual | propYearContextual
)

func (p props) has(m props) bool { return p&m != 0 }

func (p *props) set(m props, v bool) {
	if v {
		*p |= m
	} else {
		*p &^= m
	}
}

func (p props) field(mask props, shift int) int {
	return int((p & mask) >> shift)
}

func (p *props) setField(mask props, shift int, v int) {
	*p = (*p &^ mask) | (props(v)<<shift)&mask
}

func (p props) typ() Type { return Type(p & propTypeMask) }

func (p *props) setTyp(t Type) {
	*p = (*p &^ propTypeMask) | props(t)&propTypeMask
}

func (p props) approximation() int {
	v := p.field(propApproxMask, propApproxShift)
	if p.has(propApproxNegative) {
		return -v
	}
	return v
}

func (p *props) setApproximation(v int) {
	p.set(propApproxNegative, v < 0)
	if v < 0 {
		v = -v
	}
	p.setField(propApproxMask, propApproxShift, v)
}
