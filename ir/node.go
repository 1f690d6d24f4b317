package ir

import (
	"github.com/quanta-format/go-quanta/chrono"
)

// Node is a value of the notation together with its annotations.
//
// A node has exactly one active value interpretation given by Type.
// Typed accessors panic when called on a node of another type; callers
// check Type first. A node exclusively owns its operands, children,
// tags and quantity: sub-nodes are never shared between parents.
//
// The zero Node is a null value with no name, children, tags or
// quantity.
type Node struct {
	name     string
	nameHash NameHash
	props    props

	source    uint16
	subSource uint16

	b        bool
	i        int64
	f        float64
	currency Currency
	time     chrono.Time
	text     string
	typeTag  string
	unit     string

	operands []*Node
	children []*Node
	tags     []*Node
	quantity *Node
}

func Null() *Node { return &Node{} }

func FromBool(v bool) *Node {
	n := &Node{}
	n.SetBool(v)
	return n
}

func FromInt(v int64) *Node {
	n := &Node{}
	n.SetInteger(v)
	return n
}

func FromDecimal(v float64) *Node {
	n := &Node{}
	n.SetDecimal(v)
	return n
}

func FromCurrency(c Currency, unit string) *Node {
	n := &Node{}
	n.SetCurrency(c)
	n.SetUnit(unit)
	return n
}

// FromTime returns a zoned date and clock time value.
func FromTime(t chrono.Time) *Node {
	n := &Node{}
	n.SetTime(t)
	return n
}

func FromString(v string) *Node {
	n := &Node{}
	n.SetString(v)
	return n
}

func FromIdentifier(v string) *Node {
	n := &Node{}
	n.SetIdentifier(v)
	return n
}

// Expression returns an expression node with the given operands. Each
// operand keeps its own operator.
func Expression(operands ...*Node) *Node {
	n := &Node{}
	n.SetExpression()
	n.operands = append(n.operands, operands...)
	return n
}

// WithName sets the name of n and returns n.
func (n *Node) WithName(name string) *Node {
	n.SetName(name)
	return n
}

func (n *Node) Type() Type { return n.props.typ() }

func (n *Node) Is(t Type) bool { return n.props.typ() == t }

func (n *Node) IsNull() bool { return n.Is(NullType) }

// SetType switches the value type of n and reports whether it changed.
// The previous value is released: a time loses its time flags and a
// numeric value its unit. Switching to null clears the guess marker;
// switching to expression clears value markers, source, tags and
// quantity.
func (n *Node) SetType(t Type) bool {
	if n.Type() == t {
		return false
	}
	n.clearValue()
	n.props.setTyp(t)
	switch t {
	case NullType:
		n.props.set(propValueGuess, false)
	case ExpressionType:
		n.ClearValueMarkers()
		n.ClearSource()
		n.ClearTags()
		n.ReleaseQuantity()
	}
	return true
}

func (n *Node) clearValue() {
	switch n.Type() {
	case TimeType:
		n.props &^= propTimeFlags
		n.time = chrono.Time{}
	case IntegerType, DecimalType, CurrencyType:
		n.unit = ""
	case ExpressionType:
		n.operands = nil
	}
	n.b = false
	n.i = 0
	n.f = 0
	n.currency = Currency{}
	n.text = ""
	n.typeTag = ""
}

func (n *Node) SetNull() { n.SetType(NullType) }

func (n *Node) SetBool(v bool) {
	n.SetType(BoolType)
	n.b = v
}

func (n *Node) SetInteger(v int64) {
	n.SetType(IntegerType)
	n.i = v
}

func (n *Node) SetDecimal(v float64) {
	n.SetType(DecimalType)
	n.f = v
}

func (n *Node) SetCurrency(c Currency) {
	n.SetType(CurrencyType)
	n.currency = c
}

// SetTimeValue stores t, keeping the time flags if n already holds a
// time. A node becoming a time is zoned, with date and clock.
func (n *Node) SetTimeValue(t chrono.Time) {
	n.SetType(TimeType)
	n.time = t
}

// SetTime stores t as a zoned date and clock with no contextual parts.
func (n *Node) SetTime(t chrono.Time) {
	n.SetTimeValue(t)
	n.props &^= propTimeFlags
}

// SetTimeDate stores t as a zoned date.
func (n *Node) SetTimeDate(t chrono.Time) {
	n.SetTime(t)
	n.SetTimeType(DateOnly)
}

// SetTimeClock stores t as a zoned clock.
func (n *Node) SetTimeClock(t chrono.Time) {
	n.SetTime(t)
	n.SetTimeType(ClockOnly)
}

func (n *Node) SetString(v string) {
	n.SetType(StringType)
	n.text = v
	n.typeTag = ""
}

// SetTypedString stores a string with a type tag, as in type"value".
func (n *Node) SetTypedString(tag, v string) {
	n.SetType(StringType)
	n.text = v
	n.typeTag = tag
}

func (n *Node) SetIdentifier(v string) {
	n.SetType(IdentifierType)
	n.text = v
}

// SetExpression makes n an empty expression. An existing expression
// keeps its operands.
func (n *Node) SetExpression() { n.SetType(ExpressionType) }

func (n *Node) BoolValue() bool {
	if !n.Is(BoolType) {
		badAccess("BoolValue", n)
	}
	return n.b
}

func (n *Node) IntegerValue() int64 {
	if !n.Is(IntegerType) {
		badAccess("IntegerValue", n)
	}
	return n.i
}

func (n *Node) DecimalValue() float64 {
	if !n.Is(DecimalType) {
		badAccess("DecimalValue", n)
	}
	return n.f
}

func (n *Node) CurrencyValue() Currency {
	if !n.Is(CurrencyType) {
		badAccess("CurrencyValue", n)
	}
	return n.currency
}

func (n *Node) TimeValue() chrono.Time {
	if !n.Is(TimeType) {
		badAccess("TimeValue", n)
	}
	return n.time
}

// Text returns the text of a string or identifier.
func (n *Node) Text() string {
	if !n.Is(StringType) && !n.Is(IdentifierType) {
		badAccess("Text", n)
	}
	return n.text
}

// TypeTag returns the type tag of a string, or "".
func (n *Node) TypeTag() string {
	if !n.Is(StringType) {
		badAccess("TypeTag", n)
	}
	return n.typeTag
}

func (n *Node) Unit() string {
	if !n.Type().IsNumeric() {
		badAccess("Unit", n)
	}
	return n.unit
}

func (n *Node) HasUnit() bool {
	return n.Type().IsNumeric() && n.unit != ""
}

func (n *Node) SetUnit(u string) {
	if !n.Type().IsNumeric() {
		badAccess("SetUnit", n)
	}
	n.unit = u
}

func (n *Node) ClearUnit() {
	if n.Type().IsNumeric() {
		n.unit = ""
	}
}

func (n *Node) Name() string { return n.name }

func (n *Node) NameHash() NameHash { return n.nameHash }

func (n *Node) HasName() bool { return n.nameHash != NameHashNull }

func (n *Node) SetName(name string) {
	n.name = name
	n.nameHash = HashName(name)
}

func (n *Node) ClearName() {
	n.name = ""
	n.nameHash = NameHashNull
}

// Op returns the operator n applies as an operand of an expression.
func (n *Node) Op() Operator {
	return Operator(n.props.field(propOpMask, propOpShift))
}

func (n *Node) SetOp(o Operator) {
	if !o.valid() {
		panic("ir: SetOp called with invalid operator")
	}
	n.props.setField(propOpMask, propOpShift, int(o))
}

// Clear resets n to a null value without name, markers, source, tags,
// children or quantity.
func (n *Node) Clear() {
	*n = Node{}
}
