package ir

import "fmt"

// Type is the value type of a node.
type Type int

const (
	NullType Type = iota
	BoolType
	IntegerType
	DecimalType
	CurrencyType
	TimeType
	StringType
	IdentifierType
	ExpressionType
)

var typeNames = map[Type]string{
	NullType:       "null",
	BoolType:       "bool",
	IntegerType:    "integer",
	DecimalType:    "decimal",
	CurrencyType:   "currency",
	TimeType:       "time",
	StringType:     "string",
	IdentifierType: "identifier",
	ExpressionType: "expression",
}

func (t Type) String() string {
	s, ok := typeNames[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	if _, ok := typeNames[t]; !ok {
		return nil, fmt.Errorf("%w: %d is not a type", ErrJSON, t)
	}
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	for tt, s := range typeNames {
		if s == string(d) {
			*t = tt
			return nil
		}
	}
	return fmt.Errorf("%w: unrecognized type %q", ErrJSON, d)
}

func Types() []Type {
	return []Type{
		NullType,
		BoolType,
		IntegerType,
		DecimalType,
		CurrencyType,
		TimeType,
		StringType,
		IdentifierType,
		ExpressionType,
	}
}

// IsNumeric reports whether values of type t may carry a unit.
func (t Type) IsNumeric() bool {
	switch t {
	case IntegerType, DecimalType, CurrencyType:
		return true
	default:
		return false
	}
}

// Operator is the operator an operand applies to the operands before it.
type Operator int

const (
	OpNone Operator = iota // also addition
	OpSub
	OpMul
	OpDiv
)

const OpAdd = OpNone

func (o Operator) valid() bool { return o >= OpNone && o <= OpDiv }

// Symbol returns the text of the operator in an expression. OpNone is
// written as "+".
func (o Operator) Symbol() string {
	switch o {
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	default:
		return "+"
	}
}

func (o Operator) String() string { return o.Symbol() }

func (o Operator) MarshalText() ([]byte, error) {
	if !o.valid() {
		return nil, fmt.Errorf("%w: %d is not an operator", ErrJSON, o)
	}
	return []byte(o.Symbol()), nil
}

func (o *Operator) UnmarshalText(d []byte) error {
	v, ok := OperatorFromSymbol(string(d))
	if !ok {
		return fmt.Errorf("%w: unrecognized operator %q", ErrJSON, d)
	}
	*o = v
	return nil
}

func OperatorFromSymbol(s string) (Operator, bool) {
	switch s {
	case "+":
		return OpAdd, true
	case "-":
		return OpSub, true
	case "*":
		return OpMul, true
	case "/":
		return OpDiv, true
	}
	return OpNone, false
}

// TimeKind says which parts of a time value are specified.
type TimeKind int

const (
	DateAndClock TimeKind = iota
	DateOnly
	ClockOnly
)

func (t TimeKind) String() string {
	switch t {
	case DateAndClock:
		return "date_and_clock"
	case DateOnly:
		return "date"
	case ClockOnly:
		return "clock"
	default:
		return "<unknown time type>"
	}
}

func (t TimeKind) MarshalText() ([]byte, error) {
	if t < DateAndClock || t > ClockOnly {
		return nil, fmt.Errorf("%w: %d is not a time type", ErrJSON, t)
	}
	return []byte(t.String()), nil
}

func (t *TimeKind) UnmarshalText(d []byte) error {
	for _, v := range []TimeKind{DateAndClock, DateOnly, ClockOnly} {
		if v.String() == string(d) {
			*t = v
			return nil
		}
	}
	return fmt.Errorf("%w: unrecognized time type %q", ErrJSON, d)
}
