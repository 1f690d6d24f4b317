package ir

import (
	"encoding/json"
	"fmt"

	"github.com/quanta-format/go-quanta/chrono"
)

// jsonNode is the JSON form of a Node. Every field but Type is optional.
type jsonNode struct {
	Name string `json:"name,omitempty"`
	Type Type   `json:"type"`

	Bool     *bool     `json:"bool,omitempty"`
	Integer  *int64    `json:"integer,omitempty"`
	Decimal  *float64  `json:"decimal,omitempty"`
	Currency string    `json:"currency,omitempty"`
	Time     *jsonTime `json:"time,omitempty"`
	Text     *string   `json:"text,omitempty"`
	TypeTag  string    `json:"typeTag,omitempty"`
	Unit     string    `json:"unit,omitempty"`

	Op Operator `json:"op,omitempty"`

	Uncertain bool `json:"uncertain,omitempty"`
	Guess     bool `json:"guess,omitempty"`
	Approx    int  `json:"approx,omitempty"`

	Source             uint16 `json:"source,omitempty"`
	SubSource          uint16 `json:"subSource,omitempty"`
	SourceUncertain    bool   `json:"sourceUncertain,omitempty"`
	SubSourceUncertain bool   `json:"subSourceUncertain,omitempty"`

	Operands []*Node `json:"operands,omitempty"`
	Children []*Node `json:"children,omitempty"`
	Tags     []*Node `json:"tags,omitempty"`
	Quantity *Node   `json:"quantity,omitempty"`
}

type jsonTime struct {
	Sec             int64    `json:"sec"`
	ZoneOffset      int32    `json:"zoneOffset,omitempty"`
	Kind            TimeKind `json:"kind"`
	Unzoned         bool     `json:"unzoned,omitempty"`
	YearContextual  bool     `json:"yearContextual,omitempty"`
	MonthContextual bool     `json:"monthContextual,omitempty"`
}

func (n *Node) MarshalJSON() ([]byte, error) {
	j := &jsonNode{
		Name:               n.name,
		Type:               n.Type(),
		Op:                 n.Op(),
		Uncertain:          n.MarkerValueUncertain(),
		Guess:              n.MarkerValueGuess(),
		Approx:             n.ValueApproximation(),
		Source:             n.source,
		SubSource:          n.subSource,
		SourceUncertain:    n.MarkerSourceUncertain(),
		SubSourceUncertain: n.MarkerSubSourceUncertain(),
		Operands:           n.operands,
		Children:           n.children,
		Tags:               n.tags,
		Quantity:           n.quantity,
	}
	switch n.Type() {
	case BoolType:
		j.Bool = &n.b
	case IntegerType:
		j.Integer = &n.i
		j.Unit = n.unit
	case DecimalType:
		j.Decimal = &n.f
		j.Unit = n.unit
	case CurrencyType:
		j.Currency = n.currency.String()
		j.Unit = n.unit
	case TimeType:
		j.Time = &jsonTime{
			Sec:             n.time.Sec,
			ZoneOffset:      n.time.ZoneOffset,
			Kind:            n.TimeType(),
			Unzoned:         !n.Zoned(),
			YearContextual:  n.YearContextual(),
			MonthContextual: n.MonthContextual(),
		}
	case StringType:
		j.Text = &n.text
		j.TypeTag = n.typeTag
	case IdentifierType:
		j.Text = &n.text
	}
	return json.Marshal(j)
}

func (n *Node) UnmarshalJSON(d []byte) error {
	j := &jsonNode{}
	if err := json.Unmarshal(d, j); err != nil {
		return err
	}
	res := Node{}
	switch j.Type {
	case NullType, ExpressionType:
		res.SetType(j.Type)
	case BoolType:
		if j.Bool == nil {
			return fmt.Errorf("%w: bool node without value", ErrJSON)
		}
		res.SetBool(*j.Bool)
	case IntegerType:
		if j.Integer == nil {
			return fmt.Errorf("%w: integer node without value", ErrJSON)
		}
		res.SetInteger(*j.Integer)
		res.unit = j.Unit
	case DecimalType:
		if j.Decimal == nil {
			return fmt.Errorf("%w: decimal node without value", ErrJSON)
		}
		res.SetDecimal(*j.Decimal)
		res.unit = j.Unit
	case CurrencyType:
		c, err := ParseCurrency(j.Currency)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrJSON, err)
		}
		res.SetCurrency(c)
		res.unit = j.Unit
	case TimeType:
		if j.Time == nil {
			return fmt.Errorf("%w: time node without value", ErrJSON)
		}
		res.SetTime(chrono.Time{Sec: j.Time.Sec, ZoneOffset: j.Time.ZoneOffset})
		res.SetTimeType(j.Time.Kind)
		res.props.set(propUnzoned, j.Time.Unzoned)
		res.props.set(propYearContextual, j.Time.YearContextual || j.Time.MonthContextual)
		res.props.set(propMonthContextual, j.Time.MonthContextual)
	case StringType, IdentifierType:
		if j.Text == nil {
			return fmt.Errorf("%w: %s node without text", ErrJSON, j.Type)
		}
		if j.Type == StringType {
			res.SetTypedString(j.TypeTag, *j.Text)
		} else {
			res.SetIdentifier(*j.Text)
		}
	default:
		return fmt.Errorf("%w: unknown type %d", ErrJSON, j.Type)
	}
	if j.Approx < -MaxApproximation || j.Approx > MaxApproximation {
		return fmt.Errorf("%w: approximation %d out of range", ErrJSON, j.Approx)
	}
	if j.Uncertain && j.Guess {
		return fmt.Errorf("%w: node both uncertain and a guess", ErrJSON)
	}
	res.SetName(j.Name)
	res.SetOp(j.Op)
	res.props.set(propValueUncertain, j.Uncertain)
	res.props.set(propValueGuess, j.Guess)
	res.props.setApproximation(j.Approx)
	res.SetSource(j.Source)
	if res.HasSource() || j.SourceUncertain {
		res.subSource = j.SubSource
		res.props.set(propSourceUncertain, j.SourceUncertain)
		res.props.set(propSubSourceUncertain, j.SubSourceUncertain)
	}
	res.operands = j.Operands
	if len(res.operands) != 0 && !res.Is(ExpressionType) {
		return fmt.Errorf("%w: operands on %s node", ErrJSON, res.Type())
	}
	for _, seq := range [][]*Node{j.Operands, j.Children, j.Tags} {
		for _, c := range seq {
			if c == nil {
				return fmt.Errorf("%w: null in node sequence", ErrJSON)
			}
		}
	}
	res.children = j.Children
	res.tags = j.Tags
	res.quantity = j.Quantity
	*n = res
	return nil
}
