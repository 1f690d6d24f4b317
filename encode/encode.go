package encode

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/quanta-format/go-quanta/chrono"
	"github.com/quanta-format/go-quanta/chrono/gregorian"
	"github.com/quanta-format/go-quanta/ir"
	"github.com/quanta-format/go-quanta/token"
)

type EncState struct {
	document bool

	Color func(ir.Type, Class, string) string
}

// Encode writes node to w. By default node is written as a single
// member; with Document its children are written one per line. No
// trailing newline is written.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	if !es.document {
		return encodeMember(node, w, es, 0)
	}
	for i, c := range node.Children() {
		if i != 0 {
			if err := writeString(w, "\n"); err != nil {
				return err
			}
		}
		if err := encodeMember(c, w, es, 0); err != nil {
			return err
		}
	}
	return nil
}

func EncodeString(node *ir.Node, opts ...EncodeOption) (string, error) {
	buf := &strings.Builder{}
	if err := Encode(node, buf, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// EncodeFile writes the document held by node to path, ending it with
// a newline.
func EncodeFile(node *ir.Node, path string, opts ...EncodeOption) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	opts = append([]EncodeOption{Document()}, opts...)
	err = Encode(node, w, opts...)
	if err == nil && node.HasChildren() {
		err = writeString(w, "\n")
	}
	if err == nil {
		err = w.Flush()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}

func applyColor(es *EncState, t ir.Type, cl Class, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(t, cl, v)
}

func writeColored(w io.Writer, es *EncState, t ir.Type, cl Class, v string) error {
	return writeString(w, applyColor(es, t, cl, v))
}

func tabs(d int) string {
	return strings.Repeat("\t", d)
}

func encodeMember(n *ir.Node, w io.Writer, es *EncState, d int) error {
	if n.HasName() {
		name := n.Name()
		if !token.IsIdentifier(name) {
			name = token.Quote(name)
		}
		if err := writeColored(w, es, n.Type(), ClassName, name); err != nil {
			return err
		}
		if err := writeColored(w, es, n.Type(), ClassPunct, " = "); err != nil {
			return err
		}
	}
	return encodeValue(n, w, es, d, false)
}

// encodeValue writes markers, core value, source, tags, children and
// quantity of n, in that order. nested is set for expression operands,
// which are parenthesized when they are expressions themselves.
func encodeValue(n *ir.Node, w io.Writer, es *EncState, d int, nested bool) error {
	wrote := false
	if m := markers(n); m != "" {
		if err := writeColored(w, es, n.Type(), ClassMarker, m); err != nil {
			return err
		}
		wrote = true
	}
	if sub, err := encodeCore(n, w, es, d, nested); err != nil {
		return err
	} else if sub {
		wrote = true
	}
	if s := source(n); s != "" {
		if err := writeColored(w, es, n.Type(), ClassSource, s); err != nil {
			return err
		}
		wrote = true
	}
	for _, tag := range n.Tags() {
		if err := encodeTag(tag, w, es, d); err != nil {
			return err
		}
		wrote = true
	}
	if n.HasChildren() {
		if err := encodeChildren(n, w, es, d); err != nil {
			return err
		}
		wrote = true
	}
	if q := n.Quantity(); q != nil {
		sub, err := encodeQuantity(q, w, es, d)
		if err != nil {
			return err
		}
		wrote = wrote || sub
	}
	if wrote {
		return nil
	}
	return writeColored(w, es, ir.NullType, ClassValue, "null")
}

// encodeCore writes the value of n and reports whether anything was
// written. Null writes nothing here.
func encodeCore(n *ir.Node, w io.Writer, es *EncState, d int, nested bool) (bool, error) {
	switch n.Type() {
	case ir.NullType:
		return false, nil
	case ir.ExpressionType:
		return true, encodeExpression(n, w, es, d, nested || needsParens(n))
	case ir.StringType:
		if tag := n.TypeTag(); tag != "" {
			if err := writeColored(w, es, ir.StringType, ClassTypeTag, tag); err != nil {
				return false, err
			}
		}
		return true, writeColored(w, es, ir.StringType, ClassValue, token.Quote(n.Text()))
	}
	return true, writeColored(w, es, n.Type(), ClassValue, scalar(n))
}

// needsParens reports whether an expression has parts that would
// otherwise attach to its last operand.
func needsParens(n *ir.Node) bool {
	return n.NumOperands() <= 1 ||
		n.HasValueMarkers() ||
		n.HasSourceMarkers() ||
		n.HasTags() ||
		n.HasChildren() ||
		n.HasQuantity()
}

func encodeExpression(n *ir.Node, w io.Writer, es *EncState, d int, parens bool) error {
	if parens {
		if err := writeColored(w, es, ir.ExpressionType, ClassPunct, "("); err != nil {
			return err
		}
	}
	for i, op := range n.Operands() {
		if i != 0 {
			if err := writeColored(w, es, ir.ExpressionType, ClassOperator, " "+op.Op().Symbol()+" "); err != nil {
				return err
			}
		}
		if err := encodeValue(op, w, es, d, true); err != nil {
			return err
		}
	}
	if parens {
		return writeColored(w, es, ir.ExpressionType, ClassPunct, ")")
	}
	return nil
}

func encodeTag(tag *ir.Node, w io.Writer, es *EncState, d int) error {
	b := &strings.Builder{}
	b.WriteString(":")
	b.WriteString(markers(tag))
	b.WriteString(tag.Name())
	empty := b.Len() == 1
	if err := writeColored(w, es, tag.Type(), ClassTag, b.String()); err != nil {
		return err
	}
	if !tag.IsNull() {
		if err := writeColored(w, es, tag.Type(), ClassTag, "="); err != nil {
			return err
		}
		if _, err := encodeCore(tag, w, es, d, true); err != nil {
			return err
		}
		empty = false
	}
	if !tag.HasChildren() && !empty {
		return nil
	}
	if err := writeColored(w, es, tag.Type(), ClassTag, "("); err != nil {
		return err
	}
	if err := encodeList(tag.Children(), w, es, d); err != nil {
		return err
	}
	return writeColored(w, es, tag.Type(), ClassTag, ")")
}

func encodeList(nodes []*ir.Node, w io.Writer, es *EncState, d int) error {
	for i, c := range nodes {
		if i != 0 {
			if err := writeColored(w, es, ir.NullType, ClassPunct, ", "); err != nil {
				return err
			}
		}
		if err := encodeMember(c, w, es, d); err != nil {
			return err
		}
	}
	return nil
}

func encodeChildren(n *ir.Node, w io.Writer, es *EncState, d int) error {
	if err := writeColored(w, es, n.Type(), ClassPunct, "{"); err != nil {
		return err
	}
	for _, c := range n.Children() {
		if err := writeString(w, "\n"+tabs(d+1)); err != nil {
			return err
		}
		if err := encodeMember(c, w, es, d+1); err != nil {
			return err
		}
	}
	if err := writeString(w, "\n"+tabs(d)); err != nil {
		return err
	}
	return writeColored(w, es, n.Type(), ClassPunct, "}")
}

// encodeQuantity writes [q]. A null quantity that only holds children
// is written as a list of them, and not at all when it holds none.
func encodeQuantity(q *ir.Node, w io.Writer, es *EncState, d int) (bool, error) {
	list := q.IsNull() && !q.HasValueMarkers() && !q.HasSourceMarkers() &&
		!q.HasTags() && !q.HasQuantity()
	if list && !q.HasChildren() {
		return false, nil
	}
	if err := writeColored(w, es, q.Type(), ClassPunct, "["); err != nil {
		return false, err
	}
	var err error
	if list {
		err = encodeList(q.Children(), w, es, d)
	} else {
		err = encodeValue(q, w, es, d, false)
	}
	if err != nil {
		return false, err
	}
	return true, writeColored(w, es, q.Type(), ClassPunct, "]")
}

func markers(n *ir.Node) string {
	s := ""
	switch {
	case n.MarkerValueGuess():
		s = "G~"
	case n.MarkerValueUncertain():
		s = "?"
	}
	switch a := n.ValueApproximation(); {
	case a < 0:
		s += strings.Repeat("~", -a)
	case a > 0:
		s += strings.Repeat("^", a)
	}
	return s
}

// source returns the source markers of n. Nothing is written for an
// unspecified, certain source; the sub-source is written only after a
// source.
func source(n *ir.Node) string {
	if !n.HasSource() && !n.MarkerSourceUncertain() {
		return ""
	}
	s := sourceMarker(n.MarkerSourceUncertain(), n.Source())
	if n.HasSubSource() || n.MarkerSubSourceUncertain() {
		s += sourceMarker(n.MarkerSubSourceUncertain(), n.SubSource())
	}
	return s
}

func sourceMarker(uncertain bool, v uint16) string {
	s := "$"
	if uncertain {
		s += "?"
	}
	if v != 0 {
		s += strconv.FormatUint(uint64(v), 10)
	}
	return s
}

func scalar(n *ir.Node) string {
	switch n.Type() {
	case ir.BoolType:
		return strconv.FormatBool(n.BoolValue())
	case ir.IntegerType:
		return numberText(strconv.FormatInt(n.IntegerValue(), 10), n.Unit())
	case ir.DecimalType:
		v := n.DecimalValue()
		if v == 0 {
			// -0 reads back as 0
			v = 0
		}
		return numberText(strconv.FormatFloat(v, 'g', -1, 64), n.Unit())
	case ir.CurrencyType:
		return "¤" + n.CurrencyValue().String() + n.Unit()
	case ir.TimeType:
		return timeText(n)
	case ir.IdentifierType:
		return n.Text()
	}
	panic(fmt.Sprintf("encode: no scalar form for %s", n.Type()))
}

// numberText joins a number and its unit. A two digit number whose unit
// starts with T or Z gets a sign so that it does not read as a day.
func numberText(num, unit string) string {
	if len(num) == 2 && num[0] >= '0' && num[0] <= '9' && num[1] >= '0' && num[1] <= '9' &&
		(strings.HasPrefix(unit, "T") || strings.HasPrefix(unit, "Z")) {
		num = "+" + num
	}
	return num + unit
}

// timeText writes the parts of a time its flags say are specified.
func timeText(n *ir.Node) string {
	t := n.TimeValue()
	tt := n.TimeType()
	hasDate, hasClock := tt != ir.ClockOnly, tt != ir.DateOnly
	b := &strings.Builder{}
	if hasDate {
		date := gregorian.Date(t)
		if !n.YearContextual() {
			if date.Year < 0 {
				fmt.Fprintf(b, "-%04d-", -date.Year)
			} else {
				fmt.Fprintf(b, "%04d-", date.Year)
			}
		}
		if !n.MonthContextual() {
			fmt.Fprintf(b, "%02d-", date.Month)
		}
		fmt.Fprintf(b, "%02d", date.Day)
	}
	if hasClock {
		if hasDate {
			b.WriteByte('T')
		}
		h, m, s := t.Clock()
		fmt.Fprintf(b, "%02d:%02d:%02d", h, m, s)
	}
	switch {
	case !n.Zoned():
		if hasDate && !hasClock && n.MonthContextual() {
			b.WriteByte('T')
		}
	case t.ZoneOffset == 0:
		b.WriteByte('Z')
	default:
		if hasDate && !hasClock {
			b.WriteByte('T')
		}
		writeZone(b, t.ZoneOffset)
	}
	return b.String()
}

func writeZone(b *strings.Builder, off int32) {
	sign := byte('+')
	if off < 0 {
		sign = '-'
		off = -off
	}
	h, m := chrono.ZoneClock(off)
	b.WriteByte(sign)
	fmt.Fprintf(b, "%02d", h)
	if m != 0 {
		fmt.Fprintf(b, ":%02d", m)
	}
}
