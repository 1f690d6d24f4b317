package parse

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/quanta-format/go-quanta/chrono/gregorian"
	"github.com/quanta-format/go-quanta/ir"
	"github.com/quanta-format/go-quanta/token"
)

func mustSingle(t *testing.T, s string) *ir.Node {
	t.Helper()
	n, err := ParseString(s, SingleValue())
	if err != nil {
		t.Fatalf("%q: %v", s, err)
	}
	return n
}

func TestDateAndClock(t *testing.T) {
	n := mustSingle(t, "2015-01-02T03:04:05")
	if !n.Is(ir.TimeType) {
		t.Fatalf("type %s", n.Type())
	}
	tm := n.TimeValue()
	d := gregorian.Date(tm)
	h, m, s := tm.Clock()
	got := []int64{d.Year, int64(d.Month), int64(d.Day), int64(h), int64(m), int64(s)}
	if diff := cmp.Diff([]int64{2015, 1, 2, 3, 4, 5}, got); diff != "" {
		t.Errorf("fields (-want +got):\n%s", diff)
	}
	if n.TimeType() != ir.DateAndClock || n.Zoned() || n.YearContextual() || n.MonthContextual() {
		t.Errorf("flags: type %s zoned %v year %v month %v",
			n.TimeType(), n.Zoned(), n.YearContextual(), n.MonthContextual())
	}
}

func TestContextualTimes(t *testing.T) {
	tests := []struct {
		in           string
		tt           ir.TimeKind
		zoned        bool
		year, month  bool
		offset       int32
		day, hour, m int
	}{
		{in: "01-02", tt: ir.DateOnly, year: true, day: 2},
		{in: "02T", tt: ir.DateOnly, year: true, month: true, day: 2},
		{in: "02T-03:30", tt: ir.DateOnly, zoned: true, year: true, month: true, offset: -(3*3600 + 30*60), day: 2},
		{in: "10:20Z", tt: ir.ClockOnly, zoned: true, day: 1, hour: 10, m: 20},
		{in: "01-02T03:04+05", tt: ir.DateAndClock, zoned: true, year: true, offset: 5 * 3600, day: 2, hour: 3, m: 4},
	}
	for _, tc := range tests {
		n := mustSingle(t, tc.in)
		tm := n.TimeValue()
		h, m, _ := tm.Clock()
		if n.TimeType() != tc.tt || n.Zoned() != tc.zoned ||
			n.YearContextual() != tc.year || n.MonthContextual() != tc.month ||
			tm.ZoneOffset != tc.offset || gregorian.Day(tm) != tc.day || h != tc.hour || m != tc.m {
			t.Errorf("%q: type %s zoned %v year %v month %v offset %d day %d clock %d:%d",
				tc.in, n.TimeType(), n.Zoned(), n.YearContextual(), n.MonthContextual(),
				tm.ZoneOffset, gregorian.Day(tm), h, m)
		}
	}
}

func TestSourceCascade(t *testing.T) {
	n := mustSingle(t, "x$1$?")
	if n.Source() != 1 || n.MarkerSourceUncertain() {
		t.Errorf("source %d uncertain %v", n.Source(), n.MarkerSourceUncertain())
	}
	if !n.MarkerSubSourceUncertain() || n.SubSource() != 0 {
		t.Errorf("sub-source %d uncertain %v", n.SubSource(), n.MarkerSubSourceUncertain())
	}
	if n.SourceCertain() {
		t.Error("source with an uncertain sub-source reads as certain")
	}

	n = mustSingle(t, "x$0$2")
	if n.HasSourceMarkers() {
		t.Errorf("sub-source kept without a source: %d", n.SubSource())
	}
}

func TestTagArgs(t *testing.T) {
	n := mustSingle(t, ":x(y,z)")
	if !n.IsNull() || n.NumTags() != 1 {
		t.Fatalf("type %s with %d tags", n.Type(), n.NumTags())
	}
	tag := n.TagAt(0)
	if tag.Name() != "x" || !tag.IsNull() {
		t.Errorf("tag %q of type %s", tag.Name(), tag.Type())
	}
	var args []string
	for _, c := range tag.Children() {
		args = append(args, c.Text())
	}
	if diff := cmp.Diff([]string{"y", "z"}, args); diff != "" {
		t.Errorf("args (-want +got):\n%s", diff)
	}
}

func TestTaggedExpression(t *testing.T) {
	n := mustSingle(t, "(x + y):a")
	if !n.Is(ir.ExpressionType) || n.NumOperands() != 2 {
		t.Fatalf("type %s with %d operands", n.Type(), n.NumOperands())
	}
	if n.NumTags() != 1 || n.TagAt(0).Name() != "a" {
		t.Errorf("tags %v", n.Tags())
	}
	ops := []ir.Operator{}
	for _, o := range n.Operands() {
		ops = append(ops, o.Op())
	}
	if diff := cmp.Diff([]ir.Operator{ir.OpNone, ir.OpAdd}, ops); diff != "" {
		t.Errorf("operators (-want +got):\n%s", diff)
	}
}

func TestExpressionOperators(t *testing.T) {
	n := mustSingle(t, "a = 1 - b * 2kg / c")
	if n.Name() != "a" {
		t.Errorf("name %q", n.Name())
	}
	want := []ir.Operator{ir.OpNone, ir.OpSub, ir.OpMul, ir.OpDiv}
	got := []ir.Operator{}
	for _, o := range n.Operands() {
		got = append(got, o.Op())
		if o.HasName() {
			t.Errorf("operand named %q", o.Name())
		}
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("operators (-want +got):\n%s", diff)
	}
	if u := n.Operands()[2].Unit(); u != "kg" {
		t.Errorf("unit %q", u)
	}
}

func TestMarkers(t *testing.T) {
	tests := []struct {
		in        string
		uncertain bool
		guess     bool
		approx    int
	}{
		{in: "?1", uncertain: true},
		{in: "G~1", guess: true},
		{in: "~~1", approx: -2},
		{in: "?^^^1", uncertain: true, approx: 3},
		{in: "1m^", approx: 1},
		{in: "x~~", approx: -2},
		{in: "G~null", guess: true},
	}
	for _, tc := range tests {
		n := mustSingle(t, tc.in)
		if n.MarkerValueUncertain() != tc.uncertain || n.MarkerValueGuess() != tc.guess ||
			n.ValueApproximation() != tc.approx {
			t.Errorf("%q: uncertain %v guess %v approx %d", tc.in,
				n.MarkerValueUncertain(), n.MarkerValueGuess(), n.ValueApproximation())
		}
	}
}

func TestValues(t *testing.T) {
	root, err := ParseString(`i = -12 d = 1.5e3 c = ¤-4.20eur b = true s = t"v" id = .x n = null`)
	if err != nil {
		t.Fatal(err)
	}
	got := []string{}
	for _, c := range root.Children() {
		got = append(got, c.Name()+":"+c.Type().String())
	}
	want := []string{
		"i:integer", "d:decimal", "c:currency", "b:bool",
		"s:string", "id:identifier", "n:null",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if v := root.FindChild("i").IntegerValue(); v != -12 {
		t.Errorf("i = %d", v)
	}
	if v := root.FindChild("d").DecimalValue(); v != 1500 {
		t.Errorf("d = %v", v)
	}
	c := root.FindChild("c")
	if cur := c.CurrencyValue(); cur != (ir.Currency{Value: -420, Exponent: -2}) || c.Unit() != "eur" {
		t.Errorf("c = %+v %s", cur, c.Unit())
	}
	s := root.FindChild("s")
	if s.TypeTag() != "t" || s.Text() != "v" {
		t.Errorf("s = %s%q", s.TypeTag(), s.Text())
	}
}

func TestQuantity(t *testing.T) {
	root, err := ParseString("a[1] b[] c[x, y] d[k = v]")
	if err != nil {
		t.Fatal(err)
	}
	if q := root.FindChild("a"); q != nil {
		t.Fatal("members should be unnamed")
	}
	kids := root.Children()
	if q := kids[0].Quantity(); q == nil || q.IntegerValue() != 1 {
		t.Errorf("a: %v", q)
	}
	if kids[1].HasQuantity() {
		t.Error("b: empty quantity kept")
	}
	if q := kids[2].Quantity(); q == nil || !q.IsNull() || q.NumChildren() != 2 {
		t.Errorf("c: %v", q)
	}
	if q := kids[3].Quantity(); q == nil || q.NumChildren() != 1 || q.ChildAt(0).Name() != "k" {
		t.Errorf("d: %v", q)
	}
}

func TestErrors(t *testing.T) {
	tests := []struct {
		in     string
		single bool
		err    error
		line   int
		col    int
	}{
		{in: "2015-01-02-", err: token.ErrMalformed, line: 1, col: 1},
		{in: "a = 1\nb = =", err: token.ErrSyntax, line: 2, col: 5},
		{in: "x = {\n a", err: token.ErrUnterminated, line: 1, col: 5},
		{in: "x[(1\n", err: token.ErrUnterminated, line: 1, col: 3},
		{in: "a b", single: true, err: token.ErrTrailing, line: 1, col: 3},
		{in: "x$70000", err: token.ErrMalformed, line: 1, col: 2},
		{in: "9223372036854775808", err: token.ErrMalformed, line: 1, col: 1},
		{in: "~~~~x", err: token.ErrSyntax, line: 1, col: 1},
		{in: "a,,b", err: token.ErrSyntax, line: 1, col: 3},
		{in: "ab\"c\"d", err: token.ErrSyntax, line: 1, col: 6},
	}
	for _, tc := range tests {
		var opts []ParseOption
		if tc.single {
			opts = append(opts, SingleValue())
		}
		_, err := ParseString(tc.in, opts...)
		if !errors.Is(err, tc.err) {
			t.Errorf("%q: got %v, want %v", tc.in, err, tc.err)
			continue
		}
		var perr *token.Error
		if !errors.As(err, &perr) {
			t.Errorf("%q: %T", tc.in, err)
			continue
		}
		if perr.Line != tc.line || perr.Column != tc.col {
			t.Errorf("%q: at %d:%d, want %d:%d (%v)", tc.in, perr.Line, perr.Column, tc.line, tc.col, err)
		}
	}
}

func TestMaxDepth(t *testing.T) {
	if _, err := ParseString("((x))", MaxDepth(3)); err != nil {
		t.Errorf("within limit: %v", err)
	}
	_, err := ParseString("((((x))))", MaxDepth(3))
	if !errors.Is(err, token.ErrDepth) {
		t.Errorf("over limit: %v", err)
	}
	deep := strings.Repeat("{", DefaultMaxDepth+1) + strings.Repeat("}", DefaultMaxDepth+1)
	if _, err := ParseString(deep); !errors.Is(err, token.ErrDepth) {
		t.Errorf("default limit: %v", err)
	}
}

func TestSingleNamed(t *testing.T) {
	n := mustSingle(t, "\n\nspeed = 3m/s\n")
	if n.Name() != "speed" || n.IntegerValue() != 3 || n.Unit() != "m/s" {
		t.Errorf("got %q = %d%s", n.Name(), n.IntegerValue(), n.Unit())
	}
	n = mustSingle(t, "")
	if !n.IsNull() || n.HasName() {
		t.Errorf("empty input: %s %q", n.Type(), n.Name())
	}
}

func TestParseInto(t *testing.T) {
	root := ir.FromInt(4).WithName("old")
	root.NewChild()
	if err := ParseInto(root, []byte("a\nb")); err != nil {
		t.Fatal(err)
	}
	if root.HasName() || !root.IsNull() || root.NumChildren() != 2 {
		t.Errorf("root %q %s with %d children", root.Name(), root.Type(), root.NumChildren())
	}
	if err := ParseInto(root, []byte("a = ")); err == nil {
		t.Fatal("no error")
	}
	if root.NumChildren() != 0 {
		t.Error("root kept children after a failed parse")
	}
}

func TestParseReader(t *testing.T) {
	root, err := ParseReader(strings.NewReader("x = 1\ny = 2"))
	if err != nil {
		t.Fatal(err)
	}
	if root.NumChildren() != 2 || root.FindChild("y").IntegerValue() != 2 {
		t.Errorf("got %d children", root.NumChildren())
	}
}

func TestPositions(t *testing.T) {
	pos := map[*ir.Node]*token.Pos{}
	root, err := ParseString("a = 1\nb = x:t", ParsePositions(pos))
	if err != nil {
		t.Fatal(err)
	}
	b := root.FindChild("b")
	type lc struct{ Line, Col int }
	got := []lc{}
	for _, n := range []*ir.Node{root.FindChild("a"), b, b.TagAt(0)} {
		p, ok := pos[n]
		if !ok {
			t.Fatalf("no position for %q", n.Name())
		}
		l, c := p.LineCol()
		got = append(got, lc{l, c})
	}
	if diff := cmp.Diff([]lc{{1, 1}, {2, 1}, {2, 6}}, got); diff != "" {
		t.Errorf("positions (-want +got):\n%s", diff)
	}
}
