package encode

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/quanta-format/go-quanta/chrono"
	"github.com/quanta-format/go-quanta/chrono/gregorian"
	"github.com/quanta-format/go-quanta/ir"
)

func withUnit(n *ir.Node, u string) *ir.Node {
	n.SetUnit(u)
	return n
}

func timeNode(off int32, y int64, mo, d, h, mi, s int) *ir.Node {
	var t chrono.Time
	t.SetZoneOffset(off)
	gregorian.SetDateClock(&t, y, mo, d, h, mi, s)
	return ir.FromTime(t)
}

func TestScalars(t *testing.T) {
	cur, err := ir.ParseCurrency("-4.20")
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		n    *ir.Node
		want string
	}{
		{ir.Null(), "null"},
		{ir.FromBool(false), "false"},
		{ir.FromInt(-7), "-7"},
		{withUnit(ir.FromInt(12), "kg"), "12kg"},
		{withUnit(ir.FromInt(10), "T"), "+10T"},
		{withUnit(ir.FromInt(10), "Zz"), "+10Zz"},
		{withUnit(ir.FromInt(100), "T"), "100T"},
		{withUnit(ir.FromInt(10), "m"), "10m"},
		{ir.FromDecimal(0.25), "0.25"},
		{ir.FromDecimal(1e21), "1e+21"},
		{ir.FromCurrency(cur, "eur"), "¤-4.20eur"},
		{ir.FromString("ab"), `"ab"`},
		{ir.FromString("a\"b"), "```a\"b```"},
		{ir.FromIdentifier(".x"), ".x"},
		{ir.FromInt(1).WithName("a"), "a = 1"},
		{ir.FromInt(1).WithName("a b"), `"a b" = 1`},
		{ir.FromInt(1).WithName("false"), "false = 1"},
		{ir.FromInt(1).WithName("1x"), `"1x" = 1`},
	}
	for _, tc := range tests {
		if diff := cmp.Diff(tc.want, MustString(tc.n)); diff != "" {
			t.Errorf("(-want +got):\n%s", diff)
		}
	}
}

func TestTypedString(t *testing.T) {
	n := ir.Null()
	n.SetTypedString("re", "a+")
	if diff := cmp.Diff(`re"a+"`, MustString(n)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestTimes(t *testing.T) {
	dateOnly := func(n *ir.Node) *ir.Node { n.SetTimeType(ir.DateOnly); return n }
	clockOnly := func(n *ir.Node) *ir.Node { n.SetTimeType(ir.ClockOnly); return n }
	floating := func(n *ir.Node) *ir.Node { n.SetZoned(false); return n }
	noYear := func(n *ir.Node) *ir.Node { n.SetYearContextual(true); return n }
	noMonth := func(n *ir.Node) *ir.Node { n.SetMonthContextual(true); return n }

	tests := []struct {
		n    *ir.Node
		want string
	}{
		{floating(timeNode(0, 2015, 1, 2, 3, 4, 5)), "2015-01-02T03:04:05"},
		{timeNode(0, 2015, 1, 2, 3, 4, 5), "2015-01-02T03:04:05Z"},
		{timeNode(5*3600+30*60, 2015, 1, 2, 3, 4, 5), "2015-01-02T03:04:05+05:30"},
		{timeNode(-3*3600, 2015, 1, 2, 3, 4, 5), "2015-01-02T03:04:05-03"},
		{floating(dateOnly(timeNode(0, 2015, 1, 2, 0, 0, 0))), "2015-01-02"},
		{floating(noYear(dateOnly(timeNode(0, 2015, 1, 2, 0, 0, 0)))), "01-02"},
		{floating(noMonth(dateOnly(timeNode(0, 2015, 1, 2, 0, 0, 0)))), "02T"},
		{noMonth(dateOnly(timeNode(-3*3600, 2015, 1, 2, 0, 0, 0))), "02T-03"},
		{floating(clockOnly(timeNode(0, 2015, 1, 2, 10, 20, 0))), "10:20:00"},
	}
	for _, tc := range tests {
		if diff := cmp.Diff(tc.want, MustString(tc.n)); diff != "" {
			t.Errorf("(-want +got):\n%s", diff)
		}
	}
}

func TestAnnotations(t *testing.T) {
	approx := ir.FromInt(12)
	approx.SetUnit("kg")
	approx.SetValueApproximation(-1)

	guess := ir.FromIdentifier("x")
	guess.SetValueGuess(true)
	guess.SetValueApproximation(2)

	sourced := ir.FromIdentifier("x")
	sourced.SetSource(1)
	sourced.SetSubSourceCertain(false)

	uncertainSource := ir.FromIdentifier("x")
	uncertainSource.SetSourceCertain(false)

	tagged := ir.FromIdentifier("x")
	tagged.NewTag("a")
	arg := tagged.NewTag("b")
	arg.SetInteger(1)
	arg.PushChild(ir.FromIdentifier("y"))
	arg.PushChild(ir.FromIdentifier("z"))

	emptyTag := ir.Null()
	emptyTag.PushTag(ir.Null())

	markedTag := ir.Null()
	mt := ir.Null()
	mt.SetValueCertain(false)
	markedTag.PushTag(mt)

	tests := []struct {
		n    *ir.Node
		want string
	}{
		{approx, "~12kg"},
		{guess, "G~^^x"},
		{sourced, "x$1$?"},
		{uncertainSource, "x$?"},
		{tagged, "x:a:b=1(y, z)"},
		{emptyTag, ":()"},
		{markedTag, ":?"},
	}
	for _, tc := range tests {
		if diff := cmp.Diff(tc.want, MustString(tc.n)); diff != "" {
			t.Errorf("(-want +got):\n%s", diff)
		}
	}
}

func TestExpressions(t *testing.T) {
	op := func(o ir.Operator, n *ir.Node) *ir.Node { n.SetOp(o); return n }
	sum := ir.Expression(ir.FromIdentifier("x"), op(ir.OpAdd, ir.FromIdentifier("y")))

	nested := ir.Expression(
		ir.FromInt(2),
		op(ir.OpMul, ir.Expression(ir.FromIdentifier("a"), op(ir.OpSub, ir.FromIdentifier("b")))),
	)

	tagged := ir.Expression(ir.FromIdentifier("x"), op(ir.OpDiv, ir.FromIdentifier("y")))
	tagged.NewTag("a")

	single := ir.Expression(ir.FromIdentifier("x"))

	tests := []struct {
		n    *ir.Node
		want string
	}{
		{sum, "x + y"},
		{nested, "2 * (a - b)"},
		{tagged, "(x / y):a"},
		{single, "(x)"},
		{ir.Expression(), "()"},
	}
	for _, tc := range tests {
		if diff := cmp.Diff(tc.want, MustString(tc.n)); diff != "" {
			t.Errorf("(-want +got):\n%s", diff)
		}
	}
}

func TestChildrenAndQuantity(t *testing.T) {
	n := ir.FromIdentifier("x")
	n.PushChild(ir.FromInt(1).WithName("a"))
	inner := ir.Null().WithName("b")
	inner.PushChild(ir.FromInt(2))
	n.PushChild(inner)
	want := "x{\n\ta = 1\n\tb = {\n\t\t2\n\t}\n}"
	if diff := cmp.Diff(want, MustString(n)); diff != "" {
		t.Errorf("children (-want +got):\n%s", diff)
	}

	q := ir.FromIdentifier("x")
	q.MakeQuantity().SetInteger(3)
	if diff := cmp.Diff("x[3]", MustString(q)); diff != "" {
		t.Errorf("quantity (-want +got):\n%s", diff)
	}

	list := ir.FromIdentifier("x")
	lq := list.MakeQuantity()
	lq.PushChild(ir.FromIdentifier("a"))
	lq.PushChild(ir.FromIdentifier("b").WithName("k"))
	if diff := cmp.Diff("x[a, k = b]", MustString(list)); diff != "" {
		t.Errorf("list quantity (-want +got):\n%s", diff)
	}

	empty := ir.FromIdentifier("x")
	empty.MakeQuantity()
	if diff := cmp.Diff("x", MustString(empty)); diff != "" {
		t.Errorf("empty quantity (-want +got):\n%s", diff)
	}
}

func TestDocument(t *testing.T) {
	root := ir.Null()
	root.PushChild(ir.FromInt(1).WithName("a"))
	root.PushChild(ir.FromIdentifier("b"))
	s, err := EncodeString(root, Document())
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff("a = 1\nb", s); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if s := MustString(ir.Null(), Document()); s != "" {
		t.Errorf("empty document: %q", s)
	}

	path := filepath.Join(t.TempDir(), "doc.q")
	if err := EncodeFile(root, path); err != nil {
		t.Fatal(err)
	}
	d, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff("a = 1\nb\n", string(d)); diff != "" {
		t.Errorf("file (-want +got):\n%s", diff)
	}
}

func TestColors(t *testing.T) {
	c := &Colors{
		Default: func(s string) string { return "<" + s + ">" },
	}
	n := ir.FromInt(1).WithName("a")
	n.NewTag("t")
	got := MustString(n, EncodeColors(c))
	if diff := cmp.Diff("<a>< = ><1><:t>", got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	c.Value = map[ir.Type]func(string) string{
		ir.IntegerType: func(s string) string { return "#" + s },
	}
	c.Class = map[Class]func(string) string{
		ClassName: func(s string) string { return "@" + s },
	}
	got = MustString(n, EncodeColors(c))
	if diff := cmp.Diff("@a< = >#1<:t>", got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if diff := cmp.Diff("<1>", c.Color(ir.DecimalType, ClassValue, "1")); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	palette := NewColors()
	if palette.Get(ir.ExpressionType, ClassOperator) == nil {
		t.Error("no operator color")
	}
	for _, ty := range ir.Types() {
		if ty != ir.ExpressionType && palette.Value[ty] == nil {
			t.Errorf("no value color for %s", ty)
		}
	}
}
