package eval

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/quanta-format/go-quanta/encode"
	"github.com/quanta-format/go-quanta/ir"
	"github.com/quanta-format/go-quanta/parse"
)

func value(t *testing.T, s string) *ir.Node {
	t.Helper()
	n, err := parse.ParseString(s, parse.SingleValue())
	if err != nil {
		t.Fatalf("%q: %v", s, err)
	}
	return n
}

func TestEval(t *testing.T) {
	env := Env{}
	for _, arg := range []string{"w=4kg", "rate=¤0.50eur", "n=3"} {
		if err := env.Set(arg); err != nil {
			t.Fatal(err)
		}
	}
	tests := []struct {
		in, want string
	}{
		{"1 + 2 * 3", "7"},
		{"(1 + 2) * 3", "9"},
		{"10 - 4 - 3", "3"},
		{"7 / 2", "3.5"},
		{"0.5 + 1", "1.5"},
		{"2kg * 3 + w", "10kg"},
		{"n * w", "12kg"},
		{"3m / 2s", "1.5m/s"},
		{"6kg / 2kg", "3"},
		{"¤1.50usd + ¤2.25usd", "¤3.75usd"},
		{"¤10.00usd * 3", "¤30.00usd"},
		{"2 * rate", "¤1.00eur"},
		{"¤10.00usd / ¤4.00usd", "2.5"},
		{"?2 + 3", "?5"},
		{"~2 + 3", "?5"},
		{"G~2 * ?3", "G~6"},
		{"n", "3"},
	}
	for _, tc := range tests {
		v, err := Eval(value(t, tc.in), env)
		if err != nil {
			t.Errorf("%q: %v", tc.in, err)
			continue
		}
		if diff := cmp.Diff(tc.want, encode.MustString(v)); diff != "" {
			t.Errorf("%q (-want +got):\n%s", tc.in, diff)
		}
	}
}

func TestEvalErrors(t *testing.T) {
	env := Env{"a": value(t, "a = a + 1")}
	tests := []struct {
		in  string
		err error
	}{
		{"x + 1", ErrUndefined},
		{"1kg + 1m", ErrEval},
		{"1 + 1m", ErrEval},
		{"2kg * 3m", ErrEval},
		{"1 / 2s", ErrEval},
		{"true + 1", ErrEval},
		{"\"a\" * 2", ErrEval},
		{"1 / 0", ErrEval},
		{"¤1x + 1", ErrEval},
		{"()", ErrEval},
		{"a", ErrEval},
	}
	for _, tc := range tests {
		_, err := Eval(value(t, tc.in), env)
		if !errors.Is(err, tc.err) {
			t.Errorf("%q: got %v, want %v", tc.in, err, tc.err)
		}
	}
}

func TestEvalTree(t *testing.T) {
	root, err := parse.ParseString("a = 2\nb = a * 3\nc = {\n d = b + a\n e = zz + 1\n}\nt = (1 + 1):x$2")
	if err != nil {
		t.Fatal(err)
	}
	count, err := EvalTree(root, nil)
	if err != nil {
		t.Fatal(err)
	}
	if count != 3 {
		t.Errorf("replaced %d", count)
	}
	want := "a = 2\nb = 6\nc = {\n\td = 8\n\te = zz + 1\n}\nt = 2$2:x"
	if diff := cmp.Diff(want, encode.MustString(root, encode.Document())); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	root, err = parse.ParseString("x = y + 1")
	if err != nil {
		t.Fatal(err)
	}
	env := Env{}
	if err := env.Set("y = 41"); err != nil {
		t.Fatal(err)
	}
	if _, err := EvalTree(root, env); err != nil {
		t.Fatal(err)
	}
	if v := root.FindChild("x"); !v.Is(ir.IntegerType) || v.IntegerValue() != 42 {
		t.Errorf("x = %s", encode.MustString(v))
	}

	root, err = parse.ParseString("bad = 1kg + 1m")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := EvalTree(root, nil); !errors.Is(err, ErrEval) {
		t.Errorf("got %v", err)
	}
}

func TestScope(t *testing.T) {
	root, err := parse.ParseString("a = 1\ninner = {\n a = 2\n}")
	if err != nil {
		t.Fatal(err)
	}
	env := Env{"b": ir.FromInt(3)}
	r := Scope(env, root, root.FindChild("inner"))
	if v := r.Resolve("a"); v == nil || v.IntegerValue() != 2 {
		t.Errorf("a = %v", v)
	}
	if v := r.Resolve("b"); v == nil || v.IntegerValue() != 3 {
		t.Errorf("b = %v", v)
	}
	if v := r.Resolve("c"); v != nil {
		t.Errorf("c = %v", v)
	}
	if Scope(env) == nil {
		t.Error("empty scope lost env")
	}
}

func TestEnv(t *testing.T) {
	env := Env{}
	if err := env.Set("speed=3m/s"); err != nil {
		t.Fatal(err)
	}
	if v := env["speed"]; v.Name() != "speed" || v.Unit() != "m/s" {
		t.Errorf("speed = %s", encode.MustString(v))
	}
	for _, bad := range []string{"=3", "x", "x=("} {
		if err := env.Set(bad); err == nil {
			t.Errorf("%q: no error", bad)
		}
	}

	t.Setenv("QTEST_limit", "12kg")
	env = Env{}
	if err := env.FromOS("QTEST_"); err != nil {
		t.Fatal(err)
	}
	if v := env["limit"]; v == nil || v.IntegerValue() != 12 {
		t.Errorf("limit = %v", v)
	}
}
