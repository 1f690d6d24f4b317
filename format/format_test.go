package format

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/quanta-format/go-quanta/encode"
	"github.com/quanta-format/go-quanta/ir"
)

func TestParseFormat(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want Format
	}{
		{"q", QuantaFormat},
		{"quanta", QuantaFormat},
		{"j", JSONFormat},
		{"yaml", YAMLFormat},
	} {
		f, err := ParseFormat(tc.in)
		if err != nil || f != tc.want {
			t.Errorf("%q: %v %v", tc.in, f, err)
		}
	}
	if _, err := ParseFormat("toml"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("toml: %v", err)
	}
	var f Format
	if err := f.UnmarshalText([]byte("y")); err != nil || f != YAMLFormat {
		t.Errorf("unmarshal: %v %v", f, err)
	}
	if s := Format(9).String(); s == "" {
		t.Error("empty string for a bad format")
	}
}

func TestFromSuffix(t *testing.T) {
	for path, want := range map[string]Format{
		"a/b.q":     QuantaFormat,
		"x.json":    JSONFormat,
		"conf.yaml": YAMLFormat,
	} {
		f, ok := FromSuffix(path)
		if !ok || f != want {
			t.Errorf("%s: %v %v", path, f, ok)
		}
	}
	if _, ok := FromSuffix(".q"); ok {
		t.Error("bare suffix matched")
	}
}

const doc = `a = ?12kg$1$?
when = 2015-01-02T03:04:05+05:30
day = 02T
price = ¤-4.20eur:fixed
sum = (x + 2):a(1, y = "s")
big = 9007199254740993
list = x[1, 2]{
	G~~b
}`

func TestRoundTrip(t *testing.T) {
	root, err := Read(QuantaFormat, []byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	for _, f := range AllFormats() {
		buf := &bytes.Buffer{}
		if err := Write(f, root, buf); err != nil {
			t.Fatalf("%s: %v", f, err)
		}
		back, err := Read(f, buf.Bytes())
		if err != nil {
			t.Fatalf("%s: %v\n%s", f, err, buf)
		}
		if !ir.Equal(root, back) {
			t.Errorf("%s: round trip changed the tree:\n%s", f, encode.MustString(back, encode.Document()))
		}
	}
}

func TestWriteQuanta(t *testing.T) {
	root, err := Read(QuantaFormat, []byte("x = 1\ny"))
	if err != nil {
		t.Fatal(err)
	}
	buf := &bytes.Buffer{}
	if err := Write(QuantaFormat, root, buf); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff("x = 1\ny", buf.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestReadErrors(t *testing.T) {
	if _, err := Read(JSONFormat, []byte(`{"type": "bool"}`)); !errors.Is(err, ir.ErrJSON) {
		t.Errorf("json: %v", err)
	}
	if _, err := Read(YAMLFormat, []byte("a: [")); err == nil {
		t.Error("yaml: no error")
	}
	if _, err := Read(Format(7), nil); !errors.Is(err, ErrBadFormat) {
		t.Errorf("bad format: %v", err)
	}
}
