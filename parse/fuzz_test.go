package parse

import (
	"bytes"
	"testing"

	"github.com/quanta-format/go-quanta/encode"
)

func FuzzRoundTrip(f *testing.F) {
	for _, c := range corpus {
		if c.ok {
			f.Add(c.in)
		}
	}
	for _, s := range []string{
		":t(a, b)02T-03",
		"x = 2015-01-02T03:04:05+01:tag",
		"1e1e",
		"-0.0",
		"a = {\n\tb = 1kg * 2\n\tc = ?x$1$?\n}",
	} {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, s string) {
		for _, single := range []bool{false, true} {
			var (
				popts []ParseOption
				eopts []encode.EncodeOption
			)
			if single {
				popts = append(popts, SingleValue())
			} else {
				eopts = append(eopts, encode.Document())
			}
			n, err := ParseString(s, popts...)
			if err != nil {
				continue
			}
			first := &bytes.Buffer{}
			if err := encode.Encode(n, first, eopts...); err != nil {
				t.Fatalf("%q (single=%v): encode: %v", s, single, err)
			}
			again, err := Parse(first.Bytes(), popts...)
			if err != nil {
				t.Fatalf("%q (single=%v): reparsing %q: %v", s, single, first.String(), err)
			}
			second := &bytes.Buffer{}
			if err := encode.Encode(again, second, eopts...); err != nil {
				t.Fatalf("%q (single=%v): encode again: %v", s, single, err)
			}
			if first.String() != second.String() {
				t.Fatalf("%q (single=%v): not a fixed point: %q then %q", s, single, first.String(), second.String())
			}
		}
	})
}
