package token

import "testing"

func TestQuotedToString(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{`""`, ""},
		{`"abc"`, "abc"},
		{`"a\tb"`, "a\tb"},
		{`"a\nb"`, "a\nb"},
		{`"\"\\"`, "\"\\"},
		{`"\x"`, `\x`},
		{`"µ"`, "µ"},
	}
	for _, tc := range tests {
		if got := QuotedToString([]byte(tc.in)); got != tc.want {
			t.Errorf("%s: got %q want %q", tc.in, got, tc.want)
		}
	}
}

func TestFenced(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"```a```", 7, "a"},
		{"```a````", 8, "a`"},
		{"```a`b```x", 9, "a`b"},
		{"````a```b````", 13, "a```b"},
		{"``````", 6, ""},
		{"``````x", 6, ""},
		{"```\n```", 7, "\n"},
	}
	for _, tc := range tests {
		n, err := fenced([]byte(tc.in))
		if err != nil {
			t.Errorf("%q: %v", tc.in, err)
			continue
		}
		if n != tc.n {
			t.Errorf("%q: length %d want %d", tc.in, n, tc.n)
			continue
		}
		if got := FencedToString([]byte(tc.in[:n])); got != tc.want {
			t.Errorf("%q: got %q want %q", tc.in, got, tc.want)
		}
	}
}

func TestQuoteReadsBack(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", `""`},
		{"abc", `"abc"`},
		{"a\"b", "```a\"b```"},
		{"a\nb", "```a\nb```"},
		{"a```b", "\"a```b\""},
		{"a\"```b", "````a\"```b````"},
		{"a\"`````b", "```````a\"`````b```````"},
		{"`\"", "\"`\\\"\""},
	}
	for _, tc := range tests {
		got := Quote(tc.in)
		if got != tc.want {
			t.Errorf("Quote(%q) = %q want %q", tc.in, got, tc.want)
		}
		toks, err := Tokenize(nil, []byte(got))
		if err != nil {
			t.Errorf("%q: %v", got, err)
			continue
		}
		if len(toks) != 2 || !toks[0].IsString() {
			t.Errorf("%q: got %v", got, types(toks))
			continue
		}
		if back := toks[0].String(); back != tc.in {
			t.Errorf("%q read back as %q", tc.in, back)
		}
	}
}

func TestIsIdentifier(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"x", true},
		{"_a1", true},
		{".a", true},
		{"a.b", true},
		{"é", true},
		{"1a", false},
		{"", false},
		{"a b", false},
		{"a-b", false},
	}
	for _, tc := range tests {
		if got := IsIdentifier(tc.in); got != tc.want {
			t.Errorf("IsIdentifier(%q) = %v", tc.in, got)
		}
	}
}
