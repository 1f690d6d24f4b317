package token

import (
	"bytes"
	"strings"
)

// quoted scans a double quoted string at the start of d and returns its
// length including both quotes. Strings do not span lines.
func quoted(d []byte) (int, error) {
	for i := 1; i < len(d); i++ {
		switch d[i] {
		case '\\':
			i++
		case '"':
			return i + 1, nil
		case '\n':
			return 0, ErrUnterminated
		}
	}
	return 0, ErrUnterminated
}

// fenced scans a backtick fenced string at the start of d. A fence of n
// backticks is closed by the first run of at least n; any excess
// belongs to the content. A single run of 2n backticks (n >= 3) is the
// empty string.
func fenced(d []byte) (int, error) {
	n := backticks(d)
	if n < 3 {
		return 0, ErrMalformed
	}
	if n%2 == 0 && n >= 6 {
		return n, nil
	}
	i := n
	for i < len(d) {
		if d[i] != '`' {
			i++
			continue
		}
		r := backticks(d[i:])
		if r >= n {
			return i + r, nil
		}
		i += r
	}
	return 0, ErrUnterminated
}

func backticks(d []byte) int {
	i := 0
	for i < len(d) && d[i] == '`' {
		i++
	}
	return i
}

// QuotedToString decodes a double quoted string. The escapes are \t, \n,
// \" and \\; any other backslash is kept along with the character after
// it.
func QuotedToString(d []byte) string {
	if len(d) < 2 {
		return ""
	}
	d = d[1 : len(d)-1]
	if bytes.IndexByte(d, '\\') == -1 {
		return string(d)
	}
	b := strings.Builder{}
	for i := 0; i < len(d); i++ {
		c := d[i]
		if c != '\\' || i+1 == len(d) {
			b.WriteByte(c)
			continue
		}
		i++
		switch d[i] {
		case 't':
			b.WriteByte('\t')
		case 'n':
			b.WriteByte('\n')
		case '"':
			b.WriteByte('"')
		case '\\':
			b.WriteByte('\\')
		default:
			b.WriteByte('\\')
			b.WriteByte(d[i])
		}
	}
	return b.String()
}

// FencedToString returns the content of a fenced string.
func FencedToString(d []byte) string {
	n := backticks(d)
	if n == len(d) {
		return ""
	}
	return string(d[n : len(d)-n])
}

// Quote returns the shortest text that reads back as the string v:
// double quoted when v has no quote, newline or backslash, and fenced
// otherwise. A fence cannot open with content that starts with a
// backtick, so such text is double quoted with escapes.
func Quote(v string) string {
	if !strings.ContainsAny(v, "\"\n\\") {
		return `"` + v + `"`
	}
	if strings.HasPrefix(v, "`") {
		return escapeQuote(v)
	}
	n := max(3, longestRun(v)+1)
	if n%2 == 0 && n >= 6 {
		n++
	}
	fence := strings.Repeat("`", n)
	return fence + v + fence
}

func escapeQuote(v string) string {
	b := strings.Builder{}
	b.WriteByte('"')
	for i := 0; i < len(v); i++ {
		switch c := v[i]; c {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}

func longestRun(v string) int {
	best, cur := 0, 0
	for i := 0; i < len(v); i++ {
		if v[i] == '`' {
			cur++
			best = max(best, cur)
			continue
		}
		cur = 0
	}
	return best
}
