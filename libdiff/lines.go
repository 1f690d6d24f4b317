package libdiff

import (
	"fmt"
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Context is the number of unchanged lines shown around a change.
const Context = 3

type line struct {
	op   byte
	text string
	a, b int
}

// Lines returns a unified diff of a and b, labeled with their names, or
// "" when they are equal.
func Lines(aName, bName, a, b string) string {
	dmp := diffpatch.New()
	ca, cb, lineArray := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lineArray)

	var lines []line
	ai, bi := 1, 1
	changed := false
	for _, d := range diffs {
		for _, txt := range splitLines(d.Text) {
			switch d.Type {
			case diffpatch.DiffEqual:
				lines = append(lines, line{' ', txt, ai, bi})
				ai++
				bi++
			case diffpatch.DiffDelete:
				lines = append(lines, line{'-', txt, ai, bi})
				ai++
				changed = true
			case diffpatch.DiffInsert:
				lines = append(lines, line{'+', txt, ai, bi})
				bi++
				changed = true
			}
		}
	}
	if !changed {
		return ""
	}
	b2 := &strings.Builder{}
	fmt.Fprintf(b2, "--- %s\n+++ %s\n", aName, bName)
	for _, h := range hunks(lines) {
		writeHunk(b2, lines[h[0]:h[1]])
	}
	return b2.String()
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	s = strings.TrimSuffix(s, "\n")
	return strings.Split(s, "\n")
}

// hunks returns the [start, end) ranges of lines to show: the changes
// with Context lines around them, merged where they meet.
func hunks(lines []line) [][2]int {
	var res [][2]int
	for i, l := range lines {
		if l.op == ' ' {
			continue
		}
		start, end := max(0, i-Context), min(len(lines), i+Context+1)
		if n := len(res); n != 0 && start <= res[n-1][1] {
			res[n-1][1] = max(res[n-1][1], end)
			continue
		}
		res = append(res, [2]int{start, end})
	}
	return res
}

func writeHunk(w *strings.Builder, lines []line) {
	aCount, bCount := 0, 0
	for _, l := range lines {
		if l.op != '+' {
			aCount++
		}
		if l.op != '-' {
			bCount++
		}
	}
	aStart, bStart := lines[0].a, lines[0].b
	if aCount == 0 {
		aStart--
	}
	if bCount == 0 {
		bStart--
	}
	fmt.Fprintf(w, "@@ -%d,%d +%d,%d @@\n", aStart, aCount, bStart, bCount)
	for _, l := range lines {
		w.WriteByte(l.op)
		w.WriteString(l.text)
		w.WriteByte('\n')
	}
}
