package token

import "github.com/quanta-format/go-quanta/debug"

// LogTokens writes toks to the debug log.
func LogTokens(toks []Token, msg string) {
	debug.Logf("%s tokens:", msg)
	for i := range toks {
		t := &toks[i]
		line, col := t.Pos.LineCol()
		debug.Logf("\t%d:%d %s %q unit=%q space=%v", line, col, t.Type, t.Bytes, t.Unit, t.SpaceBefore)
	}
}
