package libdiff

import (
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/quanta-format/go-quanta/ir"
)

// DiffString diffs the text of two strings. A small change gives a
// string holding the delta of the edit, tagged strdiff; a change of more
// than half the shorter text replaces the string.
func DiffString(from, to *ir.Node) *ir.Node {
	a, b := from.Text(), to.Text()
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(a, b, false)
	size := 0
	for _, d := range diffs {
		if d.Type != diffpatch.DiffEqual {
			size += len(d.Text)
		}
	}
	if size == 0 {
		return nil
	}
	if size > min(len(a), len(b))/2 {
		return MakeDiff(from, to)
	}
	res := ir.FromString(dmp.DiffToDelta(diffs))
	res.NewTag(StringDiffTag)
	return res
}

// PatchString applies the delta of a string diff to text.
func PatchString(text string, diff *ir.Node) (string, error) {
	dmp := diffpatch.New()
	diffs, err := dmp.DiffFromDelta(text, diff.Text())
	if err != nil {
		return "", err
	}
	return dmp.DiffText2(diffs), nil
}
