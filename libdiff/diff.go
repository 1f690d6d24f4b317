package libdiff

import (
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/quanta-format/go-quanta/encode"
	"github.com/quanta-format/go-quanta/ir"
)

// Diff returns a diff tree taking from to to, or nil when they are
// equal. Nodes that differ only in their members give a null node with
// one entry per changed member, named by the member name or by "#" and
// its index. Strings that differ only in their text give a string diff.
// Anything else is replaced whole.
func Diff(from, to *ir.Node) *ir.Node {
	if ir.Equal(from, to) {
		return nil
	}
	fromShell, toShell := shell(from), shell(to)
	if ir.Equal(fromShell, toShell) {
		return diffChildren(from, to)
	}
	if from.Is(ir.StringType) && to.Is(ir.StringType) && equalChildren(from, to) {
		toShell.SetTypedString(toShell.TypeTag(), fromShell.Text())
		if ir.Equal(fromShell, toShell) {
			return DiffString(from, to)
		}
	}
	return MakeDiff(from, to)
}

// shell returns a copy of n without its members.
func shell(n *ir.Node) *ir.Node {
	res := ir.Null()
	res.CopyFrom(n, false)
	return res
}

func equalChildren(a, b *ir.Node) bool {
	if a.NumChildren() != b.NumChildren() {
		return false
	}
	for i, c := range a.Children() {
		if !ir.Equal(c, b.ChildAt(i)) {
			return false
		}
	}
	return true
}

// diffChildren aligns the members of from and to by their canonical
// text and diffs the pairs that do not match.
func diffChildren(from, to *ir.Node) *ir.Node {
	m := map[string]rune{}
	fromRunes := summaries(m, from.Children())
	toRunes := summaries(m, to.Children())
	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunes, false)

	res := ir.Null()
	fi, ti := 0, 0
	// deleted members not yet paired with an insertion
	var pending []int
	var slots []int
	for _, d := range diffs {
		k := len([]rune(d.Text))
		switch d.Type {
		case diffpatch.DiffEqual:
			pending, slots = nil, nil
			fi += k
			ti += k
		case diffpatch.DiffDelete:
			for range k {
				c := from.ChildAt(fi)
				slots = append(slots, res.NumChildren())
				pending = append(pending, fi)
				res.PushChild(MakeDiff(c, nil).WithName(label(c, fi)))
				fi++
			}
		case diffpatch.DiffInsert:
			for range k {
				c := to.ChildAt(ti)
				if j := pair(from, pending, c); j >= 0 {
					old := from.ChildAt(pending[j])
					e := Diff(old, c)
					e.SetName(label(old, pending[j]))
					res.RemoveChild(slots[j])
					res.InsertChild(slots[j], e)
					pending = append(pending[:j], pending[j+1:]...)
					slots = append(slots[:j], slots[j+1:]...)
				} else {
					res.PushChild(MakeDiff(nil, c).WithName(label(c, ti)))
				}
				ti++
			}
		}
	}
	return res
}

// pair returns the index in pending of the first deleted member that c
// can replace in place: one with the same name, or any unnamed member
// when c is unnamed. It returns -1 if there is none.
func pair(from *ir.Node, pending []int, c *ir.Node) int {
	for j, i := range pending {
		old := from.ChildAt(i)
		if old.HasName() == c.HasName() && old.Name() == c.Name() {
			return j
		}
	}
	return -1
}

func summaries(m map[string]rune, nodes []*ir.Node) []rune {
	res := make([]rune, len(nodes))
	for i, c := range nodes {
		s := encode.MustString(c)
		r, ok := m[s]
		if !ok {
			r = rune(len(m) + 1)
			m[s] = r
		}
		res[i] = r
	}
	return res
}
