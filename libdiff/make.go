package libdiff

import (
	"strconv"

	"github.com/quanta-format/go-quanta/ir"
)

// MakeDiff returns an entry inserting to when from is nil, deleting from
// when to is nil, and replacing from with to otherwise.
func MakeDiff(from, to *ir.Node) *ir.Node {
	switch {
	case from == nil:
		res := to.Clone()
		res.NewTag(InsertTag)
		return res
	case to == nil:
		res := from.Clone()
		res.NewTag(DeleteTag)
		return res
	default:
		res := ir.Null()
		res.NewTag(ReplaceTag)
		res.PushChild(from.Clone().WithName("from"))
		res.PushChild(to.Clone().WithName("to"))
		return res
	}
}

// entryTag returns the name of the marking tag of n, or "".
func entryTag(n *ir.Node) string {
	if !n.HasTags() {
		return ""
	}
	switch name := n.TagAt(n.NumTags() - 1).Name(); name {
	case DeleteTag, InsertTag, ReplaceTag, StringDiffTag:
		return name
	}
	return ""
}

// label names the entry for member c at index i.
func label(c *ir.Node, i int) string {
	if c.HasName() {
		return c.Name()
	}
	return "#" + strconv.Itoa(i)
}
