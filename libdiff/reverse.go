package libdiff

import (
	"errors"
	"fmt"

	"github.com/quanta-format/go-quanta/ir"
)

var ErrDiff = errors.New("bad diff")

// Reverse returns the diff taking the target of diff back to its
// source. String diffs hold only the forward edit and cannot be
// reversed.
func Reverse(diff *ir.Node) (*ir.Node, error) {
	tmp := diff.Clone()
	if err := reverse(tmp); err != nil {
		return nil, err
	}
	return tmp, nil
}

func reverse(n *ir.Node) error {
	last := n.NumTags() - 1
	switch entryTag(n) {
	case DeleteTag:
		n.TagAt(last).SetName(InsertTag)
	case InsertTag:
		n.TagAt(last).SetName(DeleteTag)
	case ReplaceTag:
		from, to := n.FindChild("from"), n.FindChild("to")
		if from == nil || to == nil || n.NumChildren() != 2 {
			return fmt.Errorf("%w: %s %q needs from and to", ErrDiff, ReplaceTag, n.Name())
		}
		from.SetName("to")
		to.SetName("from")
		n.ClearChildren()
		n.PushChild(to)
		n.PushChild(from)
	case StringDiffTag:
		return fmt.Errorf("%w: string diff %q cannot be reversed", ErrDiff, n.Name())
	default:
		for _, c := range n.Children() {
			if err := reverse(c); err != nil {
				return err
			}
		}
	}
	return nil
}
