// Package libdiff computes differences between documents.
//
// # Usage
//
//	// structural diff of two trees
//	d := libdiff.Diff(oldRoot, newRoot)
//	back, err := libdiff.Reverse(d)
//
//	// unified line diff of their canonical text
//	s := libdiff.Lines("old.q", "new.q", oldText, newText)
//
// A diff tree is itself a quanta document. Entries are tagged :insert,
// :delete, :replace (with from and to members) or :strdiff; unchanged
// members are left out.
//
// # Related Packages
//
//   - github.com/quanta-format/go-quanta/ir - node model
//   - github.com/quanta-format/go-quanta/encode - canonical text
package libdiff
