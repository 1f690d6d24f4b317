// Package format names the document formats the tools read and write.
//
// # Usage
//
//	f, err := format.ParseFormat("yaml")
//	root, err := format.Read(format.QuantaFormat, data)
//	err = format.Write(f, root, os.Stdout)
//
// Quanta text is the notation itself. JSON and YAML carry the node form
// of a tree, which keeps every marker, source and time flag, so a tree
// written in any format reads back equal.
//
// # Related Packages
//
//   - github.com/quanta-format/go-quanta/parse - parse text to nodes
//   - github.com/quanta-format/go-quanta/encode - encode nodes to text
package format
