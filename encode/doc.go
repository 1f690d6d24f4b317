// Package encode writes ir nodes as quanta text.
//
// # Usage
//
//	n := ir.FromInt(12)
//	n.SetUnit("kg")
//	n.SetValueApproximation(-1)
//	s := encode.MustString(n) // ~12kg
//
//	// a whole document, one member per line
//	err := encode.Encode(root, os.Stdout, encode.Document())
//
//	// colored for a terminal
//	err := encode.Encode(root, os.Stdout, encode.EncodeColors(encode.NewColors()))
//
// The output is canonical: writing a parsed document and parsing the
// result again gives a tree that writes back identically.
//
// # Related Packages
//
//   - github.com/quanta-format/go-quanta/ir - node model
//   - github.com/quanta-format/go-quanta/parse - parsing text into nodes
package encode
