// Package parse reads quanta text into ir nodes.
//
// # Usage
//
//	// a document: members become children of the root
//	root, err := parse.ParseString("a = 1\nb = 2015-01-02T03:04:05Z")
//	if err != nil {
//	    return err
//	}
//
//	// one value
//	n, err := parse.ParseString("?~1.5kg$2", parse.SingleValue())
//
// Errors are *token.Error values carrying the line and column of the
// offending input; test the kind with errors.Is against the token
// sentinels (token.ErrSyntax, token.ErrMalformed, ...).
//
// # Related Packages
//
//   - github.com/quanta-format/go-quanta/ir - node model
//   - github.com/quanta-format/go-quanta/encode - writing nodes as text
//   - github.com/quanta-format/go-quanta/token - tokenization
package parse
