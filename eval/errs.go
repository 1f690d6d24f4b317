package eval

import "errors"

var (
	// ErrEval reports an expression that cannot be computed.
	ErrEval = errors.New("eval error")
	// ErrUndefined reports an identifier with no value in scope.
	ErrUndefined = errors.New("undefined")
)
