package eval

import (
	"fmt"

	"github.com/quanta-format/go-quanta/token"
)

func mulUnit(a, b string) (string, error) {
	switch {
	case a == "":
		return b, nil
	case b == "":
		return a, nil
	}
	return "", fmt.Errorf("%w: cannot multiply %s by %s", ErrEval, a, b)
}

func divUnit(a, b string) (string, error) {
	switch {
	case b == "":
		return a, nil
	case a == b:
		return "", nil
	case a == "":
		return "", fmt.Errorf("%w: cannot divide a plain number by %s", ErrEval, b)
	}
	u := a + "/" + b
	if !token.IsUnit(u) {
		return "", fmt.Errorf("%w: %s is not a unit", ErrEval, u)
	}
	return u, nil
}

func sumUnit(a, b string) (string, error) {
	if a != b {
		return "", fmt.Errorf("%w: cannot add %s and %s", ErrEval, show(a), show(b))
	}
	return a, nil
}

func show(unit string) string {
	if unit == "" {
		return "a plain number"
	}
	return unit
}
