package eval

import (
	"errors"
	"fmt"

	"github.com/quanta-format/go-quanta/debug"
	"github.com/quanta-format/go-quanta/ir"
)

// EvalTree replaces every member expression under root that can be
// computed with its value, keeping the name, source, tags, children and
// quantity of the member. Identifiers resolve to members of the
// enclosing scopes, innermost first, then to env. Expressions naming
// something undefined are left alone. It returns the number of members
// replaced.
func EvalTree(root *ir.Node, env Resolver) (int, error) {
	return evalScope(root, nil, env, "")
}

func evalScope(n *ir.Node, up *scope, env Resolver, path string) (int, error) {
	sc := &scope{node: n, up: up, env: env}
	count := 0
	for i, c := range n.Children() {
		p := path + "/" + memberName(c, i)
		if c.Is(ir.ExpressionType) {
			v, err := Eval(c, sc)
			switch {
			case errors.Is(err, ErrUndefined):
				if debug.Eval() {
					debug.Logf("left %s: %v", p, err)
				}
			case err != nil:
				return count, fmt.Errorf("%s: %w", p, err)
			default:
				SetValue(c, v)
				count++
			}
		}
		sub, err := evalScope(c, sc, env, p)
		count += sub
		if err != nil {
			return count, err
		}
	}
	return count, nil
}

func memberName(c *ir.Node, i int) string {
	if c.HasName() {
		return c.Name()
	}
	return fmt.Sprintf("#%d", i)
}

// SetValue replaces the value of dst with the value of v, a result of
// Eval. The rest of dst is kept; markers of v are added to those of dst.
func SetValue(dst, v *ir.Node) {
	switch v.Type() {
	case ir.IntegerType:
		dst.SetInteger(v.IntegerValue())
	case ir.DecimalType:
		dst.SetDecimal(v.DecimalValue())
	case ir.CurrencyType:
		dst.SetCurrency(v.CurrencyValue())
	default:
		panic(fmt.Sprintf("eval: SetValue called with %s result", v.Type()))
	}
	dst.SetUnit(v.Unit())
	switch {
	case v.MarkerValueGuess():
		dst.SetValueGuess(true)
	case v.MarkerValueUncertain() && !dst.MarkerValueGuess():
		dst.SetValueCertain(false)
	}
}
