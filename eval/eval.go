package eval

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cockroachdb/apd/v3"
	"github.com/expr-lang/expr"

	"github.com/quanta-format/go-quanta/debug"
	"github.com/quanta-format/go-quanta/ir"
)

// Eval computes the value of n, which is a number, a currency, an
// identifier or an expression over those. Identifiers are looked up in
// r, which may be nil. The result is a new unnamed node holding the
// value, its unit and the markers inherited from its operands.
func Eval(n *ir.Node, r Resolver) (*ir.Node, error) {
	c := &compiler{
		r:        r,
		vars:     map[string]any{},
		visiting: map[*ir.Node]bool{},
	}
	src, unit, err := c.operand(n)
	if err != nil {
		return nil, err
	}
	opts := append([]expr.Option{expr.Env(c.vars)}, moneyOptions()...)
	prg, err := expr.Compile(src, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEval, err)
	}
	out, err := expr.Run(prg, c.vars)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEval, err)
	}
	if debug.Eval() {
		debug.Logf("eval %s with %v = %v", src, c.vars, out)
	}
	res, err := fromResult(out)
	if err != nil {
		return nil, err
	}
	if unit != "" {
		res.SetUnit(unit)
	}
	switch {
	case c.guess:
		res.SetValueGuess(true)
	case c.uncertain:
		res.SetValueCertain(false)
	}
	return res, nil
}

type compiler struct {
	r        Resolver
	vars     map[string]any
	visiting map[*ir.Node]bool

	uncertain, guess bool
}

func (c *compiler) bind(v any) string {
	name := "v" + strconv.Itoa(len(c.vars))
	c.vars[name] = v
	return name
}

func (c *compiler) marks(n *ir.Node) {
	if n.MarkerValueGuess() {
		c.guess = true
	}
	if n.MarkerValueUncertain() || n.ValueApproximation() != 0 {
		c.uncertain = true
	}
}

// operand returns the program text and unit of n.
func (c *compiler) operand(n *ir.Node) (string, string, error) {
	c.marks(n)
	switch n.Type() {
	case ir.IntegerType:
		return c.bind(int(n.IntegerValue())), n.Unit(), nil
	case ir.DecimalType:
		return c.bind(n.DecimalValue()), n.Unit(), nil
	case ir.CurrencyType:
		return c.bind(n.CurrencyValue().Decimal()), n.Unit(), nil
	case ir.ExpressionType:
		return c.expression(n)
	case ir.IdentifierType:
		return c.identifier(n.Text())
	}
	return "", "", fmt.Errorf("%w: cannot compute with %s", ErrEval, n.Type())
}

func (c *compiler) identifier(name string) (string, string, error) {
	var v *ir.Node
	if c.r != nil {
		v = c.r.Resolve(name)
	}
	if v == nil {
		return "", "", fmt.Errorf("%w: %s", ErrUndefined, name)
	}
	if c.visiting[v] {
		return "", "", fmt.Errorf("%w: %s refers to itself", ErrEval, name)
	}
	c.visiting[v] = true
	defer delete(c.visiting, v)
	return c.operand(v)
}

// expression returns the parenthesized program text of n. Operands are
// grouped into products, whose units combine, and the units of the
// products of a sum must agree.
func (c *compiler) expression(n *ir.Node) (string, string, error) {
	ops := n.Operands()
	if len(ops) == 0 {
		return "", "", fmt.Errorf("%w: empty expression", ErrEval)
	}
	b := &strings.Builder{}
	b.WriteByte('(')
	unit := ""
	for i := 0; i < len(ops); {
		src, u, err := c.operand(ops[i])
		if err != nil {
			return "", "", err
		}
		term := src
		j := i + 1
		for ; j < len(ops); j++ {
			op := ops[j].Op()
			if op != ir.OpMul && op != ir.OpDiv {
				break
			}
			s, v, err := c.operand(ops[j])
			if err != nil {
				return "", "", err
			}
			if op == ir.OpMul {
				u, err = mulUnit(u, v)
			} else {
				u, err = divUnit(u, v)
			}
			if err != nil {
				return "", "", err
			}
			term += " " + op.Symbol() + " " + s
		}
		if i == 0 {
			unit = u
		} else {
			if _, err := sumUnit(unit, u); err != nil {
				return "", "", err
			}
			b.WriteString(" " + ops[i].Op().Symbol() + " ")
		}
		b.WriteString(term)
		i = j
	}
	b.WriteByte(')')
	return b.String(), unit, nil
}

func fromResult(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case int:
		return ir.FromInt(int64(x)), nil
	case int64:
		return ir.FromInt(x), nil
	case float64:
		if math.IsInf(x, 0) || math.IsNaN(x) {
			return nil, fmt.Errorf("%w: result %v is not a number", ErrEval, x)
		}
		return ir.FromDecimal(x), nil
	case *apd.Decimal:
		cur, err := ir.CurrencyFromDecimal(x)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrEval, err)
		}
		return ir.FromCurrency(cur, ""), nil
	}
	return nil, fmt.Errorf("%w: result of type %T", ErrEval, v)
}
