package eval

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"
	"github.com/expr-lang/expr"
)

// moneyPrecision keeps computed coefficients within the 64 bits a currency
// value holds.
const moneyPrecision = 18

var moneyContext = apd.BaseContext.WithPrecision(moneyPrecision)

func toDecimal(v any) (*apd.Decimal, error) {
	switch x := v.(type) {
	case *apd.Decimal:
		return x, nil
	case int:
		return apd.New(int64(x), 0), nil
	case int64:
		return apd.New(x, 0), nil
	case float64:
		d := &apd.Decimal{}
		if _, err := d.SetFloat64(x); err != nil {
			return nil, err
		}
		return d, nil
	}
	return nil, fmt.Errorf("%w: cannot compute with %T", ErrEval, v)
}

type decimalOp func(res, x, y *apd.Decimal) (apd.Condition, error)

func moneyFunc(op decimalOp) func(params ...any) (any, error) {
	return func(params ...any) (any, error) {
		if len(params) != 2 {
			return nil, fmt.Errorf("%w: expected 2 operands, got %d", ErrEval, len(params))
		}
		x, err := toDecimal(params[0])
		if err != nil {
			return nil, err
		}
		y, err := toDecimal(params[1])
		if err != nil {
			return nil, err
		}
		res := &apd.Decimal{}
		if _, err := op(res, x, y); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrEval, err)
		}
		return res, nil
	}
}

func moneyQuo(res, x, y *apd.Decimal) (apd.Condition, error) {
	if y.IsZero() {
		return 0, fmt.Errorf("division by zero")
	}
	return moneyContext.Quo(res, x, y)
}

func moneyRatio(params ...any) (any, error) {
	v, err := moneyFunc(moneyQuo)(params...)
	if err != nil {
		return nil, err
	}
	f, err := v.(*apd.Decimal).Float64()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEval, err)
	}
	return f, nil
}

// moneyOptions overloads the arithmetic operators for currency amounts.
// Amounts add to amounts; they scale by and divide by plain numbers.
func moneyOptions() []expr.Option {
	type money = *apd.Decimal
	return []expr.Option{
		expr.Function("moneyAdd", moneyFunc(moneyContext.Add),
			new(func(money, money) money)),
		expr.Function("moneySub", moneyFunc(moneyContext.Sub),
			new(func(money, money) money)),
		expr.Function("moneyMul", moneyFunc(moneyContext.Mul),
			new(func(money, int) money),
			new(func(int, money) money),
			new(func(money, float64) money),
			new(func(float64, money) money)),
		expr.Function("moneyQuo", moneyFunc(moneyQuo),
			new(func(money, int) money),
			new(func(money, float64) money)),
		expr.Function("moneyRatio", moneyRatio,
			new(func(money, money) float64)),
		expr.Operator("+", "moneyAdd"),
		expr.Operator("-", "moneySub"),
		expr.Operator("*", "moneyMul"),
		expr.Operator("/", "moneyQuo", "moneyRatio"),
	}
}
