// Package eval computes the value of expression nodes.
//
// # Usage
//
//	n, _ := parse.ParseString("2kg * 3 + w", parse.SingleValue())
//	env := eval.Env{}
//	env.Set("w=4kg")
//	v, err := eval.Eval(n, env) // 10kg
//
//	// replace computable member expressions in a whole document
//	count, err := eval.EvalTree(root, eval.Env{})
//
// Operands are integers, decimals, currencies, nested expressions and
// identifiers naming other values. Multiplication and division bind
// tighter than addition and subtraction. Units must agree across a sum;
// a quotient of two units is written with a slash. Currency amounts are
// computed exactly.
//
// Value markers on operands carry over: a result computed from a guess is
// a guess, and one computed from an uncertain or approximate value is
// uncertain.
//
// # Related Packages
//
//   - github.com/quanta-format/go-quanta/ir - node model
//   - github.com/quanta-format/go-quanta/parse - parsing values for Env
package eval
