package main

import (
	"fmt"
	"maps"

	"github.com/scott-cotton/cli"

	"github.com/quanta-format/go-quanta/eval"
	"github.com/quanta-format/go-quanta/format"
	"github.com/quanta-format/go-quanta/ir"
)

const envPrefix = "Q_ENV_"

func evalCmd(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		cfg.Eval.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	env := eval.Env{}
	if !cfg.NoOS {
		if err := env.FromOS(envPrefix); err != nil {
			theLog.Warn("ignoring environment", "error", err)
		}
	}
	maps.Copy(env, cfg.Env)

	for _, file := range inputs(args) {
		doc, err := getObjFile(cc, file, cfg.inFormat(format.QuantaFormat))
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		k, err := eval.EvalTree(doc, env)
		if err != nil {
			return fmt.Errorf("error evaluating %s: %w", file, err)
		}
		if left := expressions(doc); left != 0 {
			if cfg.Strict {
				return fmt.Errorf("%s: %d expressions left unevaluated", file, left)
			}
			theLog.Warn("unevaluated expressions", "file", file, "evaluated", k, "left", left)
		}
		if err := cfg.write(cc.Out, doc); err != nil {
			return err
		}
	}
	return nil
}

// expressions counts the outermost expressions in doc.
func expressions(doc *ir.Node) int {
	k := 0
	ir.Walk(doc, func(n *ir.Node) bool {
		if n.Is(ir.ExpressionType) {
			k++
			return false
		}
		return true
	})
	return k
}
