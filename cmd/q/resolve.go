package main

import (
	"fmt"
	"time"

	"github.com/scott-cotton/cli"

	"github.com/quanta-format/go-quanta/chrono"
	"github.com/quanta-format/go-quanta/format"
	"github.com/quanta-format/go-quanta/ir"
	"github.com/quanta-format/go-quanta/parse"
)

func resolve(cfg *ResolveConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Resolve.Parse(cc, args)
	if err != nil {
		cfg.Resolve.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	ctx, err := contextTime(cfg.At, time.Now())
	if err != nil {
		return fmt.Errorf("%w: -at %q: %w", cli.ErrUsage, cfg.At, err)
	}
	for _, file := range inputs(args) {
		doc, err := getObjFile(cc, file, cfg.inFormat(format.QuantaFormat))
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		resolveTimes(doc, ctx, cfg.Reduce)
		if err := cfg.write(cc.Out, doc); err != nil {
			return err
		}
	}
	return nil
}

// contextTime returns the time given by the literal at, with its
// contextual parts taken from now. An empty literal gives now.
func contextTime(at string, now time.Time) (chrono.Time, error) {
	res := chrono.FromGo(now)
	if at == "" {
		return res, nil
	}
	n, err := parse.ParseString(at, parse.SingleValue())
	if err != nil {
		return chrono.Time{}, err
	}
	if !n.Is(ir.TimeType) {
		return chrono.Time{}, fmt.Errorf("expected a time, got %s", n.Type())
	}
	n.ResolveTime(res)
	return n.TimeValue(), nil
}

// resolveTimes resolves, or with reduce reduces, every time in doc
// against ctx.
func resolveTimes(doc *ir.Node, ctx chrono.Time, reduce bool) {
	ir.Walk(doc, func(n *ir.Node) bool {
		if !n.Is(ir.TimeType) {
			return true
		}
		n.ResolveTime(ctx)
		if reduce {
			n.ReduceTime(ctx)
		}
		return true
	})
}
