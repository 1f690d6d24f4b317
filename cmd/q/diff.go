package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/quanta-format/go-quanta/format"
	"github.com/quanta-format/go-quanta/ir"
	"github.com/quanta-format/go-quanta/libdiff"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	if cfg.Reverse && !cfg.Structural {
		return fmt.Errorf("%w: -r requires -s", cli.ErrUsage)
	}
	a, err := getObjFile(cc, args[0], cfg.inFormat(format.QuantaFormat))
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	b, err := getObjFile(cc, args[1], cfg.inFormat(format.QuantaFormat))
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	var differs bool
	if cfg.Structural {
		differs, err = diffTrees(cfg, cc.Out, a, b)
	} else {
		differs, err = diffLines(cc.Out, args[0], args[1], a, b)
	}
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func diffLines(w io.Writer, aName, bName string, a, b *ir.Node) (bool, error) {
	as, err := canonical(a)
	if err != nil {
		return false, err
	}
	bs, err := canonical(b)
	if err != nil {
		return false, err
	}
	d := libdiff.Lines(aName, bName, as, bs)
	if d == "" {
		return false, nil
	}
	_, err = io.WriteString(w, d)
	return true, err
}

func diffTrees(cfg *DiffConfig, w io.Writer, a, b *ir.Node) (bool, error) {
	d := libdiff.Diff(a, b)
	if d == nil {
		return false, nil
	}
	if cfg.Reverse {
		rev, err := libdiff.Reverse(d)
		if err != nil {
			return false, fmt.Errorf("error reversing: %w", err)
		}
		d = rev
	}
	if err := cfg.write(w, d); err != nil {
		return false, err
	}
	return true, nil
}

