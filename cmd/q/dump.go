package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/quanta-format/go-quanta/format"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		cfg.Dump.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	out := cfg.outFormat(format.JSONFormat)
	for _, file := range inputs(args) {
		doc, err := getObjFile(cc, file, cfg.inFormat(format.QuantaFormat))
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		if err := format.Write(out, doc, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error dumping %s: %w", file, err)
		}
	}
	return nil
}

func load(cfg *LoadConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Load.Parse(cc, args)
	if err != nil {
		cfg.Load.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	for _, file := range inputs(args) {
		in := cfg.inFormat(format.JSONFormat)
		if f, ok := format.FromSuffix(file); ok && cfg.InFormat == nil {
			in = f
		}
		doc, err := getObjFile(cc, file, in)
		if err != nil {
			return fmt.Errorf("error loading %s: %w", file, err)
		}
		if err := cfg.write(cc.Out, doc); err != nil {
			return err
		}
	}
	return nil
}
