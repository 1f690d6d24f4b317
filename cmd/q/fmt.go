package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/quanta-format/go-quanta/encode"
	"github.com/quanta-format/go-quanta/ir"
	"github.com/quanta-format/go-quanta/libdiff"
	"github.com/quanta-format/go-quanta/parse"
)

func fmtCmd(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		cfg.Fmt.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Write && len(args) == 0 {
		return fmt.Errorf("%w: fmt -w requires files", cli.ErrUsage)
	}
	for _, file := range inputs(args) {
		if err := fmtFile(cfg, cc.Out, cc, file); err != nil {
			return fmt.Errorf("error formatting %s: %w", file, err)
		}
	}
	return nil
}

func fmtFile(cfg *FmtConfig, w io.Writer, cc *cli.Context, file string) error {
	d, err := readInput(cc, file)
	if err != nil {
		return err
	}
	doc, err := parse.Parse(d)
	if err != nil {
		return err
	}
	out, err := canonical(doc)
	if err != nil {
		return err
	}
	if cfg.Diff {
		_, err := io.WriteString(w, libdiff.Lines(file, file+" (formatted)", string(d), out))
		return err
	}
	if !cfg.Write {
		_, err := io.WriteString(w, out)
		return err
	}
	if out == string(d) {
		return nil
	}
	fi, err := os.Stat(file)
	if err != nil {
		return err
	}
	if err := os.WriteFile(file, []byte(out), fi.Mode().Perm()); err != nil {
		return err
	}
	theLog.Info("formatted", "file", file)
	return nil
}

// canonical returns the canonical text of the document node, ending in
// a newline unless it is empty.
func canonical(doc *ir.Node) (string, error) {
	s, err := encode.EncodeString(doc, encode.Document())
	if err != nil {
		return "", err
	}
	if doc.HasChildren() {
		s += "\n"
	}
	return s, nil
}
