package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/quanta-format/go-quanta/ir"
	"github.com/quanta-format/go-quanta/parse"
	"github.com/quanta-format/go-quanta/token"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		cfg.Check.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	var w io.Writer = cc.Out
	if cfg.Quiet {
		w = io.Discard
	}
	failed := 0
	for _, file := range inputs(args) {
		d, err := readInput(cc, file)
		if err != nil {
			return err
		}
		if err := checkDoc(d); err != nil {
			failed++
			fmt.Fprintln(w, diagnostic(file, err))
		}
	}
	if failed != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// checkDoc parses d and verifies that its canonical form reads back as
// the same document and is a fixed point.
func checkDoc(d []byte) error {
	doc, err := parse.Parse(d)
	if err != nil {
		return err
	}
	out, err := canonical(doc)
	if err != nil {
		return err
	}
	again, err := parse.ParseString(out)
	if err != nil {
		return fmt.Errorf("canonical form does not parse: %w", err)
	}
	if !ir.Equal(doc, again) {
		return errors.New("canonical form reads back as a different document")
	}
	out2, err := canonical(again)
	if err != nil {
		return err
	}
	if out2 != out {
		return errors.New("canonical form is not stable")
	}
	return nil
}

func diagnostic(file string, err error) string {
	var te *token.Error
	if errors.As(err, &te) {
		return fmt.Sprintf("%s:%s", file, te.Error())
	}
	return fmt.Sprintf("%s: %s", file, err)
}
