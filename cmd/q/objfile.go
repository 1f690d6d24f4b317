package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/quanta-format/go-quanta/format"
	"github.com/quanta-format/go-quanta/ir"
)

// readInput reads the file at path, or the command input for "-".
func readInput(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

func getObjFile(cc *cli.Context, path string, f format.Format) (*ir.Node, error) {
	d, err := readInput(cc, path)
	if err != nil {
		return nil, err
	}
	theLog.Debug("read", "file", path, "format", f, "bytes", len(d))
	return format.Read(f, d)
}

// inputs returns the file arguments, or "-" for the command input when
// there are none.
func inputs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}

// write renders the document node to w in the output format, quanta
// unless -O says otherwise.
func (cfg *MainConfig) write(w io.Writer, node *ir.Node) error {
	f := cfg.outFormat(format.QuantaFormat)
	if err := format.Write(f, node, w, cfg.encOpts(w)...); err != nil {
		return err
	}
	if f == format.QuantaFormat && node.HasChildren() {
		_, err := io.WriteString(w, "\n")
		return err
	}
	return nil
}
