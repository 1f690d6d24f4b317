package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/quanta-format/go-quanta/encode"
	"github.com/quanta-format/go-quanta/eval"
	"github.com/quanta-format/go-quanta/format"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='encode with color'"`
	Gops    bool `cli:"name=gops desc='run a gops diagnostics agent'"`
	Verbose bool `cli:"name=v desc='log debug messages'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// inFormat returns the input format given with -I, or def.
func (cfg *MainConfig) inFormat(def format.Format) format.Format {
	if cfg.InFormat != nil {
		return *cfg.InFormat
	}
	return def
}

// outFormat returns the output format given with -O, or def.
func (cfg *MainConfig) outFormat(def format.Format) format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	return def
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	var res []encode.EncodeOption
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
	}
	if cfg.Main != nil {
		for _, opt := range cfg.Main.Opts {
			if opt.Name == "color" && opt.Value != nil {
				return res
			}
		}
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type ViewConfig struct {
	*MainConfig
	View *cli.Command
}

type FmtConfig struct {
	*MainConfig
	Write bool `cli:"name=w desc='write result to the source file'"`
	Diff  bool `cli:"name=d desc='show a diff instead of the result'"`

	Fmt *cli.Command
}

type CheckConfig struct {
	*MainConfig
	Quiet bool `cli:"name=q desc='print nothing, only set the exit code'"`

	Check *cli.Command
}

type GetConfig struct {
	*MainConfig
	Get *cli.Command
}

type ResolveConfig struct {
	*MainConfig
	At     string `cli:"name=at desc='context time, as a quanta time literal (default now)'"`
	Reduce bool   `cli:"name=reduce desc='reduce times relative to the context'"`

	Resolve *cli.Command
}

type EvalConfig struct {
	*MainConfig
	Env    eval.Env
	NoOS   bool `cli:"name=no-os desc='ignore Q_ENV_ environment variables'"`
	Strict bool `cli:"name=strict desc='fail on undefined identifiers'"`

	Eval *cli.Command
}

type DumpConfig struct {
	*MainConfig
	Dump *cli.Command
}

type LoadConfig struct {
	*MainConfig
	Load *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Patch string `cli:"name=p desc='RFC 6902 patch file, json or yaml'"`

	PatchCmd *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Structural bool `cli:"name=s desc='print a structural diff'"`
	Reverse    bool `cli:"name=r desc='reverse the structural diff'"`

	Diff *cli.Command
}

type ReplConfig struct {
	*MainConfig
	History string `cli:"name=history desc='history file (default ~/.q_history)'"`

	Repl *cli.Command
}
