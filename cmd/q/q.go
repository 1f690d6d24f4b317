package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/gops/agent"
	"github.com/scott-cotton/cli"

	"github.com/quanta-format/go-quanta/debug"
)

func qMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer cfg.closeOut()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Verbose {
		theLog = newLog(os.Stderr, slog.LevelDebug)
		debug.SetLogger(theLog)
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	if cfg.Gops {
		stop := startGops()
		defer stop()
	}
	name, rest := args[0], args[1:]
	sub := cfg.Main.FindSub(cc, name)
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, name)
	}
	theLog.Debug("running", "command", name, "args", len(rest))
	if err := sub.Run(cc, rest); errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	} else if err != nil {
		return err
	}
	return nil
}

// startGops starts the diagnostics agent and returns its stop function.
// A failure to listen is logged and does not stop the command.
func startGops() func() {
	if err := agent.Listen(agent.Options{}); err != nil {
		theLog.Warn("gops agent failed", "error", err)
		return func() {}
	}
	theLog.Debug("gops agent listening")
	return agent.Close
}

// outOpt handles -o: "-" keeps the command output, anything else is a
// file truncated and written in place of it.
func (cfg *MainConfig) outOpt(cc *cli.Context, path string) (any, error) {
	cfg.Out = path
	if path == "-" {
		return nil, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("%w: output %q: %w", cli.ErrUsage, path, err)
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) closeOut() {
	if cfg.CloseOut == nil {
		return
	}
	if err := cfg.CloseOut(); err != nil {
		theLog.Warn("closing output", "file", cfg.Out, "error", err)
	}
}
