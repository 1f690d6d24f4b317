package main

import (
	"io"
	"log/slog"
	"os"
)

var theLog = newLog(os.Stderr, slog.LevelInfo)

// newLog returns the command logger: plain text without timestamps, and
// without the level on informational lines.
func newLog(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: quietAttrs,
	}))
}

func quietAttrs(_ []string, a slog.Attr) slog.Attr {
	switch {
	case a.Key == slog.TimeKey:
		return slog.Attr{}
	case a.Key == slog.LevelKey && a.Value.String() == slog.LevelInfo.String():
		return slog.Attr{}
	}
	return a
}
