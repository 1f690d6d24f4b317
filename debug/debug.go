package debug

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strconv"
)

type debug struct {
	Parse  bool
	Tokens bool
	Lookup bool
	Eval   bool
	LSP    bool
}

var (
	d      *debug
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
)

func init() {
	d = &debug{}
	d.Parse = boolEnv("Q_DEBUG_PARSE")
	d.Tokens = boolEnv("Q_DEBUG_TOKENS")
	d.Lookup = boolEnv("Q_DEBUG_LOOKUP")
	d.Eval = boolEnv("Q_DEBUG_EVAL")
	d.LSP = boolEnv("Q_DEBUG_LSP")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool  { return d.Parse }
func Tokens() bool { return d.Tokens }
func Lookup() bool { return d.Lookup }
func Eval() bool   { return d.Eval }
func LSP() bool    { return d.LSP }

// SetLogger replaces the logger used by Logf.
func SetLogger(l *slog.Logger) { logger = l }

// Logf logs a formatted debug message. Arguments implementing
// json.Marshaler are rendered as JSON.
func Logf(msg string, args ...any) {
	for i, a := range args {
		if m, ok := a.(json.Marshaler); ok {
			d, err := json.Marshal(m)
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		}
	}
	logger.Debug(fmt.Sprintf(msg, args...))
}
