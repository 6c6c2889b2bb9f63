// Package logger holds the process-wide zerolog logger used by the
// jpholidays command. Library code in the root package never logs.
package logger

import (
	"io"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

var base atomic.Pointer[zerolog.Logger]

// Options configures Init. A zero Options logs JSON at info level to stderr.
type Options struct {
	Level  string    // debug|info|warn|error
	Pretty bool      // human-readable console output
	Out    io.Writer // defaults to os.Stderr
}

// Init configures the global logger. Logs go to stderr by default so that
// stdout carries only command output.
func Init(opts Options) {
	var w io.Writer = os.Stderr
	if opts.Out != nil {
		w = opts.Out
	}
	if opts.Pretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	l := zerolog.New(w).With().Timestamp().Logger().Level(ParseLevel(opts.Level))
	base.Store(&l)
}

// L returns the global logger, initializing it with defaults if Init was
// never called.
func L() *zerolog.Logger {
	if l := base.Load(); l != nil {
		return l
	}
	l := zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.InfoLevel)
	base.CompareAndSwap(nil, &l)
	return base.Load()
}

// ParseLevel maps a level name to a zerolog level. Unknown names map to info.
func ParseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error", "err":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}
