// Package logging builds the zerolog logger shared by the CLI and the driver.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

// Options configures New.
type Options struct {
	Level zerolog.Level
	// Console selects human-readable output. Nil means auto: console on a
	// terminal, JSON lines otherwise.
	Console *bool
	NoColor bool
}

// New returns a logger writing to w.
func New(w io.Writer, opts Options) zerolog.Logger {
	console := IsTerminal(w)
	if opts.Console != nil {
		console = *opts.Console
	}
	if console {
		w = zerolog.ConsoleWriter{
			Out:        w,
			NoColor:    opts.NoColor,
			TimeFormat: time.TimeOnly,
		}
	}
	return zerolog.New(w).Level(opts.Level).With().Timestamp().Logger()
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
