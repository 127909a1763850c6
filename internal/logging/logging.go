// Package logging builds the slog logger shared by the command-line tools.
package logging

import (
	"io"
	"log/slog"
)

// New returns a text logger writing to w. Only warnings and errors are shown
// unless verbose is set, in which case debug output is included.
func New(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
