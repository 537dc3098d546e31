// Package logging builds the structured logger used by the celestial
// command.
package logging

import (
	"io"
	"log/slog"

	"golang.org/x/term"
)

// New returns a logger writing to w. A terminal gets slog's text format
// and anything else gets JSON. Debug lowers the level to slog.LevelDebug.
func New(w io.Writer, debug bool) *slog.Logger {
	options := &slog.HandlerOptions{Level: slog.LevelInfo}
	if debug {
		options.Level = slog.LevelDebug
	}

	var handler slog.Handler
	if isTerminal(w) {
		handler = slog.NewTextHandler(w, options)
	} else {
		handler = slog.NewJSONHandler(w, options)
	}
	return slog.New(handler)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}
