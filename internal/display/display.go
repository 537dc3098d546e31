// Package display prints a timepiece to a plain text stream once per
// interval.
package display

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/noodlebox/celestial"
)

// Run prints tp's times to w as one block, ticks tp, and waits for the
// next deadline, until ctx is done. Deadlines fall every interval after
// the first print, however long printing and ticking take. A failed tick
// or write ends Run with that error; ctx ending returns nil.
func Run(ctx context.Context, w io.Writer, tp celestial.Timepiece, src celestial.Source, interval time.Duration) error {
	if interval <= 0 {
		panic("non-positive interval for display.Run")
	}

	next := src.Now()
	for {
		if _, err := io.WriteString(w, Frame(tp.Times())); err != nil {
			return fmt.Errorf("display: %w", err)
		}
		if err := tp.Tick(); err != nil {
			return fmt.Errorf("display: %w", err)
		}

		next = next.Add(interval)
		select {
		case <-ctx.Done():
			return nil
		case <-src.After(next.Sub(src.Now())):
		}
	}
}

// Frame formats times one per line followed by a blank line.
func Frame(times []string) string {
	var b strings.Builder
	for _, t := range times {
		b.WriteString(t)
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	return b.String()
}
