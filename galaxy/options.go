package galaxy

import (
	"log/slog"
	"time"

	"github.com/noodlebox/celestial"
)

// DefaultInterval is the period of the background schedule.
const DefaultInterval = time.Second

// Option configures a Galaxy.
type Option func(*Galaxy)

// WithLogger sets the logger for rejected additions and schedule events.
// The default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(g *Galaxy) { g.logger = logger }
}

// WithSource sets the time source pacing the background schedule. The
// default is realtime.Clock.
func WithSource(src celestial.Source) Option {
	return func(g *Galaxy) { g.source = src }
}

// WithInterval sets the period of the background schedule. The interval
// must be greater than zero; if not, New will panic.
func WithInterval(d time.Duration) Option {
	return func(g *Galaxy) { g.interval = d }
}
