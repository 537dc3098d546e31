package orrery

import (
	"fmt"
	"log/slog"

	"github.com/noodlebox/celestial"
	"github.com/noodlebox/celestial/dayclock"
)

var _ celestial.Timepiece = (*Orrery)(nil)

type entry struct {
	label string
	clock *dayclock.Clock
}

// Orrery owns an ordered set of uniquely labelled clocks. It is not safe for
// concurrent use.
type Orrery struct {
	clocks []entry
	logger *slog.Logger
}

// Option configures an Orrery.
type Option func(*Orrery)

// WithLogger sets the logger used to report rejected additions. The default
// is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *Orrery) { o.logger = logger }
}

// New returns an empty Orrery.
func New(opts ...Option) *Orrery {
	o := &Orrery{}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	return o
}

// Len returns the number of clocks.
func (o *Orrery) Len() int { return len(o.clocks) }

// Add appends c under label. A nil clock is rejected with
// celestial.ErrInvalidInput. A label already in use is logged and ignored,
// keeping the existing clock.
func (o *Orrery) Add(label string, c *dayclock.Clock) error {
	if c == nil {
		return fmt.Errorf("orrery: add %q: nil clock: %w", label, celestial.ErrInvalidInput)
	}
	if o.index(label) >= 0 {
		o.logger.Warn("duplicate clock label ignored", "label", label)
		return nil
	}
	o.clocks = append(o.clocks, entry{label: label, clock: c})
	return nil
}

func (o *Orrery) index(label string) int {
	for i, e := range o.clocks {
		if e.label == label {
			return i
		}
	}
	return -1
}

// Get returns the clock stored under label.
func (o *Orrery) Get(label string) (*dayclock.Clock, error) {
	i := o.index(label)
	if i < 0 {
		return nil, fmt.Errorf("orrery: clock %q: %w", label, celestial.ErrNotFound)
	}
	return o.clocks[i].clock, nil
}

// Labels returns the labels in insertion order.
func (o *Orrery) Labels() []string {
	labels := make([]string, len(o.clocks))
	for i, e := range o.clocks {
		labels[i] = e.label
	}
	return labels
}

// Tick advances every clock by one second, in insertion order.
func (o *Orrery) Tick() error {
	for _, e := range o.clocks {
		if e.clock == nil {
			return fmt.Errorf("orrery: tick %q: %w", e.label, celestial.ErrMissingMember)
		}
		if err := e.clock.Tick(); err != nil {
			return fmt.Errorf("orrery: tick %q: %w", e.label, err)
		}
	}
	return nil
}

// MilitaryTimes returns each clock's military time prefixed by its label.
func (o *Orrery) MilitaryTimes() []string {
	return o.times((*dayclock.Clock).MilitaryTime)
}

// Times returns each clock's standard time prefixed by its label.
func (o *Orrery) Times() []string {
	return o.times((*dayclock.Clock).StandardTime)
}

func (o *Orrery) times(format func(*dayclock.Clock) string) []string {
	times := make([]string, 0, len(o.clocks))
	for _, e := range o.clocks {
		times = append(times, e.label+format(e.clock))
	}
	return times
}

// Clear drops every clock.
func (o *Orrery) Clear() {
	clear(o.clocks)
	o.clocks = o.clocks[:0]
}
