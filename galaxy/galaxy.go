package galaxy

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/noodlebox/celestial"
	"github.com/noodlebox/celestial/orrery"
	"github.com/noodlebox/celestial/realtime"
)

var _ celestial.Timepiece = (*Galaxy)(nil)

type entry struct {
	label  string
	orrery *orrery.Orrery
}

// Galaxy owns an ordered set of uniquely labelled orreries.
//
// Tick may be called from any goroutine; concurrent calls are serialized.
// The remaining methods are meant for the single goroutine that owns the
// Galaxy.
type Galaxy struct {
	orreries []entry

	source   celestial.Source
	interval time.Duration
	logger   *slog.Logger

	tickMu sync.Mutex // Serializes Tick.
	ticks  atomic.Uint64

	lifecycle sync.Mutex // Serializes Start and Stop.
	schedule  schedule
}

// New returns an empty Galaxy.
func New(opts ...Option) *Galaxy {
	g := &Galaxy{
		interval: DefaultInterval,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.interval <= 0 {
		panic("non-positive interval for galaxy.New")
	}
	if g.source == nil {
		g.source = realtime.NewClock()
	}
	if g.logger == nil {
		g.logger = slog.Default()
	}
	return g
}

// Len returns the total number of clocks across every orrery.
func (g *Galaxy) Len() int {
	var n int
	for _, e := range g.orreries {
		if e.orrery != nil {
			n += e.orrery.Len()
		}
	}
	return n
}

// Ticks returns the number of ticks completed since the Galaxy was created,
// whether driven by Tick or by the background schedule.
func (g *Galaxy) Ticks() uint64 { return g.ticks.Load() }

// Add stops the background schedule and appends o under label. A nil
// orrery is rejected with celestial.ErrInvalidInput. A label already in use
// is logged and ignored, keeping the existing orrery.
func (g *Galaxy) Add(label string, o *orrery.Orrery) error {
	if o == nil {
		return fmt.Errorf("galaxy: add %q: nil orrery: %w", label, celestial.ErrInvalidInput)
	}
	g.Stop()
	if g.index(label) >= 0 {
		g.logger.Warn("duplicate orrery label ignored", "label", label)
		return nil
	}
	g.orreries = append(g.orreries, entry{label: label, orrery: o})
	return nil
}

func (g *Galaxy) index(label string) int {
	for i, e := range g.orreries {
		if e.label == label {
			return i
		}
	}
	return -1
}

// Get stops the background schedule and returns the orrery stored under
// label.
func (g *Galaxy) Get(label string) (*orrery.Orrery, error) {
	g.Stop()
	i := g.index(label)
	if i < 0 {
		return nil, fmt.Errorf("galaxy: orrery %q: %w", label, celestial.ErrNotFound)
	}
	return g.orreries[i].orrery, nil
}

// Labels returns the orrery labels in insertion order.
func (g *Galaxy) Labels() []string {
	labels := make([]string, len(g.orreries))
	for i, e := range g.orreries {
		labels[i] = e.label
	}
	return labels
}

// Tick advances every orrery by one second. The orreries are split at the
// midpoint and each half is ticked on its own goroutine, in insertion
// order; Tick returns once both halves are done. A failing half does not
// stop the other one. Failures from both halves are joined, and any failure
// also ends the background schedule.
func (g *Galaxy) Tick() error {
	g.tickMu.Lock()
	defer g.tickMu.Unlock()

	mid := len(g.orreries) / 2
	halves := [2][]entry{g.orreries[:mid], g.orreries[mid:]}

	var (
		wg   sync.WaitGroup
		errs [2]error
	)
	for i, half := range halves {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = tickRange(half)
		}()
	}
	wg.Wait()

	if err := errors.Join(errs[0], errs[1]); err != nil {
		g.halt()
		return err
	}
	g.ticks.Add(1)
	return nil
}

func tickRange(entries []entry) error {
	for _, e := range entries {
		if e.orrery == nil {
			return fmt.Errorf("galaxy: tick %q: %w", e.label, celestial.ErrMissingMember)
		}
		if err := e.orrery.Tick(); err != nil {
			return fmt.Errorf("galaxy: tick %q: %w", e.label, err)
		}
	}
	return nil
}

// MilitaryTimes stops the background schedule and returns every clock's
// military time, prefixed by its orrery's label and its own.
func (g *Galaxy) MilitaryTimes() []string {
	return g.times((*orrery.Orrery).MilitaryTimes)
}

// Times stops the background schedule and returns every clock's standard
// time, prefixed by its orrery's label and its own.
func (g *Galaxy) Times() []string {
	return g.times((*orrery.Orrery).Times)
}

func (g *Galaxy) times(collect func(*orrery.Orrery) []string) []string {
	g.Stop()

	var times []string
	for _, e := range g.orreries {
		if e.orrery == nil {
			continue
		}
		for _, t := range collect(e.orrery) {
			times = append(times, e.label+t)
		}
	}
	return times
}

// Clear stops the background schedule and drops every orrery along with
// its clocks.
func (g *Galaxy) Clear() {
	g.Stop()
	for _, e := range g.orreries {
		if e.orrery != nil {
			e.orrery.Clear()
		}
	}
	clear(g.orreries)
	g.orreries = g.orreries[:0]
}

// Close stops the background schedule and releases every orrery.
func (g *Galaxy) Close() {
	g.Clear()
}
