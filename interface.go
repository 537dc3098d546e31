package celestial

import (
	"time"
)

// A Timepiece reports its current times as display strings and advances by
// one second on each call to Tick. Clocks, orreries and galaxies all
// satisfy it, so they can be displayed and driven uniformly.
type Timepiece interface {
	// Times returns one display string per clock, in insertion order.
	Times() []string

	// Tick advances every clock by one second.
	Tick() error
}

// A Source is the minimal time API needed to pace periodic ticking. Both
// [github.com/noodlebox/celestial/realtime.Clock] and
// [github.com/noodlebox/celestial/steppedtime.Clock] implement it.
type Source interface {
	Now() time.Time

	// After sends the time on the returned channel once d has elapsed. If
	// d <= 0 the channel is ready immediately.
	After(d time.Duration) <-chan time.Time
}
