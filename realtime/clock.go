package realtime

import (
	"time"

	"github.com/noodlebox/celestial"
)

// See [time.Time].
type Time = time.Time

// See [time.Duration].
type Duration = time.Duration

var _ celestial.Source = Clock{}

// Clock wraps package-level functions from [time]. Its methods are
// thread-safe and Clock objects may be copied freely. The zero-value of a
// Clock is perfectly valid.
type Clock struct{}

// NewClock returns a new Clock.
func NewClock() Clock {
	return Clock{}
}

// Now returns the current local time.
func (Clock) Now() Time {
	return time.Now()
}

// After waits for the duration to elapse and then sends the current time on
// the returned channel. Unstopped timers are collected once unreferenced,
// so After is safe to use in a loop that may be abandoned early.
func (Clock) After(d Duration) <-chan Time {
	return time.After(d)
}
