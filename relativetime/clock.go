package relativetime

import (
	"sync"
	"time"

	"github.com/noodlebox/celestial"
)

var _ celestial.Source = (*Clock)(nil)

// Clock is a clock that tracks a reference clock with a configurable scaling
// factor.
type Clock struct {
	ref celestial.Source

	scale     float64
	active    bool
	now, rNow time.Time // last sync point

	// Closed and replaced whenever tracking changes, to wake pending
	// timers so they recompute their reference deadlines.
	changed chan struct{}

	mu sync.RWMutex
}

// NewClock returns a new Clock set to at, synchronized to the current time on
// ref with a scale factor of scale. The clock starts active. Scale must not
// be negative.
func NewClock(ref celestial.Source, at time.Time, scale float64) *Clock {
	if scale < 0 {
		panic("negative scale for relativetime.NewClock")
	}
	return &Clock{
		ref:     ref,
		scale:   scale,
		active:  true,
		now:     at,
		rNow:    ref.Now(),
		changed: make(chan struct{}),
	}
}

// Syncing with the reference clock is done lazily. This method moves the
// sync point to rNow. It must be called before changing any field that
// affects how the reference is tracked.
// Callers must hold a write lock.
func (c *Clock) advanceRef(rNow time.Time) {
	c.now = c.toLocal(rNow)
	c.rNow = rNow
}

// Given a reference time, extrapolate to the local time. Times before the
// last sync point are not extrapolated correctly.
// Callers must hold at least a read lock.
func (c *Clock) toLocal(when time.Time) time.Time {
	if !c.active || c.scale == 0 || when.Equal(c.rNow) {
		return c.now
	}
	dt := when.Sub(c.rNow)
	if c.scale != 1 {
		dt = time.Duration(float64(dt) * c.scale)
	}
	return c.now.Add(dt)
}

// update applies f at the current reference time and wakes pending timers.
func (c *Clock) update(f func()) {
	rNow := c.ref.Now()
	c.mu.Lock()
	c.advanceRef(rNow)
	f()
	close(c.changed)
	c.changed = make(chan struct{})
	c.mu.Unlock()
}

// Start resumes tracking the reference clock. It is fine to call Start on a
// clock that is already running.
func (c *Clock) Start() {
	c.update(func() { c.active = true })
}

// Stop pauses tracking the reference clock. It is fine to call Stop on a
// clock that is not running.
func (c *Clock) Stop() {
	c.update(func() { c.active = false })
}

// Active returns true if currently tracking the reference clock.
func (c *Clock) Active() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.active
}

// SetScale sets the scaling factor for tracking the reference clock.
func (c *Clock) SetScale(scale float64) {
	if scale < 0 {
		panic("negative scale for relativetime.Clock.SetScale")
	}
	c.update(func() { c.scale = scale })
}

// Scale returns the scaling factor for tracking the reference clock.
func (c *Clock) Scale() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.scale
}

// Now returns the current time.
func (c *Clock) Now() time.Time {
	rNow := c.ref.Now()
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.toLocal(rNow)
}

// After waits for the local time to advance by d and then sends the local
// time on the returned channel. If d <= 0 the channel is ready immediately.
// While the clock is paused or its scale is zero, nothing is sent.
func (c *Clock) After(d time.Duration) <-chan time.Time {
	ch := make(chan time.Time, 1)
	now := c.Now()
	if d <= 0 {
		ch <- now
		return ch
	}
	go c.wait(now.Add(d), ch)
	return ch
}

// wait converts the local deadline into a reference duration and sleeps on
// the reference clock, starting over whenever tracking changes.
func (c *Clock) wait(deadline time.Time, ch chan<- time.Time) {
	for {
		rNow := c.ref.Now()
		c.mu.RLock()
		now := c.toLocal(rNow)
		running := c.active && c.scale > 0
		scale := c.scale
		changed := c.changed
		c.mu.RUnlock()

		if !now.Before(deadline) {
			ch <- now
			return
		}

		var wake <-chan time.Time
		if running {
			dt := time.Duration(float64(deadline.Sub(now)) / scale)
			if dt <= 0 {
				dt = 1
			}
			wake = c.ref.After(dt)
		}
		select {
		case <-wake:
		case <-changed:
		}
	}
}
