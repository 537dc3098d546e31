package steppedtime

import (
	"sync"
	"time"

	"github.com/noodlebox/celestial"
)

// See [time.Time].
type Time = time.Time

// See [time.Duration].
type Duration = time.Duration

var _ celestial.Source = (*Clock)(nil)

type Clock struct {
	now   Time
	queue queue

	mu      sync.Mutex
	changed *sync.Cond // Signalled whenever a timer is scheduled.
}

// NewClock returns a Clock stopped at the time at.
func NewClock(at Time) *Clock {
	c := &Clock{now: at}
	c.changed = sync.NewCond(&c.mu)
	return c
}

func (c *Clock) lock()   { c.mu.Lock() }
func (c *Clock) unlock() { c.mu.Unlock() }

// If any timers are active, a value of `now` earlier than the previous
// setting may lead to undefined behavior.
func (c *Clock) Set(now Time) {
	c.lock()
	c.now = now

	// Check whether we're due for any scheduled events
	c.checkSchedule()
	c.unlock()
}

// If any timers are active, a negative value for dt may lead to undefined
// behavior.
func (c *Clock) Step(dt Duration) {
	c.lock()
	c.now = c.now.Add(dt)

	// Check whether we're due for any scheduled events
	c.checkSchedule()
	c.unlock()
}

func (c *Clock) Now() (now Time) {
	c.lock()
	now = c.now
	c.unlock()
	return
}

// Pending returns the number of timers waiting to fire.
func (c *Clock) Pending() int {
	c.lock()
	defer c.unlock()
	return c.queue.Len()
}

// WaitForTimers blocks until at least n timers are waiting to fire.
//
//	go galaxy.Start(ctx)
//	clock.WaitForTimers(1)  // the schedule is sleeping on its next deadline
//	clock.Step(time.Second) // wake it deterministically
func (c *Clock) WaitForTimers(n int) {
	c.lock()
	for c.queue.Len() < n {
		c.changed.Wait()
	}
	c.unlock()
}

// After sends the clock's time on the returned channel once the clock
// reaches now+d. If d <= 0 the channel is ready immediately.
func (c *Clock) After(d Duration) <-chan Time {
	ch := make(chan Time, 1)
	c.lock()
	defer c.unlock()

	t := &timer{
		f: func(when Time) {
			select {
			case ch <- when:
			default:
			}
		},
		when:  c.now.Add(d),
		index: -1,
	}
	if d <= 0 {
		t.f(c.now)
	} else {
		c.schedule(t)
	}
	return ch
}
