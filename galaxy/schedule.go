package galaxy

import (
	"context"
	"sync"
)

// schedule is the handle on a running background loop.
type schedule struct {
	mu     sync.Mutex // Protects cancel and done; never held while waiting.
	cancel context.CancelFunc
	done   chan struct{}
	err    error // Failed tick that ended the last loop.
}

// Running reports whether the background schedule is active.
func (g *Galaxy) Running() bool {
	g.schedule.mu.Lock()
	defer g.schedule.mu.Unlock()
	return g.schedule.done != nil
}

// Done returns a channel that is closed once the background schedule ends,
// whether by Stop, by its context or by a failed tick. When the schedule is
// not running the channel is already closed.
func (g *Galaxy) Done() <-chan struct{} {
	g.schedule.mu.Lock()
	defer g.schedule.mu.Unlock()
	if g.schedule.done != nil {
		return g.schedule.done
	}
	closed := make(chan struct{})
	close(closed)
	return closed
}

// Err returns the tick error that ended the most recent schedule, or nil if
// it ended some other way or is still running.
func (g *Galaxy) Err() error {
	g.schedule.mu.Lock()
	defer g.schedule.mu.Unlock()
	return g.schedule.err
}

// Start begins ticking the Galaxy once per interval on a background
// goroutine, starting with an immediate tick. Deadlines are absolute: the
// k-th tick is due k intervals after Start, however long earlier ticks
// took. A tick that outlasts the interval is logged as a warning and the
// next one follows immediately. The schedule ends when Stop is called, ctx
// is done, or a tick fails. Calling Start while running does nothing.
func (g *Galaxy) Start(ctx context.Context) {
	g.lifecycle.Lock()
	defer g.lifecycle.Unlock()

	s := &g.schedule
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.done != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	s.cancel, s.done, s.err = cancel, done, nil

	g.logger.Debug("schedule started", "interval", g.interval)
	go g.run(ctx, done)
}

// Stop ends the background schedule and waits for it to exit. No tick is
// in flight once Stop returns. Calling Stop while stopped does nothing.
func (g *Galaxy) Stop() {
	g.lifecycle.Lock()
	defer g.lifecycle.Unlock()

	s := &g.schedule
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.mu.Unlock()
	if done == nil {
		return
	}

	cancel()
	<-done
}

// halt cancels the background schedule without waiting for it, so it is
// safe to call from the schedule's own goroutine.
func (g *Galaxy) halt() {
	s := &g.schedule
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.mu.Unlock()
}

func (g *Galaxy) run(ctx context.Context, done chan struct{}) {
	defer close(done)
	defer g.release(done)

	next := g.source.Now()
	for {
		if ctx.Err() != nil {
			g.logger.Debug("schedule stopped")
			return
		}

		start := g.source.Now()
		if err := g.Tick(); err != nil {
			g.logger.Error("schedule stopped after failed tick", "error", err)
			g.fail(done, err)
			return
		}
		if elapsed := g.source.Now().Sub(start); elapsed > g.interval {
			g.logger.Warn("tick exceeded interval", "elapsed", elapsed, "interval", g.interval)
		}

		next = next.Add(g.interval)
		select {
		case <-ctx.Done():
			g.logger.Debug("schedule stopped")
			return
		case <-g.source.After(next.Sub(g.source.Now())):
		}
	}
}

// fail records err for the loop that owns done.
func (g *Galaxy) fail(done chan struct{}, err error) {
	s := &g.schedule
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.done == done {
		s.err = err
	}
}

// release clears the handle if it still belongs to the loop that owns
// done, so Running reports false once a loop ends on its own.
func (g *Galaxy) release(done chan struct{}) {
	s := &g.schedule
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.done != done {
		return
	}
	s.cancel()
	s.cancel, s.done = nil, nil
}
