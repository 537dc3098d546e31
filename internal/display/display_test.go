package display_test

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noodlebox/celestial/dayclock"
	"github.com/noodlebox/celestial/internal/display"
	"github.com/noodlebox/celestial/steppedtime"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestFrame(t *testing.T) {
	assert.Equal(t, "a\nb\n\n", display.Frame([]string{"a", "b"}))
	assert.Equal(t, "\n", display.Frame(nil))
}

func TestRun(t *testing.T) {
	clock := steppedtime.NewClock(time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC))
	c := dayclock.New(24, 0)
	var out syncBuffer

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- display.Run(ctx, &out, c, clock, time.Second) }()

	clock.WaitForTimers(1)
	assert.Equal(t, "12:00:00 AM\n\n", out.String())

	clock.Step(time.Second)
	clock.WaitForTimers(1)
	assert.Equal(t, "12:00:00 AM\n\n12:00:01 AM\n\n", out.String())

	cancel()
	require.NoError(t, <-done)
}

type failing struct{}

func (failing) Times() []string { return []string{"x"} }
func (failing) Tick() error     { return errors.New("stuck") }

func TestRunTickError(t *testing.T) {
	clock := steppedtime.NewClock(time.Time{})
	var out bytes.Buffer

	err := display.Run(context.Background(), &out, failing{}, clock, time.Second)
	require.ErrorContains(t, err, "stuck")
	assert.Equal(t, "x\n\n", out.String())
}
