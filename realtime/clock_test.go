package realtime_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/noodlebox/celestial/realtime"
)

func TestNowTracksWallClock(t *testing.T) {
	clock := realtime.NewClock()
	before := time.Now()
	now := clock.Now()
	after := time.Now()

	assert.False(t, now.Before(before))
	assert.False(t, now.After(after))
}

func TestAfterNonPositiveIsReady(t *testing.T) {
	clock := realtime.NewClock()
	select {
	case <-clock.After(-time.Second):
	case <-time.After(time.Second):
		t.Fatal("After with a negative duration did not fire")
	}
}

func TestAfterFires(t *testing.T) {
	clock := realtime.NewClock()
	start := clock.Now()

	select {
	case fired := <-clock.After(10 * time.Millisecond):
		assert.GreaterOrEqual(t, fired.Sub(start), 10*time.Millisecond)
	case <-time.After(time.Second):
		t.Fatal("After did not fire")
	}
}
