package galaxy

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noodlebox/celestial"
	"github.com/noodlebox/celestial/dayclock"
	"github.com/noodlebox/celestial/orrery"
	"github.com/noodlebox/celestial/steppedtime"
)

func TestTickMissingMember(t *testing.T) {
	g := New(WithLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))))
	healthy := orrery.New()
	require.NoError(t, healthy.Add("c", dayclock.New(24, 0)))
	g.orreries = append(g.orreries,
		entry{label: "broken"},
		entry{label: "healthy", orrery: healthy},
	)

	err := g.Tick()
	require.ErrorIs(t, err, celestial.ErrMissingMember)
	assert.Contains(t, err.Error(), "broken")
	assert.Zero(t, g.Ticks())

	// The other half still advanced.
	assert.Equal(t, []string{"c0:00:01"}, healthy.MilitaryTimes())
}

func TestScheduleEndsOnFailedTick(t *testing.T) {
	var buf bytes.Buffer
	clock := steppedtime.NewClock(time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC))
	g := New(
		WithLogger(slog.New(slog.NewTextHandler(&buf, nil))),
		WithSource(clock),
	)
	g.orreries = append(g.orreries, entry{label: "broken"})

	g.Start(context.Background())
	require.Eventually(t, func() bool { return !g.Running() }, time.Second, time.Millisecond)

	g.Stop()
	assert.Zero(t, clock.Pending())
	assert.Contains(t, buf.String(), "failed tick")
}

func TestFailedTickReportedByDoneAndErr(t *testing.T) {
	clock := steppedtime.NewClock(time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC))
	g := New(
		WithLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))),
		WithSource(clock),
	)
	g.orreries = append(g.orreries, entry{label: "broken"})

	g.Start(context.Background())
	select {
	case <-g.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("schedule still running after a failed tick")
	}
	require.ErrorIs(t, g.Err(), celestial.ErrMissingMember)

	// A new schedule starts with a clean slate.
	g.orreries = nil
	g.Start(context.Background())
	clock.WaitForTimers(1)
	assert.NoError(t, g.Err())
	g.Stop()
}

func TestTimesSkipsMissingMember(t *testing.T) {
	g := New(WithLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))))
	healthy := orrery.New()
	require.NoError(t, healthy.Add("c ", dayclock.New(24, 0)))
	g.orreries = append(g.orreries,
		entry{label: "broken "},
		entry{label: "healthy ", orrery: healthy},
	)

	assert.Equal(t, 1, g.Len())
	assert.Equal(t, []string{"healthy c 0:00:00"}, g.MilitaryTimes())
	assert.Equal(t, []string{"healthy c 12:00:00 AM"}, g.Times())
}
