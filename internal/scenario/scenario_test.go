package scenario_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noodlebox/celestial/bodies"
	"github.com/noodlebox/celestial/dayclock"
	"github.com/noodlebox/celestial/internal/scenario"
)

func quiet() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

func TestPlanet(t *testing.T) {
	earth, err := bodies.Default().Lookup("Earth")
	require.NoError(t, err)

	c := scenario.Planet(earth)
	assert.Equal(t, "23:56:00", c.BodyMaximums())
	assert.Equal(t, "0:00:00", c.MilitaryTime())
}

func TestOrrery(t *testing.T) {
	table := bodies.Default()
	o, err := scenario.Orrery(table, scenario.NewRand(1), quiet())
	require.NoError(t, err)

	require.Equal(t, len(table.Bodies), o.Len())
	for i, b := range table.Bodies {
		assert.Equal(t, scenario.Label(b), o.Labels()[i])

		c, err := o.Get(scenario.Label(b))
		require.NoError(t, err)
		assert.LessOrEqual(t, c.Hours(), 1)
		assert.Less(t, c.MinutesDigit1(), dayclock.Radix)
		assert.Less(t, c.SecondsDigit1(), dayclock.Radix)
	}
}

func TestOrreryDeterministicSeed(t *testing.T) {
	table := bodies.Default()
	a, err := scenario.Orrery(table, scenario.NewRand(42), quiet())
	require.NoError(t, err)
	b, err := scenario.Orrery(table, scenario.NewRand(42), quiet())
	require.NoError(t, err)

	assert.Equal(t, a.MilitaryTimes(), b.MilitaryTimes())
}

func TestGalaxy(t *testing.T) {
	table := bodies.Default()
	g, err := scenario.Galaxy(table, scenario.NewRand(7), quiet())
	require.NoError(t, err)

	assert.Equal(t, []string{scenario.SystemA, scenario.SystemB}, g.Labels())
	assert.Equal(t, 2*len(table.Bodies), g.Len())

	times := g.Times()
	require.Len(t, times, 2*len(table.Bodies))
	assert.True(t, strings.HasPrefix(times[0], "Star System A - Mercury: "))
	assert.True(t, strings.HasPrefix(times[len(times)-1], "Star System B - Neptune: "))

	require.NoError(t, g.Tick())
	g.Close()
	assert.Zero(t, g.Len())
}
