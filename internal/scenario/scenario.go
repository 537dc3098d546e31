// Package scenario builds the timepieces offered by the celestial command: a
// single body's clock, an orrery of every body in a table, and a galaxy of
// two star systems.
package scenario

import (
	"log/slog"
	"math/rand/v2"

	"github.com/noodlebox/celestial/bodies"
	"github.com/noodlebox/celestial/dayclock"
	"github.com/noodlebox/celestial/galaxy"
	"github.com/noodlebox/celestial/orrery"
)

// Labels of the two star systems in a Galaxy scenario.
const (
	SystemA = "Star System A - "
	SystemB = "Star System B - "
)

// Planet returns a clock for b starting at 0:00:00.
func Planet(b bodies.Body) *dayclock.Clock {
	return b.NewClock()
}

// Label returns the label a body's clock is stored under in an orrery.
func Label(b bodies.Body) string {
	return b.Name + ": "
}

// Orrery returns one clock per body in table, each started at a random time
// early in its day.
func Orrery(table *bodies.Table, rng *rand.Rand, logger *slog.Logger) (*orrery.Orrery, error) {
	o := orrery.New(orrery.WithLogger(logger))
	for _, b := range table.Bodies {
		c := b.NewClock()
		Randomize(c, rng)
		if err := o.Add(Label(b), c); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// Galaxy returns two star systems, each an independently randomized
// orrery of table.
func Galaxy(table *bodies.Table, rng *rand.Rand, logger *slog.Logger, opts ...galaxy.Option) (*galaxy.Galaxy, error) {
	g := galaxy.New(append([]galaxy.Option{galaxy.WithLogger(logger)}, opts...)...)
	for _, label := range []string{SystemA, SystemB} {
		o, err := Orrery(table, rng, logger)
		if err != nil {
			return nil, err
		}
		if err := g.Add(label, o); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Randomize sets c to a random time within its first two hours.
func Randomize(c *dayclock.Clock, rng *rand.Rand) {
	c.SetHours(rng.IntN(2))
	c.SetMinutesDigit1(rng.IntN(dayclock.Radix))
	c.SetMinutesDigit2(rng.IntN(dayclock.SecondaryRadix))
	c.SetSecondsDigit1(rng.IntN(dayclock.Radix))
	c.SetSecondsDigit2(rng.IntN(dayclock.SecondaryRadix))
}

// NewRand returns a generator seeded with seed, or from the runtime's
// entropy source when seed is zero.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed))
}
