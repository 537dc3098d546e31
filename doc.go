// Package celestial keeps time of day on celestial bodies whose day length
// need not divide evenly into Earth-like hours, and composes such clocks
// into named collections that tick together. The root package only defines
// the shared interfaces and errors; implementations are supplied by
// subpackages:
//
//   - [github.com/noodlebox/celestial/dayclock]: a single mixed-radix clock.
//   - [github.com/noodlebox/celestial/orrery]: labelled clocks ticked in
//     order.
//   - [github.com/noodlebox/celestial/galaxy]: labelled orreries ticked in
//     parallel halves, optionally on a periodic schedule.
//   - [github.com/noodlebox/celestial/realtime],
//     [github.com/noodlebox/celestial/steppedtime] and
//     [github.com/noodlebox/celestial/relativetime]: time sources driving
//     that schedule.
package celestial
