// Package relativetime provides a clock that tracks a reference clock with a
// scaling factor, and may be paused, resumed or rescaled while running. A
// scale of 60 runs a galaxy an hour per real minute.
package relativetime
