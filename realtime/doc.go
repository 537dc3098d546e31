// Package realtime provides a [celestial.Source] backed by the [time]
// package, used to pace galaxies and displays against the wall clock.
package realtime
