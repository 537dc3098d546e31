// Package galaxy provides an ordered collection of labelled orreries that
// tick together. A tick advances the two halves of the collection in
// parallel, and a Galaxy can tick itself once per interval on a background
// goroutine, keeping to absolute deadlines so per-tick overhead does not
// accumulate as drift.
//
// Structural changes and reads stop the background schedule first, so they
// never observe a partially applied tick.
package galaxy
