// Package steppedtime provides a [celestial.Source] whose time moves only
// when told to, with Step or Set. Timers fire synchronously during the step
// that reaches them, which makes schedules driven by it deterministic in
// tests. WaitForTimers lets a test wait for a goroutine to register its next
// timer before stepping.
package steppedtime
