package dayclock

import (
	"github.com/noodlebox/celestial"
)

// Digit radices.
const (
	Radix          = 6  // Tens digit of minutes and seconds.
	SecondaryRadix = 10 // Units digit of minutes and seconds.

	radixMax          = Radix - 1
	secondaryRadixMax = SecondaryRadix - 1
)

// MinMaxHours is the shortest day, in hours, a Clock can be configured with.
const MinMaxHours = 2

// halfHourMinutes is half an hour, the amount of half-minutes an odd hour is
// folded into.
const halfHourMinutes = Radix * SecondaryRadix / 2

// maxHalfMinutes caps the half-minute remainder a day may carry.
const maxHalfMinutes = (radixMax/2*SecondaryRadix + secondaryRadixMax) - 1

var _ celestial.Timepiece = (*Clock)(nil)

// Clock keeps the time of day on a single body. The zero value is a clock
// stopped at midnight with no configured day; use New. A Clock is not safe
// for concurrent use; collections serialize access to the clocks they own.
type Clock struct {
	maxHours   int
	maxMinutes int

	hours         int
	minutesDigit1 int
	minutesDigit2 int
	secondsDigit1 int
	secondsDigit2 int
}

// New returns a Clock at 0:00:00 for a body whose day lasts hoursPerDay
// hours and minutesPerHour minutes.
func New(hoursPerDay, minutesPerHour int) *Clock {
	c := &Clock{}
	c.Configure(hoursPerDay, minutesPerHour)
	return c
}

// Configure derives the clock's maximums from a body's day length. The
// minutes are halved and rounded down to an even count of at most 28. An
// odd hour count gives up its last hour as 30 extra half-minutes, and a
// nonzero half-minute remainder reserves one more hour slot to be spent
// before the day resets. The current time is kept, with the hour clamped to
// the new maximum.
func (c *Clock) Configure(hoursPerDay, minutesPerHour int) {
	h := hoursPerDay
	if h < MinMaxHours {
		h = MinMaxHours
	}

	m := minutesPerHour / 2
	if m < 0 {
		m = 0
	}
	if m%2 == 1 {
		m--
	}
	if m > maxHalfMinutes {
		m = maxHalfMinutes
	}

	if h%2 == 1 {
		h--
		m += halfHourMinutes
	}
	if m > 0 {
		h++
	}

	c.maxHours = h
	c.maxMinutes = m
	c.hours = clamp(c.hours, c.maxHours)
}

// MaxHours returns the derived hour maximum.
func (c *Clock) MaxHours() int { return c.maxHours }

// MaxMinutes returns the derived half-minute remainder.
func (c *Clock) MaxMinutes() int { return c.maxMinutes }

// BodyDayLength undoes the folding done by Configure and returns the day
// length the clock keeps, in hours and minutes.
func (c *Clock) BodyDayLength() (hours, minutes int) {
	trulyOdd := c.maxHours%2 == 1 && c.maxMinutes >= halfHourMinutes

	if trulyOdd || c.maxMinutes == 0 {
		hours = c.maxHours
	} else {
		hours = c.maxHours - 1
	}

	if hours%2 == 1 {
		minutes = (c.maxMinutes - halfHourMinutes) * 2
	} else {
		minutes = c.maxMinutes * 2
	}
	return
}

// BodyMaximums formats BodyDayLength as H:MM:00.
func (c *Clock) BodyMaximums() string {
	hours, minutes := c.BodyDayLength()
	return formatTime(hours, minutes/SecondaryRadix, minutes%SecondaryRadix, 0, 0)
}

func clamp(value, max int) int {
	if value > max {
		return max
	}
	if value < 0 {
		return 0
	}
	return value
}

// Setters clamp their argument into the digit's range.

func (c *Clock) SetHours(h int)         { c.hours = clamp(h, c.maxHours) }
func (c *Clock) SetMinutesDigit1(m int) { c.minutesDigit1 = clamp(m, radixMax) }
func (c *Clock) SetMinutesDigit2(m int) { c.minutesDigit2 = clamp(m, secondaryRadixMax) }
func (c *Clock) SetSecondsDigit1(s int) { c.secondsDigit1 = clamp(s, radixMax) }
func (c *Clock) SetSecondsDigit2(s int) { c.secondsDigit2 = clamp(s, secondaryRadixMax) }

// SetTime sets hours, minutes and seconds at once. Minutes and seconds are
// clamped to [0, 59] before being split into digits.
func (c *Clock) SetTime(hours, minutes, seconds int) {
	const unitMax = radixMax*SecondaryRadix + secondaryRadixMax

	minutes = clamp(minutes, unitMax)
	seconds = clamp(seconds, unitMax)

	c.SetHours(hours)
	c.SetMinutesDigit1(minutes / SecondaryRadix)
	c.SetMinutesDigit2(minutes % SecondaryRadix)
	c.SetSecondsDigit1(seconds / SecondaryRadix)
	c.SetSecondsDigit2(seconds % SecondaryRadix)
}

func (c *Clock) Hours() int         { return c.hours }
func (c *Clock) MinutesDigit1() int { return c.minutesDigit1 }
func (c *Clock) MinutesDigit2() int { return c.minutesDigit2 }
func (c *Clock) SecondsDigit1() int { return c.secondsDigit1 }
func (c *Clock) SecondsDigit2() int { return c.secondsDigit2 }

func (c *Clock) minutes() int {
	return c.minutesDigit1*SecondaryRadix + c.minutesDigit2
}
