package dayclock

// Tick advances the clock by one second. A second that lands on a day
// boundary is absorbed by the reset. Tick never fails; the error result
// only satisfies celestial.Timepiece.
func (c *Clock) Tick() error {
	if c.CheckReset() {
		return nil
	}

	c.secondsDigit2++
	if c.secondsDigit2 < SecondaryRadix {
		return nil
	}
	c.secondsDigit2 = 0
	c.secondsDigit1++
	if c.secondsDigit1 < Radix {
		return nil
	}
	c.secondsDigit1 = 0
	c.tickMinutes()
	return nil
}

func (c *Clock) tickMinutes() {
	c.minutesDigit2++
	if c.minutesDigit2 < SecondaryRadix {
		return
	}
	c.minutesDigit2 = 0
	c.minutesDigit1++
	if c.minutesDigit1 < Radix {
		return
	}
	c.minutesDigit1 = 0
	c.hours++
}

// CheckReset resets the clock if the next second would run past the end
// of a half-day or of the day, and reports whether it did.
//
// Without a minute remainder the day ends after hour maxHours-1 at 59:59.
// With one, the half-day hour and the final hour both end once the minutes
// reach maxMinutes-1; the first rolls into the second half of the day and
// the second rolls over to midnight.
func (c *Clock) CheckReset() bool {
	secondsMax := c.secondsDigit1 == radixMax && c.secondsDigit2 == secondaryRadixMax
	if !secondsMax {
		return false
	}

	half := c.maxHours / 2

	if c.maxMinutes == 0 {
		hoursMax := c.hours >= c.maxHours-1 &&
			c.minutesDigit1 == radixMax && c.minutesDigit2 == secondaryRadixMax
		if !hoursMax {
			return false
		}
		c.zero(0)
		return true
	}

	minutesMax := (c.hours == half || c.hours >= c.maxHours) &&
		c.minutes() >= c.maxMinutes-1
	if !minutesMax {
		return false
	}
	if c.hours == half {
		c.zero(half + 1)
	} else {
		c.zero(0)
	}
	return true
}

func (c *Clock) zero(hours int) {
	c.hours = hours
	c.minutesDigit1 = 0
	c.minutesDigit2 = 0
	c.secondsDigit1 = 0
	c.secondsDigit2 = 0
}
