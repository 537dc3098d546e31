package dayclock

import (
	"strconv"
	"strings"
)

const delimiter = ':'

// Meridiem indicators returned by Clock.Meridiem.
const (
	AnteMeridiem = " AM"
	PostMeridiem = " PM"
)

func formatTime(hours, m1, m2, s1, s2 int) string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(hours))
	b.WriteByte(delimiter)
	b.WriteString(strconv.Itoa(m1))
	b.WriteString(strconv.Itoa(m2))
	b.WriteByte(delimiter)
	b.WriteString(strconv.Itoa(s1))
	b.WriteString(strconv.Itoa(s2))
	return b.String()
}

// MilitaryTime formats the internal time as H:MM:SS, counting hours from
// the start of the day.
func (c *Clock) MilitaryTime() string {
	return formatTime(c.hours, c.minutesDigit1, c.minutesDigit2, c.secondsDigit1, c.secondsDigit2)
}

// StandardHours maps the hour into a 12-hour style display value.
func (c *Clock) StandardHours() int {
	half := c.maxHours / 2

	if c.maxMinutes == 0 {
		switch {
		case c.hours == 0:
			return half
		case c.hours == c.maxHours:
			return 0
		case c.hours > half:
			return c.hours - half
		}
		return c.hours
	}

	if c.hours > half {
		// The half-day remainder hour takes one slot.
		return c.hours - half - 1
	}
	return c.hours
}

// Meridiem returns AnteMeridiem or PostMeridiem. Without a minute
// remainder, the hour equal to maxHours stands for midnight and is AM.
func (c *Clock) Meridiem() string {
	half := c.maxHours / 2

	if c.maxMinutes == 0 && c.hours >= half && c.hours != c.maxHours {
		return PostMeridiem
	}
	if c.maxMinutes != 0 && c.hours > half {
		return PostMeridiem
	}
	return AnteMeridiem
}

// StandardTime formats the time as H:MM:SS followed by the meridiem.
func (c *Clock) StandardTime() string {
	return formatTime(c.StandardHours(), c.minutesDigit1, c.minutesDigit2, c.secondsDigit1, c.secondsDigit2) +
		c.Meridiem()
}

func (c *Clock) String() string { return c.StandardTime() }

// Times returns the standard time as the clock's only display string.
func (c *Clock) Times() []string {
	return []string{c.StandardTime()}
}
