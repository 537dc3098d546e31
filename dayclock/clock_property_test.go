package dayclock

import (
	"fmt"
	"testing"
)

// TestClock_Property_BodyMaximumsFolding checks that Configure followed by
// BodyMaximums keeps the hours and halves the minutes down to an even
// half-minute count capped at 28.
func TestClock_Property_BodyMaximumsFolding(t *testing.T) {
	for h := MinMaxHours; h <= 60; h++ {
		for m := 0; m <= 90; m++ {
			half := m / 2
			half -= half % 2
			if half > maxHalfMinutes {
				half = maxHalfMinutes
			}
			want := fmt.Sprintf("%d:%02d:00", h, half*2)

			if got := New(h, m).BodyMaximums(); got != want {
				t.Fatalf("New(%d, %d).BodyMaximums() = %q, want %q", h, m, got, want)
			}
		}
	}
}

// TestClock_Property_DayLength checks that a clock ticked from midnight
// returns to midnight exactly once per day, and that the number of ticks
// that takes matches the folded day length.
func TestClock_Property_DayLength(t *testing.T) {
	tests := []struct{ hours, minutes int }{
		{4, 0}, {4, 58}, {5, 0}, {9, 55}, {10, 39}, {16, 6}, {17, 14}, {23, 56}, {24, 37},
	}

	for _, tt := range tests {
		c := New(tt.hours, tt.minutes)
		var ticks int
		for {
			if err := c.Tick(); err != nil {
				t.Fatalf("Tick() error = %v", err)
			}
			ticks++
			if c.MilitaryTime() == "0:00:00" {
				break
			}
			if ticks > 48*3600 {
				t.Fatalf("New(%d, %d) did not wrap within two Earth days", tt.hours, tt.minutes)
			}
		}

		want := dayTicks(c)
		if ticks != want {
			t.Errorf("New(%d, %d) wrapped after %d ticks, want %d", tt.hours, tt.minutes, ticks, want)
		}
	}
}

// dayTicks counts the seconds in a day from the clock's maximums: full
// hours plus, with a remainder, two shortened hours of maxMinutes-1
// minutes each.
func dayTicks(c *Clock) int {
	if c.MaxMinutes() == 0 {
		return c.MaxHours() * 3600
	}
	full := c.MaxHours() - 1
	return full*3600 + 2*(c.MaxMinutes()*60)
}

// TestClock_Property_DigitsStayInRange ticks through a day and checks the
// digit invariants on every step.
func TestClock_Property_DigitsStayInRange(t *testing.T) {
	c := New(23, 56)
	for i := 0; i < 30*3600; i++ {
		if err := c.Tick(); err != nil {
			t.Fatalf("Tick() error = %v", err)
		}
		if c.MinutesDigit1() >= Radix || c.SecondsDigit1() >= Radix ||
			c.MinutesDigit2() >= SecondaryRadix || c.SecondsDigit2() >= SecondaryRadix {
			t.Fatalf("digit out of range at tick %d: %s", i, c.MilitaryTime())
		}
		if c.Hours() > c.MaxHours() {
			t.Fatalf("hours %d exceed maximum %d at tick %d", c.Hours(), c.MaxHours(), i)
		}
	}
}
