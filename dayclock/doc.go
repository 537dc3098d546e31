// Package dayclock provides a time-of-day clock for a celestial body whose
// rotation period is given in hours and minutes. Minutes and seconds are
// kept as pairs of mixed-radix digits (a base-6 tens digit and a base-10
// units digit). The configured day is folded so that it always splits into
// two equal halves for AM/PM display, with any leftover minutes carried in a
// shortened final hour of each half.
package dayclock
