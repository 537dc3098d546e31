// Package tui holds the bubbletea models behind the celestial command's
// interactive mode: the scenario menu, the body picker and the live view
// of a ticking timepiece.
package tui
