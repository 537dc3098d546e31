// Package orrery provides an ordered collection of labelled day clocks,
// such as the planets of one star system, that tick together.
package orrery
