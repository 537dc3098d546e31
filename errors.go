package celestial

import "errors"

var (
	// ErrInvalidInput is returned when a nil clock or orrery is added to a
	// collection.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound is returned by lookups of an unknown label or name.
	ErrNotFound = errors.New("not found")

	// ErrMissingMember is returned by Tick when a collection holds a nil
	// member. Add never stores one.
	ErrMissingMember = errors.New("missing member")
)
