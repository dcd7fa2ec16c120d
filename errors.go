package readabledelta

import "errors"

var (
	// ErrInvalidUnit is returned when a requested unit is not part of the
	// unit set of the span being decomposed.
	ErrInvalidUnit = errors.New("invalid unit")

	// ErrInvalidStyle is returned for a Style outside Normal, Short and Abbrev.
	ErrInvalidStyle = errors.New("invalid style")

	// ErrUnknownUnits is returned by SortUnits and FindSmallestUnit when a
	// value is not a known Unit at all.
	ErrUnknownUnits = errors.New("unknown units")

	// ErrNoUnits is returned by FindSmallestUnit for an empty list.
	ErrNoUnits = errors.New("no units given")

	// ErrTypeMismatch is returned by Format for values that are neither a
	// fixed-duration nor a calendar-relative span.
	ErrTypeMismatch = errors.New("type mismatch")
)
