package random

import "errors"

var (
	// ErrInvalidRange is returned when min is greater than max.
	ErrInvalidRange = errors.New("random: min must not be greater than max")

	// ErrInvalidPrecision is returned for a negative decimal precision.
	ErrInvalidPrecision = errors.New("random: precision must not be negative")

	// ErrInvalidWeight is returned when a weighted pick has a negative weight
	// or no positive weight at all.
	ErrInvalidWeight = errors.New("random: weights must be non-negative with a positive total")
)
