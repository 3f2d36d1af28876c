package pattern

import "errors"

var (
	// ErrNegativeCount is returned when a repeat count is negative.
	ErrNegativeCount = errors.New("pattern: repeat count must not be negative")

	// ErrCountTooLarge is returned when a repeat count exceeds MaxRepeat.
	ErrCountTooLarge = errors.New("pattern: repeat count too large")
)
