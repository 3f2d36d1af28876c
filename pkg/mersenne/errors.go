package mersenne

import "errors"

var (
	// ErrInvalidSeed is returned when a seed value has an unsupported type or shape.
	ErrInvalidSeed = errors.New("mersenne: invalid seed value")
)
