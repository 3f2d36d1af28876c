package faker

import "errors"

var (
	// ErrUnknownMethod is returned by Call for names not present in Methods.
	ErrUnknownMethod = errors.New("faker: unknown method")

	// ErrInvalidOption is returned by New when an option cannot be applied,
	// and by generators given options they cannot satisfy.
	ErrInvalidOption = errors.New("faker: invalid option")
)
