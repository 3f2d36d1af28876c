package unique

import (
	"errors"
	"fmt"
	"time"
)

// ErrExhausted is matched by every error Generate returns when it gives up.
var ErrExhausted = errors.New("unique: could not generate a unique value")

// Reason names the budget that ran out.
type Reason string

const (
	ReasonMaxTime    Reason = "max time"
	ReasonMaxRetries Reason = "max retries"
)

// ExhaustedError describes a failed Generate call.
type ExhaustedError struct {
	Reason     Reason
	Elapsed    time.Duration
	Attempts   int
	MaxTime    time.Duration
	MaxRetries int
	StoreSize  int
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("%s: exceeded %s after %d attempts in %s (max time %s, max retries %d, %d values stored)",
		ErrExhausted, e.Reason, e.Attempts, e.Elapsed, e.MaxTime, e.MaxRetries, e.StoreSize)
}

func (e *ExhaustedError) Unwrap() error { return ErrExhausted }
