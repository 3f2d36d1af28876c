package random

import (
	"fmt"
	"math"

	"github.com/mshima/faker/pkg/mersenne"
)

// DefaultPrecision is the number of decimal digits Float keeps when callers
// have no preference.
const DefaultPrecision = 2

// Engine is the source of raw draws.
type Engine interface {
	Seed(seed uint32)
	SeedArray(key []uint32) error
	Uint32() uint32
	Float64() float64
}

// Random wraps an Engine with higher-level draw primitives.
type Random struct {
	engine Engine
}

// New returns a Random drawing from engine. A nil engine gets a fresh,
// entropy-seeded Mersenne Twister.
func New(engine Engine) *Random {
	if engine == nil {
		engine = mersenne.New()
	}
	return &Random{engine: engine}
}

// NewSeeded returns a Random over a Mersenne Twister seeded with seed.
func NewSeeded(seed uint32) *Random {
	return New(mersenne.NewSeeded(seed))
}

// Engine exposes the underlying engine, e.g. to share it with another Random.
func (r *Random) Engine() Engine { return r.engine }

// Seed reseeds the engine from a single value.
func (r *Random) Seed(seed uint32) { r.engine.Seed(seed) }

// SeedArray reseeds the engine from a key.
func (r *Random) SeedArray(key []uint32) error { return r.engine.SeedArray(key) }

// Uint32 returns the next raw engine output.
func (r *Random) Uint32() uint32 { return r.engine.Uint32() }

// Float64 returns a float in [0, 1).
func (r *Random) Float64() float64 { return r.engine.Float64() }

// IntN returns an integer in [0, n). For n <= 0 it returns 0 without
// consuming a draw.
func (r *Random) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	v := int(r.engine.Float64() * float64(n))
	if v >= n {
		v = n - 1
	}
	return v
}

// Integer returns a uniformly distributed integer in [min, max].
// Spans up to 2^53 take one Float64 draw. Wider spans, up to the full int
// range, combine two Uint32 draws into a 64-bit value.
func (r *Random) Integer(min, max int) (int, error) {
	if min > max {
		return 0, fmt.Errorf("%w: [%d, %d]", ErrInvalidRange, min, max)
	}
	span := uint64(max) - uint64(min) + 1 // 0 means the full 64-bit range
	if span != 0 && span <= maxExactSpan {
		return min + int(r.engine.Float64()*float64(span)), nil
	}
	v := uint64(r.engine.Uint32())<<32 | uint64(r.engine.Uint32())
	if span != 0 {
		v %= span
	}
	return int(uint64(min) + v), nil
}

// maxExactSpan is the widest span a float64 counts without gaps.
const maxExactSpan = 1 << 53

// Float returns a float in [min, max] truncated to precision decimal digits.
// When no value at that precision fits, or the scaled span is not finite,
// the draw is returned unrounded. The result never leaves [min, max].
func (r *Random) Float(min, max float64, precision int) (float64, error) {
	if min > max {
		return 0, fmt.Errorf("%w: [%g, %g]", ErrInvalidRange, min, max)
	}
	if precision < 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidPrecision, precision)
	}

	factor := math.Pow10(precision)
	lo := math.Ceil(min * factor)
	hi := math.Floor(max * factor)
	span := hi - lo + 1
	if !(lo <= hi) || math.IsInf(span, 0) {
		return clamp(min+r.engine.Float64()*(max-min), min, max), nil
	}
	scaled := math.Min(lo+math.Floor(r.engine.Float64()*span), hi)
	return clamp(scaled/factor, min, max), nil
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

// Boolean returns true with probability 0.5.
func (r *Random) Boolean() bool {
	return r.engine.Float64() >= 0.5
}

// Chance returns true with probability p. Values outside [0, 1] saturate.
func (r *Random) Chance(p float64) bool {
	return r.engine.Float64() < p
}
