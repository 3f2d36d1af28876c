package random

import "fmt"

// Element returns a uniformly chosen element of s. An empty slice yields the
// zero value of T ("" for strings) and consumes no draw.
func Element[T any](r *Random, s []T) T {
	if len(s) == 0 {
		var zero T
		return zero
	}
	return s[r.IntN(len(s))]
}

// Elements returns count distinct positions of s in random order. count is
// clamped to [0, len(s)]. The input is not modified.
func Elements[T any](r *Random, s []T, count int) []T {
	count = min(max(count, 0), len(s))
	cp := make([]T, len(s))
	copy(cp, s)

	n := len(cp)
	for i := n - 1; i >= n-count; i-- {
		j := r.IntN(i + 1)
		cp[i], cp[j] = cp[j], cp[i]
	}
	return cp[n-count:]
}

// Shuffle permutes s in place using the modern Fisher-Yates algorithm and
// returns it for chaining.
func Shuffle[T any](r *Random, s []T) []T {
	for i := len(s) - 1; i > 0; i-- {
		j := r.IntN(i + 1)
		s[i], s[j] = s[j], s[i]
	}
	return s
}

// Weighted pairs a value with its relative weight.
type Weighted[T any] struct {
	Weight float64
	Value  T
}

// WeightedElement picks a value with probability proportional to its weight.
// An empty slice yields the zero value without consuming a draw.
func WeightedElement[T any](r *Random, entries []Weighted[T]) (T, error) {
	var zero T
	if len(entries) == 0 {
		return zero, nil
	}

	var total float64
	for i, e := range entries {
		if e.Weight < 0 {
			return zero, fmt.Errorf("%w: entry %d has weight %g", ErrInvalidWeight, i, e.Weight)
		}
		total += e.Weight
	}
	if total <= 0 {
		return zero, ErrInvalidWeight
	}

	target := r.Float64() * total
	var acc float64
	for _, e := range entries {
		acc += e.Weight
		if acc > target {
			return e.Value, nil
		}
	}
	// Float rounding can leave target == total; the last positive entry wins.
	for i := len(entries) - 1; i >= 0; i-- {
		if entries[i].Weight > 0 {
			return entries[i].Value, nil
		}
	}
	return zero, ErrInvalidWeight
}
