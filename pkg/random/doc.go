// Package random turns a deterministic engine into the draw primitives used by
// every generator: bounded integers, rounded floats, booleans, slice
// picks, subsets, shuffles and weighted picks.
//
// A Random owns exactly one Engine. All randomness in the module enters
// through it, so seeding a Random makes everything built on top of it
// reproducible.
//
// # Draw counts
//
// Every primitive consumes a fixed number of engine steps. These counts are
// part of the contract: changing them changes the output for a given seed.
//
//   - Float64, IntN (n > 0), Float, Boolean, WeightedElement: 1
//   - Integer: 1, or 2 Uint32 draws for spans wider than 2^53
//   - Element: 1, or 0 for an empty slice
//   - Elements: count (after clamping)
//   - Shuffle: len(s)-1, or 0 for fewer than two elements
//   - IntN with n <= 0: 0
//
// # Usage
//
//	r := random.NewSeeded(42)
//	n, err := r.Integer(1, 6)
//	city := random.Element(r, []string{"Berlin", "Paris"})
//	deck = random.Shuffle(r, deck)
//
// A Random is not safe for concurrent use. Wrap the engine with Synchronized
// when several goroutines must share one strictly ordered draw sequence.
package random
