// Package mersenne implements the MT19937 Mersenne Twister, the deterministic
// pseudo-random engine every generator in this module draws from.
//
// An Engine is an explicitly owned value: two engines seeded with the same
// value produce the same unbounded sequence, and reseeding rebuilds the whole
// state register without reference to what was there before.
//
// # Usage
//
//	e := mersenne.NewSeeded(42)
//	n := e.Uint32()  // next 32-bit output
//	f := e.Float64() // next output scaled to [0, 1)
//
// Seeds can be a single uint32 (Seed) or a key of uint32 values (SeedArray),
// matching the init_genrand and init_by_array routines of the reference
// implementation. SeedValue accepts the loosely typed forms that arrive from
// configuration and rejects anything else with ErrInvalidSeed.
//
// Every call to Uint32, Float64 or Rand advances the state by exactly one
// step; Uint64 advances it by two.
//
// An Engine is not safe for concurrent use. Callers that share one draw
// sequence across goroutines must serialize access themselves (see
// random.Synchronized).
package mersenne
