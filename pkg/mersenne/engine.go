package mersenne

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"time"
)

const (
	stateSize  = 624
	shiftSize  = 397
	matrixA    = 0x9908b0df
	upperMask  = 0x80000000
	lowerMask  = 0x7fffffff
	arraySeed  = 19650218
	scale32    = 1.0 / 4294967296.0
	initMult   = 1812433253
	arrayMult1 = 1664525
	arrayMult2 = 1566083941
)

var mag01 = [2]uint32{0, matrixA}

// Engine is a Mersenne Twister (MT19937) generator.
type Engine struct {
	mt  [stateSize]uint32
	mti int
}

// New returns an engine seeded from crypto/rand, or from the wall clock
// when the entropy source is unavailable. The sequence is not reproducible.
func New() *Engine {
	return NewSeeded(entropySeed())
}

// NewSeeded returns an engine seeded with seed.
func NewSeeded(seed uint32) *Engine {
	e := &Engine{}
	e.Seed(seed)
	return e
}

// Seed resets the state from a single 32-bit value.
func (e *Engine) Seed(seed uint32) {
	e.mt[0] = seed
	for i := 1; i < stateSize; i++ {
		prev := e.mt[i-1]
		e.mt[i] = initMult*(prev^(prev>>30)) + uint32(i)
	}
	e.mti = stateSize
}

// SeedArray resets the state from a key of 32-bit values.
// An empty key is rejected with ErrInvalidSeed.
func (e *Engine) SeedArray(key []uint32) error {
	if len(key) == 0 {
		return fmt.Errorf("%w: empty seed array", ErrInvalidSeed)
	}

	e.Seed(arraySeed)
	i, j := 1, 0
	k := max(stateSize, len(key))
	for ; k > 0; k-- {
		prev := e.mt[i-1]
		e.mt[i] = (e.mt[i] ^ ((prev ^ (prev >> 30)) * arrayMult1)) + key[j] + uint32(j)
		i++
		j++
		if i >= stateSize {
			e.mt[0] = e.mt[stateSize-1]
			i = 1
		}
		if j >= len(key) {
			j = 0
		}
	}
	for k = stateSize - 1; k > 0; k-- {
		prev := e.mt[i-1]
		e.mt[i] = (e.mt[i] ^ ((prev ^ (prev >> 30)) * arrayMult2)) - uint32(i)
		i++
		if i >= stateSize {
			e.mt[0] = e.mt[stateSize-1]
			i = 1
		}
	}
	e.mt[0] = upperMask
	return nil
}

// SeedValue seeds the engine from a loosely typed value. Supported shapes are
// a single integer (any Go integer kind) or a non-empty slice of integers.
// Integers are truncated to their low 32 bits, the same way a uint32
// conversion does. Anything else fails with ErrInvalidSeed and leaves the
// state untouched.
func (e *Engine) SeedValue(v any) error {
	switch s := v.(type) {
	case uint32:
		e.Seed(s)
	case int:
		e.Seed(uint32(s))
	case int32:
		e.Seed(uint32(s))
	case int64:
		e.Seed(uint32(s))
	case uint:
		e.Seed(uint32(s))
	case uint64:
		e.Seed(uint32(s))
	case []uint32:
		return e.SeedArray(s)
	case []int:
		key := make([]uint32, len(s))
		for i, n := range s {
			key[i] = uint32(n)
		}
		return e.SeedArray(key)
	case []int64:
		key := make([]uint32, len(s))
		for i, n := range s {
			key[i] = uint32(n)
		}
		return e.SeedArray(key)
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidSeed, v)
	}
	return nil
}

// Uint32 returns the next tempered 32-bit output.
func (e *Engine) Uint32() uint32 {
	if e.mti >= stateSize {
		e.twist()
	}

	y := e.mt[e.mti]
	e.mti++

	y ^= y >> 11
	y ^= (y << 7) & 0x9d2c5680
	y ^= (y << 15) & 0xefc60000
	y ^= y >> 18
	return y
}

// Uint64 combines two consecutive outputs, high word first. It lets an
// Engine act as a math/rand/v2 Source.
func (e *Engine) Uint64() uint64 {
	hi := uint64(e.Uint32())
	return hi<<32 | uint64(e.Uint32())
}

// Float64 returns the next output scaled to [0, 1).
func (e *Engine) Float64() float64 {
	return float64(e.Uint32()) * scale32
}

// Rand returns floor(Float64()*(max-min) + min), an integer in [min, max).
func (e *Engine) Rand(max, min int) int {
	return min + int(e.Float64()*float64(max-min))
}

// twist regenerates the full block of stateSize words.
func (e *Engine) twist() {
	var y uint32
	kk := 0
	for ; kk < stateSize-shiftSize; kk++ {
		y = (e.mt[kk] & upperMask) | (e.mt[kk+1] & lowerMask)
		e.mt[kk] = e.mt[kk+shiftSize] ^ (y >> 1) ^ mag01[y&1]
	}
	for ; kk < stateSize-1; kk++ {
		y = (e.mt[kk] & upperMask) | (e.mt[kk+1] & lowerMask)
		e.mt[kk] = e.mt[kk+shiftSize-stateSize] ^ (y >> 1) ^ mag01[y&1]
	}
	y = (e.mt[stateSize-1] & upperMask) | (e.mt[0] & lowerMask)
	e.mt[stateSize-1] = e.mt[shiftSize-1] ^ (y >> 1) ^ mag01[y&1]
	e.mti = 0
}

func entropySeed() uint32 {
	var b [4]byte
	if _, err := crand.Read(b[:]); err != nil {
		return uint32(time.Now().UnixNano())
	}
	return binary.LittleEndian.Uint32(b[:])
}
