package random_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mshima/faker/pkg/mersenne"
	"github.com/mshima/faker/pkg/random"
)

// countingEngine records how many draws were taken.
type countingEngine struct {
	*mersenne.Engine
	draws int
}

func (c *countingEngine) Uint32() uint32 {
	c.draws++
	return c.Engine.Uint32()
}

func (c *countingEngine) Float64() float64 {
	c.draws++
	return c.Engine.Float64()
}

func newCounting(seed uint32) (*random.Random, *countingEngine) {
	e := &countingEngine{Engine: mersenne.NewSeeded(seed)}
	return random.New(e), e
}

func TestRandom_Integer(t *testing.T) {
	r := random.NewSeeded(1)

	t.Run("inclusive bounds", func(t *testing.T) {
		seen := make(map[int]bool)
		for i := 0; i < 2000; i++ {
			n, err := r.Integer(1, 6)
			require.NoError(t, err)
			require.GreaterOrEqual(t, n, 1)
			require.LessOrEqual(t, n, 6)
			seen[n] = true
		}
		assert.Len(t, seen, 6, "every face should appear")
	})

	t.Run("negative range", func(t *testing.T) {
		for i := 0; i < 500; i++ {
			n, err := r.Integer(-10, -5)
			require.NoError(t, err)
			require.GreaterOrEqual(t, n, -10)
			require.LessOrEqual(t, n, -5)
		}
	})

	t.Run("degenerate range", func(t *testing.T) {
		n, err := r.Integer(7, 7)
		require.NoError(t, err)
		assert.Equal(t, 7, n)
	})

	t.Run("inverted range", func(t *testing.T) {
		_, err := r.Integer(5, 1)
		assert.ErrorIs(t, err, random.ErrInvalidRange)
	})

	t.Run("spans wider than 2^63", func(t *testing.T) {
		negatives, positives := 0, 0
		for i := 0; i < 1000; i++ {
			n, err := r.Integer(math.MinInt, math.MaxInt)
			require.NoError(t, err)
			if n < 0 {
				negatives++
			} else {
				positives++
			}
		}
		assert.InDelta(t, 500, negatives, 100)
		assert.InDelta(t, 500, positives, 100)
	})

	t.Run("wide positive range", func(t *testing.T) {
		lo, hi := math.MaxInt/2, math.MaxInt
		for i := 0; i < 1000; i++ {
			n, err := r.Integer(lo, hi)
			require.NoError(t, err)
			require.GreaterOrEqual(t, n, lo)
			require.LessOrEqual(t, n, hi)
		}
	})
}

func TestRandom_IntN(t *testing.T) {
	r, e := newCounting(2)

	assert.Equal(t, 0, r.IntN(0))
	assert.Equal(t, 0, r.IntN(-3))
	assert.Equal(t, 0, e.draws, "non-positive n must not draw")

	for i := 0; i < 1000; i++ {
		n := r.IntN(3)
		require.GreaterOrEqual(t, n, 0)
		require.Less(t, n, 3)
	}
}

func TestRandom_Float(t *testing.T) {
	r := random.NewSeeded(3)

	t.Run("precision and bounds", func(t *testing.T) {
		for i := 0; i < 1000; i++ {
			f, err := r.Float(-1.5, 2.25, 2)
			require.NoError(t, err)
			require.GreaterOrEqual(t, f, -1.5)
			require.LessOrEqual(t, f, 2.25)
			scaled := f * 100
			require.InDelta(t, math.Round(scaled), scaled, 1e-6)
		}
	})

	t.Run("zero precision yields integers", func(t *testing.T) {
		f, err := r.Float(0, 10, 0)
		require.NoError(t, err)
		assert.Equal(t, math.Trunc(f), f)
	})

	t.Run("scaled span beyond int64", func(t *testing.T) {
		cases := []struct {
			min, max  float64
			precision int
		}{
			{0, 1e5, 15},
			{0, 1e18, 2},
			{-1e18, 1e18, 4},
			{0, 1, 400},
		}
		for _, tc := range cases {
			for i := 0; i < 1000; i++ {
				f, err := r.Float(tc.min, tc.max, tc.precision)
				require.NoError(t, err)
				require.GreaterOrEqual(t, f, tc.min, "Float(%g, %g, %d)", tc.min, tc.max, tc.precision)
				require.LessOrEqual(t, f, tc.max, "Float(%g, %g, %d)", tc.min, tc.max, tc.precision)
			}
		}
	})

	t.Run("errors", func(t *testing.T) {
		_, err := r.Float(2, 1, 2)
		assert.ErrorIs(t, err, random.ErrInvalidRange)
		_, err = r.Float(0, 1, -1)
		assert.ErrorIs(t, err, random.ErrInvalidPrecision)
	})
}

func TestRandom_Boolean(t *testing.T) {
	r := random.NewSeeded(4)
	trues := 0
	for i := 0; i < 1000; i++ {
		if r.Boolean() {
			trues++
		}
	}
	assert.InDelta(t, 500, trues, 100)

	assert.False(t, r.Chance(0))
	assert.True(t, r.Chance(1))
}

func TestRandom_SameSeedSameDraws(t *testing.T) {
	a := random.NewSeeded(99)
	b := random.NewSeeded(99)
	for i := 0; i < 100; i++ {
		x, _ := a.Integer(0, 1000)
		y, _ := b.Integer(0, 1000)
		require.Equal(t, x, y)
	}

	a.Seed(5)
	b.Seed(5)
	assert.Equal(t, a.Float64(), b.Float64())
}

func TestRandom_DrawCounts(t *testing.T) {
	r, e := newCounting(5)
	s := []string{"a", "b", "c", "d", "e"}

	tests := []struct {
		name string
		call func()
		want int
	}{
		{"Integer", func() { _, _ = r.Integer(0, 10) }, 1},
		{"Integer wide", func() { _, _ = r.Integer(0, math.MaxInt) }, 2},
		{"Float", func() { _, _ = r.Float(0, 10, 2) }, 1},
		{"Boolean", func() { r.Boolean() }, 1},
		{"Element", func() { random.Element(r, s) }, 1},
		{"Element empty", func() { random.Element(r, []string{}) }, 0},
		{"Elements", func() { random.Elements(r, s, 3) }, 3},
		{"Elements clamped", func() { random.Elements(r, s, 50) }, 5},
		{"Shuffle", func() { random.Shuffle(r, []int{1, 2, 3, 4}) }, 3},
		{"Shuffle single", func() { random.Shuffle(r, []int{1}) }, 0},
		{"WeightedElement", func() {
			_, _ = random.WeightedElement(r, []random.Weighted[string]{{Weight: 1, Value: "x"}})
		}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := e.draws
			tt.call()
			assert.Equal(t, tt.want, e.draws-before)
		})
	}
}

func TestSynchronized(t *testing.T) {
	plain := random.NewSeeded(6)
	locked := random.New(random.Synchronized(mersenne.NewSeeded(6)))

	for i := 0; i < 50; i++ {
		require.Equal(t, plain.Uint32(), locked.Uint32())
	}

	locked.Seed(6)
	plain.Seed(6)
	assert.Equal(t, plain.Float64(), locked.Float64())
	require.NoError(t, locked.SeedArray([]uint32{1, 2}))
	require.NoError(t, plain.SeedArray([]uint32{1, 2}))
	assert.Equal(t, plain.Float64(), locked.Float64())
}

func TestNew_NilEngine(t *testing.T) {
	r := random.New(nil)
	require.NotNil(t, r.Engine())
	_, err := r.Integer(0, 1)
	assert.NoError(t, err)
}
