package unique

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock advances by step on every reading.
func fakeClock(t *testing.T, step time.Duration) {
	t.Helper()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	prev := nowFunc
	nowFunc = func() time.Time {
		now = now.Add(step)
		return now
	}
	t.Cleanup(func() { nowFunc = prev })
}

func TestGenerate_MaxTime(t *testing.T) {
	fakeClock(t, 10*time.Millisecond)

	tr := New[string]()
	tr.store["dup"] = struct{}{}
	calls := 0

	_, err := tr.Generate(func() string {
		calls++
		return "dup"
	}, &Options[string]{MaxTime: 35 * time.Millisecond, MaxRetries: 1000})

	var exh *ExhaustedError
	require.ErrorAs(t, err, &exh)
	assert.Equal(t, ReasonMaxTime, exh.Reason)
	assert.GreaterOrEqual(t, exh.Elapsed, 35*time.Millisecond)
	assert.Equal(t, calls, exh.Attempts)
	assert.Less(t, calls, 1000)
	assert.Contains(t, err.Error(), "max time")
}

func TestGenerate_BudgetNotCarriedAcrossCalls(t *testing.T) {
	fakeClock(t, 10*time.Millisecond)

	tr := New[int]()
	opts := &Options[int]{MaxTime: 25 * time.Millisecond, MaxRetries: 1000}
	for i := 0; i < 5; i++ {
		n := i
		_, err := tr.Generate(func() int { return n }, opts)
		require.NoError(t, err, "call %d", i)
	}
}
