package unique

import (
	"slices"
	"time"
)

// Default budgets for a single Generate call.
const (
	DefaultMaxTime    = 50 * time.Millisecond
	DefaultMaxRetries = 50
)

// Compare results.
const (
	Duplicate = 0
	Accept    = -1
)

// nowFunc returns the current time. Tests override it.
var nowFunc = time.Now

// RecordKey is the set of types a Tracker can store.
type RecordKey interface {
	~string | ~int | ~int32 | ~int64 | ~uint32 | ~uint64 | ~float64
}

// CompareFunc decides whether key is new. It returns Accept (-1) to take the
// value or Duplicate (0) to retry. store is the tracker's history and must
// not be modified.
type CompareFunc[K RecordKey] func(store map[K]struct{}, key K) int

// Options tunes a single Generate call. Zero fields fall back to the
// tracker's defaults.
type Options[K RecordKey] struct {
	// MaxTime bounds the wall-clock time spent in the call.
	MaxTime time.Duration

	// MaxRetries bounds the number of generator invocations.
	MaxRetries int

	// Exclude lists values rejected for this call only.
	Exclude []K

	// Compare replaces the default store lookup.
	Compare CompareFunc[K]
}

// Option configures a Tracker.
type Option func(*settings)

type settings struct {
	maxTime    time.Duration
	maxRetries int
}

// WithMaxTime sets the tracker-wide default time budget. Non-positive values
// are ignored.
func WithMaxTime(d time.Duration) Option {
	return func(s *settings) {
		if d > 0 {
			s.maxTime = d
		}
	}
}

// WithMaxRetries sets the tracker-wide default attempt budget. Non-positive
// values are ignored.
func WithMaxRetries(n int) Option {
	return func(s *settings) {
		if n > 0 {
			s.maxRetries = n
		}
	}
}

// Tracker records generated values and rejects repeats.
type Tracker[K RecordKey] struct {
	store    map[K]struct{}
	settings settings
}

// New returns an empty tracker.
func New[K RecordKey](opts ...Option) *Tracker[K] {
	s := settings{maxTime: DefaultMaxTime, maxRetries: DefaultMaxRetries}
	for _, opt := range opts {
		opt(&s)
	}
	return &Tracker[K]{store: make(map[K]struct{}), settings: s}
}

// DefaultCompare rejects keys already present in store.
func DefaultCompare[K RecordKey](store map[K]struct{}, key K) int {
	if _, ok := store[key]; ok {
		return Duplicate
	}
	return Accept
}

// Generate calls fn until it returns a value that is not excluded and not
// already stored, records that value and returns it. On exhaustion the store
// is left as it was and an *ExhaustedError is returned.
func (t *Tracker[K]) Generate(fn func() K, opts *Options[K]) (K, error) {
	o := t.merge(opts)
	start := nowFunc()

	var zero K
	for attempts := 0; ; attempts++ {
		elapsed := nowFunc().Sub(start)
		switch {
		case elapsed >= o.MaxTime:
			return zero, t.exhausted(ReasonMaxTime, elapsed, attempts, o)
		case attempts >= o.MaxRetries:
			return zero, t.exhausted(ReasonMaxRetries, elapsed, attempts, o)
		}

		candidate := fn()
		if o.Compare(t.store, candidate) == Accept && !slices.Contains(o.Exclude, candidate) {
			t.store[candidate] = struct{}{}
			return candidate, nil
		}
	}
}

// Has reports whether v has been returned by this tracker.
func (t *Tracker[K]) Has(v K) bool {
	_, ok := t.store[v]
	return ok
}

// Len returns the number of stored values.
func (t *Tracker[K]) Len() int { return len(t.store) }

// Clear forgets every stored value.
func (t *Tracker[K]) Clear() { clear(t.store) }

func (t *Tracker[K]) merge(opts *Options[K]) Options[K] {
	var o Options[K]
	if opts != nil {
		o = *opts
	}
	if o.MaxTime <= 0 {
		o.MaxTime = t.settings.maxTime
	}
	if o.MaxRetries <= 0 {
		o.MaxRetries = t.settings.maxRetries
	}
	if o.Compare == nil {
		o.Compare = DefaultCompare[K]
	}
	return o
}

func (t *Tracker[K]) exhausted(reason Reason, elapsed time.Duration, attempts int, o Options[K]) error {
	return &ExhaustedError{
		Reason:     reason,
		Elapsed:    elapsed,
		Attempts:   attempts,
		MaxTime:    o.MaxTime,
		MaxRetries: o.MaxRetries,
		StoreSize:  len(t.store),
	}
}
