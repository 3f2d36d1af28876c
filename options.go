package faker

import (
	"log/slog"
	"slices"
	"time"

	"github.com/mshima/faker/pkg/locale"
	"github.com/mshima/faker/pkg/random"
	"github.com/mshima/faker/pkg/unique"
)

const (
	// DefaultLocale is used when no locale is configured.
	DefaultLocale = "en"
	// DefaultFallback fills keys the selected locale does not define.
	DefaultFallback = "en"
)

// Option configures a Faker.
type Option func(*options)

type options struct {
	locale   string
	fallback string
	seed     func(*random.Random) error
	seedKey  []uint32
	random   *random.Random
	registry *locale.Registry
	logger   *slog.Logger
	unique   []unique.Option
	now      func() time.Time
}

func defaultOptions() *options {
	return &options{
		locale:   DefaultLocale,
		fallback: DefaultFallback,
	}
}

// WithLocale selects the locale, e.g. "de" or "en_AU".
func WithLocale(code string) Option {
	return func(o *options) {
		o.locale = code
	}
}

// WithFallback sets the locale that fills missing keys. An empty code
// disables the fallback.
func WithFallback(code string) Option {
	return func(o *options) {
		o.fallback = code
	}
}

// WithSeed seeds the draw sequence with a single value.
func WithSeed(seed uint32) Option {
	return func(o *options) {
		o.seedKey = []uint32{seed}
		o.seed = func(r *random.Random) error {
			r.Seed(seed)
			return nil
		}
	}
}

// WithSeedArray seeds the draw sequence with a key. An empty key makes New
// fail.
func WithSeedArray(key []uint32) Option {
	return func(o *options) {
		key = slices.Clone(key)
		o.seedKey = key
		o.seed = func(r *random.Random) error {
			return r.SeedArray(key)
		}
	}
}

// WithRandom makes the Faker draw from r, sharing its sequence with every
// other user of r. A seed option given alongside reseeds r.
func WithRandom(r *random.Random) Option {
	return func(o *options) {
		if r != nil {
			o.random = r
		}
	}
}

// WithRegistry replaces the built-in locale registry.
func WithRegistry(r *locale.Registry) Option {
	return func(o *options) {
		if r != nil {
			o.registry = r
		}
	}
}

// WithLogger sets the logger used for lifecycle events at debug level.
// The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithUniqueDefaults sets the budgets Unique applies when a call passes no
// options of its own.
func WithUniqueDefaults(maxTime time.Duration, maxRetries int) Option {
	return func(o *options) {
		o.unique = append(o.unique, unique.WithMaxTime(maxTime), unique.WithMaxRetries(maxRetries))
	}
}

// WithClock sets the clock the Time module reads. The default is time.Now.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}
