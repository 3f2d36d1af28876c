package faker

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/language"

	"github.com/mshima/faker/pkg/locale"
	"github.com/mshima/faker/pkg/logger"
	"github.com/mshima/faker/pkg/mustache"
	"github.com/mshima/faker/pkg/random"
	"github.com/mshima/faker/pkg/unique"
)

// maxFakeDepth bounds nested Fake calls made by locale formats that refer to
// other formats.
const maxFakeDepth = 8

var builtinRegistry = sync.OnceValue(locale.NewRegistry)

// Faker generates fake values from one locale and one draw sequence.
type Faker struct {
	rand     *random.Random
	registry *locale.Registry
	defs     *locale.Definitions
	tag      language.Tag
	fallback string
	tracker  *unique.Tracker[string]
	log      *slog.Logger
	methods  map[string]func() string
	data     mustache.Data
	depth    int
	now      func() time.Time

	Helpers  *Helpers
	Datatype *Datatype
	Name     *Name
	Address  *Address
	Lorem    *Lorem
	Internet *Internet
	Database *Database
	Finance  *Finance
	Phone    *Phone
	Company  *Company
	Time     *Time
}

// New returns a Faker for the configured locale. Without a seed option the
// sequence starts from an entropy seed.
func New(opts ...Option) (*Faker, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	f := &Faker{
		rand:     o.random,
		registry: o.registry,
		fallback: o.fallback,
		tracker:  unique.New[string](o.unique...),
		log:      o.logger,
		now:      o.now,
	}
	if f.rand == nil {
		f.rand = random.New(nil)
	}
	if f.registry == nil {
		f.registry = builtinRegistry()
	}
	if f.log == nil {
		f.log = logger.Discard()
	}
	if f.now == nil {
		f.now = time.Now
	}

	if o.seed != nil {
		if err := o.seed(f.rand); err != nil {
			return nil, errors.Join(ErrInvalidOption, err)
		}
		f.log.Debug("faker seeded", logger.Seed(o.seedKey...))
	}
	if err := f.SetLocale(o.locale); err != nil {
		return nil, err
	}

	f.Helpers = &Helpers{f: f}
	f.Datatype = &Datatype{f: f}
	f.Name = &Name{f: f}
	f.Address = &Address{f: f}
	f.Lorem = &Lorem{f: f}
	f.Internet = &Internet{f: f}
	f.Database = &Database{f: f}
	f.Finance = &Finance{f: f}
	f.Phone = &Phone{f: f}
	f.Company = &Company{f: f}
	f.Time = &Time{f: f}

	f.methods = f.registerMethods()
	f.data = make(mustache.Data, len(f.methods))
	for name, fn := range f.methods {
		f.data[name] = fn
	}

	return f, nil
}

// Seed restarts the draw sequence from seed.
func (f *Faker) Seed(seed uint32) {
	f.rand.Seed(seed)
	f.log.Debug("faker seeded", logger.Seed(seed))
}

// SeedArray restarts the draw sequence from key. An empty key is rejected
// and leaves the sequence untouched.
func (f *Faker) SeedArray(key []uint32) error {
	if err := f.rand.SeedArray(key); err != nil {
		return err
	}
	f.log.Debug("faker seeded", logger.Seed(key...))
	return nil
}

// SetLocale switches to another locale. On error the current locale stays
// active.
func (f *Faker) SetLocale(code string) error {
	defs, err := f.registry.Resolve(code, f.fallback)
	if err != nil {
		f.log.Debug("locale not resolved", logger.Locale(code), logger.Error(err))
		return err
	}
	f.defs = defs
	f.tag = language.Make(strings.ReplaceAll(defs.Code, "_", "-"))
	f.log.Debug("locale resolved",
		logger.Locale(defs.Code),
		logger.Fallback(f.fallback),
	)
	return nil
}

// Locale returns the normalized code of the active locale.
func (f *Faker) Locale() string {
	return f.defs.Code
}

// Definitions returns the resolved tables of the active locale. They must
// not be modified.
func (f *Faker) Definitions() *locale.Definitions {
	return f.defs
}

// Random exposes the draw source, e.g. to share it with another Faker.
func (f *Faker) Random() *random.Random {
	return f.rand
}

// Fake replaces every {{module.method}} token in template with the output of
// that generator. Unknown tokens are kept as written.
//
//	f.Fake("{{name.lastName}}, {{name.firstName}} {{name.suffix}}")
func (f *Faker) Fake(template string) string {
	if f.depth >= maxFakeDepth {
		return template
	}
	f.depth++
	defer func() { f.depth-- }()
	return mustache.Render(template, f.data)
}

// Call runs the generator registered under method, e.g. "internet.email".
func (f *Faker) Call(method string) (string, error) {
	fn, ok := f.methods[method]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownMethod, method)
	}
	return fn(), nil
}

// Methods returns the sorted names accepted by Call and Fake.
func (f *Faker) Methods() []string {
	return slices.Sorted(maps.Keys(f.methods))
}

// Unique calls fn until it returns a string this Faker has not returned from
// Unique before. opts may be nil.
func (f *Faker) Unique(fn func() string, opts *unique.Options[string]) (string, error) {
	v, err := f.tracker.Generate(fn, opts)
	if err != nil {
		var exhausted *unique.ExhaustedError
		if errors.As(err, &exhausted) {
			f.log.Debug("unique value not found",
				logger.Attempts(exhausted.Attempts),
				logger.Duration(exhausted.Elapsed),
				logger.Error(err),
			)
		}
		return "", err
	}
	return v, nil
}

// ResetUnique forgets the values returned by Unique.
func (f *Faker) ResetUnique() {
	f.tracker.Clear()
}

// pick returns a random value of a locale table, or "" when the table is
// missing.
func (f *Faker) pick(module, key string) string {
	return random.Element(f.rand, f.defs.Values(module, key))
}

// between returns an integer in [lo, hi]. Callers guarantee lo <= hi.
func (f *Faker) between(lo, hi int) int {
	return lo + f.rand.IntN(hi-lo+1)
}
