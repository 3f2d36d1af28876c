package faker

import (
	"time"

	"github.com/mshima/faker/pkg/config"
	"github.com/mshima/faker/pkg/unique"
)

// EnvPrefix namespaces the environment variables read by LoadConfig.
const EnvPrefix = "FAKER_"

// Config holds the settings a Faker can be built from. Field tags are
// relative to EnvPrefix, so Locale is read from FAKER_LOCALE.
type Config struct {
	Locale           string        `env:"LOCALE" envDefault:"en"`
	Fallback         string        `env:"LOCALE_FALLBACK" envDefault:"en"`
	Seed             []uint32      `env:"SEED" envSeparator:","`
	UniqueMaxTime    time.Duration `env:"UNIQUE_MAX_TIME" envDefault:"50ms"`
	UniqueMaxRetries int           `env:"UNIQUE_MAX_RETRIES" envDefault:"50"`
	LogLevel         string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat        string        `env:"LOG_FORMAT" envDefault:"text"`
}

// DefaultConfig returns the values LoadConfig uses for unset variables.
func DefaultConfig() Config {
	return Config{
		Locale:           DefaultLocale,
		Fallback:         DefaultFallback,
		UniqueMaxTime:    unique.DefaultMaxTime,
		UniqueMaxRetries: unique.DefaultMaxRetries,
		LogLevel:         "info",
		LogFormat:        "text",
	}
}

// LoadConfig reads Config from the FAKER_* environment variables and an
// optional .env file.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.LoadPrefixed(EnvPrefix, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Options converts cfg into options for New. A single seed value uses Seed,
// several use SeedArray, none leaves the Faker entropy-seeded.
func (cfg Config) Options() []Option {
	opts := []Option{
		WithLocale(cfg.Locale),
		WithFallback(cfg.Fallback),
		WithUniqueDefaults(cfg.UniqueMaxTime, cfg.UniqueMaxRetries),
	}
	switch len(cfg.Seed) {
	case 0:
	case 1:
		opts = append(opts, WithSeed(cfg.Seed[0]))
	default:
		opts = append(opts, WithSeedArray(cfg.Seed))
	}
	return opts
}

// NewFromConfig builds a Faker from cfg. opts are applied after the
// configuration and win over it.
func NewFromConfig(cfg Config, opts ...Option) (*Faker, error) {
	return New(append(cfg.Options(), opts...)...)
}
