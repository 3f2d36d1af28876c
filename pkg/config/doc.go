// Package config loads typed settings from the environment.
//
// It combines github.com/joho/godotenv for .env files with
// github.com/caarlos0/env/v11 for struct tag parsing, and caches each parsed
// type so repeated calls are cheap:
//
//	type Settings struct {
//		Locale string        `env:"LOCALE" envDefault:"en"`
//		Seed   []uint32      `env:"SEED" envSeparator:","`
//		Budget time.Duration `env:"UNIQUE_MAX_TIME" envDefault:"50ms"`
//	}
//
//	var s Settings
//	if err := config.LoadPrefixed("FAKER_", &s); err != nil {
//		log.Fatal(err)
//	}
//
// LoadEnv reads explicit .env files and resets the cache. Reload,
// ReloadPrefixed and ResetCache exist mostly for tests that change the
// environment.
//
// Failures wrap ErrParsingConfig, ErrLoadingEnvFile or ErrNilPointer and can
// be matched with errors.Is.
package config
