package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// cache stores one parsed value per (type, prefix) pair.
type cache struct {
	mu     sync.Mutex
	values map[cacheKey]any
}

type cacheKey struct {
	typ    string
	prefix string
}

var (
	global = &cache{values: make(map[cacheKey]any)}

	dotenvOnce sync.Once
)

// Load parses environment variables into v. The first successful load of a
// type is cached and later calls copy the cached value.
//
// A .env file in the working directory is read once, if present, before the
// first parse. Variables already set in the process win over the file.
//
//	type Settings struct {
//		Locale string `env:"LOCALE" envDefault:"en"`
//	}
//
//	var s Settings
//	if err := config.Load(&s); err != nil {
//		return err
//	}
func Load[T any](v *T) error {
	return load(v, "")
}

// LoadPrefixed works like Load but reads every variable as prefix+name, so
// the same struct can be filled from different namespaces.
func LoadPrefixed[T any](prefix string, v *T) error {
	return load(v, prefix)
}

// MustLoad works like Load but panics on failure.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("config: load %s: %v", typeName[T](), err))
	}
}

// Reload drops every cached value of T, whatever its prefix, and parses the
// environment again.
func Reload[T any](v *T) error {
	forget[T]()
	return Load(v)
}

// ReloadPrefixed is Reload for values read with LoadPrefixed.
func ReloadPrefixed[T any](prefix string, v *T) error {
	forget[T]()
	return LoadPrefixed(prefix, v)
}

func forget[T any]() {
	typ := typeName[T]()
	global.mu.Lock()
	defer global.mu.Unlock()
	for k := range global.values {
		if k.typ == typ {
			delete(global.values, k)
		}
	}
}

// LoadEnv reads the given .env files into the process environment. Without
// arguments it reads ./.env. Files listed later override earlier ones, and
// the cache is reset so subsequent loads see the new values.
func LoadEnv(paths ...string) error {
	var err error
	if len(paths) > 1 {
		err = godotenv.Overload(paths...)
	} else {
		err = godotenv.Load(paths...)
	}
	if err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	ResetCache()
	return nil
}

// MustLoadEnv works like LoadEnv but panics on failure.
func MustLoadEnv(paths ...string) {
	if err := LoadEnv(paths...); err != nil {
		panic(fmt.Sprintf("config: %v", err))
	}
}

// ResetCache forgets every cached configuration.
func ResetCache() {
	global.mu.Lock()
	defer global.mu.Unlock()
	clear(global.values)
}

func load[T any](v *T, prefix string) error {
	if v == nil {
		return ErrNilPointer
	}
	dotenvOnce.Do(func() {
		// A missing .env is the common case.
		_ = godotenv.Load()
	})

	key := cacheKey{typ: typeName[T](), prefix: prefix}

	global.mu.Lock()
	defer global.mu.Unlock()
	if cached, ok := global.values[key]; ok {
		*v = cached.(T)
		return nil
	}

	var parsed T
	if err := env.ParseWithOptions(&parsed, env.Options{Prefix: prefix}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	global.values[key] = parsed
	*v = parsed
	return nil
}

func typeName[T any]() string {
	t := reflect.TypeFor[T]()
	if p := t.PkgPath(); p != "" {
		return p + "." + t.Name()
	}
	return t.String()
}
