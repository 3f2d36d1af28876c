package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mshima/faker/pkg/config"
)

type defaultsConfig struct {
	Locale  string        `env:"CFG_DEFAULT_LOCALE" envDefault:"en"`
	Retries int           `env:"CFG_DEFAULT_RETRIES" envDefault:"50"`
	MaxTime time.Duration `env:"CFG_DEFAULT_MAX_TIME" envDefault:"50ms"`
}

type overrideConfig struct {
	Locale string   `env:"CFG_OVERRIDE_LOCALE" envDefault:"en"`
	Seed   []uint32 `env:"CFG_OVERRIDE_SEED" envSeparator:","`
}

type cachedConfig struct {
	Value string `env:"CFG_CACHED_VALUE" envDefault:"first"`
}

type requiredConfig struct {
	Value string `env:"CFG_REQUIRED_VALUE,required"`
}

type prefixedConfig struct {
	Locale string `env:"LOCALE" envDefault:"en"`
}

type fileConfig struct {
	Locale   string   `env:"FAKER_TEST_LOCALE"`
	Seed     []uint32 `env:"FAKER_TEST_SEED" envSeparator:","`
	Quoted   string   `env:"FAKER_TEST_QUOTED"`
	Override string   `env:"FAKER_TEST_ONLY_OVERRIDE"`
}

func unsetFileVars(t *testing.T) {
	t.Helper()
	for _, k := range []string{"FAKER_TEST_LOCALE", "FAKER_TEST_SEED", "FAKER_TEST_QUOTED", "FAKER_TEST_ONLY_OVERRIDE"} {
		os.Unsetenv(k)
	}
	t.Cleanup(func() {
		for _, k := range []string{"FAKER_TEST_LOCALE", "FAKER_TEST_SEED", "FAKER_TEST_QUOTED", "FAKER_TEST_ONLY_OVERRIDE"} {
			os.Unsetenv(k)
		}
		config.ResetCache()
	})
	config.ResetCache()
}

func TestLoad_Defaults(t *testing.T) {
	config.ResetCache()

	var cfg defaultsConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "en", cfg.Locale)
	assert.Equal(t, 50, cfg.Retries)
	assert.Equal(t, 50*time.Millisecond, cfg.MaxTime)
}

func TestLoad_FromEnvironment(t *testing.T) {
	config.ResetCache()
	t.Setenv("CFG_OVERRIDE_LOCALE", "de")
	t.Setenv("CFG_OVERRIDE_SEED", "7,8")

	var cfg overrideConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "de", cfg.Locale)
	assert.Equal(t, []uint32{7, 8}, cfg.Seed)
}

func TestLoad_Cached(t *testing.T) {
	config.ResetCache()
	t.Setenv("CFG_CACHED_VALUE", "first")

	var first cachedConfig
	require.NoError(t, config.Load(&first))

	t.Setenv("CFG_CACHED_VALUE", "second")
	var second cachedConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first", second.Value, "cached value should be returned")

	var reloaded cachedConfig
	require.NoError(t, config.Reload(&reloaded))
	assert.Equal(t, "second", reloaded.Value)
}

func TestLoad_MissingRequired(t *testing.T) {
	config.ResetCache()
	os.Unsetenv("CFG_REQUIRED_VALUE")

	var cfg requiredConfig
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)

	assert.Panics(t, func() { config.MustLoad(&requiredConfig{}) })
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *defaultsConfig
	assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
}

func TestLoadPrefixed(t *testing.T) {
	config.ResetCache()
	t.Setenv("ALPHA_LOCALE", "de")
	t.Setenv("BETA_LOCALE", "fr")

	var a, b, none prefixedConfig
	require.NoError(t, config.LoadPrefixed("ALPHA_", &a))
	require.NoError(t, config.LoadPrefixed("BETA_", &b))
	require.NoError(t, config.LoadPrefixed("GAMMA_", &none))

	assert.Equal(t, "de", a.Locale)
	assert.Equal(t, "fr", b.Locale)
	assert.Equal(t, "en", none.Locale)
}

func TestReload_Prefixed(t *testing.T) {
	config.ResetCache()
	t.Setenv("DELTA_LOCALE", "de")

	var cfg prefixedConfig
	require.NoError(t, config.LoadPrefixed("DELTA_", &cfg))
	assert.Equal(t, "de", cfg.Locale)

	t.Setenv("DELTA_LOCALE", "fr")
	var cached prefixedConfig
	require.NoError(t, config.LoadPrefixed("DELTA_", &cached))
	assert.Equal(t, "de", cached.Locale, "cached value should be returned")

	var reloaded prefixedConfig
	require.NoError(t, config.ReloadPrefixed("DELTA_", &reloaded))
	assert.Equal(t, "fr", reloaded.Locale)

	t.Setenv("DELTA_LOCALE", "it")
	require.NoError(t, config.Reload(&prefixedConfig{}))
	var afterReload prefixedConfig
	require.NoError(t, config.LoadPrefixed("DELTA_", &afterReload))
	assert.Equal(t, "it", afterReload.Locale, "Reload drops every prefix of the type")
}

func TestLoadEnv(t *testing.T) {
	t.Run("single file", func(t *testing.T) {
		unsetFileVars(t)
		require.NoError(t, config.LoadEnv("testdata/base.env"))

		var cfg fileConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "de", cfg.Locale)
		assert.Equal(t, []uint32{1, 2, 3}, cfg.Seed)
		assert.Equal(t, "quoted value", cfg.Quoted)
		assert.Empty(t, cfg.Override)
	})

	t.Run("later files win", func(t *testing.T) {
		unsetFileVars(t)
		require.NoError(t, config.LoadEnv("testdata/base.env", "testdata/override.env"))

		var cfg fileConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "fr", cfg.Locale)
		assert.Equal(t, "yes", cfg.Override)
		assert.Equal(t, []uint32{1, 2, 3}, cfg.Seed)
	})

	t.Run("missing file", func(t *testing.T) {
		err := config.LoadEnv("testdata/missing.env")
		assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
		assert.Panics(t, func() { config.MustLoadEnv("testdata/missing.env") })
	})
}
