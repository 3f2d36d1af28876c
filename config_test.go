package faker_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mshima/faker"
	"github.com/mshima/faker/pkg/config"
)

var configVars = []string{
	"FAKER_LOCALE",
	"FAKER_LOCALE_FALLBACK",
	"FAKER_SEED",
	"FAKER_UNIQUE_MAX_TIME",
	"FAKER_UNIQUE_MAX_RETRIES",
	"FAKER_LOG_LEVEL",
	"FAKER_LOG_FORMAT",
}

func cleanConfigEnv(t *testing.T) {
	t.Helper()
	for _, k := range configVars {
		if v, ok := os.LookupEnv(k); ok {
			t.Setenv(k, v)
			os.Unsetenv(k)
		}
	}
	config.ResetCache()
	t.Cleanup(config.ResetCache)
}

func TestLoadConfig_Defaults(t *testing.T) {
	cleanConfigEnv(t)

	cfg, err := faker.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, faker.DefaultConfig(), cfg)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	cleanConfigEnv(t)
	t.Setenv("FAKER_LOCALE", "de")
	t.Setenv("FAKER_SEED", "1,2")
	t.Setenv("FAKER_UNIQUE_MAX_TIME", "1s")
	t.Setenv("FAKER_UNIQUE_MAX_RETRIES", "7")
	t.Setenv("FAKER_LOG_LEVEL", "debug")

	cfg, err := faker.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "de", cfg.Locale)
	assert.Equal(t, "en", cfg.Fallback)
	assert.Equal(t, []uint32{1, 2}, cfg.Seed)
	assert.Equal(t, time.Second, cfg.UniqueMaxTime)
	assert.Equal(t, 7, cfg.UniqueMaxRetries)
	assert.Equal(t, "debug", cfg.LogLevel)

	f, err := faker.NewFromConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, "de", f.Locale())

	ref, err := faker.New(faker.WithLocale("de"), faker.WithSeedArray([]uint32{1, 2}))
	require.NoError(t, err)
	assert.Equal(t, ref.Name.FullName(), f.Name.FullName())
}

func TestLoadConfig_InvalidValue(t *testing.T) {
	cleanConfigEnv(t)
	t.Setenv("FAKER_SEED", "not-a-number")

	_, err := faker.LoadConfig()
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestNewFromConfig(t *testing.T) {
	t.Run("single seed", func(t *testing.T) {
		cfg := faker.DefaultConfig()
		cfg.Seed = []uint32{42}

		a, err := faker.NewFromConfig(cfg)
		require.NoError(t, err)
		b, err := faker.New(faker.WithSeed(42))
		require.NoError(t, err)
		assert.Equal(t, b.Address.City(), a.Address.City())
	})

	t.Run("options override config", func(t *testing.T) {
		cfg := faker.DefaultConfig()
		cfg.Locale = "de"

		f, err := faker.NewFromConfig(cfg, faker.WithLocale("en"))
		require.NoError(t, err)
		assert.Equal(t, "en", f.Locale())
	})

	t.Run("unknown locale", func(t *testing.T) {
		cfg := faker.DefaultConfig()
		cfg.Locale = "fr"

		_, err := faker.NewFromConfig(cfg)
		assert.Error(t, err)
	})
}
