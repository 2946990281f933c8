package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/record/pkg/config"
)

type testConfig struct {
	Name    string   `env:"CFG_TEST_NAME" envDefault:"default_value"`
	Limit   int      `env:"CFG_TEST_LIMIT" envDefault:"42"`
	Strict  bool     `env:"CFG_TEST_STRICT" envDefault:"true"`
	Allowed []string `env:"CFG_TEST_ALLOWED" envSeparator:","`
}

type requiredConfig struct {
	Value string `env:"CFG_TEST_REQUIRED,required"`
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("CFG_TEST_NAME", "custom")
	t.Setenv("CFG_TEST_LIMIT", "100")
	t.Setenv("CFG_TEST_STRICT", "false")
	t.Setenv("CFG_TEST_ALLOWED", "a,b")

	var cfg testConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, testConfig{Name: "custom", Limit: 100, Strict: false, Allowed: []string{"a", "b"}}, cfg)
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	var cfg testConfig
	require.NoError(t, config.Load(&cfg, config.WithEnvironment(map[string]string{})))

	assert.Equal(t, "default_value", cfg.Name)
	assert.Equal(t, 42, cfg.Limit)
	assert.True(t, cfg.Strict)
	assert.Nil(t, cfg.Allowed)
}

func TestLoad_Prefix(t *testing.T) {
	t.Parallel()

	var cfg testConfig
	err := config.Load(&cfg,
		config.WithPrefix("APP_"),
		config.WithEnvironment(map[string]string{"APP_CFG_TEST_NAME": "prefixed"}),
	)
	require.NoError(t, err)
	assert.Equal(t, "prefixed", cfg.Name)
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	t.Run("missing required value", func(t *testing.T) {
		t.Parallel()
		var cfg requiredConfig
		err := config.Load(&cfg, config.WithEnvironment(map[string]string{}))
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("invalid value", func(t *testing.T) {
		t.Parallel()
		var cfg testConfig
		err := config.Load(&cfg, config.WithEnvironment(map[string]string{"CFG_TEST_LIMIT": "many"}))
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("nil pointer", func(t *testing.T) {
		t.Parallel()
		var cfg *testConfig
		assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
	})

	t.Run("must load panics", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() {
			var cfg requiredConfig
			config.MustLoad(&cfg, config.WithEnvironment(map[string]string{}))
		})
	})
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env.test")
	require.NoError(t, os.WriteFile(path, []byte("CFG_TEST_FILE_VALUE=\"from file\"\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("CFG_TEST_FILE_VALUE") })

	require.NoError(t, config.LoadEnv(path))
	assert.Equal(t, "from file", os.Getenv("CFG_TEST_FILE_VALUE"))

	err := config.LoadEnv(filepath.Join(dir, "missing.env"))
	assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
}
