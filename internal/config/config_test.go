package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	// Ensure ambient overrides are unset
	t.Setenv("SHOPFRONT_API_URL", "")
	t.Setenv("SHOPFRONT_THEME", "")
	t.Setenv("SHOPFRONT_DEBUG", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080/api", cfg.API.BaseURL)
	assert.Equal(t, "auto", cfg.Theme)
	assert.False(t, cfg.Logging.DebugMode)
}

func TestLoadMergesPartialFile(t *testing.T) {
	t.Setenv("SHOPFRONT_API_URL", "")
	t.Setenv("SHOPFRONT_THEME", "")
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: dark\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "dark", cfg.Theme)
	// Untouched fields keep their defaults.
	assert.Equal(t, "http://localhost:8080/api", cfg.API.BaseURL)
}

func TestEnvOverrides(t *testing.T) {
	t.Run("SHOPFRONT_API_URL", func(t *testing.T) {
		t.Setenv("SHOPFRONT_API_URL", "http://shop.example/api")
		cfg := DefaultConfig()
		cfg.applyEnvOverrides()
		assert.Equal(t, "http://shop.example/api", cfg.API.BaseURL)
	})

	t.Run("SHOPFRONT_THEME", func(t *testing.T) {
		t.Setenv("SHOPFRONT_THEME", "light")
		cfg := DefaultConfig()
		cfg.applyEnvOverrides()
		assert.Equal(t, "light", cfg.Theme)
	})

	t.Run("SHOPFRONT_DEBUG", func(t *testing.T) {
		t.Setenv("SHOPFRONT_DEBUG", "1")
		cfg := DefaultConfig()
		cfg.applyEnvOverrides()
		assert.True(t, cfg.Logging.DebugMode)
	})
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	assert.NoError(t, cfg.Validate())

	cfg.Theme = "solarized"
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.API.BaseURL = ""
	assert.Error(t, cfg.Validate())
}

func TestAPITimeout(t *testing.T) {
	cfg := DefaultConfig()
	d, err := cfg.APITimeout()
	require.NoError(t, err)
	assert.Equal(t, 15*time.Second, d)

	cfg.API.Timeout = "2s"
	d, err = cfg.APITimeout()
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, d)

	cfg.API.Timeout = "soon"
	_, err = cfg.APITimeout()
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv("SHOPFRONT_API_URL", "")
	t.Setenv("SHOPFRONT_THEME", "")
	t.Setenv("SHOPFRONT_DEBUG", "")
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.Theme = "dark"
	cfg.API.BaseURL = "http://shop.example/api"
	require.NoError(t, Save(cfg, path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestDirHonorsOverride(t *testing.T) {
	t.Setenv("SHOPFRONT_HOME", "/tmp/shopfront-test")
	dir, err := Dir()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/shopfront-test", dir)
}
