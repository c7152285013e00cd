package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "imflux.yaml")
	data := []byte("server:\n  addr: \":9000\"\n  header: classic\nstore:\n  initial_counter: 7\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Server.Addr)
	assert.Equal(t, "classic", cfg.Server.Header)
	assert.Equal(t, 20, cfg.Server.FPS)
	assert.Equal(t, 7, cfg.Store.InitialCounter)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "imflux.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero fps", func(c *Config) { c.Server.FPS = 0 }},
		{"fps too high", func(c *Config) { c.Server.FPS = MaxFPS + 1 }},
		{"fps beyond a nanosecond tick", func(c *Config) { c.Server.FPS = 2_000_000_000 }},
		{"unknown header", func(c *Config) { c.Server.Header = "sidebar" }},
		{"unknown level", func(c *Config) { c.Logging.Level = "trace" }},
		{"unknown format", func(c *Config) { c.Logging.Format = "xml" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}

	assert.NoError(t, DefaultConfig().Validate())

	fastest := DefaultConfig()
	fastest.Server.FPS = MaxFPS
	assert.NoError(t, fastest.Validate())
}

func TestEnvOverrides(t *testing.T) {
	t.Run("addr and level", func(t *testing.T) {
		t.Setenv("IMFLUX_ADDR", "127.0.0.1:1234")
		t.Setenv("IMFLUX_LOG_LEVEL", "debug")

		cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.NoError(t, err)

		assert.Equal(t, "127.0.0.1:1234", cfg.Server.Addr)
		assert.Equal(t, "debug", cfg.Logging.Level)
	})

	t.Run("initial counter", func(t *testing.T) {
		t.Setenv("IMFLUX_INITIAL_COUNTER", "-4")

		cfg := DefaultConfig()
		require.NoError(t, cfg.applyEnvOverrides())
		assert.Equal(t, -4, cfg.Store.InitialCounter)
	})

	t.Run("bad initial counter", func(t *testing.T) {
		t.Setenv("IMFLUX_INITIAL_COUNTER", "four")

		cfg := DefaultConfig()
		assert.ErrorIs(t, cfg.applyEnvOverrides(), ErrInvalid)
	})
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "imflux.yaml")
	cfg := DefaultConfig()
	cfg.Server.Title = "Counter"

	require.NoError(t, cfg.Save(path))
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
