package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"porchlight/internal/telemetry"
)

func clearEnv(t *testing.T) {
	t.Setenv("PORCHLIGHT_DATA", "")
	t.Setenv("PORCHLIGHT_NAME", "")
	t.Setenv("PORCHLIGHT_THEME", "")
}

func TestDefaults(t *testing.T) {
	clearEnv(t)

	cfg := DefaultConfig()

	assert.NotEmpty(t, cfg.DataDir)
	assert.Equal(t, "You", cfg.ViewerName)
	assert.True(t, cfg.Reply.Enabled)
	assert.Equal(t, "dark", cfg.UI.Theme)
	assert.Equal(t, 2*time.Second, cfg.GetReplyDelay())
	assert.Equal(t, 5*time.Second, cfg.GetTelemetryPeriod())
	assert.Equal(t, filepath.Join(cfg.DataDir, "porchlight.db"), cfg.DBPath())
}

func TestLoad(t *testing.T) {
	clearEnv(t)

	t.Run("missing file yields defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig().ViewerName, cfg.ViewerName)
	})

	t.Run("file overlays defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		body := "viewer_name: Marge\nreply:\n  enabled: false\n  delay: 4s\n"
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, "Marge", cfg.ViewerName)
		assert.False(t, cfg.Reply.Enabled)
		assert.Equal(t, 4*time.Second, cfg.GetReplyDelay())
		// Untouched fields keep defaults.
		assert.Equal(t, "dark", cfg.UI.Theme)
	})

	t.Run("malformed file is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("viewer_name: [unclosed"), 0o644))

		_, err := Load(path)
		assert.Error(t, err)
	})
}

func TestEnvOverrides(t *testing.T) {
	t.Run("env sets data dir, name, theme", func(t *testing.T) {
		t.Setenv("PORCHLIGHT_DATA", "/tmp/porch")
		t.Setenv("PORCHLIGHT_NAME", "Ethel")
		t.Setenv("PORCHLIGHT_THEME", "light")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, "/tmp/porch", cfg.DataDir)
		assert.Equal(t, "Ethel", cfg.ViewerName)
		assert.Equal(t, "light", cfg.UI.Theme)
	})

	t.Run("env wins over file", func(t *testing.T) {
		t.Setenv("PORCHLIGHT_NAME", "Ethel")
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("viewer_name: Marge\n"), 0o644))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "Ethel", cfg.ViewerName)
	})

	t.Run("empty env leaves config alone", func(t *testing.T) {
		clearEnv(t)
		cfg := DefaultConfig()
		before := cfg.DataDir
		cfg.applyEnvOverrides()
		assert.Equal(t, before, cfg.DataDir)
	})
}

func TestDurationFallbacks(t *testing.T) {
	cfg := DefaultConfig()

	cfg.Reply.Delay = "soonish"
	assert.Equal(t, 2*time.Second, cfg.GetReplyDelay())

	cfg.Reply.Delay = "-3s"
	assert.Equal(t, 2*time.Second, cfg.GetReplyDelay())

	cfg.Telemetry.Period = ""
	assert.Equal(t, telemetry.DefaultPeriod, cfg.GetTelemetryPeriod())

	cfg.Telemetry.Period = "0s"
	assert.Equal(t, telemetry.DefaultPeriod, cfg.GetTelemetryPeriod())
}

func TestSaveRoundTrip(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "deep", "config.yaml")
	cfg := DefaultConfig()
	cfg.ViewerName = "Walt"
	cfg.Telemetry.Seed = 99

	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
