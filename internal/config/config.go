// Package config loads the porchlight settings file. Everything has a
// working default: a missing file is normal on first run, and env variables
// win over the file for the few settings worth scripting.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"porchlight/internal/telemetry"
)

// Config holds all porchlight configuration.
type Config struct {
	// DataDir is where the slot database lives.
	DataDir string `yaml:"data_dir"`

	// ViewerName labels the viewer's side of threads and the UI header.
	ViewerName string `yaml:"viewer_name"`

	// Reply controls the simulated neighbor replies.
	Reply ReplyConfig `yaml:"reply"`

	// Telemetry controls the simulated watch readings.
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// UI holds terminal presentation settings.
	UI UIConfig `yaml:"ui"`
}

// ReplyConfig configures the canned replies.
type ReplyConfig struct {
	Enabled bool   `yaml:"enabled"`
	Delay   string `yaml:"delay"`
}

// TelemetryConfig configures the watch simulator.
type TelemetryConfig struct {
	Period string `yaml:"period"`
	Seed   int64  `yaml:"seed"` // 0 picks a seed from the clock
}

// UIConfig configures the terminal UI.
type UIConfig struct {
	Theme string `yaml:"theme"` // light, dark
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".porchlight"
	}
	return filepath.Join(home, ".porchlight")
}

// DefaultPath is where Load looks when no --config flag is given.
func DefaultPath() string {
	return filepath.Join(defaultDataDir(), "config.yaml")
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		DataDir:    defaultDataDir(),
		ViewerName: "You",
		Reply: ReplyConfig{
			Enabled: true,
			Delay:   "2s",
		},
		Telemetry: TelemetryConfig{
			Period: "5s",
		},
		UI: UIConfig{
			Theme: "dark",
		},
	}
}

// Load reads configuration from a YAML file. A missing file yields the
// defaults; a malformed file is an error, since someone wrote it by hand and
// should hear about the typo.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save writes the configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if dir := os.Getenv("PORCHLIGHT_DATA"); dir != "" {
		c.DataDir = dir
	}
	if name := os.Getenv("PORCHLIGHT_NAME"); name != "" {
		c.ViewerName = name
	}
	if theme := os.Getenv("PORCHLIGHT_THEME"); theme != "" {
		c.UI.Theme = theme
	}
}

// DBPath is the slot database location under the data directory.
func (c *Config) DBPath() string {
	return filepath.Join(c.DataDir, "porchlight.db")
}

// GetReplyDelay returns the auto-reply delay as a duration.
func (c *Config) GetReplyDelay() time.Duration {
	d, err := time.ParseDuration(c.Reply.Delay)
	if err != nil || d < 0 {
		return 2 * time.Second
	}
	return d
}

// GetTelemetryPeriod returns the watch sampling period as a duration.
func (c *Config) GetTelemetryPeriod() time.Duration {
	d, err := time.ParseDuration(c.Telemetry.Period)
	if err != nil || d <= 0 {
		return telemetry.DefaultPeriod
	}
	return d
}
