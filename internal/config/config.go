// Package config handles configuration file loading and parsing.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Default configuration values.
const (
	DefaultStep    = 5
	DefaultWpctl   = "wpctl"
	DefaultAppName = "volctl"
	DefaultVolume  = 100
)

// Config represents the volctl configuration.
type Config struct {
	Step         int                `toml:"step"` // Default step for up/down
	Wpctl        WpctlConfig        `toml:"wpctl"`
	Notification NotificationConfig `toml:"notification"`
	Feedback     FeedbackConfig     `toml:"feedback"`
}

// WpctlConfig locates the audio control tool.
type WpctlConfig struct {
	Path string `toml:"path"` // Binary name or absolute path
}

// NotificationConfig holds desktop notification settings.
type NotificationConfig struct {
	Enabled bool   `toml:"enabled"`
	AppName string `toml:"app_name"`
}

// FeedbackConfig holds the optional sound played after a change.
type FeedbackConfig struct {
	Sound  string `toml:"sound"`  // Empty = no sound
	Volume int    `toml:"volume"` // 0-100
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Step: DefaultStep,
		Wpctl: WpctlConfig{
			Path: DefaultWpctl,
		},
		Notification: NotificationConfig{
			Enabled: true,
			AppName: DefaultAppName,
		},
		Feedback: FeedbackConfig{
			Sound:  "",
			Volume: DefaultVolume,
		},
	}
}

// ConfigPath returns the path to the config file.
// Uses XDG_CONFIG_HOME if set, otherwise ~/.config.
func ConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "volctl", "config.toml")
}

// LoadConfig loads configuration from the specified path.
// If path is empty, uses the default config path.
// Returns default config if file doesn't exist.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}

	// Start with defaults
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			// No config file, use defaults
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Step <= 0 {
		return fmt.Errorf("step must be positive, got %d", c.Step)
	}
	if c.Wpctl.Path == "" {
		return errors.New("wpctl.path must not be empty")
	}
	if c.Feedback.Volume < 0 || c.Feedback.Volume > 100 {
		return fmt.Errorf("volume must be between 0 and 100, got %d", c.Feedback.Volume)
	}
	return nil
}
