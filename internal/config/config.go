// Package config resolves tasker settings from defaults, a YAML file,
// environment variables and command-line flags.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

const (
	// AppName is the application directory name.
	AppName = "tasker"

	// ConfigFile is the config filename inside the config directory.
	ConfigFile = "config.yaml"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Log levels.
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// Config holds tasker settings.
type Config struct {
	// Color controls terminal styling: auto, always or never.
	Color string `yaml:"color" validate:"oneof=auto always never"`

	// LogLevel is the minimum level written to the log.
	LogLevel string `yaml:"log_level" validate:"oneof=debug info warn error"`

	// Quiet suppresses confirmation messages after actions.
	Quiet bool `yaml:"quiet"`

	// Debug forces debug logging regardless of LogLevel.
	Debug bool `yaml:"-"`

	// Path is the config file the settings were read from, if any.
	Path string `yaml:"-"`
}

// Default returns a Config with default settings.
func Default() *Config {
	return &Config{
		Color:    ColorAuto,
		LogLevel: LevelWarn,
	}
}

// DefaultPath returns the default config file path.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultPath() string {
	return filepath.Join(DefaultConfigDir(), ConfigFile)
}

// DefaultConfigDir returns the default configuration directory.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// EffectiveLogLevel returns LevelDebug when Debug is set, LogLevel otherwise.
func (c *Config) EffectiveLogLevel() string {
	if c.Debug {
		return LevelDebug
	}
	return c.LogLevel
}

var validate = validator.New()

// Validate checks that enumerated settings hold known values.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
