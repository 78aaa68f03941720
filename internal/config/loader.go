package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables read by EnvLoader.
const (
	EnvColor    = "TASKER_COLOR"
	EnvLogLevel = "TASKER_LOG_LEVEL"
	EnvQuiet    = "TASKER_QUIET"
)

// Loader produces a Config from some source.
type Loader interface {
	Load(ctx context.Context) (*Config, error)
}

// FileLoader loads configuration from a YAML file on disk, on top of the
// defaults. A missing file is an error only when Required is set.
type FileLoader struct {
	path     string
	required bool
}

// NewFileLoader creates a FileLoader for path.
func NewFileLoader(path string, required bool) *FileLoader {
	return &FileLoader{path: path, required: required}
}

// Load reads and parses the configuration file.
func (l *FileLoader) Load(ctx context.Context) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(l.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !l.required {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", l.path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", l.path, err)
	}
	cfg.Path = l.path
	return cfg, nil
}

// EnvLoader overlays TASKER_* environment variables on a base loader.
// Variables from DotEnv, if set, are loaded first without overriding
// variables already present in the process environment.
type EnvLoader struct {
	Base   Loader
	DotEnv string
	Getenv func(string) string
}

// Load implements Loader.
func (l *EnvLoader) Load(ctx context.Context) (*Config, error) {
	cfg, err := l.Base.Load(ctx)
	if err != nil {
		return nil, err
	}

	if l.DotEnv != "" {
		if err := godotenv.Load(l.DotEnv); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", l.DotEnv, err)
		}
	}

	getenv := l.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}

	if v := getenv(EnvColor); v != "" {
		cfg.Color = strings.ToLower(strings.TrimSpace(v))
	}
	if v := getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(v))
	}
	if v := getenv(EnvQuiet); v != "" {
		quiet, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %q", EnvQuiet, v)
		}
		cfg.Quiet = quiet
	}
	return cfg, nil
}

// Load resolves the configuration from the file at path (or the default
// path when empty), the .env file in the working directory and the process
// environment, then validates it.
func Load(ctx context.Context, path string) (*Config, error) {
	required := path != ""
	if path == "" {
		path = DefaultPath()
	}

	loader := &EnvLoader{
		Base:   NewFileLoader(path, required),
		DotEnv: ".env",
	}
	cfg, err := loader.Load(ctx)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
