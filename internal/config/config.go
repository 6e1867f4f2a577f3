// Package config loads glyphlab settings from an optional YAML file and
// GLYPHLAB_* environment variables, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/glyphlab/gridreader"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "GLYPHLAB_"

// ErrInvalid is returned by Validate for out-of-range settings.
var ErrInvalid = errors.New("config: invalid value")

// Config holds all runtime settings of the CLI.
type Config struct {
	// DataFile is the CSV corpus read by analysis commands.
	DataFile     string    `yaml:"data_file" env:"DATA_FILE"`
	MessageCount int       `yaml:"message_count" env:"MESSAGE_COUNT"`
	RowWidth     int       `yaml:"row_width" env:"ROW_WIDTH"`
	MaxKeyLength int       `yaml:"max_key_length" env:"MAX_KEY_LENGTH"`
	Workers      int       `yaml:"workers" env:"WORKERS"`
	Log          LogConfig `yaml:"log" envPrefix:"LOG_"`
}

// LogConfig selects the slog level and handler.
type LogConfig struct {
	Level  string `yaml:"level" env:"LEVEL"`
	Format string `yaml:"format" env:"FORMAT"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		MessageCount: gridreader.DefaultMessageCount,
		RowWidth:     gridreader.DefaultRowWidth,
		MaxKeyLength: 35,
		Workers:      4,
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load starts from Default, applies the YAML file at path (skipped when path
// is empty), then environment overrides, and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks ranges and enumerations.
func (c *Config) Validate() error {
	switch {
	case c.MessageCount < 0:
		return fmt.Errorf("message_count %d: %w", c.MessageCount, ErrInvalid)
	case c.RowWidth < 1:
		return fmt.Errorf("row_width %d: %w", c.RowWidth, ErrInvalid)
	case c.MaxKeyLength < 1:
		return fmt.Errorf("max_key_length %d: %w", c.MaxKeyLength, ErrInvalid)
	case c.Workers < 1:
		return fmt.Errorf("workers %d: %w", c.Workers, ErrInvalid)
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level %q: %w", c.Log.Level, ErrInvalid)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("log.format %q: %w", c.Log.Format, ErrInvalid)
	}

	return nil
}

// GridOptions returns the grid reader shape described by c.
func (c *Config) GridOptions() gridreader.Options {
	return gridreader.Options{MessageCount: c.MessageCount, RowWidth: c.RowWidth}
}
