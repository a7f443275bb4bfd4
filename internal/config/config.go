// Package config provides configuration management for the record mapper.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Configuration validation errors.
var (
	ErrMissingInput     = errors.New("mapper.input is required")
	ErrMissingOutput    = errors.New("mapper.output is required")
	ErrSamePath         = errors.New("mapper.output must differ from mapper.input")
	ErrPreviewCollision = errors.New("mapper.preview must differ from mapper.input and mapper.output")
	ErrInvalidLogLevel  = errors.New("logging.level must be one of: debug, info, warn, error")
	ErrInvalidLogFormat = errors.New("logging.format must be 'text' or 'json'")
)

// Defaults applied to empty fields.
const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// Config represents the complete mapper configuration.
type Config struct {
	Mapper  MapperConfig  `yaml:"mapper"`
	Logging LoggingConfig `yaml:"logging"`
}

// MapperConfig defines where records are read and items written.
type MapperConfig struct {
	Input       string `yaml:"input"`
	Output      string `yaml:"output"`
	Preview     string `yaml:"preview"`
	PrettyPrint bool   `yaml:"pretty_print"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns a configuration with defaults and no paths.
func Default() *Config {
	return &Config{
		Mapper: MapperConfig{PrettyPrint: true},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// LoadConfig loads configuration from YAML file. Fields missing from the
// file keep their defaults. The result is not validated so that callers can
// apply overrides first.
func LoadConfig(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	cfg.applyDefaults()

	return cfg, nil
}

// SaveConfig saves configuration to YAML file.
func (c *Config) SaveConfig(filepath string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filepath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func (c *Config) applyDefaults() {
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}

	if c.Logging.Format == "" {
		c.Logging.Format = DefaultLogFormat
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Mapper.Input == "" {
		return ErrMissingInput
	}

	if c.Mapper.Output == "" {
		return ErrMissingOutput
	}

	if c.Mapper.Input == c.Mapper.Output {
		return ErrSamePath
	}

	if c.Mapper.Preview != "" && (c.Mapper.Preview == c.Mapper.Input || c.Mapper.Preview == c.Mapper.Output) {
		return ErrPreviewCollision
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return ErrInvalidLogLevel
	}

	if c.Logging.Format != "text" && c.Logging.Format != "json" {
		return ErrInvalidLogFormat
	}

	return nil
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Input: %s, Output: %s, Preview: %s, LogLevel: %s}",
		c.Mapper.Input,
		c.Mapper.Output,
		c.Mapper.Preview,
		c.Logging.Level,
	)
}
