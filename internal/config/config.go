// Package config provides configuration management for the orglite tools.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"orglite/internal/logger"
	"orglite/internal/table"
)

// Configuration validation errors.
var (
	ErrNoExtensions         = errors.New("formatter.extensions must list at least one extension")
	ErrInvalidExtension     = errors.New("formatter.extensions entries must start with '.'")
	ErrNoDefaultWidths      = errors.New("table.default_widths must list at least one width")
	ErrInvalidDefaultWidth  = errors.New("table.default_widths entries must be non-negative")
	ErrInvalidMaxColumns    = errors.New("lint.max_columns must be non-negative")
	ErrInvalidLogLevel      = errors.New("logging.level must be one of: debug, info, warn, error")
	ErrConfigNotFound       = errors.New("config file not found")
	errUnsupportedExtension = errors.New("unsupported extension")
)

// Config represents the complete orglite configuration.
type Config struct {
	Formatter FormatterConfig `yaml:"formatter"`
	Table     TableConfig     `yaml:"table"`
	Lint      LintConfig      `yaml:"lint"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// FormatterConfig controls which files the formatter visits.
type FormatterConfig struct {
	Extensions []string `yaml:"extensions"`
	SkipHidden bool     `yaml:"skip_hidden"`
}

// TableConfig contains table editing settings.
type TableConfig struct {
	DefaultWidths []int `yaml:"default_widths"`
}

// LintConfig selects the table checks.
type LintConfig struct {
	CheckAlignment bool `yaml:"check_alignment"`
	CheckOpenRows  bool `yaml:"check_open_rows"`
	CheckRagged    bool `yaml:"check_ragged"`
	CheckWidth     bool `yaml:"check_width"`
	MaxColumns     int  `yaml:"max_columns"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Formatter: FormatterConfig{
			Extensions: []string{".org"},
			SkipHidden: true,
		},
		Table: TableConfig{
			DefaultWidths: slices.Clone(table.DefaultWidths),
		},
		Lint: LintConfig{
			CheckAlignment: true,
			CheckOpenRows:  true,
			CheckRagged:    true,
			CheckWidth:     true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LoadConfig loads configuration from a YAML file. Keys missing from the
// file keep their Default values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}

		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// LoadOrDefault loads path when it is set, otherwise the first of candidates
// that exists, otherwise Default. The returned string names the file used,
// empty for defaults.
func LoadOrDefault(path string, candidates ...string) (*Config, string, error) {
	if path != "" {
		cfg, err := LoadConfig(path)
		return cfg, path, err
	}

	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			cfg, err := LoadConfig(c)
			return cfg, c, err
		}
	}

	return Default(), "", nil
}

// SaveConfig saves configuration to YAML file.
func (c *Config) SaveConfig(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if len(c.Formatter.Extensions) == 0 {
		return ErrNoExtensions
	}

	for i, ext := range c.Formatter.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("%w: extensions[%d] = %q", ErrInvalidExtension, i, ext)
		}
	}

	if len(c.Table.DefaultWidths) == 0 {
		return ErrNoDefaultWidths
	}

	for i, w := range c.Table.DefaultWidths {
		if w < 0 {
			return fmt.Errorf("%w: default_widths[%d] = %d", ErrInvalidDefaultWidth, i, w)
		}
	}

	if c.Lint.MaxColumns < 0 {
		return ErrInvalidMaxColumns
	}

	if _, ok := logger.ParseLevel(c.Logging.Level); !ok {
		return ErrInvalidLogLevel
	}

	return nil
}

// HasExtension reports whether path ends with one of the configured
// extensions, compared case-insensitively.
func (c *Config) HasExtension(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))

	for _, e := range c.Formatter.Extensions {
		if strings.ToLower(e) == ext {
			return true
		}
	}

	return false
}

// CheckExtension returns an error naming path when HasExtension is false.
func (c *Config) CheckExtension(path string) error {
	if !c.HasExtension(path) {
		return fmt.Errorf("%w: %s (want one of %s)", errUnsupportedExtension, path, strings.Join(c.Formatter.Extensions, ", "))
	}

	return nil
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Extensions: %v, DefaultWidths: %v, MaxColumns: %d, LogLevel: %s}",
		c.Formatter.Extensions,
		c.Table.DefaultWidths,
		c.Lint.MaxColumns,
		c.Logging.Level,
	)
}
