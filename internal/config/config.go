// Package config loads configuration for the typestate-demo command.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileNames are the config file names searched for, in order, from the
// working directory up to the filesystem root.
var FileNames = []string{".typestate.yaml", ".typestate.yml"}

// LogFormat selects the slog handler used by the demo.
type LogFormat string

const (
	LogFormatText LogFormat = "text"
	LogFormatJSON LogFormat = "json"
)

// Config is the complete demo configuration.
type Config struct {
	Log   LogConfig  `yaml:"log"`
	Items []ItemSpec `yaml:"items"`
}

// LogConfig configures demo logging.
type LogConfig struct {
	Level  string    `yaml:"level"`
	Format LogFormat `yaml:"format"`
}

// ItemSpec describes one item to build. A nil field means the value was
// not supplied; such items are discarded instead of built.
type ItemSpec struct {
	Name string  `yaml:"name"`
	A    *string `yaml:"a"`
	B    *[]int  `yaml:"b"`
}

// Complete reports whether both fields were supplied.
func (s ItemSpec) Complete() bool {
	return s.A != nil && s.B != nil
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: LogFormatText,
		},
	}
}

// Load reads configuration from path, or from the nearest config file
// when path is empty, then applies environment overrides and validates.
// A missing config file is not an error when path is empty.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		path = findConfigFile()
	}
	if path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// findConfigFile searches for the configuration file.
func findConfigFile() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		for _, name := range FileNames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

// loadFromFile reads configuration from a YAML file.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// applyEnvOverrides applies environment variable overrides.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("TYPESTATE_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("TYPESTATE_LOG_FORMAT"); v != "" {
		cfg.Log.Format = LogFormat(v)
	}
}

// Validate checks the configuration and returns every problem found,
// joined with errors.Join.
func (c *Config) Validate() error {
	var errs []error

	if _, err := c.Log.SlogLevel(); err != nil {
		errs = append(errs, err)
	}
	switch c.Log.Format {
	case LogFormatText, LogFormatJSON:
	default:
		errs = append(errs, NewValidationError("log.format",
			fmt.Sprintf("must be %q or %q, got %q", LogFormatText, LogFormatJSON, c.Log.Format)))
	}

	seen := make(map[string]bool, len(c.Items))
	for i, item := range c.Items {
		field := fmt.Sprintf("items[%d].name", i)
		switch {
		case item.Name == "":
			errs = append(errs, NewValidationError(field, "cannot be empty"))
		case seen[item.Name]:
			errs = append(errs, NewValidationError(field, fmt.Sprintf("duplicate name %q", item.Name)))
		}
		seen[item.Name] = true
	}

	return errors.Join(errs...)
}

// SlogLevel parses Level into a slog.Level.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(l.Level))); err != nil {
		return 0, NewValidationErrorWithCause("log.level", fmt.Sprintf("unknown level %q", l.Level), err)
	}
	return level, nil
}
