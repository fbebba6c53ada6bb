// Package config handles geomcheck configuration loading and management.
package config

import (
	"fmt"
	"runtime"
)

// Report formats understood by geomcheck.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// Config holds all geomcheck settings.
type Config struct {
	Check   CheckConfig   `yaml:"check"`
	Logging LoggingConfig `yaml:"logging"`
}

// CheckConfig controls scene evaluation.
type CheckConfig struct {
	Epsilon float32 `yaml:"epsilon"` // Tolerance for approximate comparisons
	Workers int     `yaml:"workers"` // Files evaluated in parallel
	Watch   bool    `yaml:"watch"`   // Re-evaluate on file changes
	Format  string  `yaml:"format"`  // "text" or "yaml"
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Check: CheckConfig{
			Epsilon: 1e-5,
			Workers: runtime.NumCPU(),
			Watch:   false,
			Format:  FormatText,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports settings geomcheck cannot run with.
func (c *Config) Validate() error {
	if c.Check.Epsilon < 0 {
		return fmt.Errorf("check.epsilon must not be negative, got %g", c.Check.Epsilon)
	}
	if c.Check.Workers < 1 {
		return fmt.Errorf("check.workers must be at least 1, got %d", c.Check.Workers)
	}
	switch c.Check.Format {
	case FormatText, FormatYAML:
	default:
		return fmt.Errorf("check.format must be %q or %q, got %q", FormatText, FormatYAML, c.Check.Format)
	}
	return nil
}
