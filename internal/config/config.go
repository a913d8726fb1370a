// Package config handles geomtool configuration loading and management.
package config

import "fmt"

// Config holds all geomtool settings.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Output  OutputConfig  `yaml:"output"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// OutputConfig controls how tool results are written.
type OutputConfig struct {
	Format    string `yaml:"format"`    // json or yaml
	Precision int    `yaml:"precision"` // decimal places; negative disables rounding
	Indent    bool   `yaml:"indent"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
		Output: OutputConfig{
			Format:    "json",
			Precision: -1,
			Indent:    true,
		},
	}
}

// Validate checks values that cannot be corrected silently.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case "json", "yaml":
	default:
		return fmt.Errorf("output.format must be json or yaml, got %q", c.Output.Format)
	}
	if c.Output.Precision > 15 {
		return fmt.Errorf("output.precision must be at most 15, got %d", c.Output.Precision)
	}
	return nil
}
