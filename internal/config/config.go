// Package config provides configuration management for the slip39 CLI.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	Version  int            `yaml:"version"`
	Home     string         `yaml:"home"`
	Sharing  SharingConfig  `yaml:"sharing"`
	Security SecurityConfig `yaml:"security"`
	Output   OutputConfig   `yaml:"output"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// SharingConfig defines default splitting parameters applied when a CLI
// invocation doesn't override them with flags.
type SharingConfig struct {
	IterationExponent int `yaml:"iteration_exponent"`
	GroupThreshold    int `yaml:"group_threshold"`
}

// SecurityConfig defines security settings.
type SecurityConfig struct {
	MemoryLock bool `yaml:"memory_lock"`
}

// OutputConfig defines output formatting settings.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format"`
	Color         string `yaml:"color"`
	Verbose       bool   `yaml:"verbose"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Load reads configuration from the specified file.
func Load(path string) (*Config, error) {
	// #nosec G304 -- config file path is from validated user input
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes configuration to the specified file.
func Save(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o600)
}

// Path returns the default config file path.
func Path(home string) string {
	return filepath.Join(home, "config.yaml")
}

// GetHome returns the slip39 home directory path.
func (c *Config) GetHome() string {
	return c.Home
}

// GetLoggingLevel returns the configured logging level.
func (c *Config) GetLoggingLevel() string {
	return c.Logging.Level
}

// GetLoggingFile returns the configured log file path.
func (c *Config) GetLoggingFile() string {
	return c.Logging.File
}

// GetOutputFormat returns the default output format.
func (c *Config) GetOutputFormat() string {
	return c.Output.DefaultFormat
}

// IsVerbose returns true if verbose output is enabled.
func (c *Config) IsVerbose() bool {
	return c.Output.Verbose
}

// GetSecurity returns the security configuration.
func (c *Config) GetSecurity() SecurityConfig {
	return c.Security
}

// GetDefaultIterationExponent returns the default Feistel iteration exponent
// applied when --iteration-exponent isn't passed.
func (c *Config) GetDefaultIterationExponent() int {
	return c.Sharing.IterationExponent
}

// DefaultHome returns the default slip39 home directory.
func DefaultHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".slip39"
	}
	return filepath.Join(home, ".slip39")
}
