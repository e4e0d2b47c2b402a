package config

import (
	"os"
	"strconv"
	"strings"
)

// Environment variable names.
const (
	EnvHome              = "SLIP39_HOME"
	EnvOutputFormat      = "SLIP39_OUTPUT_FORMAT"
	EnvVerbose           = "SLIP39_VERBOSE"
	EnvLogLevel          = "SLIP39_LOG_LEVEL"
	EnvNoColor           = "NO_COLOR"
	EnvIterationExponent = "SLIP39_ITERATION_EXPONENT"
)

// ApplyEnvironment applies environment variable overrides to the configuration.
func ApplyEnvironment(cfg *Config) {
	if v := os.Getenv(EnvHome); v != "" {
		cfg.Home = v
	}

	if v := os.Getenv(EnvOutputFormat); v != "" {
		cfg.Output.DefaultFormat = strings.ToLower(v)
	}

	if v := os.Getenv(EnvVerbose); v != "" {
		cfg.Output.Verbose = parseBool(v)
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}

	// NO_COLOR disables colored output
	if _, ok := os.LookupEnv(EnvNoColor); ok {
		cfg.Output.Color = "never"
	}

	if v := os.Getenv(EnvIterationExponent); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.Sharing.IterationExponent = n
		}
	}
}

// parseBool parses a boolean string value.
func parseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "1" || s == "true" || s == "yes" || s == "on" {
		return true
	}
	b, _ := strconv.ParseBool(s)
	return b
}
