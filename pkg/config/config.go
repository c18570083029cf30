package config

import (
	"fmt"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	ConstantProgramName = "set-slice"

	// Keys understood in a defaults file passed with --config.
	KeyLogLevel = "SET_SLICE_LOG_LEVEL"
	KeyPreserve = "SET_SLICE_PRESERVE"

	// DefaultLogLevel keeps diagnostics quiet so stdout/stderr only carry the result.
	DefaultLogLevel = "warn"
	// DefaultPreserve resets policy and nice like the classic set_slice tool.
	DefaultPreserve = false
)

type Config struct {
	LogLevel string
	Preserve bool
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		LogLevel: DefaultLogLevel,
		Preserve: DefaultPreserve,
	}
}

// Load returns the defaults, overridden by filename when it is set. The file
// uses dotenv syntax. The process environment is never consulted.
func Load(filename string) (*Config, error) {
	cfg := Default()
	if filename == "" {
		return cfg, nil
	}

	values, err := godotenv.Read(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", filename, err)
	}

	cfg.LogLevel = getString(values, KeyLogLevel, cfg.LogLevel)
	cfg.Preserve = getBool(values, KeyPreserve, cfg.Preserve)
	return cfg, nil
}

func getString(values map[string]string, key, fallback string) string {
	if value, ok := values[key]; ok && value != "" {
		return value
	}
	return fallback
}

func getBool(values map[string]string, key string, fallback bool) bool {
	if value, ok := values[key]; ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}
