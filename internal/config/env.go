// Package config provides the configuration management for converters.
// This file contains environment variable utilities for configuration.
package config

import (
	"os"
	"strconv"
	"strings"
)

// ─────────────────────────────────────────────────────────────────────────────
// Environment Variable Utilities
// ─────────────────────────────────────────────────────────────────────────────

// getEnvString returns the value of the environment variable with the given key
// (prefixed with EnvPrefix), or the default value if not set.
func getEnvString(key, defaultVal string) string {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		return val
	}
	return defaultVal
}

// getEnvInt returns the value of the environment variable with the given key
// (prefixed with EnvPrefix) parsed as int, or the default value if not set
// or invalid.
func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return defaultVal
}

// getEnvBool returns the value of the environment variable with the given key
// (prefixed with EnvPrefix) parsed as bool, or the default value if not set.
// Accepts "true", "1", "yes" as true; "false", "0", "no" as false (case-insensitive).
func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		switch strings.ToLower(val) {
		case "true", "1", "yes":
			return true
		case "false", "0", "no":
			return false
		}
	}
	return defaultVal
}

// FromEnv returns the default configuration overridden by environment
// variables. Values that cannot be parsed keep their default.
//
// Supported environment variables:
//   - BASECONV_MAX_INPUT_LENGTH: Longest accepted input in symbols (int, 0 = unlimited)
//   - BASECONV_LOG_LEVEL: Conversion log level (string: debug, info, warn, disabled)
//   - BASECONV_METRICS: Export Prometheus metrics (bool: true/false, 1/0, yes/no)
func FromEnv() Config {
	c := Default()
	c.MaxInputLength = getEnvInt("MAX_INPUT_LENGTH", c.MaxInputLength)
	c.LogLevel = getEnvString("LOG_LEVEL", c.LogLevel)
	c.Metrics = getEnvBool("METRICS", c.Metrics)
	return c
}
