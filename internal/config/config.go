// Package config provides the configuration management for converters.
// It defines the data structure for the configuration, reads it from the
// environment, and performs validation on the configuration values.
package config

import (
	"io"

	"github.com/agbru/baseconv/internal/conversion"
	apperrors "github.com/agbru/baseconv/internal/errors"
	"github.com/agbru/baseconv/internal/logging"
)

const (
	// EnvPrefix is the prefix for all environment variables used by baseconv.
	EnvPrefix = "BASECONV_"
)

// Default configuration values.
// These can be overridden via environment variables.
const (
	// DefaultMaxInputLength is the default limit on input symbols.
	DefaultMaxInputLength = conversion.DefaultMaxInputLength
	// DefaultLogLevel is the default level of the conversion logger.
	DefaultLogLevel = "info"
)

// Config aggregates the settings of a Converter.
type Config struct {
	// MaxInputLength is the longest input accepted, in symbols.
	// Zero disables the limit.
	MaxInputLength int
	// LogLevel is the zerolog level name for conversion logs.
	// "disabled" turns logging off.
	LogLevel string
	// Metrics, if true, exports conversion metrics to the default
	// Prometheus registry.
	Metrics bool
}

// Default returns the configuration used when no environment variable is set.
func Default() Config {
	return Config{
		MaxInputLength: DefaultMaxInputLength,
		LogLevel:       DefaultLogLevel,
	}
}

// Validate checks the semantic consistency of the configuration parameters.
//
// Returns:
//   - error: An error of type ConfigError if the configuration is invalid,
//     nil otherwise.
func (c Config) Validate() error {
	if c.MaxInputLength < 0 {
		return apperrors.NewConfigError("max input length cannot be negative: %d", c.MaxInputLength)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// ToOptions converts the configuration into conversion options: the input
// limit, a logging observer writing to w, and a metrics observer when
// Metrics is set.
//
// Parameters:
//   - w: The destination of conversion logs.
//
// Returns:
//   - []conversion.Option: Options for conversion.NewConverter.
//   - error: A ConfigError if the configuration is invalid.
func (c Config) ToOptions(w io.Writer) ([]conversion.Option, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	level, _ := logging.ParseLevel(c.LogLevel)
	logger := logging.NewLogger(w, "converter").Level(level)

	opts := []conversion.Option{
		conversion.WithMaxInputLength(c.MaxInputLength),
		conversion.WithObserver(conversion.NewLoggingObserver(logger)),
	}
	if c.Metrics {
		opts = append(opts, conversion.WithObserver(conversion.NewMetricsObserver(nil)))
	}
	return opts, nil
}
