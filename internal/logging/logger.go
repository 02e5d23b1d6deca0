// Package logging builds the zerolog loggers used by converters and their
// observers.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	apperrors "github.com/agbru/baseconv/internal/errors"
)

// DefaultLevel is used when no level is configured.
const DefaultLevel = zerolog.InfoLevel

// NewLogger creates a structured JSON logger writing to w, tagged with the
// emitting component. A nil writer logs to stderr.
//
// Parameters:
//   - w: The destination writer.
//   - component: The name recorded in the "component" field.
//
// Returns:
//   - zerolog.Logger: The configured logger, at DefaultLevel.
func NewLogger(w io.Writer, component string) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	return zerolog.New(w).
		Level(DefaultLevel).
		With().
		Timestamp().
		Str("component", component).
		Logger()
}

// ParseLevel maps a level name ("debug", "info", "warn", ...) to a zerolog
// level. An empty name yields DefaultLevel.
func ParseLevel(name string) (zerolog.Level, error) {
	name = strings.TrimSpace(strings.ToLower(name))
	if name == "" {
		return DefaultLevel, nil
	}
	level, err := zerolog.ParseLevel(name)
	if err != nil {
		return zerolog.NoLevel, apperrors.NewConfigError("unrecognized log level: '%s'", name)
	}
	return level, nil
}
