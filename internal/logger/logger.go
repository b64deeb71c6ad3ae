package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// DefaultLevel is used when no level is configured or the value is unknown
const DefaultLevel = zerolog.InfoLevel

// New creates a logger writing JSON lines to writer
func New(writer io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// NewConsole creates a human-readable logger on stderr
func NewConsole(level zerolog.Level) zerolog.Logger {
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stderr}
	return New(consoleWriter, level)
}

// ParseLevel converts a textual level into a zerolog level.
// Unknown or empty values fall back to DefaultLevel.
func ParseLevel(value string) zerolog.Level {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return DefaultLevel
	}
	if value == "warning" {
		value = "warn"
	}
	level, err := zerolog.ParseLevel(value)
	if err != nil || level == zerolog.NoLevel {
		return DefaultLevel
	}
	return level
}

// Component returns a child logger tagged with the component name
func Component(log zerolog.Logger, name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}
