// Package logger builds the zerolog loggers shared by the ShopEase binaries.
package logger

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// New returns a stdout JSON logger tagged with the service name, at info
// level.
func New(serviceName string) zerolog.Logger {
	return NewWithLevel(serviceName, "info")
}

// NewWithLevel is New with an explicit level name (typically from config).
// Unknown or empty level names fall back to info.
func NewWithLevel(serviceName, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(os.Stdout).
		Level(lvl).
		With().
		Str("service", serviceName).
		Timestamp().
		Logger()
}
