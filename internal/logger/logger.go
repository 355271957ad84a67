// Package logger provides a configured zerolog logger.
package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// New returns a logger writing to stderr so command output stays clean.
// Unknown level names fall back to error.
func New(service, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.ErrorLevel
	}
	return zerolog.New(os.Stderr).Level(lvl).With().
		Str("service", service).
		Timestamp().
		Logger()
}
