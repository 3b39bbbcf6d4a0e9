// Package logger provides a thin wrapper around zerolog.Logger with the
// constructors used across the recipes-api binaries and tests.
package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// Logger embeds zerolog.Logger so the full zerolog API is available
// directly on *Logger.
type Logger struct {
	zerolog.Logger
}

// New constructs a JSON logger writing to stdout, tagged with the given
// role label (e.g. "api", "seed").
func New(role string) *Logger {
	l := zerolog.New(os.Stdout).With().
		Str("role", role).
		Timestamp().
		Logger()
	return &Logger{l}
}

// Nop returns a logger that discards all output. Intended for tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}
