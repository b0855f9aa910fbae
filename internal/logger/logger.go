package logger

import (
	"io"
	"os"

	"party-games-analysis/internal/config"

	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

// New builds the process logger. Logs go to stderr so stdout stays free for
// the run report. A --log-level flag wins over LOG_LEVEL.
func New(o config.Overrides) zerolog.Logger {
	level := o.LogLevel
	if level == "" {
		level = os.Getenv("LOG_LEVEL")
	}
	return WithLevel(os.Stderr, level)
}

// WithLevel builds a logger writing to w at the named level, falling back to
// info when the name is empty or unknown.
func WithLevel(w io.Writer, level string) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	return zerolog.New(w).
		With().
		Timestamp().
		Caller().
		Logger().
		Level(lvl)
}

var Module = fx.Provide(New)
