package logging

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New builds the application logger. Pretty output is meant for local
// development; production deployments log JSON lines.
func New(level string, pretty bool) zerolog.Logger {
	parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || parsed == zerolog.NoLevel {
		parsed = zerolog.InfoLevel
	}

	var logger zerolog.Logger
	if pretty {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	} else {
		logger = zerolog.New(os.Stderr)
	}

	return logger.Level(parsed).With().Timestamp().Logger()
}
