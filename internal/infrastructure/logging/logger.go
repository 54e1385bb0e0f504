package logging

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// New creates a zerolog logger configured from the level and format strings.
// Unknown levels fall back to info; any format other than "json" uses the
// console writer.
func New(level, format string) zerolog.Logger {
	parsed, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || parsed == zerolog.NoLevel {
		parsed = zerolog.InfoLevel
	}

	var logger zerolog.Logger
	if format == "json" {
		logger = zerolog.New(os.Stdout)
	} else {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	return logger.Level(parsed).With().Timestamp().Logger()
}
