package config

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

// Logger builds a logger writing to w in the configured format, and sets the
// global level so the package-level zerolog logger agrees with it.
func (c Config) Logger(w io.Writer) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.Logger{}, fmt.Errorf("parsing log level %q: %w", c.LogLevel, err)
	}
	zerolog.SetGlobalLevel(level)

	switch c.LogFormat {
	case "json":
		return zerolog.New(w).With().Timestamp().Logger(), nil
	case "console":
		return zerolog.New(zerolog.ConsoleWriter{Out: w}).With().Timestamp().Logger(), nil
	default:
		return zerolog.Logger{}, fmt.Errorf("unknown log format %q", c.LogFormat)
	}
}
