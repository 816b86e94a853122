package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
)

// Setup configures the global logger: console output outside production,
// JSON lines in production. An unknown level falls back to info.
func Setup(env, level string) zerolog.Logger {
	return configure(os.Stdout, env, level)
}

func configure(out io.Writer, env, level string) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	if env != "production" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
	}
	zlog.Logger = zerolog.New(out).With().Timestamp().Logger()
	return zlog.Logger
}
