package bootstrap

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/GoSim-25-26J-441/portfolio-backend/config"
)

// NewLogger builds the process logger: human readable in development, JSON
// everywhere else.
func NewLogger(app config.AppConfig) zerolog.Logger {
	var out io.Writer = os.Stderr
	if !app.IsProduction() {
		out = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	}

	level, err := zerolog.ParseLevel(app.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	return zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("service", app.Name).
		Str("version", app.Version).
		Logger()
}
