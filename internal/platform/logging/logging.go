// Package logging builds the structured logger shared by agenda processes.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/pestebani/tonic-server/internal/platform/config"
)

// Options selects the minimum level and output encoding.
type Options struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"text"`
}

// EnvPrefix namespaces the logging environment variables.
const EnvPrefix = "AGENDA_"

// LoadOptions reads AGENDA_LOG_LEVEL and AGENDA_LOG_FORMAT.
func LoadOptions() (Options, error) {
	var opts Options
	if err := config.ParseEnvPrefixed(&opts, EnvPrefix); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// ParseLevel maps a level name to its slog level. The empty name is info.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", name)
	}
}

// New builds a logger writing to output, or to stderr when output is nil.
// Unknown levels or formats fall back to info/text and the fallback is
// reported through the returned logger.
func New(options Options, output io.Writer) *slog.Logger {
	if output == nil {
		output = os.Stderr
	}

	level, levelErr := ParseLevel(options.Level)
	handlerOpts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	formatKnown := true
	switch strings.ToLower(strings.TrimSpace(options.Format)) {
	case "json":
		handler = slog.NewJSONHandler(output, handlerOpts)
	case "", "text":
		handler = slog.NewTextHandler(output, handlerOpts)
	default:
		formatKnown = false
		handler = slog.NewTextHandler(output, handlerOpts)
	}

	logger := slog.New(handler)
	if levelErr != nil {
		logger.Warn("could not parse logger level", "err", levelErr)
	}
	if !formatKnown {
		logger.Warn("could not parse logger format", "format", options.Format)
	}
	return logger
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
