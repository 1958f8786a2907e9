// Package cmd holds the startup plumbing shared by agenda commands.
package cmd

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"strings"
	"time"

	"github.com/pestebani/tonic-server/internal/platform/config"
	"github.com/pestebani/tonic-server/internal/platform/logging"
	"github.com/pestebani/tonic-server/internal/platform/otel"
	"github.com/pestebani/tonic-server/internal/platform/timeouts"
)

// ServiceAgenda identifies the agenda server in logs and traces.
const ServiceAgenda = "agenda"

// RunFunc is a service loop. It returns when ctx ends or the service fails.
type RunFunc func(ctx context.Context, logger *slog.Logger) error

// RunOptions adjusts RunWithTelemetryAndOptions.
type RunOptions struct {
	// ShutdownTimeout bounds the telemetry flush. Zero uses timeouts.Shutdown.
	ShutdownTimeout time.Duration
	// Logger replaces the logger built from AGENDA_LOG_* variables.
	Logger *slog.Logger
}

// ParseConfig fills cfg from its env tags.
func ParseConfig[T any](cfg *T) error {
	if cfg == nil {
		return errors.New("config target is required")
	}
	return config.ParseEnv(cfg)
}

// ParseArgs parses command-line flags; flags win over the env values
// already loaded into their defaults.
func ParseArgs(fs *flag.FlagSet, args []string) error {
	if fs == nil {
		return errors.New("flag set is required")
	}
	if args == nil {
		args = []string{}
	}
	return fs.Parse(args)
}

// RunWithTelemetry runs a service loop with environment-configured logging
// and tracing.
func RunWithTelemetry(ctx context.Context, service string, run RunFunc) error {
	return RunWithTelemetryAndOptions(ctx, service, RunOptions{}, run)
}

// RunWithTelemetryAndOptions runs a service loop with logging and tracing,
// flushing traces when the loop returns.
func RunWithTelemetryAndOptions(ctx context.Context, service string, options RunOptions, run RunFunc) error {
	service = strings.TrimSpace(service)
	if service == "" {
		return errors.New("service name is required")
	}
	if run == nil {
		return errors.New("run function is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	logger, err := serviceLogger(service, options.Logger)
	if err != nil {
		return err
	}

	shutdown, err := otel.Setup(ctx, service)
	if err != nil {
		return err
	}
	defer flushTelemetry(service, shutdown, options.ShutdownTimeout)

	return run(ctx, logger)
}

func serviceLogger(service string, logger *slog.Logger) (*slog.Logger, error) {
	if logger == nil {
		opts, err := logging.LoadOptions()
		if err != nil {
			return nil, err
		}
		logger = logging.New(opts, nil)
	}
	return logger.With("service", service), nil
}

func flushTelemetry(service string, shutdown func(context.Context) error, timeout time.Duration) {
	if timeout <= 0 {
		timeout = timeouts.Shutdown
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := shutdown(ctx); err != nil {
		log.Printf("%s otel shutdown: %v", service, err)
	}
}
