// Package agenda parses agenda service flags and launches the service.
package agenda

import (
	"context"
	"flag"
	"log/slog"
	"net"
	"strconv"

	entrypoint "github.com/pestebani/tonic-server/internal/platform/cmd"
	platformgrpc "github.com/pestebani/tonic-server/internal/platform/grpc"
	server "github.com/pestebani/tonic-server/internal/services/agenda/app"
)

// healthCheckHost is where -healthcheck looks for the local server.
const healthCheckHost = "127.0.0.1"

// Config holds agenda command configuration.
type Config struct {
	Port        int    `env:"AGENDA_PORT" envDefault:"50051"`
	MetricsAddr string `env:"AGENDA_METRICS_ADDR"`
	// HealthCheck probes a running server on Port instead of starting one.
	HealthCheck bool
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.IntVar(&cfg.Port, "port", cfg.Port, "The agenda gRPC server port")
	fs.StringVar(&cfg.MetricsAddr, "metrics-addr", cfg.MetricsAddr, "Address for the Prometheus metrics endpoint (disabled when empty)")
	fs.BoolVar(&cfg.HealthCheck, "healthcheck", false, "Exit 0 when the local agenda server reports SERVING, then stop")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the agenda gRPC API service.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceAgenda, func(ctx context.Context, logger *slog.Logger) error {
		return server.Run(ctx, cfg.Port, cfg.MetricsAddr, logger)
	})
}

// CheckHealth reports whether the agenda server on cfg.Port answers its
// health service with SERVING.
func CheckHealth(ctx context.Context, cfg Config) error {
	conn, err := platformgrpc.Dial(ctx, platformgrpc.DialConfig{
		Addr:          net.JoinHostPort(healthCheckHost, strconv.Itoa(cfg.Port)),
		HealthService: server.HealthService,
		Logger:        slog.Default(),
	})
	if err != nil {
		return err
	}
	return conn.Close()
}
