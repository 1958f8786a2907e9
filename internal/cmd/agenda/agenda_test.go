package agenda

import (
	"context"
	"errors"
	"flag"
	"net"
	"testing"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	platformgrpc "github.com/pestebani/tonic-server/internal/platform/grpc"
	server "github.com/pestebani/tonic-server/internal/services/agenda/app"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("agenda", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Port != 50051 {
		t.Fatalf("expected default port 50051, got %d", cfg.Port)
	}
	if cfg.MetricsAddr != "" {
		t.Fatalf("expected metrics disabled by default, got %q", cfg.MetricsAddr)
	}
}

func TestParseConfigEnv(t *testing.T) {
	t.Setenv("AGENDA_PORT", "6000")
	t.Setenv("AGENDA_METRICS_ADDR", "localhost:9100")

	fs := flag.NewFlagSet("agenda", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Port != 6000 {
		t.Fatalf("expected env port 6000, got %d", cfg.Port)
	}
	if cfg.MetricsAddr != "localhost:9100" {
		t.Fatalf("expected env metrics addr, got %q", cfg.MetricsAddr)
	}
}

func TestParseConfigOverrides(t *testing.T) {
	t.Setenv("AGENDA_METRICS_ADDR", "env-metrics")

	fs := flag.NewFlagSet("agenda", flag.ContinueOnError)
	args := []string{"-port", "9000", "-metrics-addr", "flag-metrics"}
	cfg, err := ParseConfig(fs, args)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Port != 9000 {
		t.Fatalf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.MetricsAddr != "flag-metrics" {
		t.Fatalf("expected flag metrics addr, got %q", cfg.MetricsAddr)
	}
}

func TestParseConfigHealthCheckFlag(t *testing.T) {
	fs := flag.NewFlagSet("agenda", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-healthcheck", "-port", "7000"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if !cfg.HealthCheck || cfg.Port != 7000 {
		t.Fatalf("config = %+v", cfg)
	}
}

func TestCheckHealthServing(t *testing.T) {
	port := startHealthServer(t, healthpb.HealthCheckResponse_SERVING)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := CheckHealth(ctx, Config{Port: port}); err != nil {
		t.Fatalf("check health: %v", err)
	}
}

func TestCheckHealthNotServing(t *testing.T) {
	port := startHealthServer(t, healthpb.HealthCheckResponse_NOT_SERVING)

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()
	err := CheckHealth(ctx, Config{Port: port})
	var dialErr *platformgrpc.DialError
	if !errors.As(err, &dialErr) {
		t.Fatalf("expected dial error, got %v", err)
	}
	if dialErr.Stage != platformgrpc.DialStageHealth {
		t.Fatalf("stage = %q, want %q", dialErr.Stage, platformgrpc.DialStageHealth)
	}
}

func startHealthServer(t *testing.T, status healthpb.HealthCheckResponse_ServingStatus) int {
	t.Helper()

	lis, err := net.Listen("tcp", healthCheckHost+":0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	healthServer := health.NewServer()
	healthServer.SetServingStatus(server.HealthService, status)
	grpcServer := grpc.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	go func() { _ = grpcServer.Serve(lis) }()
	t.Cleanup(grpcServer.Stop)

	return lis.Addr().(*net.TCPAddr).Port
}

func TestParseConfigRejectsBadPort(t *testing.T) {
	t.Setenv("AGENDA_PORT", "not-a-port")

	fs := flag.NewFlagSet("agenda", flag.ContinueOnError)
	if _, err := ParseConfig(fs, nil); err == nil {
		t.Fatal("expected error for invalid AGENDA_PORT")
	}
}

func TestRunReturnsStartupError(t *testing.T) {
	t.Setenv("DATABASE_TYPE", "cassandra")
	t.Setenv("AGENDA_OTEL_ENABLED", "false")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := Run(ctx, Config{Port: 0}); err == nil {
		t.Fatal("expected unsupported backend error")
	}
}
