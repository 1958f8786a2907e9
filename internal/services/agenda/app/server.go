// Package server wires the agenda runtime and gRPC lifecycle.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"

	agendav1 "github.com/pestebani/tonic-server/api/gen/go/agenda/v1"
	"github.com/pestebani/tonic-server/internal/platform/config"
	"github.com/pestebani/tonic-server/internal/platform/metrics"
	agendaservice "github.com/pestebani/tonic-server/internal/services/agenda/api/grpc/agenda"
	"github.com/pestebani/tonic-server/internal/services/agenda/api/grpc/interceptors"
	"github.com/pestebani/tonic-server/internal/services/agenda/storage"
	"github.com/pestebani/tonic-server/internal/services/agenda/storage/backend"
)

// HealthService is the name the agenda service reports under gRPC health.
const HealthService = "agenda.v1.AgendaService"

// InitPolicy decides what a failed storage Initialize means for startup.
type InitPolicy string

const (
	// InitStrict aborts startup when Initialize fails.
	InitStrict InitPolicy = "strict"
	// InitTolerant logs the failure and serves anyway; requests then surface
	// storage errors individually.
	InitTolerant InitPolicy = "tolerant"
)

// ParseInitPolicy accepts "strict" or "tolerant", defaulting to strict.
func ParseInitPolicy(raw string) (InitPolicy, error) {
	switch InitPolicy(strings.ToLower(strings.TrimSpace(raw))) {
	case "", InitStrict:
		return InitStrict, nil
	case InitTolerant:
		return InitTolerant, nil
	default:
		return "", fmt.Errorf("unsupported init policy %q (want %s or %s)", raw, InitStrict, InitTolerant)
	}
}

type serverEnv struct {
	InitPolicy string `env:"AGENDA_INIT_POLICY" envDefault:"strict"`
}

// Config describes one agenda server.
type Config struct {
	// Addr is the gRPC listen address, e.g. ":50051".
	Addr string
	// MetricsAddr enables the Prometheus endpoint when set.
	MetricsAddr string
	Storage     backend.Config
	InitPolicy  InitPolicy
	Logger      *slog.Logger
}

// LoadConfig reads storage and init policy settings from the environment.
func LoadConfig(addr, metricsAddr string) (Config, error) {
	storageCfg, err := backend.LoadConfig()
	if err != nil {
		return Config{}, err
	}
	var env serverEnv
	if err := config.ParseEnv(&env); err != nil {
		return Config{}, err
	}
	policy, err := ParseInitPolicy(env.InitPolicy)
	if err != nil {
		return Config{}, err
	}
	return Config{
		Addr:        addr,
		MetricsAddr: metricsAddr,
		Storage:     storageCfg,
		InitPolicy:  policy,
	}, nil
}

// Server hosts the agenda gRPC API and storage lifecycle.
type Server struct {
	logger          *slog.Logger
	listener        net.Listener
	metricsListener net.Listener
	registry        *prometheus.Registry
	grpcServer      *grpc.Server
	health          *health.Server
	store           storage.AgendaStore
}

// NewWithAddr creates an agenda server for addr, reading the rest of its
// configuration from the environment.
func NewWithAddr(ctx context.Context, addr, metricsAddr string, logger *slog.Logger) (*Server, error) {
	cfg, err := LoadConfig(addr, metricsAddr)
	if err != nil {
		return nil, err
	}
	cfg.Logger = logger
	return NewWithConfig(ctx, cfg)
}

// NewWithConfig opens storage, initializes it under cfg.InitPolicy and
// registers the gRPC services. Nothing is served until Serve.
func NewWithConfig(ctx context.Context, cfg Config) (*Server, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	policy, err := ParseInitPolicy(string(cfg.InitPolicy))
	if err != nil {
		return nil, err
	}

	listener, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", cfg.Addr, err)
	}

	var (
		metricsListener net.Listener
		registry        *prometheus.Registry
		grpcMetrics     *interceptors.Metrics
	)
	if addr := strings.TrimSpace(cfg.MetricsAddr); addr != "" {
		metricsListener, err = net.Listen("tcp", addr)
		if err != nil {
			_ = listener.Close()
			return nil, fmt.Errorf("listen metrics on %s: %w", addr, err)
		}
		registry = metrics.NewRegistry()
		grpcMetrics = interceptors.NewMetrics(registry)
	}

	closeListeners := func() {
		_ = listener.Close()
		if metricsListener != nil {
			_ = metricsListener.Close()
		}
	}

	store, err := backend.Open(cfg.Storage, logger)
	if err != nil {
		closeListeners()
		return nil, err
	}
	if err := store.Initialize(ctx); err != nil {
		if policy == InitStrict {
			_ = store.Close()
			closeListeners()
			return nil, fmt.Errorf("initialize agenda store: %w", err)
		}
		logger.Error("agenda store failed to initialize, serving anyway", "error", err, "init_policy", string(policy))
	}

	grpcServer := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(
			interceptors.LoggingInterceptor(logger),
			interceptors.MetricsInterceptor(grpcMetrics),
		),
	)
	healthServer := health.NewServer()
	agendav1.RegisterAgendaServiceServer(grpcServer, agendaservice.NewService(store))
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(HealthService, grpc_health_v1.HealthCheckResponse_SERVING)

	return &Server{
		logger:          logger,
		listener:        listener,
		metricsListener: metricsListener,
		registry:        registry,
		grpcServer:      grpcServer,
		health:          healthServer,
		store:           store,
	}, nil
}

// Addr returns the gRPC listener address.
func (s *Server) Addr() string {
	if s == nil || s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// MetricsAddr returns the metrics listener address, or "" when disabled.
func (s *Server) MetricsAddr() string {
	if s == nil || s.metricsListener == nil {
		return ""
	}
	return s.metricsListener.Addr().String()
}

// Run creates and serves an agenda server on port until context
// cancellation. An empty metricsAddr disables the metrics endpoint.
func Run(ctx context.Context, port int, metricsAddr string, logger *slog.Logger) error {
	server, err := NewWithAddr(ctx, fmt.Sprintf(":%d", port), metricsAddr, logger)
	if err != nil {
		return err
	}
	return server.Serve(ctx)
}

// Serve starts the gRPC server until context cancellation.
func (s *Server) Serve(ctx context.Context) error {
	if s == nil {
		return errors.New("server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	defer s.Close()

	metricsCtx, stopMetrics := context.WithCancel(ctx)
	defer stopMetrics()
	metricsDone := make(chan error, 1)
	if s.metricsListener != nil {
		go func() {
			metricsDone <- metrics.Serve(metricsCtx, s.metricsListener, s.registry, s.logger)
		}()
	} else {
		metricsDone <- nil
	}

	s.logger.Info("agenda server listening", "addr", s.listener.Addr().String())
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.grpcServer.Serve(s.listener)
	}()

	var err error
	select {
	case <-ctx.Done():
		s.health.Shutdown()
		s.grpcServer.GracefulStop()
		err = <-serveErr
	case err = <-serveErr:
	}
	stopMetrics()
	if metricsErr := <-metricsDone; metricsErr != nil {
		s.logger.Warn("metrics server stopped with error", "error", metricsErr)
	}

	if err == nil || errors.Is(err, grpc.ErrServerStopped) {
		return nil
	}
	return fmt.Errorf("serve gRPC: %w", err)
}

// Close releases agenda server resources.
func (s *Server) Close() {
	if s == nil {
		return
	}
	if s.health != nil {
		s.health.Shutdown()
	}
	if s.grpcServer != nil {
		s.grpcServer.Stop()
	}
	if s.listener != nil {
		_ = s.listener.Close()
	}
	if s.metricsListener != nil {
		_ = s.metricsListener.Close()
	}
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			s.logger.Warn("close agenda store", "error", err)
		}
		s.store = nil
	}
}
