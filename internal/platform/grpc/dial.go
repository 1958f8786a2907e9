// Package grpc holds client-side helpers for reaching gRPC peers that expose
// the standard health service.
package grpc

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	gogrpc "google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/pestebani/tonic-server/internal/platform/timeouts"
)

// DialStage describes where a dial attempt failed.
type DialStage string

const (
	// DialStageConnect means the client could not be built for the target.
	DialStageConnect DialStage = "connect"
	// DialStageHealth means the peer never reported SERVING.
	DialStageHealth DialStage = "health"
)

// DialError reports a failed Dial with the stage and target.
type DialError struct {
	Stage DialStage
	Addr  string
	Err   error
}

func (e *DialError) Error() string {
	if e == nil {
		return "gRPC dial error"
	}
	return fmt.Sprintf("dial %s: %s: %v", e.Addr, e.Stage, e.Err)
}

func (e *DialError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// DialConfig describes a peer and how long to wait for it.
type DialConfig struct {
	Addr string
	// HealthService is the name checked in the health service; "" checks
	// the server as a whole.
	HealthService string
	// Timeout bounds the health wait. Zero uses timeouts.HealthWait.
	Timeout time.Duration
	Logger  *slog.Logger
	// Options replace DefaultDialOptions when set.
	Options []gogrpc.DialOption
}

// DefaultDialOptions dials in plaintext and propagates trace context.
func DefaultDialOptions() []gogrpc.DialOption {
	return []gogrpc.DialOption{
		gogrpc.WithTransportCredentials(insecure.NewCredentials()),
		gogrpc.WithStatsHandler(otelgrpc.NewClientHandler()),
	}
}

// Dial builds a client for cfg.Addr and returns it once the peer reports
// SERVING. The connection is closed if the wait fails.
func Dial(ctx context.Context, cfg DialConfig) (*gogrpc.ClientConn, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	addr := strings.TrimSpace(cfg.Addr)
	if addr == "" {
		return nil, &DialError{Stage: DialStageConnect, Err: fmt.Errorf("address is required")}
	}
	opts := cfg.Options
	if len(opts) == 0 {
		opts = DefaultDialOptions()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = timeouts.HealthWait
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	conn, err := gogrpc.NewClient(addr, opts...)
	if err != nil {
		return nil, &DialError{Stage: DialStageConnect, Addr: addr, Err: err}
	}

	waitCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := WaitServing(waitCtx, conn, cfg.HealthService, logger.With("addr", addr)); err != nil {
		_ = conn.Close()
		return nil, &DialError{Stage: DialStageHealth, Addr: addr, Err: err}
	}
	return conn, nil
}
