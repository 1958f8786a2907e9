package grpc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	gogrpc "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

const (
	healthRetryDelay = 100 * time.Millisecond
	healthCheckCall  = time.Second
)

// WaitServing blocks until the health service reports service as SERVING or
// ctx ends. It follows the Watch stream and falls back to polling Check on
// servers that do not implement Watch.
func WaitServing(ctx context.Context, conn *gogrpc.ClientConn, service string, logger *slog.Logger) error {
	if conn == nil {
		return fmt.Errorf("gRPC connection is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if logger == nil {
		logger = slog.Default()
	}
	client := grpc_health_v1.NewHealthClient(conn)

	for {
		err := watchUntilServing(ctx, client, service, logger)
		if err == nil {
			return nil
		}
		if status.Code(err) == codes.Unimplemented {
			return pollUntilServing(ctx, client, service, logger)
		}
		if ctx.Err() != nil {
			return fmt.Errorf("wait for gRPC health: %w", ctx.Err())
		}
		logger.Debug("health watch interrupted, retrying", "error", err)
		if err := sleep(ctx, healthRetryDelay); err != nil {
			return err
		}
	}
}

func watchUntilServing(ctx context.Context, client grpc_health_v1.HealthClient, service string, logger *slog.Logger) error {
	stream, err := client.Watch(ctx, &grpc_health_v1.HealthCheckRequest{Service: service}, gogrpc.WaitForReady(true))
	if err != nil {
		return err
	}
	for {
		resp, err := stream.Recv()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return status.Error(codes.Unavailable, "health watch closed")
			}
			return err
		}
		if resp.GetStatus() == grpc_health_v1.HealthCheckResponse_SERVING {
			logger.Debug("gRPC peer is serving", "health_service", service)
			return nil
		}
		logger.Debug("waiting for gRPC peer", "health_service", service, "status", resp.GetStatus().String())
	}
}

func pollUntilServing(ctx context.Context, client grpc_health_v1.HealthClient, service string, logger *slog.Logger) error {
	for {
		callCtx, cancel := context.WithTimeout(ctx, healthCheckCall)
		resp, err := client.Check(callCtx, &grpc_health_v1.HealthCheckRequest{Service: service}, gogrpc.WaitForReady(true))
		cancel()
		if err == nil && resp.GetStatus() == grpc_health_v1.HealthCheckResponse_SERVING {
			return nil
		}
		logger.Debug("polling gRPC peer health", "health_service", service, "status", resp.GetStatus().String(), "error", err)
		if err := sleep(ctx, healthRetryDelay); err != nil {
			return err
		}
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return fmt.Errorf("wait for gRPC health: %w", ctx.Err())
	case <-timer.C:
		return nil
	}
}
