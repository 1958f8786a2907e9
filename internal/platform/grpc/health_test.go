package grpc

import (
	"context"
	"net"
	"testing"
	"time"

	gogrpc "google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/pestebani/tonic-server/internal/platform/logging"
)

const testHealthService = "agenda.v1.AgendaService"

func TestWaitServingImmediately(t *testing.T) {
	peer := startHealthPeer(t, grpc_health_v1.HealthCheckResponse_SERVING)
	conn := plainClient(t, peer.addr)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := WaitServing(ctx, conn, testHealthService, logging.Discard()); err != nil {
		t.Fatalf("wait serving: %v", err)
	}
}

func TestWaitServingFollowsTransition(t *testing.T) {
	peer := startHealthPeer(t, grpc_health_v1.HealthCheckResponse_NOT_SERVING)
	conn := plainClient(t, peer.addr)

	go func() {
		time.Sleep(150 * time.Millisecond)
		peer.health.SetServingStatus(testHealthService, grpc_health_v1.HealthCheckResponse_SERVING)
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := WaitServing(ctx, conn, testHealthService, nil); err != nil {
		t.Fatalf("wait serving after transition: %v", err)
	}
}

func TestWaitServingStopsWithContext(t *testing.T) {
	peer := startHealthPeer(t, grpc_health_v1.HealthCheckResponse_NOT_SERVING)
	conn := plainClient(t, peer.addr)

	ctx, cancel := context.WithTimeout(context.Background(), 250*time.Millisecond)
	defer cancel()
	start := time.Now()
	if err := WaitServing(ctx, conn, testHealthService, nil); err == nil {
		t.Fatal("expected context error")
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Fatalf("wait outlived its context: %s", elapsed)
	}
}

func TestWaitServingPollsWithoutWatch(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	server := gogrpc.NewServer()
	grpc_health_v1.RegisterHealthServer(server, checkOnlyHealth{})
	go func() { _ = server.Serve(listener) }()
	t.Cleanup(server.Stop)

	conn := plainClient(t, listener.Addr().String())
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := WaitServing(ctx, conn, testHealthService, nil); err != nil {
		t.Fatalf("wait serving via check: %v", err)
	}
}

func TestWaitServingRequiresConnection(t *testing.T) {
	if err := WaitServing(context.Background(), nil, "", nil); err == nil {
		t.Fatal("expected error for nil connection")
	}
}

// checkOnlyHealth answers Check and leaves Watch unimplemented.
type checkOnlyHealth struct {
	grpc_health_v1.UnimplementedHealthServer
}

func (checkOnlyHealth) Check(context.Context, *grpc_health_v1.HealthCheckRequest) (*grpc_health_v1.HealthCheckResponse, error) {
	return &grpc_health_v1.HealthCheckResponse{Status: grpc_health_v1.HealthCheckResponse_SERVING}, nil
}

type healthPeer struct {
	addr   string
	health *health.Server
}

func startHealthPeer(t *testing.T, initial grpc_health_v1.HealthCheckResponse_ServingStatus) healthPeer {
	t.Helper()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	server := gogrpc.NewServer()
	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(server, healthServer)
	healthServer.SetServingStatus(testHealthService, initial)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = server.Serve(listener)
	}()
	t.Cleanup(func() {
		server.Stop()
		select {
		case <-done:
		case <-time.After(2 * time.Second):
		}
	})
	return healthPeer{addr: listener.Addr().String(), health: healthServer}
}

func plainClient(t *testing.T, addr string) *gogrpc.ClientConn {
	t.Helper()
	conn, err := gogrpc.NewClient(addr, gogrpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}
