// Package main starts the agenda gRPC service process lifecycle.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	agendacmd "github.com/pestebani/tonic-server/internal/cmd/agenda"
)

func main() {
	// A missing .env is fine; real environment variables always win.
	_ = godotenv.Load()

	cfg, err := agendacmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix("[AGENDA] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.HealthCheck {
		if err := agendacmd.CheckHealth(ctx, cfg); err != nil {
			log.Fatalf("health check: %v", err)
		}
		return
	}
	if err := agendacmd.Run(ctx, cfg); err != nil {
		log.Fatalf("failed to serve: %v", err)
	}
}
