// Package backend selects and opens the agenda store named by configuration.
package backend

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/pestebani/tonic-server/internal/platform/config"
	"github.com/pestebani/tonic-server/internal/services/agenda/storage"
	"github.com/pestebani/tonic-server/internal/services/agenda/storage/mongostore"
	"github.com/pestebani/tonic-server/internal/services/agenda/storage/postgres"
	"github.com/pestebani/tonic-server/internal/services/agenda/storage/sqlite"
	"github.com/pestebani/tonic-server/internal/services/agenda/storage/traced"
)

// Supported backend names.
const (
	TypePostgres   = "postgres"
	TypeRelational = "relational"
	TypeSQLite     = "sqlite"
	TypeMongoDB    = "mongodb"
)

// Config names the backend and where it lives.
type Config struct {
	Type string `env:"DATABASE_TYPE" envDefault:"postgres"`
	// URL defaults per backend when empty.
	URL string `env:"DATABASE_URL"`
}

// LoadConfig reads DATABASE_TYPE and DATABASE_URL.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Normalize resolves aliases and fills the default URL for the backend.
// Unknown backend names are a configuration error.
func (c Config) Normalize() (Config, error) {
	kind := strings.ToLower(strings.TrimSpace(c.Type))
	url := strings.TrimSpace(c.URL)
	switch kind {
	case "", TypePostgres, TypeRelational:
		kind = TypePostgres
		if url == "" {
			url = postgres.DefaultURL
		}
	case TypeSQLite:
		if url == "" {
			url = sqlite.DefaultPath
		}
	case TypeMongoDB, "mongo":
		kind = TypeMongoDB
		if url == "" {
			url = mongostore.DefaultURL
		}
	default:
		return Config{}, fmt.Errorf("unsupported database type %q (want %s, %s or %s)", c.Type, TypePostgres, TypeSQLite, TypeMongoDB)
	}
	return Config{Type: kind, URL: url}, nil
}

// Open builds the configured store wrapped with tracing. The store is not
// initialized; callers decide how to treat Initialize failures.
func Open(cfg Config, logger *slog.Logger) (storage.AgendaStore, error) {
	cfg, err := cfg.Normalize()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}

	var store storage.AgendaStore
	switch cfg.Type {
	case TypePostgres:
		store, err = postgres.Open(cfg.URL)
	case TypeSQLite:
		store, err = sqlite.Open(cfg.URL)
	case TypeMongoDB:
		store, err = mongostore.Open(cfg.URL)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", cfg.Type, err)
	}
	return traced.New(store, logger.With("backend", cfg.Type)), nil
}
