// Package sqlite provides a SQLite-backed agenda storage implementation.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pestebani/tonic-server/internal/platform/storage/sqldialect"
	"github.com/pestebani/tonic-server/internal/services/agenda/storage/sqlite/migrations"
	"github.com/pestebani/tonic-server/internal/services/agenda/storage/sqlstore"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

// DefaultPath is used when no database path is configured.
const DefaultPath = "data/agenda.db"

const sqlitePragmas = "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)&_pragma=synchronous(NORMAL)"

// Open opens the SQLite database at path, creating its directory when
// needed. Migrations run on Initialize.
func Open(path string) (*sqlstore.Store, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	path = strings.TrimPrefix(path, "sqlite://")
	cleanPath := filepath.Clean(path)
	if dir := filepath.Dir(cleanPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}

	sqlDB, err := sql.Open("sqlite", cleanPath+sqlitePragmas)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// SQLite serialises writers; one connection avoids SQLITE_BUSY churn.
	sqlDB.SetMaxOpenConns(1)

	return sqlstore.New(sqlDB, Engine()), nil
}

// Engine describes SQLite to the shared SQL store.
func Engine() sqlstore.Engine {
	return sqlstore.Engine{
		Dialect:    sqldialect.SQLite,
		Migrations: migrations.FS,
		Classify:   Classify,
	}
}

// Classify sorts modernc SQLite errors into storage faults.
func Classify(err error) sqlstore.Fault {
	if err == nil {
		return sqlstore.FaultOther
	}
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		if sqliteErr.Code()&0xff != sqlite3lib.SQLITE_CONSTRAINT {
			return sqlstore.FaultOther
		}
		if isNameUniqueViolation(sqliteErr) {
			return sqlstore.FaultUniqueName
		}
		return sqlstore.FaultConstraint
	}
	return sqlstore.ClassifyCommon(err)
}

// SQLite reports unique violations by column, not by constraint name.
func isNameUniqueViolation(err *msqlite.Error) bool {
	switch err.Code() {
	case sqlite3lib.SQLITE_CONSTRAINT, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE, sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY:
	default:
		return false
	}
	message := strings.ToLower(err.Error())
	return strings.Contains(message, "agendas.name")
}
