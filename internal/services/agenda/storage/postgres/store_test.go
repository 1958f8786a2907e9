package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pestebani/tonic-server/internal/services/agenda/storage"
	"github.com/pestebani/tonic-server/internal/services/agenda/storage/sqlstore"
	"github.com/pestebani/tonic-server/internal/services/agenda/storage/storagetest"
)

const testURLEnv = "AGENDA_TEST_POSTGRES_URL"

func TestClassify(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		err  error
		want sqlstore.Fault
	}{
		{name: "nil", err: nil, want: sqlstore.FaultOther},
		{
			name: "name constraint",
			err:  &pgconn.PgError{Code: "23505", ConstraintName: storage.NameUniqueConstraint, Message: "duplicate key value violates unique constraint"},
			want: sqlstore.FaultUniqueName,
		},
		{
			name: "wrapped name constraint",
			err:  fmt.Errorf("exec: %w", &pgconn.PgError{Code: "23505", ConstraintName: storage.NameUniqueConstraint}),
			want: sqlstore.FaultUniqueName,
		},
		{
			name: "other unique constraint",
			err:  &pgconn.PgError{Code: "23505", ConstraintName: "agendas_pkey"},
			want: sqlstore.FaultConstraint,
		},
		{
			name: "check constraint",
			err:  &pgconn.PgError{Code: "23514", ConstraintName: "agendas_phone_check"},
			want: sqlstore.FaultConstraint,
		},
		{
			name: "not null without constraint name",
			err:  &pgconn.PgError{Code: "23502", ColumnName: "email"},
			want: sqlstore.FaultOther,
		},
		{
			name: "connection exception",
			err:  &pgconn.PgError{Code: "08006"},
			want: sqlstore.FaultConnection,
		},
		{
			name: "syntax",
			err:  &pgconn.PgError{Code: "42601"},
			want: sqlstore.FaultOther,
		},
		{
			name: "plain",
			err:  errors.New("boom"),
			want: sqlstore.FaultOther,
		},
		{
			name: "conn done",
			err:  sql.ErrConnDone,
			want: sqlstore.FaultConnection,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(tc.err); got != tc.want {
				t.Fatalf("Classify = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestOpenDefaultsURL(t *testing.T) {
	t.Parallel()

	store, err := Open("")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func TestStoreConformance(t *testing.T) {
	databaseURL := os.Getenv(testURLEnv)
	if databaseURL == "" {
		t.Skipf("%s not set", testURLEnv)
	}

	storagetest.Run(t, func(t *testing.T) storage.AgendaStore {
		t.Helper()
		ctx := context.Background()

		store, err := Open(databaseURL)
		if err != nil {
			t.Fatalf("open store: %v", err)
		}
		t.Cleanup(func() { _ = store.Close() })
		if err := store.Initialize(ctx); err != nil {
			t.Fatalf("initialize store: %v", err)
		}

		db, err := sql.Open("pgx", databaseURL)
		if err != nil {
			t.Fatalf("open cleanup connection: %v", err)
		}
		defer db.Close()
		if _, err := db.ExecContext(ctx, "TRUNCATE TABLE agendas RESTART IDENTITY"); err != nil {
			t.Fatalf("truncate agendas: %v", err)
		}
		return store
	})
}
