// Package sqlstore implements the agenda store over database/sql. Engine
// packages supply the connection, dialect, migrations and error classifier;
// the queries and the error translation live here once.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"

	apperrors "github.com/pestebani/tonic-server/internal/platform/errors"
	"github.com/pestebani/tonic-server/internal/platform/grpc/pagination"
	"github.com/pestebani/tonic-server/internal/platform/storage/sqldialect"
	"github.com/pestebani/tonic-server/internal/platform/storage/sqlmigrate"
	"github.com/pestebani/tonic-server/internal/services/agenda/storage"
)

// Engine describes the SQL engine behind a Store.
type Engine struct {
	Dialect sqldialect.Dialect
	// Migrations holds the -- +migrate Up files applied by Initialize.
	Migrations    fs.FS
	MigrationRoot string
	// Classify sorts engine errors into faults. ClassifyCommon is used when nil.
	Classify func(error) Fault
}

// Store persists agenda records through database/sql.
type Store struct {
	sqlDB  *sql.DB
	engine Engine

	getSQL    string
	listSQL   string
	countSQL  string
	createSQL string
	updateSQL string
	deleteSQL string
}

// New builds a store over an open database handle. The store owns sqlDB and
// closes it on Close.
func New(sqlDB *sql.DB, engine Engine) *Store {
	if engine.Classify == nil {
		engine.Classify = ClassifyCommon
	}
	rebind := engine.Dialect.Rebind
	return &Store{
		sqlDB:  sqlDB,
		engine: engine,
		getSQL: rebind(`SELECT id, name, email, phone
		   FROM agendas
		  WHERE id = $1`),
		listSQL: rebind(`SELECT id, name, email, phone, COUNT(*) OVER () AS total
		   FROM agendas
		  ORDER BY id ASC
		  LIMIT $1 OFFSET $2`),
		countSQL: `SELECT COUNT(*) FROM agendas`,
		createSQL: rebind(`INSERT INTO agendas (name, email, phone)
		 VALUES ($1, $2, $3)
		 RETURNING id, name, email, phone`),
		updateSQL: rebind(`UPDATE agendas
		    SET name = $1, email = $2, phone = $3
		  WHERE id = $4
		 RETURNING id, name, email, phone`),
		deleteSQL: rebind(`DELETE FROM agendas WHERE id = $1`),
	}
}

// Close closes the database handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Initialize applies the embedded migrations that create the agenda table.
func (s *Store) Initialize(ctx context.Context) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	if err := s.sqlDB.PingContext(ctx); err != nil {
		return s.translate(err, "")
	}
	if s.engine.Migrations == nil {
		return apperrors.Unknown(fmt.Errorf("%s migrations are not configured", s.engine.Dialect.Name))
	}
	if err := sqlmigrate.ApplyMigrations(ctx, s.sqlDB, s.engine.Dialect, s.engine.Migrations, s.engine.MigrationRoot); err != nil {
		return s.translate(err, "")
	}
	return nil
}

// GetAgenda returns one agenda by id.
func (s *Store) GetAgenda(ctx context.Context, id int64) (storage.Agenda, error) {
	if err := s.ready(ctx); err != nil {
		return storage.Agenda{}, err
	}
	agenda, err := scanAgenda(s.sqlDB.QueryRowContext(ctx, s.getSQL, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.Agenda{}, apperrors.NotFound(id)
		}
		return storage.Agenda{}, s.translate(err, "")
	}
	return agenda, nil
}

// ListAgendas returns one page of agendas ordered by id.
func (s *Store) ListAgendas(ctx context.Context, page, pageSize int64) (storage.AgendaPage, error) {
	if err := s.ready(ctx); err != nil {
		return storage.AgendaPage{}, err
	}
	window := pagination.NewWindow(page, pageSize)
	if window.Unreachable {
		return s.emptyPage(ctx)
	}

	rows, err := s.sqlDB.QueryContext(ctx, s.listSQL, window.Size, window.Offset)
	if err != nil {
		return storage.AgendaPage{}, s.translate(err, "")
	}
	defer rows.Close()

	result := storage.AgendaPage{Agendas: make([]storage.Agenda, 0, window.Size)}
	for rows.Next() {
		var agenda storage.Agenda
		if err := rows.Scan(&agenda.ID, &agenda.Name, &agenda.Email, &agenda.Phone, &result.Total); err != nil {
			return storage.AgendaPage{}, s.translate(err, "")
		}
		result.Agendas = append(result.Agendas, agenda)
	}
	if err := rows.Err(); err != nil {
		return storage.AgendaPage{}, s.translate(err, "")
	}

	// The window count is only available alongside at least one row.
	if len(result.Agendas) == 0 && window.Offset > 0 {
		return s.emptyPage(ctx)
	}
	result.NextPage = window.NextPage(result.Total)
	return result, nil
}

// emptyPage reports a page past the end: no rows, the table total and no
// next page.
func (s *Store) emptyPage(ctx context.Context) (storage.AgendaPage, error) {
	result := storage.AgendaPage{Agendas: []storage.Agenda{}}
	if err := s.sqlDB.QueryRowContext(ctx, s.countSQL).Scan(&result.Total); err != nil {
		return storage.AgendaPage{}, s.translate(err, "")
	}
	return result, nil
}

// CreateAgenda inserts agenda under a new id and returns the stored record.
func (s *Store) CreateAgenda(ctx context.Context, agenda storage.Agenda) (storage.Agenda, error) {
	if err := s.ready(ctx); err != nil {
		return storage.Agenda{}, err
	}
	created, err := scanAgenda(s.sqlDB.QueryRowContext(ctx, s.createSQL, agenda.Name, agenda.Email, agenda.Phone))
	if err != nil {
		return storage.Agenda{}, s.translate(err, agenda.Name)
	}
	return created, nil
}

// UpdateAgenda replaces the fields of agenda id and returns the stored record.
func (s *Store) UpdateAgenda(ctx context.Context, id int64, agenda storage.Agenda) (storage.Agenda, error) {
	if err := s.ready(ctx); err != nil {
		return storage.Agenda{}, err
	}
	updated, err := scanAgenda(s.sqlDB.QueryRowContext(ctx, s.updateSQL, agenda.Name, agenda.Email, agenda.Phone, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.Agenda{}, apperrors.NotFound(id)
		}
		return storage.Agenda{}, s.translate(err, agenda.Name)
	}
	return updated, nil
}

// DeleteAgenda removes agenda id.
func (s *Store) DeleteAgenda(ctx context.Context, id int64) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	result, err := s.sqlDB.ExecContext(ctx, s.deleteSQL, id)
	if err != nil {
		return s.translate(err, "")
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return s.translate(err, "")
	}
	if affected == 0 {
		return apperrors.NotFound(id)
	}
	return nil
}

func (s *Store) ready(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return apperrors.Unknown(err)
	}
	if s == nil || s.sqlDB == nil {
		return apperrors.Unknown(errors.New("storage is not configured"))
	}
	return nil
}

// translate converts an engine error into the taxonomy. name is the agenda
// name involved in a write, used to explain name collisions.
func (s *Store) translate(err error, name string) error {
	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		return appErr
	}
	switch s.engine.Classify(err) {
	case FaultConnection:
		return apperrors.Connection(err)
	case FaultUniqueName:
		return apperrors.NameAlreadyExists(name, err)
	case FaultConstraint:
		return apperrors.AlreadyExists(err.Error(), err)
	default:
		return apperrors.Unknown(err)
	}
}

func scanAgenda(row *sql.Row) (storage.Agenda, error) {
	var agenda storage.Agenda
	if err := row.Scan(&agenda.ID, &agenda.Name, &agenda.Email, &agenda.Phone); err != nil {
		return storage.Agenda{}, err
	}
	return agenda, nil
}

var _ storage.AgendaStore = (*Store)(nil)
