// Package storage defines persistence contracts for agenda service state.
//
// Every backend reports failures as *errors.Error values from
// internal/platform/errors; engine errors never cross this boundary except as
// the Cause of a taxonomy error.
package storage

import (
	"context"

	apperrors "github.com/pestebani/tonic-server/internal/platform/errors"
)

const (
	// TableName is the relation (or collection) holding agenda records.
	TableName = "agendas"
	// NameUniqueConstraint names the uniqueness constraint on agenda names.
	NameUniqueConstraint = "agendas_name_unique"
)

// Agenda stores one contact record. ID is assigned by the store on creation.
type Agenda struct {
	ID    int64
	Name  string
	Email string
	Phone string
}

// AgendaPage stores one page of agenda records.
type AgendaPage struct {
	Agendas []Agenda
	// NextPage is the following 1-based page number, or 0 on the last page.
	NextPage int64
	// Total is the number of records in the whole table.
	Total int64
}

// AgendaStore persists agenda records.
type AgendaStore interface {
	// Initialize ensures the agenda table and its name constraint exist.
	// It is safe to call repeatedly.
	Initialize(ctx context.Context) error
	GetAgenda(ctx context.Context, id int64) (Agenda, error)
	// ListAgendas returns the 1-based page of pageSize records ordered by id.
	ListAgendas(ctx context.Context, page, pageSize int64) (AgendaPage, error)
	// CreateAgenda stores agenda under a newly assigned id. Any id on the
	// input is ignored.
	CreateAgenda(ctx context.Context, agenda Agenda) (Agenda, error)
	UpdateAgenda(ctx context.Context, id int64, agenda Agenda) (Agenda, error)
	DeleteAgenda(ctx context.Context, id int64) error
	Close() error
}

// UnimplementedAgendaStore answers every operation with an Unimplemented
// error. Embed it in backends that only provide part of the contract.
type UnimplementedAgendaStore struct{}

// Initialize implements AgendaStore.
func (UnimplementedAgendaStore) Initialize(context.Context) error {
	return apperrors.Unimplemented()
}

// GetAgenda implements AgendaStore.
func (UnimplementedAgendaStore) GetAgenda(context.Context, int64) (Agenda, error) {
	return Agenda{}, apperrors.Unimplemented()
}

// ListAgendas implements AgendaStore.
func (UnimplementedAgendaStore) ListAgendas(context.Context, int64, int64) (AgendaPage, error) {
	return AgendaPage{}, apperrors.Unimplemented()
}

// CreateAgenda implements AgendaStore.
func (UnimplementedAgendaStore) CreateAgenda(context.Context, Agenda) (Agenda, error) {
	return Agenda{}, apperrors.Unimplemented()
}

// UpdateAgenda implements AgendaStore.
func (UnimplementedAgendaStore) UpdateAgenda(context.Context, int64, Agenda) (Agenda, error) {
	return Agenda{}, apperrors.Unimplemented()
}

// DeleteAgenda implements AgendaStore.
func (UnimplementedAgendaStore) DeleteAgenda(context.Context, int64) error {
	return apperrors.Unimplemented()
}

// Close implements AgendaStore.
func (UnimplementedAgendaStore) Close() error {
	return nil
}

var _ AgendaStore = UnimplementedAgendaStore{}
