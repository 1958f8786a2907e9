// Package agenda implements the agenda.v1 gRPC service over an agenda store.
package agenda

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	agendav1 "github.com/pestebani/tonic-server/api/gen/go/agenda/v1"
	"github.com/pestebani/tonic-server/internal/platform/grpc/pagination"
	"github.com/pestebani/tonic-server/internal/services/agenda/storage"
)

const (
	defaultGetAgendasPageSize = 10
	maxGetAgendasPageSize     = 100

	pingResponse = "pong"
)

// Service exposes agenda.v1 gRPC operations.
type Service struct {
	agendav1.UnimplementedAgendaServiceServer
	store storage.AgendaStore
}

// NewService creates an agenda service backed by store.
func NewService(store storage.AgendaStore) *Service {
	return &Service{store: store}
}

// Ping answers without touching storage.
func (s *Service) Ping(_ context.Context, in *agendav1.PingRequest) (*agendav1.PingResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "ping request is required")
	}
	return &agendav1.PingResponse{Response: pingResponse}, nil
}

// CreateAgenda stores a new agenda and returns it with its assigned id.
func (s *Service) CreateAgenda(ctx context.Context, in *agendav1.CreateAgendaRequest) (*agendav1.CreateAgendaResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "create agenda request is required")
	}
	if err := s.requireStore(); err != nil {
		return nil, err
	}
	record, err := agendaFromProto(in.GetAgenda())
	if err != nil {
		return nil, statusFromError(err)
	}

	created, err := s.store.CreateAgenda(ctx, record)
	if err != nil {
		return nil, statusFromError(err)
	}
	return &agendav1.CreateAgendaResponse{Agenda: agendaToProto(created)}, nil
}

// GetAgenda returns one agenda by id.
func (s *Service) GetAgenda(ctx context.Context, in *agendav1.GetAgendaRequest) (*agendav1.GetAgendaResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "get agenda request is required")
	}
	if err := s.requireStore(); err != nil {
		return nil, err
	}

	record, err := s.store.GetAgenda(ctx, in.GetId())
	if err != nil {
		return nil, statusFromError(err)
	}
	return &agendav1.GetAgendaResponse{Agenda: agendaToProto(record)}, nil
}

// GetAgendas returns one page of agendas ordered by id.
func (s *Service) GetAgendas(ctx context.Context, in *agendav1.GetAgendasRequest) (*agendav1.GetAgendasResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "get agendas request is required")
	}
	if err := s.requireStore(); err != nil {
		return nil, err
	}

	page := pagination.NormalizePage(in.GetPage())
	pageSize := pagination.ClampPageSize(in.GetItems(), pagination.PageSizeConfig{
		Default: defaultGetAgendasPageSize,
		Max:     maxGetAgendasPageSize,
	})
	result, err := s.store.ListAgendas(ctx, page, pageSize)
	if err != nil {
		return nil, statusFromError(err)
	}
	return &agendav1.GetAgendasResponse{
		Agendas:  agendasToProto(result.Agendas),
		NextPage: result.NextPage,
		Total:    result.Total,
	}, nil
}

// UpdateAgenda replaces the fields of an existing agenda.
func (s *Service) UpdateAgenda(ctx context.Context, in *agendav1.UpdateAgendaRequest) (*agendav1.UpdateAgendaResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "update agenda request is required")
	}
	if err := s.requireStore(); err != nil {
		return nil, err
	}
	record, err := agendaFromProto(in.GetAgenda())
	if err != nil {
		return nil, statusFromError(err)
	}

	updated, err := s.store.UpdateAgenda(ctx, in.GetId(), record)
	if err != nil {
		return nil, statusFromError(err)
	}
	return &agendav1.UpdateAgendaResponse{Agenda: agendaToProto(updated)}, nil
}

// DeleteAgenda removes one agenda by id.
func (s *Service) DeleteAgenda(ctx context.Context, in *agendav1.DeleteAgendaRequest) (*agendav1.DeleteAgendaResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "delete agenda request is required")
	}
	if err := s.requireStore(); err != nil {
		return nil, err
	}

	if err := s.store.DeleteAgenda(ctx, in.GetId()); err != nil {
		return nil, statusFromError(err)
	}
	return &agendav1.DeleteAgendaResponse{}, nil
}

func (s *Service) requireStore() error {
	if s == nil || s.store == nil {
		return status.Error(codes.Internal, "agenda store is not configured")
	}
	return nil
}
