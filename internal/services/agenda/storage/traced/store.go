// Package traced decorates an agenda store with one span and one log record
// per storage call.
package traced

import (
	"context"
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	apperrors "github.com/pestebani/tonic-server/internal/platform/errors"
	"github.com/pestebani/tonic-server/internal/services/agenda/storage"
)

const (
	instrumentationName = "github.com/pestebani/tonic-server/internal/services/agenda/storage"
	spanPrefix          = "agenda.storage/"
)

// Span attribute keys.
const (
	AttrSuccess   = attribute.Key("success")
	AttrErrorCode = attribute.Key("error.code")
	AttrAgendaID  = attribute.Key("agenda.id")
	AttrPage      = attribute.Key("agenda.page")
	AttrPageSize  = attribute.Key("agenda.page_size")
)

// Store wraps another AgendaStore.
type Store struct {
	next   storage.AgendaStore
	tracer trace.Tracer
	logger *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithTracerProvider records spans on provider instead of the global one.
func WithTracerProvider(provider trace.TracerProvider) Option {
	return func(s *Store) {
		if provider != nil {
			s.tracer = provider.Tracer(instrumentationName)
		}
	}
}

// New wraps next. A nil logger uses slog.Default.
func New(next storage.AgendaStore, logger *slog.Logger, opts ...Option) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{
		next:   next,
		tracer: otel.Tracer(instrumentationName),
		logger: logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Unwrap returns the decorated store.
func (s *Store) Unwrap() storage.AgendaStore {
	return s.next
}

// Initialize implements storage.AgendaStore.
func (s *Store) Initialize(ctx context.Context) error {
	return s.observe(ctx, "Initialize", nil, func(ctx context.Context) error {
		return s.next.Initialize(ctx)
	})
}

// GetAgenda implements storage.AgendaStore.
func (s *Store) GetAgenda(ctx context.Context, id int64) (storage.Agenda, error) {
	var agenda storage.Agenda
	err := s.observe(ctx, "GetAgenda", []attribute.KeyValue{AttrAgendaID.Int64(id)}, func(ctx context.Context) error {
		var err error
		agenda, err = s.next.GetAgenda(ctx, id)
		return err
	})
	return agenda, err
}

// ListAgendas implements storage.AgendaStore.
func (s *Store) ListAgendas(ctx context.Context, page, pageSize int64) (storage.AgendaPage, error) {
	var result storage.AgendaPage
	attrs := []attribute.KeyValue{AttrPage.Int64(page), AttrPageSize.Int64(pageSize)}
	err := s.observe(ctx, "ListAgendas", attrs, func(ctx context.Context) error {
		var err error
		result, err = s.next.ListAgendas(ctx, page, pageSize)
		return err
	})
	return result, err
}

// CreateAgenda implements storage.AgendaStore.
func (s *Store) CreateAgenda(ctx context.Context, agenda storage.Agenda) (storage.Agenda, error) {
	var created storage.Agenda
	err := s.observe(ctx, "CreateAgenda", nil, func(ctx context.Context) error {
		var err error
		created, err = s.next.CreateAgenda(ctx, agenda)
		return err
	})
	return created, err
}

// UpdateAgenda implements storage.AgendaStore.
func (s *Store) UpdateAgenda(ctx context.Context, id int64, agenda storage.Agenda) (storage.Agenda, error) {
	var updated storage.Agenda
	err := s.observe(ctx, "UpdateAgenda", []attribute.KeyValue{AttrAgendaID.Int64(id)}, func(ctx context.Context) error {
		var err error
		updated, err = s.next.UpdateAgenda(ctx, id, agenda)
		return err
	})
	return updated, err
}

// DeleteAgenda implements storage.AgendaStore.
func (s *Store) DeleteAgenda(ctx context.Context, id int64) error {
	return s.observe(ctx, "DeleteAgenda", []attribute.KeyValue{AttrAgendaID.Int64(id)}, func(ctx context.Context) error {
		return s.next.DeleteAgenda(ctx, id)
	})
}

// Close implements storage.AgendaStore.
func (s *Store) Close() error {
	if s == nil || s.next == nil {
		return nil
	}
	return s.next.Close()
}

// observe runs call inside a span. Unknown failures log at error level
// unless the caller's context ended; everything else logs at warn.
func (s *Store) observe(ctx context.Context, op string, attrs []attribute.KeyValue, call func(context.Context) error) error {
	ctx, span := s.tracer.Start(ctx, spanPrefix+op, trace.WithAttributes(attrs...))
	defer span.End()

	err := call(ctx)
	if err == nil {
		span.SetAttributes(AttrSuccess.Bool(true))
		s.logger.LogAttrs(ctx, slog.LevelInfo, "storage call succeeded", slog.String("operation", op))
		return nil
	}

	code := apperrors.CodeOf(err)
	span.SetAttributes(AttrSuccess.Bool(false), AttrErrorCode.String(string(code)))
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())

	level := slog.LevelWarn
	if code == apperrors.CodeUnknown && !isContextDone(err) {
		level = slog.LevelError
	}
	s.logger.LogAttrs(ctx, level, "storage call failed",
		slog.String("operation", op),
		slog.String("code", string(code)),
		slog.String("error", err.Error()),
	)
	return err
}

func isContextDone(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

var _ storage.AgendaStore = (*Store)(nil)
