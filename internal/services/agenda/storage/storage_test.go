package storage

import (
	"context"
	"testing"

	apperrors "github.com/pestebani/tonic-server/internal/platform/errors"
)

func TestUnimplementedAgendaStoreReportsUnimplemented(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	var store AgendaStore = UnimplementedAgendaStore{}

	_, getErr := store.GetAgenda(ctx, 1)
	_, listErr := store.ListAgendas(ctx, 1, 10)
	_, createErr := store.CreateAgenda(ctx, Agenda{Name: "a"})
	_, updateErr := store.UpdateAgenda(ctx, 1, Agenda{Name: "a"})

	for name, err := range map[string]error{
		"initialize": store.Initialize(ctx),
		"get":        getErr,
		"list":       listErr,
		"create":     createErr,
		"update":     updateErr,
		"delete":     store.DeleteAgenda(ctx, 1),
	} {
		if !apperrors.IsCode(err, apperrors.CodeUnimplemented) {
			t.Fatalf("%s error = %v, want %s", name, err, apperrors.CodeUnimplemented)
		}
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}

type partialStore struct {
	UnimplementedAgendaStore
}

func (partialStore) GetAgenda(_ context.Context, id int64) (Agenda, error) {
	return Agenda{ID: id, Name: "only-get"}, nil
}

func TestUnimplementedAgendaStoreEmbedding(t *testing.T) {
	t.Parallel()

	var store AgendaStore = partialStore{}
	got, err := store.GetAgenda(context.Background(), 7)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ID != 7 {
		t.Fatalf("id = %d, want 7", got.ID)
	}
	if err := store.DeleteAgenda(context.Background(), 7); !apperrors.IsCode(err, apperrors.CodeUnimplemented) {
		t.Fatalf("delete error = %v, want unimplemented", err)
	}
}
