// Package storagetest holds the behaviour every agenda backend must share.
// Backend packages call Run from their tests with a factory that returns an
// initialized, empty store.
package storagetest

import (
	"context"
	"fmt"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/pestebani/tonic-server/internal/platform/errors"
	"github.com/pestebani/tonic-server/internal/services/agenda/storage"
)

// Factory returns an initialized store holding no agendas. The factory owns
// cleanup, typically through t.Cleanup.
type Factory func(t *testing.T) storage.AgendaStore

// Run exercises store against the shared agenda storage behaviour.
func Run(t *testing.T, newStore Factory) {
	t.Helper()

	tests := []struct {
		name string
		run  func(t *testing.T, store storage.AgendaStore)
	}{
		{"InitializeIsIdempotent", testInitializeIsIdempotent},
		{"CreateThenGet", testCreateThenGet},
		{"CreateIgnoresClientID", testCreateIgnoresClientID},
		{"CreateDuplicateName", testCreateDuplicateName},
		{"GetUnknownID", testGetUnknownID},
		{"GetDeletedID", testGetDeletedID},
		{"DeleteUnknownID", testDeleteUnknownID},
		{"UpdateReplacesFields", testUpdateReplacesFields},
		{"UpdateKeepsOwnName", testUpdateKeepsOwnName},
		{"UpdateUnknownID", testUpdateUnknownID},
		{"UpdateToExistingName", testUpdateToExistingName},
		{"ListEmpty", testListEmpty},
		{"ListPages", testListPages},
		{"ListPastTheEnd", testListPastTheEnd},
		{"ListHugePage", testListHugePage},
		{"CanceledContext", testCanceledContext},
		{"ListNextPageProperty", testListNextPageProperty},
		{"ConcurrentDuplicateCreates", testConcurrentDuplicateCreates},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.run(t, newStore(t))
		})
	}
}

func testInitializeIsIdempotent(t *testing.T, store storage.AgendaStore) {
	ctx := context.Background()
	created, err := store.CreateAgenda(ctx, storage.Agenda{Name: "kept", Email: "kept@example.com"})
	require.NoError(t, err)

	require.NoError(t, store.Initialize(ctx))

	got, err := store.GetAgenda(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func testCreateThenGet(t *testing.T, store storage.AgendaStore) {
	ctx := context.Background()
	input := storage.Agenda{Name: "Ada Lovelace", Email: "ada@example.com", Phone: "+44 20 0000 0000"}

	created, err := store.CreateAgenda(ctx, input)
	require.NoError(t, err)
	assert.Positive(t, created.ID)

	got, err := store.GetAgenda(ctx, created.ID)
	require.NoError(t, err)

	input.ID = created.ID
	assert.Equal(t, input, got)
	assert.Equal(t, input, created)
}

func testCreateIgnoresClientID(t *testing.T, store storage.AgendaStore) {
	ctx := context.Background()
	first, err := store.CreateAgenda(ctx, storage.Agenda{ID: 9000, Name: "first"})
	require.NoError(t, err)
	second, err := store.CreateAgenda(ctx, storage.Agenda{ID: first.ID, Name: "second"})
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	got, err := store.GetAgenda(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "first", got.Name)
}

func testCreateDuplicateName(t *testing.T, store storage.AgendaStore) {
	ctx := context.Background()
	_, err := store.CreateAgenda(ctx, storage.Agenda{Name: "a", Email: "one@example.com"})
	require.NoError(t, err)

	_, err = store.CreateAgenda(ctx, storage.Agenda{Name: "a", Email: "two@example.com"})
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeAlreadyExists), "got %v", err)
	assert.Contains(t, err.Error(), "a")

	page, err := store.ListAgendas(ctx, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, page.Total)
	require.Len(t, page.Agendas, 1)
	assert.Equal(t, "one@example.com", page.Agendas[0].Email)
}

func testGetUnknownID(t *testing.T, store storage.AgendaStore) {
	_, err := store.GetAgenda(context.Background(), 424242)
	assertNotFound(t, err, 424242)
}

func testGetDeletedID(t *testing.T, store storage.AgendaStore) {
	ctx := context.Background()
	created, err := store.CreateAgenda(ctx, storage.Agenda{Name: "short-lived"})
	require.NoError(t, err)
	require.NoError(t, store.DeleteAgenda(ctx, created.ID))

	_, err = store.GetAgenda(ctx, created.ID)
	assertNotFound(t, err, created.ID)
}

func testDeleteUnknownID(t *testing.T, store storage.AgendaStore) {
	ctx := context.Background()
	created, err := store.CreateAgenda(ctx, storage.Agenda{Name: "survivor"})
	require.NoError(t, err)

	err = store.DeleteAgenda(ctx, created.ID+1000)
	assertNotFound(t, err, created.ID+1000)

	page, err := store.ListAgendas(ctx, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, page.Total)
	assert.Equal(t, []storage.Agenda{created}, page.Agendas)
}

func testUpdateReplacesFields(t *testing.T, store storage.AgendaStore) {
	ctx := context.Background()
	created, err := store.CreateAgenda(ctx, storage.Agenda{Name: "before", Email: "before@example.com", Phone: "1"})
	require.NoError(t, err)

	updated, err := store.UpdateAgenda(ctx, created.ID, storage.Agenda{Name: "after", Email: "after@example.com", Phone: "2"})
	require.NoError(t, err)
	want := storage.Agenda{ID: created.ID, Name: "after", Email: "after@example.com", Phone: "2"}
	assert.Equal(t, want, updated)

	got, err := store.GetAgenda(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func testUpdateKeepsOwnName(t *testing.T, store storage.AgendaStore) {
	ctx := context.Background()
	created, err := store.CreateAgenda(ctx, storage.Agenda{Name: "same", Phone: "1"})
	require.NoError(t, err)

	updated, err := store.UpdateAgenda(ctx, created.ID, storage.Agenda{Name: "same", Phone: "2"})
	require.NoError(t, err)
	assert.Equal(t, "2", updated.Phone)
}

func testUpdateUnknownID(t *testing.T, store storage.AgendaStore) {
	_, err := store.UpdateAgenda(context.Background(), 777, storage.Agenda{Name: "ghost"})
	assertNotFound(t, err, 777)
}

func testUpdateToExistingName(t *testing.T, store storage.AgendaStore) {
	ctx := context.Background()
	_, err := store.CreateAgenda(ctx, storage.Agenda{Name: "taken"})
	require.NoError(t, err)
	original, err := store.CreateAgenda(ctx, storage.Agenda{Name: "mine", Email: "mine@example.com"})
	require.NoError(t, err)

	_, err = store.UpdateAgenda(ctx, original.ID, storage.Agenda{Name: "taken", Email: "changed@example.com"})
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeAlreadyExists), "got %v", err)
	assert.Contains(t, err.Error(), "taken")

	got, err := store.GetAgenda(ctx, original.ID)
	require.NoError(t, err)
	assert.Equal(t, original, got)
}

func testListEmpty(t *testing.T, store storage.AgendaStore) {
	page, err := store.ListAgendas(context.Background(), 1, 10)
	require.NoError(t, err)
	assert.Empty(t, page.Agendas)
	assert.Zero(t, page.Total)
	assert.Zero(t, page.NextPage)
}

func testListPages(t *testing.T, store storage.AgendaStore) {
	ctx := context.Background()
	created := seed(t, store, 3)

	first, err := store.ListAgendas(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, created[:2], first.Agendas)
	assert.EqualValues(t, 2, first.NextPage)
	assert.EqualValues(t, 3, first.Total)

	second, err := store.ListAgendas(ctx, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, created[2:], second.Agendas)
	assert.Zero(t, second.NextPage)
	assert.EqualValues(t, 3, second.Total)
}

func testListPastTheEnd(t *testing.T, store storage.AgendaStore) {
	seed(t, store, 3)

	page, err := store.ListAgendas(context.Background(), 5, 2)
	require.NoError(t, err)
	assert.Empty(t, page.Agendas)
	assert.EqualValues(t, 3, page.Total)
	assert.Zero(t, page.NextPage)
}

func testListHugePage(t *testing.T, store storage.AgendaStore) {
	seed(t, store, 3)

	testCases := []struct {
		page, size int64
	}{
		{page: math.MaxInt64/10 + 1, size: 10},
		{page: math.MaxInt64/10 + 2, size: 10},
		{page: math.MaxInt64, size: 100},
		{page: math.MaxInt64, size: 1},
	}
	for _, tc := range testCases {
		page, err := store.ListAgendas(context.Background(), tc.page, tc.size)
		require.NoError(t, err, "page=%d size=%d", tc.page, tc.size)
		assert.Empty(t, page.Agendas, "page=%d size=%d", tc.page, tc.size)
		assert.EqualValues(t, 3, page.Total, "page=%d size=%d", tc.page, tc.size)
		assert.Zero(t, page.NextPage, "page=%d size=%d", tc.page, tc.size)
	}
}

func testCanceledContext(t *testing.T, store storage.AgendaStore) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.ListAgendas(ctx, 1, 10)
	assert.ErrorIs(t, err, context.Canceled)
	_, err = store.GetAgenda(ctx, 1)
	assert.ErrorIs(t, err, context.Canceled)
	_, err = store.CreateAgenda(ctx, storage.Agenda{Name: "late"})
	assert.ErrorIs(t, err, context.Canceled)
}

func testListNextPageProperty(t *testing.T, store storage.AgendaStore) {
	const total = 7
	seed(t, store, total)

	for size := int64(1); size <= 4; size++ {
		for page := int64(1); page <= 8; page++ {
			result, err := store.ListAgendas(context.Background(), page, size)
			require.NoError(t, err)
			assert.LessOrEqual(t, int64(len(result.Agendas)), size)
			assert.EqualValues(t, total, result.Total)
			exhausted := page*size >= total
			assert.Equal(t, exhausted, result.NextPage == 0, "page=%d size=%d next=%d", page, size, result.NextPage)
		}
	}
}

func testConcurrentDuplicateCreates(t *testing.T, store storage.AgendaStore) {
	const writers = 8

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		conflicts int
		others    []error
	)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := store.CreateAgenda(context.Background(), storage.Agenda{
				Name:  "race",
				Email: fmt.Sprintf("writer-%d@example.com", i),
			})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case apperrors.IsCode(err, apperrors.CodeAlreadyExists):
				conflicts++
			default:
				others = append(others, err)
			}
		}(i)
	}
	wg.Wait()

	assert.Empty(t, others)
	assert.Equal(t, 1, successes)
	assert.Equal(t, writers-1, conflicts)
}

func seed(t *testing.T, store storage.AgendaStore, n int) []storage.Agenda {
	t.Helper()
	created := make([]storage.Agenda, 0, n)
	for i := 0; i < n; i++ {
		agenda, err := store.CreateAgenda(context.Background(), storage.Agenda{
			Name:  fmt.Sprintf("contact-%02d", i),
			Email: fmt.Sprintf("contact-%02d@example.com", i),
			Phone: fmt.Sprintf("555-01%02d", i),
		})
		require.NoError(t, err)
		created = append(created, agenda)
	}
	return created
}

func assertNotFound(t *testing.T, err error, id int64) {
	t.Helper()
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeNotFound), "got %v", err)
	gotID, ok := apperrors.NotFoundID(err)
	assert.True(t, ok)
	assert.Equal(t, id, gotID)
}
