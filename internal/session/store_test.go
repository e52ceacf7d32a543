package session

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	return NewStore(rdb)
}

func TestStoreCreateLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	id, w, err := store.Create(ctx, 42)
	require.NoError(t, err)
	require.NotEmpty(t, id)
	assert.Equal(t, uint(42), w.Draft().SalonID)

	loaded, err := store.Load(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, w.Step(), loaded.Step())
	assert.Equal(t, w.Draft(), loaded.Draft())
}

func TestStoreSavePersistsProgress(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	id, w, err := store.Create(ctx, 1)
	require.NoError(t, err)

	staff := &models.Staff{ID: 7, SalonID: 1, Name: "Emma", Active: true}
	require.NoError(t, w.SelectStylist(staff))
	require.NoError(t, store.Save(ctx, id, w))

	loaded, err := store.Load(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, uint(7), loaded.Draft().StaffID)
}

func TestStoreLoadUnknownSession(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Load(context.Background(), "nao-existe")
	assert.True(t, httperr.IsBusiness(err, "session_not_found"))
}

func TestStoreDelete(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	id, _, err := store.Create(ctx, 1)
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, id))

	_, err = store.Load(ctx, id)
	assert.True(t, httperr.IsBusiness(err, "session_not_found"))
}
