package profile

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jansetu/internal/domain"
	"jansetu/pkg/platform/sentinel"
)

func TestInMemoryStoreRoundTrip(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()

	profile := &domain.CitizenProfile{CitizenID: "CIT-11111111", Name: "Ramesh Kumar"}
	require.NoError(t, store.Save(ctx, profile))

	got, err := store.Get(ctx, "CIT-11111111")
	require.NoError(t, err)
	assert.Equal(t, "Ramesh Kumar", got.Name)
}

func TestInMemoryStoreCopiesOnRead(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &domain.CitizenProfile{CitizenID: "CIT-11111111", Name: "Ramesh Kumar"}))

	got, err := store.Get(ctx, "CIT-11111111")
	require.NoError(t, err)
	got.Name = "mutated"

	again, err := store.Get(ctx, "CIT-11111111")
	require.NoError(t, err)
	assert.Equal(t, "Ramesh Kumar", again.Name)
}

func TestInMemoryStoreNotFound(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()

	_, err := store.Get(ctx, "CIT-MISSING")
	assert.ErrorIs(t, err, sentinel.ErrNotFound)

	assert.ErrorIs(t, store.Delete(ctx, "CIT-MISSING"), sentinel.ErrNotFound)
}

func TestInMemoryStoreList(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &domain.CitizenProfile{CitizenID: "CIT-AAAAAAAA"}))
	require.NoError(t, store.Save(ctx, &domain.CitizenProfile{CitizenID: "CIT-BBBBBBBB"}))

	all, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
