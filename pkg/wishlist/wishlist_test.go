package wishlist

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/pkg/storage"
)

func newFileStore(t *testing.T) storage.Store {
	t.Helper()
	store, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestAddIsIdempotent(t *testing.T) {
	ctx := context.Background()
	c := NewContainer(ctx, newFileStore(t), "wishlist:test")

	assert.True(t, c.Add(ctx, "p1"))
	assert.False(t, c.Add(ctx, "p1"))

	entries := c.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "p1", entries[0].ProductID)
	assert.NotEmpty(t, entries[0].ID)
	assert.False(t, entries[0].AddedAt.IsZero())
}

func TestContainsTracksMembership(t *testing.T) {
	ctx := context.Background()
	c := NewContainer(ctx, newFileStore(t), "wishlist:test")

	assert.False(t, c.Contains("p1"))
	c.Add(ctx, "p1")
	assert.True(t, c.Contains("p1"))
	c.Remove(ctx, "p1")
	assert.False(t, c.Contains("p1"))
}

func TestRemoveAbsentIsNoOp(t *testing.T) {
	ctx := context.Background()
	c := NewContainer(ctx, newFileStore(t), "wishlist:test")
	c.Add(ctx, "p1")

	c.Remove(ctx, "nope")
	assert.Len(t, c.Entries(), 1)
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	c := NewContainer(ctx, newFileStore(t), "wishlist:test")
	c.Add(ctx, "p1")
	c.Add(ctx, "p2")

	c.Clear(ctx)
	assert.Empty(t, c.Entries())
}

func TestPersistsAcrossReload(t *testing.T) {
	ctx := context.Background()
	store := newFileStore(t)

	first := NewContainer(ctx, store, "wishlist:test")
	first.Add(ctx, "p1")
	first.Add(ctx, "p2")
	first.Remove(ctx, "p1")

	// Simulated restart: a fresh container over the same store.
	second := NewContainer(ctx, store, "wishlist:test")
	before, after := first.Entries(), second.Entries()
	require.Len(t, after, len(before))
	for i := range before {
		assert.Equal(t, before[i].ID, after[i].ID)
		assert.Equal(t, before[i].ProductID, after[i].ProductID)
		assert.WithinDuration(t, before[i].AddedAt, after[i].AddedAt, time.Second)
	}
	assert.True(t, second.Contains("p2"))
	assert.False(t, second.Contains("p1"))
}

func TestCorruptSnapshotDefaultsToEmpty(t *testing.T) {
	ctx := context.Background()
	store := newFileStore(t)
	require.NoError(t, store.Save(ctx, "wishlist:test", []byte("not json")))

	c := NewContainer(ctx, store, "wishlist:test")
	assert.Empty(t, c.Entries())
}

// failingStore rejects every write so mutations exercise the
// best-effort persistence path.
type failingStore struct{}

func (failingStore) Load(context.Context, string) ([]byte, error) {
	return nil, storage.ErrNotFound
}

func (failingStore) Save(context.Context, string, []byte) error {
	return errors.New("disk full")
}

func TestSaveFailureKeepsInMemoryState(t *testing.T) {
	ctx := context.Background()
	c := NewContainer(ctx, failingStore{}, "wishlist:test")

	assert.True(t, c.Add(ctx, "p1"))
	assert.True(t, c.Contains("p1"))
}

func TestManagerSessionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	m := NewManager(newFileStore(t))

	m.Session(ctx, "a").Add(ctx, "p1")
	assert.False(t, m.Session(ctx, "b").Contains("p1"))
	assert.Same(t, m.Session(ctx, "a"), m.Session(ctx, "a"))
}
