package wishlist

import (
	"context"
	"sync"

	"storefront/pkg/storage"
)

// Manager hands out one wishlist container per session id, each
// persisted under its own storage key.
type Manager struct {
	mu        sync.Mutex
	store     storage.Store
	wishlists map[string]*Container
}

func NewManager(store storage.Store) *Manager {
	return &Manager{
		store:     store,
		wishlists: make(map[string]*Container),
	}
}

// Session returns the wishlist for a session, loading its snapshot on
// first use.
func (m *Manager) Session(ctx context.Context, sessionID string) *Container {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok := m.wishlists[sessionID]; ok {
		return c
	}
	c := NewContainer(ctx, m.store, "wishlist:"+sessionID)
	m.wishlists[sessionID] = c
	return c
}
