package cart

import (
	"sync"

	"storefront/pkg/catalog"
)

// Manager hands out one cart container per session id.
type Manager struct {
	mu      sync.Mutex
	catalog *catalog.Provider
	carts   map[string]*Container
}

func NewManager(provider *catalog.Provider) *Manager {
	return &Manager{
		catalog: provider,
		carts:   make(map[string]*Container),
	}
}

// Session returns the cart for a session, creating it on first use.
func (m *Manager) Session(sessionID string) *Container {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok := m.carts[sessionID]; ok {
		return c
	}
	c := NewContainer(m.catalog)
	m.carts[sessionID] = c
	return c
}
