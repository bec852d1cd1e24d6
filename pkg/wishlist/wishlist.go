// Package wishlist owns the durable set of saved products. The whole
// collection is written through the storage interface after every
// successful mutation and read back on construction, so a wishlist
// survives restarts even though nothing else in the storefront does.
package wishlist

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"storefront/pkg/models"
	"storefront/pkg/storage"
)

// Container holds the wishlist entries for one storage key. At most
// one entry exists per product id.
type Container struct {
	mu      sync.Mutex
	store   storage.Store
	key     string
	entries []models.WishlistEntry
}

// NewContainer loads the prior snapshot for key, defaulting to an
// empty wishlist when none exists or the snapshot cannot be parsed.
func NewContainer(ctx context.Context, store storage.Store, key string) *Container {
	c := &Container{store: store, key: key}

	data, err := store.Load(ctx, key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Printf("Warning: failed to load wishlist snapshot %s: %v", key, err)
		}
		return c
	}
	if err := json.Unmarshal(data, &c.entries); err != nil {
		log.Printf("Warning: discarding unreadable wishlist snapshot %s: %v", key, err)
		c.entries = nil
	}
	return c
}

// Add saves a product. Adding a product that is already saved is a
// no-op; the return value reports whether a new entry was created.
func (c *Container) Add(ctx context.Context, productID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.entries {
		if c.entries[i].ProductID == productID {
			return false
		}
	}
	c.entries = append(c.entries, models.WishlistEntry{
		ID:        uuid.NewString(),
		ProductID: productID,
		AddedAt:   time.Now(),
	})
	c.persistLocked(ctx)
	return true
}

// Remove deletes the entry for a product if present.
func (c *Container) Remove(ctx context.Context, productID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.entries {
		if c.entries[i].ProductID == productID {
			c.entries = append(c.entries[:i], c.entries[i+1:]...)
			c.persistLocked(ctx)
			return
		}
	}
}

// Contains reports whether a product is saved.
func (c *Container) Contains(productID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.entries {
		if c.entries[i].ProductID == productID {
			return true
		}
	}
	return false
}

// Clear empties the wishlist.
func (c *Container) Clear(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = nil
	c.persistLocked(ctx)
}

// Entries returns a copy of the wishlist in add order.
func (c *Container) Entries() []models.WishlistEntry {
	c.mu.Lock()
	defer c.mu.Unlock()
	cp := make([]models.WishlistEntry, len(c.entries))
	copy(cp, c.entries)
	return cp
}

// Persistence is best effort: a failed write leaves the in-memory
// state authoritative for the rest of the session.
func (c *Container) persistLocked(ctx context.Context) {
	data, err := json.Marshal(c.entries)
	if err != nil {
		log.Printf("Warning: failed to serialize wishlist %s: %v", c.key, err)
		return
	}
	if err := c.store.Save(ctx, c.key, data); err != nil {
		log.Printf("Warning: failed to persist wishlist %s: %v", c.key, err)
	}
}
