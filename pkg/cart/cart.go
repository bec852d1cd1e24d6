// Package cart owns the per-session shopping cart. Every mutation
// re-validates against the live catalog record rather than the stock
// level captured when the line was added, so a dashboard adjustment
// in another tab is honored immediately.
package cart

import (
	"errors"
	"sync"
	"time"

	"storefront/pkg/catalog"
	"storefront/pkg/models"
)

var (
	ErrUnknownProduct = errors.New("cart: product not found in catalog")
	ErrOutOfStock     = errors.New("cart: product is out of stock")
	ErrStockExceeded  = errors.New("cart: requested quantity exceeds available stock")
)

// Container holds the cart lines for one session. At most one line
// exists per product id.
type Container struct {
	mu      sync.Mutex
	catalog *catalog.Provider
	items   []models.LineItem
}

func NewContainer(provider *catalog.Provider) *Container {
	return &Container{catalog: provider}
}

// Add puts one unit of a product in the cart. Adding a product that
// is already present increments its line instead of duplicating it.
// Constraint violations leave the cart unchanged.
func (c *Container) Add(productID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	product, ok := c.catalog.Get(productID)
	if !ok {
		return ErrUnknownProduct
	}
	if !product.InStock() {
		return ErrOutOfStock
	}

	for i := range c.items {
		if c.items[i].ProductID == productID {
			next := c.items[i].Quantity + 1
			if !product.HasStockFor(next) {
				return ErrStockExceeded
			}
			c.items[i].Quantity = next
			return nil
		}
	}

	c.items = append(c.items, models.LineItem{
		ProductID: product.ID,
		Title:     product.Title,
		Price:     product.Price,
		Quantity:  1,
		AddedAt:   time.Now(),
	})
	return nil
}

// UpdateQuantity replaces a line's quantity. A quantity of zero or
// less removes the line. Updating a product that is not in the cart
// is a no-op.
func (c *Container) UpdateQuantity(productID string, quantity int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if quantity <= 0 {
		c.removeLocked(productID)
		return nil
	}

	idx := -1
	for i := range c.items {
		if c.items[i].ProductID == productID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil
	}

	if product, ok := c.catalog.Get(productID); ok && !product.HasStockFor(quantity) {
		return ErrStockExceeded
	}
	c.items[idx].Quantity = quantity
	return nil
}

// Remove deletes a line if present. Absent lines are not an error.
func (c *Container) Remove(productID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removeLocked(productID)
}

// Clear empties the cart unconditionally.
func (c *Container) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}

// Items returns a copy of the cart lines in add order.
func (c *Container) Items() []models.LineItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	cp := make([]models.LineItem, len(c.items))
	copy(cp, c.items)
	return cp
}

// Subtotal sums price times quantity over all lines, unrounded.
func (c *Container) Subtotal() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	var subtotal float64
	for i := range c.items {
		subtotal += c.items[i].LineTotal()
	}
	return subtotal
}

// ItemCount returns the total number of units in the cart.
func (c *Container) ItemCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	var count int
	for i := range c.items {
		count += c.items[i].Quantity
	}
	return count
}

func (c *Container) removeLocked(productID string) {
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}
