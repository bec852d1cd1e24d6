// Package catalog holds the in-memory product catalog. Products are
// loaded once from a YAML seed; the only mutations afterwards are
// stock changes, each of which is recorded in an audit trail.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"storefront/pkg/global"
	"storefront/pkg/models"
)

//go:embed seed.yaml
var defaultSeed []byte

var (
	ErrNotFound          = errors.New("catalog: product not found")
	ErrInvalidAmount     = errors.New("catalog: amount must be positive")
	ErrInsufficientStock = errors.New("catalog: insufficient stock")
)

type seedFile struct {
	Products []models.Product `yaml:"products"`
}

// Provider owns the catalog for the lifetime of the process. All
// reads return copies; the mutex makes stock mutations safe when the
// provider is shared across request handlers.
type Provider struct {
	mu                sync.Mutex
	products          []models.Product
	logs              []models.StockLog
	lowStockThreshold int
}

// New builds a provider over the given products. Mostly useful in
// tests; production code goes through Load.
func New(products []models.Product) *Provider {
	now := time.Now()
	owned := make([]models.Product, len(products))
	copy(owned, products)
	for i := range owned {
		if owned[i].CreatedAt.IsZero() {
			owned[i].CreatedAt = now
		}
		owned[i].UpdatedAt = owned[i].CreatedAt
	}
	return &Provider{
		products:          owned,
		lowStockThreshold: global.GetEnvIntOrDefault("LOW_STOCK_THRESHOLD", 5),
	}
}

// Load seeds a provider from the CATALOG_SEED file when set, falling
// back to the embedded seed document.
func Load() (*Provider, error) {
	data := defaultSeed
	if path := os.Getenv("CATALOG_SEED"); path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read catalog seed %s: %w", path, err)
		}
		data = b
	}
	return parseSeed(data)
}

func parseSeed(data []byte) (*Provider, error) {
	var seed seedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("parse catalog seed: %w", err)
	}
	if len(seed.Products) == 0 {
		return nil, errors.New("catalog seed contains no products")
	}
	ids := make(map[string]bool, len(seed.Products))
	for _, p := range seed.Products {
		if p.ID == "" {
			return nil, fmt.Errorf("catalog seed: product %q has no id", p.Title)
		}
		if ids[p.ID] {
			return nil, fmt.Errorf("catalog seed: duplicate product id %s", p.ID)
		}
		ids[p.ID] = true
	}
	return New(seed.Products), nil
}

// List returns a copy of the full catalog in seed order.
func (pr *Provider) List() []models.Product {
	pr.mu.Lock()
	defer pr.mu.Unlock()
	cp := make([]models.Product, len(pr.products))
	copy(cp, pr.products)
	return cp
}

// Get returns the current record for a product id.
func (pr *Provider) Get(id string) (models.Product, bool) {
	pr.mu.Lock()
	defer pr.mu.Unlock()
	for i := range pr.products {
		if pr.products[i].ID == id {
			return pr.products[i], true
		}
	}
	return models.Product{}, false
}

// Categories returns the distinct categories in first-seen order.
func (pr *Provider) Categories() []string {
	pr.mu.Lock()
	defer pr.mu.Unlock()
	seen := make(map[string]bool)
	var categories []string
	for i := range pr.products {
		c := pr.products[i].Category
		if !seen[c] {
			seen[c] = true
			categories = append(categories, c)
		}
	}
	return categories
}

// DecrementStock removes amount units from a product's stock. It is
// the only catalog mutation the storefront performs on purchase.
// Unlimited-stock products succeed without a stock change but still
// get an audit entry.
func (pr *Provider) DecrementStock(id string, amount int) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	pr.mu.Lock()
	defer pr.mu.Unlock()
	return pr.decrementLocked(id, amount, "checkout")
}

// CommitSale decrements stock for every line of a sale, all or
// nothing: if any line exceeds the live stock level no product is
// touched.
func (pr *Provider) CommitSale(quantities map[string]int) error {
	pr.mu.Lock()
	defer pr.mu.Unlock()

	for id, amount := range quantities {
		if amount <= 0 {
			return ErrInvalidAmount
		}
		p := pr.findLocked(id)
		if p == nil {
			return ErrNotFound
		}
		if !p.HasStockFor(amount) {
			return ErrInsufficientStock
		}
	}
	for id, amount := range quantities {
		// Validated above, cannot fail now.
		_ = pr.decrementLocked(id, amount, "checkout")
	}
	return nil
}

// AdjustStock sets a product's absolute stock level from the
// inventory dashboard and records who did it and why.
func (pr *Provider) AdjustStock(id string, stock int, reason, performedBy string) error {
	if stock < 0 {
		return ErrInvalidAmount
	}
	pr.mu.Lock()
	defer pr.mu.Unlock()

	p := pr.findLocked(id)
	if p == nil {
		return ErrNotFound
	}
	before := 0
	if p.Stock != nil {
		before = *p.Stock
	}
	next := stock
	p.Stock = &next
	p.UpdatedAt = time.Now()
	pr.appendLogLocked(id, "adjustment", before, next, reason, performedBy)
	return nil
}

// Logs returns a copy of the stock audit trail, oldest first.
func (pr *Provider) Logs() []models.StockLog {
	pr.mu.Lock()
	defer pr.mu.Unlock()
	cp := make([]models.StockLog, len(pr.logs))
	copy(cp, pr.logs)
	return cp
}

func (pr *Provider) findLocked(id string) *models.Product {
	for i := range pr.products {
		if pr.products[i].ID == id {
			return &pr.products[i]
		}
	}
	return nil
}

func (pr *Provider) decrementLocked(id string, amount int, performedBy string) error {
	p := pr.findLocked(id)
	if p == nil {
		return ErrNotFound
	}
	if p.Stock == nil {
		pr.appendLogLocked(id, "sale", 0, 0, "unlimited stock", performedBy)
		return nil
	}
	if amount > *p.Stock {
		return ErrInsufficientStock
	}
	before := *p.Stock
	next := before - amount
	p.Stock = &next
	p.UpdatedAt = time.Now()
	pr.appendLogLocked(id, "sale", before, next, "", performedBy)
	return nil
}

func (pr *Provider) appendLogLocked(id, changeType string, before, after int, reason, performedBy string) {
	if performedBy == "" {
		performedBy = "system"
	}
	entry := models.StockLog{
		ProductID:      id,
		ChangeType:     changeType,
		QuantityBefore: before,
		QuantityAfter:  after,
		Reason:         reason,
		PerformedBy:    performedBy,
		CreatedAt:      time.Now(),
	}
	entry.CalculateQuantityChanged()
	pr.logs = append(pr.logs, entry)
}
