package models

import "time"

// Sale represents optional discount metadata attached to a product.
type Sale struct {
	Percent float64 `json:"percent" yaml:"percent" validate:"gt=0,lt=100"`
	Label   string  `json:"label,omitempty" yaml:"label,omitempty"`
}

// Product represents a catalog entry. Stock and Rating are optional:
// a nil Stock means the product is purchasable without limit, a nil
// Rating means the product has not been rated yet. Call sites must go
// through HasStockFor / RatingOrZero instead of re-deciding what nil
// means.
type Product struct {
	ID          string    `json:"id" yaml:"id" validate:"required"`
	Title       string    `json:"title" yaml:"title" validate:"required,min=2,max=200"`
	Description string    `json:"description" yaml:"description" validate:"max=2000"`
	Category    string    `json:"category" yaml:"category" validate:"required,min=2,max=100"`
	Price       float64   `json:"price" yaml:"price" validate:"required,gt=0"`
	Stock       *int      `json:"stock,omitempty" yaml:"stock,omitempty" validate:"omitempty,gte=0"`
	Rating      *float64  `json:"rating,omitempty" yaml:"rating,omitempty" validate:"omitempty,gte=0,lte=5"`
	Sale        *Sale     `json:"sale,omitempty" yaml:"sale,omitempty"`
	ImageURL    string    `json:"image_url,omitempty" yaml:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at" yaml:"-"`
	UpdatedAt   time.Time `json:"updated_at" yaml:"-"`
}

// HasStockFor reports whether quantity units can be taken from the
// current stock level. Unlimited-stock products accept any quantity.
func (p *Product) HasStockFor(quantity int) bool {
	if p.Stock == nil {
		return true
	}
	return quantity <= *p.Stock
}

// InStock reports whether at least one unit is purchasable.
func (p *Product) InStock() bool {
	return p.Stock == nil || *p.Stock > 0
}

// RatingOrZero normalizes an absent rating to 0 for comparisons.
func (p *Product) RatingOrZero() float64 {
	if p.Rating == nil {
		return 0
	}
	return *p.Rating
}

// IsLowStock reports whether the product is running out but not yet
// gone. Unlimited-stock products are never low.
func (p *Product) IsLowStock(threshold int) bool {
	return p.Stock != nil && *p.Stock > 0 && *p.Stock <= threshold
}

// SetTimestamps sets created_at on first call and always updates updated_at
func (p *Product) SetTimestamps() {
	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
}
