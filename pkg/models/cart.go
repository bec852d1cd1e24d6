package models

import "time"

// LineItem represents a single product line in a session cart. Price
// and Title are captured from the catalog at add time; stock checks
// always go back to the live catalog record.
type LineItem struct {
	ProductID string    `json:"product_id"`
	Title     string    `json:"title"`
	Price     float64   `json:"price"`
	Quantity  int       `json:"quantity"`
	AddedAt   time.Time `json:"added_at"`
}

// LineTotal returns the extended price for this line.
func (li *LineItem) LineTotal() float64 {
	return li.Price * float64(li.Quantity)
}

type AddToCartRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

// Quantity is a pointer so a literal 0 (remove the line) survives
// binding; `required` on a plain int rejects the zero value.
type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}
