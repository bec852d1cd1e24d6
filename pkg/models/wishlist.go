package models

import "time"

// WishlistEntry represents a product saved for later. At most one
// entry exists per product id.
type WishlistEntry struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	AddedAt   time.Time `json:"added_at"`
}

type AddToWishlistRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}
