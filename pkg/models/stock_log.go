package models

import "time"

// StockLog records one stock change for the inventory dashboard's
// audit trail.
type StockLog struct {
	ProductID       string    `json:"product_id"`
	ChangeType      string    `json:"change_type"` // sale or adjustment
	QuantityBefore  int       `json:"quantity_before"`
	QuantityAfter   int       `json:"quantity_after"`
	QuantityChanged int       `json:"quantity_changed"` // Can be positive or negative
	Reason          string    `json:"reason,omitempty"`
	PerformedBy     string    `json:"performed_by"`
	CreatedAt       time.Time `json:"created_at"`
}

// CalculateQuantityChanged calculates the difference between before and after
func (sl *StockLog) CalculateQuantityChanged() {
	sl.QuantityChanged = sl.QuantityAfter - sl.QuantityBefore
}

// IsIncrease returns true if stock increased
func (sl *StockLog) IsIncrease() bool {
	return sl.QuantityChanged > 0
}

// IsDecrease returns true if stock decreased
func (sl *StockLog) IsDecrease() bool {
	return sl.QuantityChanged < 0
}

type AdjustStockRequest struct {
	Stock       *int   `json:"stock" binding:"required"`
	Reason      string `json:"reason" binding:"required"`
	PerformedBy string `json:"performed_by"`
}
