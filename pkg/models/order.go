package models

import (
	"fmt"
	"time"
)

// CheckoutRequest carries the options selected at checkout. The coupon
// code is optional; the shipping tier is not.
type CheckoutRequest struct {
	CouponCode string `json:"coupon_code"`
	Shipping   string `json:"shipping" binding:"required"`
}

// QuoteRequest mirrors CheckoutRequest for a totals preview without
// placing the order.
type QuoteRequest struct {
	CouponCode string `json:"coupon_code"`
	Shipping   string `json:"shipping" binding:"required"`
}

type ValidateCouponRequest struct {
	Code string `json:"code" binding:"required"`
}

func GenerateOrderNumber() string {
	now := time.Now()
	// Format: ORD-YYYYMMDD-HHMMSS-RAND
	return fmt.Sprintf("ORD-%s-%03d",
		now.Format("20060102-150405"),
		now.Nanosecond()%1000,
	)
}
