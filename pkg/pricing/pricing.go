// Package pricing derives order totals from a cart and the selected
// checkout options. All amounts stay unrounded until presentation.
package pricing

import (
	"errors"
	"math"
	"strings"

	"storefront/pkg/models"
)

// TaxRate is applied to the discounted subtotal.
const TaxRate = 0.08

var (
	ErrUnknownCoupon       = errors.New("pricing: unknown coupon code")
	ErrUnknownShippingTier = errors.New("pricing: unknown shipping tier")
)

// Coupon is a fixed code with a fractional discount rate in [0, 1).
type Coupon struct {
	Code string  `json:"code"`
	Rate float64 `json:"rate"`
}

// The coupon table is static; codes match case-insensitively.
var coupons = map[string]float64{
	"SAVE10":   0.10,
	"SAVE20":   0.20,
	"WELCOME5": 0.05,
}

// LookupCoupon resolves a code against the coupon table. Unknown
// codes are an error so the caller can tell the user, never a silent
// zero discount.
func LookupCoupon(code string) (Coupon, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	rate, ok := coupons[normalized]
	if !ok {
		return Coupon{}, ErrUnknownCoupon
	}
	return Coupon{Code: normalized, Rate: rate}, nil
}

// ShippingTier names one of the fixed delivery speeds.
type ShippingTier string

const (
	ShippingStandard  ShippingTier = "standard"
	ShippingExpress   ShippingTier = "express"
	ShippingOvernight ShippingTier = "overnight"
)

// ShippingOption is a tier with its flat price and delivery estimate.
type ShippingOption struct {
	Tier     ShippingTier `json:"tier"`
	Price    float64      `json:"price"`
	Estimate string       `json:"estimate"`
}

var shippingOptions = []ShippingOption{
	{Tier: ShippingStandard, Price: 0, Estimate: "5-7 business days"},
	{Tier: ShippingExpress, Price: 9.99, Estimate: "2-3 business days"},
	{Tier: ShippingOvernight, Price: 19.99, Estimate: "next business day"},
}

// ShippingOptions returns the fixed tier list, cheapest first.
func ShippingOptions() []ShippingOption {
	cp := make([]ShippingOption, len(shippingOptions))
	copy(cp, shippingOptions)
	return cp
}

// OptionFor resolves a tier name to its option.
func OptionFor(tier ShippingTier) (ShippingOption, error) {
	for _, opt := range shippingOptions {
		if opt.Tier == tier {
			return opt, nil
		}
	}
	return ShippingOption{}, ErrUnknownShippingTier
}

// Totals is the financial breakdown of an order.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Discount float64 `json:"discount"`
	Shipping float64 `json:"shipping"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// Calculate derives the totals for a cart with an optional coupon and
// the selected shipping tier. Intermediate values are not rounded;
// call Rounded before presenting the result.
func Calculate(items []models.LineItem, coupon *Coupon, tier ShippingTier) (Totals, error) {
	option, err := OptionFor(tier)
	if err != nil {
		return Totals{}, err
	}

	var t Totals
	for i := range items {
		t.Subtotal += items[i].LineTotal()
	}
	if coupon != nil {
		t.Discount = t.Subtotal * coupon.Rate
	}
	t.Shipping = option.Price
	t.Tax = (t.Subtotal - t.Discount) * TaxRate
	t.Total = t.Subtotal - t.Discount + t.Shipping + t.Tax
	return t, nil
}

// Rounded returns the totals rounded to cents for presentation.
func (t Totals) Rounded() Totals {
	return Totals{
		Subtotal: Round2(t.Subtotal),
		Discount: Round2(t.Discount),
		Shipping: Round2(t.Shipping),
		Tax:      Round2(t.Tax),
		Total:    Round2(t.Total),
	}
}

func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
