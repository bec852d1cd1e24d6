package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/pkg/models"
)

func TestLookupCoupon(t *testing.T) {
	t.Run("known code", func(t *testing.T) {
		coupon, err := LookupCoupon("SAVE10")
		require.NoError(t, err)
		assert.Equal(t, 0.10, coupon.Rate)
	})

	t.Run("case insensitive", func(t *testing.T) {
		coupon, err := LookupCoupon("  save10 ")
		require.NoError(t, err)
		assert.Equal(t, "SAVE10", coupon.Code)
	})

	t.Run("unknown code is an error", func(t *testing.T) {
		_, err := LookupCoupon("NOPE")
		assert.ErrorIs(t, err, ErrUnknownCoupon)
	})
}

func TestOptionFor(t *testing.T) {
	standard, err := OptionFor(ShippingStandard)
	require.NoError(t, err)
	assert.Zero(t, standard.Price)

	_, err = OptionFor("teleport")
	assert.ErrorIs(t, err, ErrUnknownShippingTier)
}

// Reference scenario: subtotal 100.00, SAVE10, standard shipping.
func TestCalculateReferenceScenario(t *testing.T) {
	items := []models.LineItem{
		{ProductID: "p1", Price: 25, Quantity: 4},
	}
	coupon, err := LookupCoupon("SAVE10")
	require.NoError(t, err)

	totals, err := Calculate(items, &coupon, ShippingStandard)
	require.NoError(t, err)

	rounded := totals.Rounded()
	assert.Equal(t, 100.00, rounded.Subtotal)
	assert.Equal(t, 10.00, rounded.Discount)
	assert.Equal(t, 0.00, rounded.Shipping)
	assert.Equal(t, 7.20, rounded.Tax)
	assert.Equal(t, 97.20, rounded.Total)
}

func TestCalculateWithoutCoupon(t *testing.T) {
	items := []models.LineItem{{ProductID: "p1", Price: 50, Quantity: 1}}

	totals, err := Calculate(items, nil, ShippingExpress)
	require.NoError(t, err)

	assert.Zero(t, totals.Discount)
	assert.Equal(t, 9.99, totals.Shipping)
	assert.InDelta(t, 50*TaxRate, totals.Tax, 1e-9)
	assert.InDelta(t, 50+9.99+50*TaxRate, totals.Total, 1e-9)
}

func TestCalculateEmptyCart(t *testing.T) {
	totals, err := Calculate(nil, nil, ShippingStandard)
	require.NoError(t, err)
	assert.Zero(t, totals.Subtotal)
	assert.Zero(t, totals.Total)
}

func TestCalculateUnknownTier(t *testing.T) {
	_, err := Calculate(nil, nil, "drone")
	assert.ErrorIs(t, err, ErrUnknownShippingTier)
}

// Rounding happens once at presentation, not per intermediate value:
// three items at 0.115 keep the unrounded subtotal 0.345 internally.
func TestRoundingOnlyAtPresentation(t *testing.T) {
	items := []models.LineItem{{ProductID: "p1", Price: 0.115, Quantity: 3}}

	totals, err := Calculate(items, nil, ShippingStandard)
	require.NoError(t, err)

	assert.InDelta(t, 0.345, totals.Subtotal, 1e-9)
	assert.InDelta(t, 0.345*1.08, totals.Total, 1e-9)
	assert.Equal(t, 0.35, totals.Rounded().Subtotal)
}

func TestShippingOptionsReturnsCopy(t *testing.T) {
	options := ShippingOptions()
	require.Len(t, options, 3)
	options[0].Price = 999

	fresh := ShippingOptions()
	assert.Zero(t, fresh[0].Price)
}
