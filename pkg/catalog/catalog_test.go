package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/pkg/models"
)

func intPtr(n int) *int { return &n }

func testProducts() []models.Product {
	return []models.Product{
		{ID: "p1", Title: "Headphones", Category: "Electronics", Price: 129.99, Stock: intPtr(10)},
		{ID: "p2", Title: "Keyboard", Category: "Electronics", Price: 89.50, Stock: intPtr(2)},
		{ID: "p3", Title: "Skillet", Category: "Home", Price: 34.99, Stock: intPtr(0)},
		{ID: "p4", Title: "Gift Card", Category: "Gift Cards", Price: 50}, // unlimited
	}
}

func TestLoadEmbeddedSeed(t *testing.T) {
	provider, err := Load()
	require.NoError(t, err)
	assert.NotEmpty(t, provider.List())
	assert.NotEmpty(t, provider.Categories())
}

func TestParseSeedRejectsDuplicates(t *testing.T) {
	_, err := parseSeed([]byte("products:\n  - id: a\n    title: One\n  - id: a\n    title: Two\n"))
	assert.Error(t, err)
}

func TestListReturnsCopy(t *testing.T) {
	provider := New(testProducts())
	list := provider.List()
	list[0].Title = "mutated"

	fresh, ok := provider.Get("p1")
	require.True(t, ok)
	assert.Equal(t, "Headphones", fresh.Title)
}

func TestGetUnknownProduct(t *testing.T) {
	provider := New(testProducts())
	_, ok := provider.Get("nope")
	assert.False(t, ok)
}

func TestCategoriesFirstSeenOrder(t *testing.T) {
	provider := New(testProducts())
	assert.Equal(t, []string{"Electronics", "Home", "Gift Cards"}, provider.Categories())
}

func TestDecrementStock(t *testing.T) {
	provider := New(testProducts())

	t.Run("happy path", func(t *testing.T) {
		require.NoError(t, provider.DecrementStock("p1", 3))
		p, _ := provider.Get("p1")
		assert.Equal(t, 7, *p.Stock)
	})

	t.Run("insufficient stock", func(t *testing.T) {
		err := provider.DecrementStock("p2", 3)
		assert.ErrorIs(t, err, ErrInsufficientStock)
		p, _ := provider.Get("p2")
		assert.Equal(t, 2, *p.Stock)
	})

	t.Run("unknown product", func(t *testing.T) {
		assert.ErrorIs(t, provider.DecrementStock("nope", 1), ErrNotFound)
	})

	t.Run("non-positive amount", func(t *testing.T) {
		assert.ErrorIs(t, provider.DecrementStock("p1", 0), ErrInvalidAmount)
	})

	t.Run("unlimited stock always succeeds", func(t *testing.T) {
		require.NoError(t, provider.DecrementStock("p4", 100))
		p, _ := provider.Get("p4")
		assert.Nil(t, p.Stock)
	})
}

func TestCommitSaleIsAllOrNothing(t *testing.T) {
	provider := New(testProducts())

	err := provider.CommitSale(map[string]int{"p1": 5, "p2": 3})
	assert.ErrorIs(t, err, ErrInsufficientStock)

	// The valid line must not have been touched.
	p1, _ := provider.Get("p1")
	assert.Equal(t, 10, *p1.Stock)

	require.NoError(t, provider.CommitSale(map[string]int{"p1": 5, "p2": 2}))
	p1, _ = provider.Get("p1")
	p2, _ := provider.Get("p2")
	assert.Equal(t, 5, *p1.Stock)
	assert.Equal(t, 0, *p2.Stock)
}

func TestAdjustStockRecordsAuditTrail(t *testing.T) {
	provider := New(testProducts())

	require.NoError(t, provider.AdjustStock("p3", 25, "restock", "dashboard"))
	p, _ := provider.Get("p3")
	assert.Equal(t, 25, *p.Stock)

	logs := provider.Logs()
	require.NotEmpty(t, logs)
	last := logs[len(logs)-1]
	assert.Equal(t, "adjustment", last.ChangeType)
	assert.Equal(t, 0, last.QuantityBefore)
	assert.Equal(t, 25, last.QuantityAfter)
	assert.Equal(t, 25, last.QuantityChanged)
	assert.Equal(t, "restock", last.Reason)
	assert.Equal(t, "dashboard", last.PerformedBy)
	assert.True(t, last.IsIncrease())
}

func TestAdjustStockErrors(t *testing.T) {
	provider := New(testProducts())
	assert.ErrorIs(t, provider.AdjustStock("nope", 1, "r", "x"), ErrNotFound)
	assert.ErrorIs(t, provider.AdjustStock("p1", -1, "r", "x"), ErrInvalidAmount)
}

func TestFilterMetadata(t *testing.T) {
	provider := New(testProducts())
	meta := provider.FilterMetadata()

	assert.Equal(t, 3, meta.Availability.InStock)
	assert.Equal(t, 1, meta.Availability.OutOfStock)
	assert.Equal(t, []string{"Electronics", "Home", "Gift Cards"}, meta.Categories)
	assert.Equal(t, 34.99, meta.PriceRange.Min)
	assert.Equal(t, 129.99, meta.PriceRange.Max)
}

func TestReportFlagsLowAndSoldOut(t *testing.T) {
	provider := New(testProducts())
	report := provider.Report()

	require.Len(t, report.Products, 4)
	byID := make(map[string]ProductStock)
	for _, row := range report.Products {
		byID[row.ProductID] = row
	}

	assert.True(t, byID["p2"].LowStock) // 2 <= default threshold 5
	assert.False(t, byID["p1"].LowStock)
	assert.True(t, byID["p3"].SoldOut)
	assert.Nil(t, byID["p4"].Stock)
	assert.Equal(t, 1, report.LowStockCount)
	assert.Equal(t, 1, report.SoldOutCount)
}
