package search

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/pkg/models"
)

func titles(products []models.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.Title
	}
	return out
}

func TestBrowseSortByTitle(t *testing.T) {
	result := Browse(fixtures(), "", "", SortTitleAsc)
	assert.Equal(t, []string{"Denim Jacket", "Linen Throw", "Mechanical Keyboard", "Wireless Headphones"}, titles(result))
}

func TestBrowseSortByPrice(t *testing.T) {
	asc := Browse(fixtures(), "", "", SortPriceAsc)
	require.True(t, sort.SliceIsSorted(asc, func(i, j int) bool { return asc[i].Price < asc[j].Price }))

	desc := Browse(fixtures(), "", "", SortPriceDesc)
	require.True(t, sort.SliceIsSorted(desc, func(i, j int) bool { return desc[i].Price > desc[j].Price }))
}

func TestBrowseSortIsIdempotent(t *testing.T) {
	once := Browse(fixtures(), "", "", SortTitleAsc)
	twice := Browse(once, "", "", SortTitleAsc)
	assert.Equal(t, once, twice)
}

func TestBrowseTiesKeepCatalogOrder(t *testing.T) {
	products := []models.Product{
		{ID: "a", Title: "First", Price: 10},
		{ID: "b", Title: "Second", Price: 10},
		{ID: "c", Title: "Third", Price: 10},
	}
	result := Browse(products, "", "", SortPriceAsc)
	assert.Equal(t, []string{"First", "Second", "Third"}, titles(result))
}

func TestBrowseFilters(t *testing.T) {
	t.Run("category", func(t *testing.T) {
		result := Browse(fixtures(), "Electronics", "", SortPriceAsc)
		require.Len(t, result, 2)
		assert.Equal(t, "Mechanical Keyboard", result[0].Title)
	})

	t.Run("price range", func(t *testing.T) {
		result := Browse(fixtures(), "", "50-70", SortTitleAsc)
		assert.Equal(t, []string{"Denim Jacket", "Linen Throw"}, titles(result))
	})

	t.Run("category sentinel All", func(t *testing.T) {
		assert.Len(t, Browse(fixtures(), "All", "", SortTitleAsc), 4)
	})
}

func TestParseSortOrder(t *testing.T) {
	assert.Equal(t, SortPriceAsc, ParseSortOrder("price_asc"))
	assert.Equal(t, SortPriceDesc, ParseSortOrder("price_desc"))
	assert.Equal(t, SortTitleAsc, ParseSortOrder("title"))
	assert.Equal(t, SortTitleAsc, ParseSortOrder(""))
	assert.Equal(t, SortTitleAsc, ParseSortOrder("bogus"))
}
