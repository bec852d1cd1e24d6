package search

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"storefront/pkg/models"
)

// SortOrder is one of the browse-page orderings.
type SortOrder string

const (
	SortTitleAsc  SortOrder = "title"
	SortPriceAsc  SortOrder = "price_asc"
	SortPriceDesc SortOrder = "price_desc"
)

// ParseSortOrder maps a query-string value onto a sort order,
// defaulting to title ascending.
func ParseSortOrder(value string) SortOrder {
	switch SortOrder(value) {
	case SortPriceAsc:
		return SortPriceAsc
	case SortPriceDesc:
		return SortPriceDesc
	default:
		return SortTitleAsc
	}
}

// Browse filters the catalog by category and price range, then sorts.
// The sort is stable, so products that compare equal keep their
// catalog order. Title ordering is locale-aware.
func Browse(products []models.Product, category, priceRange string, order SortOrder) []models.Product {
	filtered := make([]models.Product, 0, len(products))

	categoryActive := category != "" && !strings.EqualFold(category, "All")
	priceMin, priceMax, priceActive := parsePriceRange(priceRange)

	for i := range products {
		p := &products[i]
		if categoryActive && p.Category != category {
			continue
		}
		if priceActive && (p.Price < priceMin || p.Price > priceMax) {
			continue
		}
		filtered = append(filtered, *p)
	}

	switch order {
	case SortPriceAsc:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price < filtered[j].Price
		})
	case SortPriceDesc:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price > filtered[j].Price
		})
	default:
		collator := collate.New(language.English)
		sort.SliceStable(filtered, func(i, j int) bool {
			return collator.CompareString(filtered[i].Title, filtered[j].Title) < 0
		})
	}
	return filtered
}
