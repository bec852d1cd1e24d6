// Package search implements the catalog query pipeline. There is no
// index; every query is a single pass over the full product list.
package search

import (
	"strconv"
	"strings"

	"storefront/pkg/models"
)

// Filters are the optional restrictions layered on top of the text
// query. Category uses the sentinel "All" and PriceRange the sentinel
// "all" to mean "not filtered"; MinRating zero means unfiltered.
type Filters struct {
	Category   string  `json:"category,omitempty"`
	PriceRange string  `json:"price_range,omitempty"`
	MinRating  float64 `json:"min_rating,omitempty"`
}

// Result carries the outcome of one query. Performed distinguishes
// "no search was run" (blank query) from a search with zero matches.
type Result struct {
	Performed bool             `json:"performed"`
	Query     string           `json:"query"`
	Products  []models.Product `json:"products"`
	Count     int              `json:"count"`
	Applied   Filters          `json:"applied_filters"`
}

// Search matches the query case-insensitively against title,
// description and category, then applies the filters that are
// actually set. The filters echoed in the result are the ones that
// took effect, not the raw input.
func Search(products []models.Product, query string, filters Filters) Result {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return Result{Query: query}
	}

	result := Result{Performed: true, Query: query, Products: []models.Product{}}
	needle := strings.ToLower(trimmed)

	categoryActive := filters.Category != "" && !strings.EqualFold(filters.Category, "All")
	priceMin, priceMax, priceActive := parsePriceRange(filters.PriceRange)
	ratingActive := filters.MinRating > 0

	if categoryActive {
		result.Applied.Category = filters.Category
	}
	if priceActive {
		result.Applied.PriceRange = filters.PriceRange
	}
	if ratingActive {
		result.Applied.MinRating = filters.MinRating
	}

	for i := range products {
		p := &products[i]
		if !matches(p, needle) {
			continue
		}
		if categoryActive && p.Category != filters.Category {
			continue
		}
		if priceActive && (p.Price < priceMin || p.Price > priceMax) {
			continue
		}
		if ratingActive && p.RatingOrZero() < filters.MinRating {
			continue
		}
		result.Products = append(result.Products, *p)
	}
	result.Count = len(result.Products)
	return result
}

func matches(p *models.Product, needle string) bool {
	return strings.Contains(strings.ToLower(p.Title), needle) ||
		strings.Contains(strings.ToLower(p.Description), needle) ||
		strings.Contains(strings.ToLower(p.Category), needle)
}

// parsePriceRange reads a "min-max" range. The sentinel "all", an
// empty string, or anything unparsable leaves the filter inactive.
func parsePriceRange(value string) (min, max float64, ok bool) {
	if value == "" || strings.EqualFold(value, "all") {
		return 0, 0, false
	}
	parts := strings.SplitN(value, "-", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	min, errMin := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	max, errMax := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if errMin != nil || errMax != nil || min > max {
		return 0, 0, false
	}
	return min, max, true
}
