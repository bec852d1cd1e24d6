package catalog

// FilterMetadata represents the filter data the storefront renders
// next to the product grid.
type FilterMetadata struct {
	Availability AvailabilityData `json:"availability"`
	Categories   []string         `json:"categories"`
	PriceRange   PriceRangeData   `json:"price_range"`
}

// AvailabilityData represents product availability counts
type AvailabilityData struct {
	InStock    int `json:"in_stock"`
	OutOfStock int `json:"out_of_stock"`
}

// PriceRangeData represents the minimum and maximum price in the store
type PriceRangeData struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// ProductStock is one row of the inventory dashboard.
type ProductStock struct {
	ProductID string `json:"product_id"`
	Title     string `json:"title"`
	Stock     *int   `json:"stock,omitempty"` // nil means unlimited
	LowStock  bool   `json:"low_stock"`
	SoldOut   bool   `json:"sold_out"`
}

// InventoryReport summarizes stock levels for the dashboard.
type InventoryReport struct {
	Products          []ProductStock `json:"products"`
	LowStockThreshold int            `json:"low_stock_threshold"`
	LowStockCount     int            `json:"low_stock_count"`
	SoldOutCount      int            `json:"sold_out_count"`
}

// FilterMetadata computes availability counts, the category list and
// the catalog price span in one pass.
func (pr *Provider) FilterMetadata() FilterMetadata {
	pr.mu.Lock()
	defer pr.mu.Unlock()

	meta := FilterMetadata{}
	seen := make(map[string]bool)
	for i := range pr.products {
		p := &pr.products[i]
		if p.InStock() {
			meta.Availability.InStock++
		} else {
			meta.Availability.OutOfStock++
		}
		if !seen[p.Category] {
			seen[p.Category] = true
			meta.Categories = append(meta.Categories, p.Category)
		}
		if i == 0 || p.Price < meta.PriceRange.Min {
			meta.PriceRange.Min = p.Price
		}
		if p.Price > meta.PriceRange.Max {
			meta.PriceRange.Max = p.Price
		}
	}
	return meta
}

// Report builds the inventory dashboard snapshot.
func (pr *Provider) Report() InventoryReport {
	pr.mu.Lock()
	defer pr.mu.Unlock()

	report := InventoryReport{
		Products:          make([]ProductStock, 0, len(pr.products)),
		LowStockThreshold: pr.lowStockThreshold,
	}
	for i := range pr.products {
		p := &pr.products[i]
		row := ProductStock{
			ProductID: p.ID,
			Title:     p.Title,
			LowStock:  p.IsLowStock(pr.lowStockThreshold),
			SoldOut:   !p.InStock(),
		}
		if p.Stock != nil {
			stock := *p.Stock
			row.Stock = &stock
		}
		if row.LowStock {
			report.LowStockCount++
		}
		if row.SoldOut {
			report.SoldOutCount++
		}
		report.Products = append(report.Products, row)
	}
	return report
}
