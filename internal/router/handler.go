package router

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"storefront/pkg/account"
	"storefront/pkg/cart"
	"storefront/pkg/catalog"
	"storefront/pkg/global"
	"storefront/pkg/pricing"
	"storefront/pkg/search"
	"storefront/pkg/wishlist"
)

// Handler owns the state containers behind every endpoint. They are
// constructed once in main and injected here, never reached through
// package globals, so tests can build an isolated handler per case.
type Handler struct {
	Catalog   *catalog.Provider
	Carts     *cart.Manager
	Wishlists *wishlist.Manager
	Account   *account.Container
}

func NewHandler(provider *catalog.Provider, carts *cart.Manager, wishlists *wishlist.Manager, acct *account.Container) *Handler {
	return &Handler{
		Catalog:   provider,
		Carts:     carts,
		Wishlists: wishlists,
		Account:   acct,
	}
}

func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, global.SuccessResponse(map[string]interface{}{
		"status":   "OK",
		"products": len(h.Catalog.List()),
	}))
}

// BrowseProducts lists the catalog with the browse-page filters and
// sort: ?category=&price_range=&sort=title|price_asc|price_desc
func (h *Handler) BrowseProducts(c *gin.Context) {
	products := search.Browse(
		h.Catalog.List(),
		c.Query("category"),
		c.Query("price_range"),
		search.ParseSortOrder(c.Query("sort")),
	)
	c.JSON(http.StatusOK, global.SuccessResponse(map[string]interface{}{
		"products": products,
		"count":    len(products),
	}))
}

func (h *Handler) GetProductByID(c *gin.Context) {
	id := c.Param("id")

	product, ok := h.Catalog.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, global.ErrorResponse("Product not found",
			global.FieldError("id", "No product exists with this id", "not_found")))
		return
	}
	c.JSON(http.StatusOK, global.SuccessResponse(product))
}

func (h *Handler) GetAllCategories(c *gin.Context) {
	c.JSON(http.StatusOK, global.SuccessResponse(h.Catalog.Categories()))
}

func (h *Handler) GetFilterMetadata(c *gin.Context) {
	c.JSON(http.StatusOK, global.SuccessResponse(h.Catalog.FilterMetadata()))
}

// SearchProducts runs the search pipeline:
// ?q=&category=&price_range=&min_rating=
func (h *Handler) SearchProducts(c *gin.Context) {
	filters := search.Filters{
		Category:   c.Query("category"),
		PriceRange: c.Query("price_range"),
	}
	if raw := c.Query("min_rating"); raw != "" {
		minRating, err := strconv.ParseFloat(raw, 64)
		if err != nil || minRating < 0 || minRating > 5 {
			c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid minimum rating",
				global.FieldError("min_rating", "min_rating must be a number between 0 and 5", "invalid_format")))
			return
		}
		filters.MinRating = minRating
	}

	result := search.Search(h.Catalog.List(), c.Query("q"), filters)
	c.JSON(http.StatusOK, global.SuccessResponse(result))
}

func (h *Handler) GetShippingOptions(c *gin.Context) {
	c.JSON(http.StatusOK, global.SuccessResponse(pricing.ShippingOptions()))
}
