package router

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/pkg/cart"
	"storefront/pkg/catalog"
	"storefront/pkg/global"
	"storefront/pkg/models"
	"storefront/pkg/pricing"
)

type cartResponse struct {
	SessionID string            `json:"session_id"`
	Items     []models.LineItem `json:"items"`
	ItemCount int               `json:"item_count"`
	Subtotal  float64           `json:"subtotal"`
}

type orderSummary struct {
	OrderNumber string                 `json:"order_number"`
	Items       []models.LineItem      `json:"items"`
	Coupon      *pricing.Coupon        `json:"coupon,omitempty"`
	Shipping    pricing.ShippingOption `json:"shipping"`
	Totals      pricing.Totals         `json:"totals"`
}

func (h *Handler) sessionCart(c *gin.Context) (*cart.Container, string) {
	sessionID := c.GetString("sessionID")
	return h.Carts.Session(sessionID), sessionID
}

func buildCartResponse(container *cart.Container, sessionID string) cartResponse {
	return cartResponse{
		SessionID: sessionID,
		Items:     container.Items(),
		ItemCount: container.ItemCount(),
		Subtotal:  pricing.Round2(container.Subtotal()),
	}
}

func (h *Handler) GetCart(c *gin.Context) {
	container, sessionID := h.sessionCart(c)
	c.JSON(http.StatusOK, global.SuccessResponse(buildCartResponse(container, sessionID)))
}

func (h *Handler) AddToCart(c *gin.Context) {
	var req models.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid request data",
			global.FieldError("request", err.Error(), "validation_error")))
		return
	}

	container, sessionID := h.sessionCart(c)
	if err := container.Add(req.ProductID); err != nil {
		respondCartError(c, err)
		return
	}
	c.JSON(http.StatusOK, global.SuccessResponse(buildCartResponse(container, sessionID)))
}

func (h *Handler) UpdateCartItem(c *gin.Context) {
	var req models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid request data",
			global.FieldError("quantity", err.Error(), "validation_error")))
		return
	}

	container, sessionID := h.sessionCart(c)
	if err := container.UpdateQuantity(c.Param("id"), *req.Quantity); err != nil {
		respondCartError(c, err)
		return
	}
	c.JSON(http.StatusOK, global.SuccessResponse(buildCartResponse(container, sessionID)))
}

func (h *Handler) RemoveFromCart(c *gin.Context) {
	container, sessionID := h.sessionCart(c)
	container.Remove(c.Param("id"))
	c.JSON(http.StatusOK, global.SuccessResponse(buildCartResponse(container, sessionID)))
}

func (h *Handler) ClearCart(c *gin.Context) {
	container, sessionID := h.sessionCart(c)
	container.Clear()
	c.JSON(http.StatusOK, global.SuccessResponse(buildCartResponse(container, sessionID)))
}

// QuoteTotals previews order totals for the current cart without
// placing an order.
func (h *Handler) QuoteTotals(c *gin.Context) {
	var req models.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid request data",
			global.FieldError("request", err.Error(), "validation_error")))
		return
	}

	container, _ := h.sessionCart(c)
	totals, coupon, ok := h.calculateTotals(c, container.Items(), req.CouponCode, req.Shipping)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, global.SuccessResponse(map[string]interface{}{
		"totals": totals.Rounded(),
		"coupon": coupon,
	}))
}

// Checkout computes totals, decrements catalog stock for every line,
// clears the cart and returns the order summary.
func (h *Handler) Checkout(c *gin.Context) {
	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid request data",
			global.FieldError("request", err.Error(), "validation_error")))
		return
	}

	container, _ := h.sessionCart(c)
	items := container.Items()
	if len(items) == 0 {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Cart is empty",
			global.FieldError("cart", "Cannot check out an empty cart", "empty_cart")))
		return
	}

	totals, coupon, ok := h.calculateTotals(c, items, req.CouponCode, req.Shipping)
	if !ok {
		return
	}
	option, _ := pricing.OptionFor(pricing.ShippingTier(req.Shipping))

	quantities := make(map[string]int, len(items))
	for i := range items {
		quantities[items[i].ProductID] = items[i].Quantity
	}
	if err := h.Catalog.CommitSale(quantities); err != nil {
		if errors.Is(err, catalog.ErrInsufficientStock) {
			c.JSON(http.StatusConflict, global.ErrorResponse("Stock changed during checkout",
				global.FieldError("cart", "One or more items now exceed available stock", "stock_exceeded")))
			return
		}
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to place order", nil))
		return
	}
	container.Clear()

	c.JSON(http.StatusCreated, global.SuccessResponse(orderSummary{
		OrderNumber: models.GenerateOrderNumber(),
		Items:       items,
		Coupon:      coupon,
		Shipping:    option,
		Totals:      totals.Rounded(),
	}))
}

func (h *Handler) ValidateCoupon(c *gin.Context) {
	var req models.ValidateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid request data",
			global.FieldError("code", err.Error(), "validation_error")))
		return
	}

	coupon, err := pricing.LookupCoupon(req.Code)
	if err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Unknown coupon code",
			global.FieldError("code", "This coupon code is not recognized", "invalid_coupon")))
		return
	}
	c.JSON(http.StatusOK, global.SuccessResponse(coupon))
}

// calculateTotals resolves coupon and shipping and derives the
// totals, writing the error response itself when something is
// invalid. The bool reports whether the caller may proceed.
func (h *Handler) calculateTotals(c *gin.Context, items []models.LineItem, couponCode, shipping string) (pricing.Totals, *pricing.Coupon, bool) {
	var coupon *pricing.Coupon
	if couponCode != "" {
		resolved, err := pricing.LookupCoupon(couponCode)
		if err != nil {
			c.JSON(http.StatusBadRequest, global.ErrorResponse("Unknown coupon code",
				global.FieldError("coupon_code", "This coupon code is not recognized", "invalid_coupon")))
			return pricing.Totals{}, nil, false
		}
		coupon = &resolved
	}

	totals, err := pricing.Calculate(items, coupon, pricing.ShippingTier(shipping))
	if err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Unknown shipping tier",
			global.FieldError("shipping", "Shipping must be standard, express or overnight", "invalid_shipping")))
		return pricing.Totals{}, nil, false
	}
	return totals, coupon, true
}

func respondCartError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, cart.ErrUnknownProduct):
		c.JSON(http.StatusNotFound, global.ErrorResponse("Product not found",
			global.FieldError("product_id", "No product exists with this id", "not_found")))
	case errors.Is(err, cart.ErrOutOfStock):
		c.JSON(http.StatusConflict, global.ErrorResponse("Product is out of stock",
			global.FieldError("product_id", "This product is currently out of stock", "out_of_stock")))
	case errors.Is(err, cart.ErrStockExceeded):
		c.JSON(http.StatusConflict, global.ErrorResponse("Not enough stock",
			global.FieldError("quantity", "Requested quantity exceeds available stock", "stock_exceeded")))
	default:
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to update cart", nil))
	}
}
