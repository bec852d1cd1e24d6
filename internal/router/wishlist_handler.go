package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/pkg/global"
	"storefront/pkg/models"
)

func (h *Handler) GetWishlist(c *gin.Context) {
	sessionID := c.GetString("sessionID")
	container := h.Wishlists.Session(c.Request.Context(), sessionID)

	entries := container.Entries()
	c.JSON(http.StatusOK, global.SuccessResponse(map[string]interface{}{
		"session_id": sessionID,
		"entries":    entries,
		"count":      len(entries),
	}))
}

func (h *Handler) AddToWishlist(c *gin.Context) {
	var req models.AddToWishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid request data",
			global.FieldError("product_id", err.Error(), "validation_error")))
		return
	}

	if _, ok := h.Catalog.Get(req.ProductID); !ok {
		c.JSON(http.StatusNotFound, global.ErrorResponse("Product not found",
			global.FieldError("product_id", "No product exists with this id", "not_found")))
		return
	}

	sessionID := c.GetString("sessionID")
	container := h.Wishlists.Session(c.Request.Context(), sessionID)
	created := container.Add(c.Request.Context(), req.ProductID)

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, global.SuccessResponse(map[string]interface{}{
		"entries": container.Entries(),
		"created": created,
	}))
}

func (h *Handler) CheckWishlist(c *gin.Context) {
	sessionID := c.GetString("sessionID")
	container := h.Wishlists.Session(c.Request.Context(), sessionID)
	c.JSON(http.StatusOK, global.SuccessResponse(map[string]interface{}{
		"product_id":  c.Param("id"),
		"in_wishlist": container.Contains(c.Param("id")),
	}))
}

func (h *Handler) RemoveFromWishlist(c *gin.Context) {
	sessionID := c.GetString("sessionID")
	container := h.Wishlists.Session(c.Request.Context(), sessionID)
	container.Remove(c.Request.Context(), c.Param("id"))
	c.JSON(http.StatusOK, global.SuccessResponse(map[string]interface{}{
		"entries": container.Entries(),
	}))
}

func (h *Handler) ClearWishlist(c *gin.Context) {
	sessionID := c.GetString("sessionID")
	container := h.Wishlists.Session(c.Request.Context(), sessionID)
	container.Clear(c.Request.Context())
	c.JSON(http.StatusOK, global.SuccessResponse(map[string]interface{}{
		"entries": container.Entries(),
	}))
}
