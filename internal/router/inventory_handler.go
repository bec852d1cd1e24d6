package router

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/pkg/catalog"
	"storefront/pkg/global"
	"storefront/pkg/models"
)

func (h *Handler) GetInventoryReport(c *gin.Context) {
	c.JSON(http.StatusOK, global.SuccessResponse(h.Catalog.Report()))
}

func (h *Handler) GetInventoryLogs(c *gin.Context) {
	logs := h.Catalog.Logs()
	c.JSON(http.StatusOK, global.SuccessResponse(map[string]interface{}{
		"logs":  logs,
		"count": len(logs),
	}))
}

func (h *Handler) AdjustStock(c *gin.Context) {
	var req models.AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid request data",
			global.FieldError("request", err.Error(), "validation_error")))
		return
	}

	err := h.Catalog.AdjustStock(c.Param("id"), *req.Stock, req.Reason, req.PerformedBy)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrNotFound):
			c.JSON(http.StatusNotFound, global.ErrorResponse("Product not found",
				global.FieldError("id", "No product exists with this id", "not_found")))
		case errors.Is(err, catalog.ErrInvalidAmount):
			c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid stock level",
				global.FieldError("stock", "Stock must be zero or positive", "invalid_amount")))
		default:
			c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to adjust stock", nil))
		}
		return
	}

	product, _ := h.Catalog.Get(c.Param("id"))
	c.JSON(http.StatusOK, global.SuccessResponse(product))
}
