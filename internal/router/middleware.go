package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/pkg/global"
)

// SessionMiddleware validates the session id path parameter shared by
// the cart and wishlist groups and stashes it in the context.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.Param("sessionId")
		if sessionID == "" {
			c.JSON(http.StatusBadRequest, global.ErrorResponse("session id required",
				global.FieldError("sessionId", "session id path parameter is required", "required")))
			c.Abort()
			return
		}
		if len(sessionID) > 128 {
			c.JSON(http.StatusBadRequest, global.ErrorResponse("invalid session id",
				global.FieldError("sessionId", "session id must be at most 128 characters", "invalid_format")))
			c.Abort()
			return
		}

		c.Set("sessionID", sessionID)
		c.Next()
	}
}
