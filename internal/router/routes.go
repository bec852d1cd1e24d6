package router

import "github.com/gin-gonic/gin"

func InitializeRoutes(engine *gin.Engine, h *Handler) {
	api := engine.Group("/api")
	{
		api.GET("/health", h.HealthCheck)
		api.GET("/search", h.SearchProducts)

		products := api.Group("/products")
		{
			products.GET("/", h.BrowseProducts)
			products.GET("/filters", h.GetFilterMetadata)
			products.GET("/:id", h.GetProductByID)
		}

		categories := api.Group("/categories")
		{
			categories.GET("/", h.GetAllCategories)
		}

		cart := api.Group("/cart/:sessionId")
		cart.Use(SessionMiddleware())
		{
			cart.GET("/", h.GetCart)
			cart.POST("/items", h.AddToCart)
			cart.PUT("/items/:id", h.UpdateCartItem)
			cart.DELETE("/items/:id", h.RemoveFromCart)
			cart.DELETE("/clear", h.ClearCart)
			cart.POST("/totals", h.QuoteTotals)
			cart.POST("/checkout", h.Checkout)
		}

		wishlist := api.Group("/wishlist/:sessionId")
		wishlist.Use(SessionMiddleware())
		{
			wishlist.GET("/", h.GetWishlist)
			wishlist.POST("/items", h.AddToWishlist)
			wishlist.GET("/items/:id", h.CheckWishlist)
			wishlist.DELETE("/items/:id", h.RemoveFromWishlist)
			wishlist.DELETE("/clear", h.ClearWishlist)
		}

		shipping := api.Group("/shipping-options")
		{
			shipping.GET("/", h.GetShippingOptions)
		}

		coupons := api.Group("/coupons")
		{
			coupons.POST("/validate", h.ValidateCoupon)
		}

		profile := api.Group("/profile")
		{
			profile.GET("/", h.GetProfile)
			profile.PUT("/", h.UpdateProfile)
			profile.PUT("/password", h.ChangePassword)
			profile.POST("/addresses", h.AddProfileAddress)
			profile.PUT("/addresses/:addressId", h.UpdateProfileAddress)
			profile.DELETE("/addresses/:addressId", h.DeleteProfileAddress)
		}

		inventory := api.Group("/inventory")
		{
			inventory.GET("/", h.GetInventoryReport)
			inventory.GET("/logs", h.GetInventoryLogs)
			inventory.PUT("/:id", h.AdjustStock)
		}
	}
}
