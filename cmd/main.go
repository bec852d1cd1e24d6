package main

import (
	"log"

	"github.com/joho/godotenv"

	"storefront/internal/router"
	"storefront/pkg/account"
	"storefront/pkg/cart"
	"storefront/pkg/catalog"
	"storefront/pkg/global"
	"storefront/pkg/storage"
	"storefront/pkg/wishlist"
)

func main() {

	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	provider, err := catalog.Load()
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	store, err := storage.FromEnv()
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	handler := router.NewHandler(
		provider,
		cart.NewManager(provider),
		wishlist.NewManager(store),
		account.Seed(),
	)

	engine := router.NewEngine()
	router.InitializeRoutes(engine, handler)

	port := global.GetEnvOrDefault("PORT", "8000")
	log.Printf("Server is running on port %s", port)

	if err := engine.Run(":" + port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
