package main

import (
	"fmt"
	"log"
	"os"

	"github.com/celiogix/backend/config"
	httpDelivery "github.com/celiogix/backend/internal/delivery/http"
	"github.com/celiogix/backend/internal/infrastructure/cache"
	"github.com/celiogix/backend/internal/infrastructure/metrics"
	"github.com/celiogix/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting Celiogix Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Cache Type: %s", cfg.Cache.Type)

	// Initialize infrastructure dependencies
	memoryCache := cache.NewMemoryCache(0)
	defer memoryCache.Close()
	log.Printf("Cache TTL: %s", cfg.Cache.TTL)

	recorder := metrics.NewRecorder()

	// Initialize usecase layer
	analyzer := usecase.NewRiskAnalyzer()
	scaler := usecase.NewRecipeScaler()
	productService := usecase.NewProductService(
		memoryCache,
		analyzer,
		recorder,
		usecase.ProductServiceConfig{
			CacheTTL:             cfg.Cache.TTL,
			MaxIngredientsLength: cfg.Analysis.MaxIngredientsLength,
			EnableDebugLogging:   cfg.Analysis.EnableDebugLogging,
		},
	)

	log.Printf("Analysis: max_ingredients_length=%d, debug=%v",
		cfg.Analysis.MaxIngredientsLength,
		cfg.Analysis.EnableDebugLogging)
	log.Printf("Rate limit: %.1f req/s per IP, burst %d", cfg.RateLimit.PerIP, cfg.RateLimit.Burst)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(productService, analyzer, scaler, recorder, cfg.Analysis.MaxIngredientsLength)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
