package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/celiogix/backend/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	limiter := NewIPRateLimiter(cfg.RateLimit.PerIP, cfg.RateLimit.Burst)

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(RequestIDMiddleware())
	router.Use(MetricsMiddleware(handler.recorder))
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	// Operational endpoints are not rate limited
	router.GET("/health", handler.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := router.Group("/api/v1")
	v1.Use(RateLimitMiddleware(limiter, handler.recorder))
	{
		gluten := v1.Group("/gluten")
		{
			gluten.POST("/analyze", handler.AnalyzeProduct)
			gluten.POST("/ingredients", handler.AnalyzeIngredients)
			gluten.GET("/alternatives", handler.GetAlternatives)
		}

		v1.GET("/barcodes/:code", handler.ValidateBarcode)

		recipes := v1.Group("/recipes")
		{
			recipes.POST("/scale", handler.ScaleRecipe)
			recipes.GET("/scales", handler.GetCommonScales)
		}

		units := v1.Group("/units")
		{
			units.POST("/convert", handler.ConvertUnits)
			units.GET("/suggestions", handler.GetConversionSuggestions)
		}
	}

	return router
}
