package http

import (
	"github.com/gin-gonic/gin"
	"github.com/nutrigate/backend/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// Service metadata
	router.GET("/.well-known/agent.json", handler.Registration(cfg))
	router.GET("/icon.png", handler.Icon(cfg))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.GET("/overview", PriceMiddleware("overview"), handler.Overview)
		v1.GET("/product/:barcode", PriceMiddleware("barcode"), handler.ProductByBarcode)
		v1.GET("/search", PriceMiddleware("search"), handler.Search)
		v1.GET("/category/:category", PriceMiddleware("category"), handler.Category)
		v1.GET("/brand/:brand", PriceMiddleware("brand"), handler.Brand)
		v1.GET("/nutrition/:barcode", PriceMiddleware("nutrition"), handler.Nutrition)
	}

	return router
}
