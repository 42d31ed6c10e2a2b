package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/promptfi/prompt-market/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Catalog endpoints (public read access)
		v1.GET("/prompts", handler.ListPrompts)
		v1.GET("/prompts/views", handler.GetCatalogViews)

		// Reveal returns the full prompt body, so it is gated like the writes
		v1.GET("/prompts/:id/reveal", middleware.Auth(authCfg), handler.RevealPrompt)

		// Marketplace actions (require authentication)
		v1.POST("/prompts", middleware.Auth(authCfg), handler.MintPrompt)
		v1.POST("/prompts/:id/purchase", middleware.Auth(authCfg), handler.PurchasePrompt)
		v1.POST("/prompts/:id/rating", middleware.Auth(authCfg), handler.RatePrompt)
	}
}
