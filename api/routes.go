package api

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/opentracing/opentracing-go"

	"github.com/customeros/trustwatch/api/handlers"
	"github.com/customeros/trustwatch/api/middleware"
	"github.com/customeros/trustwatch/config"
	"github.com/customeros/trustwatch/internal/tracing"
	"github.com/customeros/trustwatch/services"
)

const appSource = "trustwatch"

// RegisterRoutes sets up all API endpoints
func RegisterRoutes(ctx context.Context, r *gin.Engine, cfg *config.Config, s *services.Services) {
	if s == nil {
		panic("Services cannot be nil")
	}

	// Add recovery middlewares
	r.Use(gin.Recovery())                                         // Gin's built-in recovery
	r.Use(tracing.RecoveryWithJaeger(opentracing.GlobalTracer())) // Our custom Jaeger recovery

	r.Use(middleware.CorsMiddleware(cfg.AppConfig.CorsAllowedOrigins))
	r.Use(middleware.BodyLimitMiddleware(cfg.AppConfig.MaxBodyBytes))

	// setup handlers
	apiHandlers := handlers.InitHandlers(s)

	// Health check and status endpoints (no custom context needed)
	r.GET("/health", handlers.HealthCheck)
	r.GET("/status", handlers.Status(s.StatusMonitor))

	apiKeyMiddleware := middleware.APIKeyMiddleware(middleware.APIKeyConfig{
		HeaderName:  "X-TRUSTWATCH-API-KEY",
		ValidAPIKey: cfg.AppConfig.APIKey,
	})

	// Unversioned paths predate the /v1 group and stay registered for the
	// existing frontend
	root := r.Group("")
	root.Use(apiKeyMiddleware)
	root.Use(middleware.CustomContextMiddleware(appSource))
	root.Use(middleware.TracingMiddleware())
	{
		root.POST("/verifyWebsite", apiHandlers.Verify.VerifyWebsite())
		root.POST("/verifyEmail", apiHandlers.Verify.VerifyEmail())
		root.POST("/onboarding", apiHandlers.Onboarding.Onboard())
	}

	// API group with version and custom context
	api := r.Group("/v1")
	api.Use(apiKeyMiddleware)
	api.Use(middleware.CustomContextMiddleware(appSource))
	api.Use(middleware.TracingMiddleware())
	{
		api.POST("/verifyWebsite", apiHandlers.Verify.VerifyWebsite())
		api.POST("/verifyEmail", apiHandlers.Verify.VerifyEmail())
		api.POST("/onboarding", apiHandlers.Onboarding.Onboard())
	}
}
