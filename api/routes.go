package api

import (
	"sync"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/adaptlearn/access-api/api/auth"
	exercisesAPI "github.com/adaptlearn/access-api/api/exercises"
	"github.com/adaptlearn/access-api/api/files"
	"github.com/adaptlearn/access-api/api/health"
	pipelinesAPI "github.com/adaptlearn/access-api/api/pipelines"
	"github.com/adaptlearn/access-api/api/types"
	"github.com/adaptlearn/access-api/api/upload"
	"github.com/adaptlearn/access-api/api/version"
	_ "github.com/adaptlearn/access-api/docs/swagger"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) error {
	if deps == nil {
		deps = &types.Dependencies{}
	}

	// Register public routes (no rate limiting)
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine)

	// Register Swagger documentation route
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(301, "/docs/index.html")
	})
	docsGroup := engine.Group("/docs")
	docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Setup 404 handler
	engine.NoRoute(NotFoundHandler())

	// Plain local upload with a strict rate limit (2 req/s, burst of 5)
	uploadLimiter := PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 2, 5)
	upload.RegisterRoutes(engine, deps, uploadLimiter)

	// Full intake endpoint shares the upload limiter
	filesGroup := engine.Group("/api/files")
	filesGroup.Use(uploadLimiter)
	files.RegisterRoutes(filesGroup, deps)

	// Auth endpoints are reserved but not implemented
	authGroup := engine.Group("/api/auth")
	auth.RegisterRoutes(authGroup)

	// API v1 routes
	v1 := engine.Group("/api/v1")

	// Pipeline routes with general rate limiting (5 req/s, burst of 10).
	// Processing is expensive, so the limit is deliberately low.
	pipelineGroup := v1.Group("/pipelines")
	pipelineGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 5, 10))
	pipelinesAPI.RegisterRoutes(pipelineGroup, deps)

	// Exercise generation with the same rate limiting
	exerciseGroup := v1.Group("/exercises")
	exerciseGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 5, 10))
	exercisesAPI.RegisterRoutes(exerciseGroup, deps)

	return nil
}

// NotFoundHandler handles 404 errors
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(404, gin.H{
			"status":  "error",
			"message": "The requested endpoint was not found",
			"path":    c.Request.URL.Path,
		})
	}
}
