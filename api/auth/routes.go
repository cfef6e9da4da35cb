package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the reserved auth endpoints. Authentication is
// handled by a separate identity service, so every route answers 501.
func RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/register", NotImplemented())
	router.POST("/login", NotImplemented())
	router.POST("/logout", NotImplemented())
	router.GET("/me", NotImplemented())
}

// NotImplemented answers 501 for reserved endpoints
func NotImplemented() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotImplemented, gin.H{
			"status":  "error",
			"message": "Authentication is not handled by this service",
		})
	}
}
