package upload

import (
	"github.com/adaptlearn/access-api/api/types"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the plain local upload route
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, limiter gin.HandlerFunc) {
	engine.POST("/upload", limiter, Post(deps))
}
