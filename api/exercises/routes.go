package exercises

import (
	"github.com/adaptlearn/access-api/api/types"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers exercise generation routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.POST("", Post(deps))
}
