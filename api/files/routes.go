package files

import (
	"github.com/adaptlearn/access-api/api/types"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the full intake routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.POST("/upload", PostUpload(deps))
}
