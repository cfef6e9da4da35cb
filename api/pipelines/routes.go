package pipelines

import (
	"github.com/adaptlearn/access-api/api/types"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all pipeline processing routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	hearing := router.Group("/hearing")
	hearing.POST("/video", HearingVideo(deps))
	hearing.POST("/audio", HearingAudio(deps))
	hearing.POST("/text", HearingText(deps))

	visual := router.Group("/visual")
	visual.POST("/video", VisualVideo(deps))
	visual.POST("/audio", VisualAudio(deps))
	visual.POST("/text", VisualText(deps))

	cognitive := router.Group("/cognitive")
	cognitive.POST("/video", CognitiveVideo(deps))
	cognitive.POST("/audio", CognitiveAudio(deps))
	cognitive.POST("/text", CognitiveText(deps))
}
