package health

import (
	"net/http"
	"time"

	"github.com/adaptlearn/access-api/api/types"
	"github.com/gin-gonic/gin"
)

// Get handles health check requests
// @Summary      Service health check
// @Description  Reports whether the service is up and which processing pipelines are wired.
// @Tags         health
// @Produce      json
// @Success      200 {object} map[string]interface{} "Service status and pipeline wiring"
// @Router       /health [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		response := gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		}

		if deps != nil {
			response["pipelines"] = getPipelineStatus(deps)
		} else {
			response["pipelines"] = gin.H{"status": "not configured"}
		}

		c.JSON(http.StatusOK, response)
	}
}

// getPipelineStatus reports which processing pipelines are wired
func getPipelineStatus(deps *types.Dependencies) gin.H {
	return gin.H{
		"hearing":   wired(deps.Hearing != nil),
		"visual":    wired(deps.Visual != nil),
		"cognitive": wired(deps.Cognitive != nil),
		"exercises": wired(deps.Exercises != nil),
		"intake":    wired(deps.Intake != nil),
	}
}

func wired(ok bool) string {
	if ok {
		return "ready"
	}
	return "not configured"
}
