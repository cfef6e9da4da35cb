package exercises

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/adaptlearn/access-api/api/types"
	"github.com/adaptlearn/access-api/internal/models"
	apperrors "github.com/adaptlearn/access-api/pkg/errors"
	"github.com/gin-gonic/gin"
)

const generateTimeout = 5 * time.Minute

// Post generates an interactive exercise with audio and visual aids
// @Summary      Generate an interactive exercise
// @Description  Builds an exercise of the requested kind (fill-in-blank, matching-cards,
// @Description  drag-drop, multiple-choice) for the given topic, with synthesized audio
// @Description  and generated visual aids for every element.
// @Tags         exercises
// @Accept       json
// @Produce      json
// @Param        request body types.ExerciseRequest true "Topic, difficulty, and exercise kind"
// @Success      200 {object} models.Exercise "Fully materialized exercise"
// @Failure      400 {object} types.ErrorResponse "Missing topic or unsupported kind"
// @Failure      500 {object} types.ErrorResponse "Generation failed"
// @Router       /api/v1/exercises [post]
func Post(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if deps == nil || deps.Exercises == nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Exercise generation not available"})
			return
		}

		var req types.ExerciseRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "topic and kind are required"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), generateTimeout)
		defer cancel()

		exercise, err := deps.Exercises.Generate(ctx, req.Topic, req.Difficulty, models.ExerciseKind(req.Kind))
		if err != nil {
			log.Printf("[ERROR] Exercise generation failed for topic %q: %v", req.Topic, err)
			c.JSON(apperrors.HTTPStatus(err), gin.H{"error": apperrors.UserMessage(err)})
			return
		}

		c.JSON(http.StatusOK, exercise)
	}
}
