package pipelines

import (
	"net/http"

	"github.com/adaptlearn/access-api/api/types"
	"github.com/gin-gonic/gin"
)

// CognitiveAudio processes uploaded audio for users with cognitive disabilities
// @Summary      Process audio for cognitive accessibility
// @Description  Transcribes the audio and derives a simplified transcript, key points,
// @Description  and a focus guide from it.
// @Tags         pipelines
// @Accept       json
// @Produce      json
// @Param        request body types.CognitiveMediaRequest true "Uploaded file path"
// @Success      200 {object} pipelines.CognitiveAudioResult "Simplified transcript, key points, and focus guide"
// @Failure      400 {object} types.ErrorResponse "Unknown file path"
// @Failure      500 {object} types.ErrorResponse "Processing failed"
// @Router       /api/v1/pipelines/cognitive/audio [post]
func CognitiveAudio(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if deps == nil || deps.Cognitive == nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Cognitive pipeline not available"})
			return
		}

		var req types.CognitiveMediaRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "file_path is required"})
			return
		}

		audioPath, err := resolveUploadPath(deps, req.FilePath)
		if err != nil {
			respondError(c, "cognitive audio", err)
			return
		}

		ctx, cancel := processContext(deps, c.Request.Context())
		defer cancel()

		result, err := deps.Cognitive.ProcessAudio(ctx, audioPath)
		if err != nil {
			respondError(c, "cognitive audio", err)
			return
		}

		c.JSON(http.StatusOK, result)
	}
}

// CognitiveVideo processes uploaded video for users with cognitive disabilities
// @Summary      Process video for cognitive accessibility
// @Description  Transcribes the audio track, describes sampled frames in plain language,
// @Description  and combines both into a comprehensive simplified summary.
// @Tags         pipelines
// @Accept       json
// @Produce      json
// @Param        request body types.CognitiveMediaRequest true "Uploaded file path"
// @Success      200 {object} pipelines.CognitiveVideoResult "Summary, transcription, and visual breakdown"
// @Failure      400 {object} types.ErrorResponse "Unknown file path"
// @Failure      500 {object} types.ErrorResponse "Processing failed"
// @Router       /api/v1/pipelines/cognitive/video [post]
func CognitiveVideo(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if deps == nil || deps.Cognitive == nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Cognitive pipeline not available"})
			return
		}

		var req types.CognitiveMediaRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "file_path is required"})
			return
		}

		videoPath, err := resolveUploadPath(deps, req.FilePath)
		if err != nil {
			respondError(c, "cognitive video", err)
			return
		}

		ctx, cancel := processContext(deps, c.Request.Context())
		defer cancel()

		result, err := deps.Cognitive.ProcessVideo(ctx, videoPath)
		if err != nil {
			respondError(c, "cognitive video", err)
			return
		}

		c.JSON(http.StatusOK, result)
	}
}

// CognitiveText simplifies raw text for users with cognitive disabilities
// @Summary      Process text for cognitive accessibility
// @Tags         pipelines
// @Accept       json
// @Produce      json
// @Param        request body types.TextRequest true "Text to simplify"
// @Success      200 {object} pipelines.CognitiveTextResult "Simplified text and key points"
// @Failure      400 {object} types.ErrorResponse "Missing text"
// @Failure      500 {object} types.ErrorResponse "Processing failed"
// @Router       /api/v1/pipelines/cognitive/text [post]
func CognitiveText(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if deps == nil || deps.Cognitive == nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Cognitive pipeline not available"})
			return
		}

		var req types.TextRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
			return
		}

		ctx, cancel := processContext(deps, c.Request.Context())
		defer cancel()

		result, err := deps.Cognitive.ProcessText(ctx, req.Text)
		if err != nil {
			respondError(c, "cognitive text", err)
			return
		}

		c.JSON(http.StatusOK, result)
	}
}
