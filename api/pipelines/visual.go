package pipelines

import (
	"net/http"

	"github.com/adaptlearn/access-api/api/types"
	"github.com/gin-gonic/gin"
)

// VisualText converts raw text into narrated audio for blind and low-vision users
// @Summary      Process text for visual accessibility
// @Description  Optionally simplifies the text, then synthesizes it into speech and returns
// @Description  a signed URL for the generated audio.
// @Tags         pipelines
// @Accept       json
// @Produce      json
// @Param        request body types.TextRequest true "Text to narrate, with optional simplification"
// @Success      200 {object} pipelines.VisualTextResult "Narrated audio URL and processed text"
// @Failure      400 {object} types.ErrorResponse "Missing text"
// @Failure      500 {object} types.ErrorResponse "Processing failed"
// @Router       /api/v1/pipelines/visual/text [post]
func VisualText(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if deps == nil || deps.Visual == nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Visual pipeline not available"})
			return
		}

		var req types.TextRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
			return
		}

		ctx, cancel := processContext(deps, c.Request.Context())
		defer cancel()

		result, err := deps.Visual.ProcessText(ctx, req.Text, req.Simplify)
		if err != nil {
			respondError(c, "visual text", err)
			return
		}

		c.JSON(http.StatusOK, result)
	}
}

// VisualAudio re-narrates uploaded audio for blind and low-vision users
// @Summary      Process audio for visual accessibility
// @Description  Transcribes the audio, optionally simplifies the transcript, and synthesizes
// @Description  a clean narration of it.
// @Tags         pipelines
// @Accept       json
// @Produce      json
// @Param        request body types.VisualMediaRequest true "Uploaded file path with optional simplification"
// @Success      200 {object} pipelines.VisualTextResult "Narrated audio URL and processed text"
// @Failure      400 {object} types.ErrorResponse "Unknown file path"
// @Failure      500 {object} types.ErrorResponse "Processing failed"
// @Router       /api/v1/pipelines/visual/audio [post]
func VisualAudio(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if deps == nil || deps.Visual == nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Visual pipeline not available"})
			return
		}

		var req types.VisualMediaRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "file_path is required"})
			return
		}

		audioPath, err := resolveUploadPath(deps, req.FilePath)
		if err != nil {
			respondError(c, "visual audio", err)
			return
		}

		ctx, cancel := processContext(deps, c.Request.Context())
		defer cancel()

		result, err := deps.Visual.ProcessAudio(ctx, audioPath, req.Simplify)
		if err != nil {
			respondError(c, "visual audio", err)
			return
		}

		c.JSON(http.StatusOK, result)
	}
}

// VisualVideo narrates uploaded video scenes for blind and low-vision users
// @Summary      Process video for visual accessibility
// @Description  Samples frames at the given interval, describes each scene, assembles a
// @Description  timecoded narrative, and synthesizes it into audio description.
// @Tags         pipelines
// @Accept       json
// @Produce      json
// @Param        request body types.VisualMediaRequest true "Uploaded file path and frame sampling interval"
// @Success      200 {object} pipelines.VisualVideoResult "Narrative, timecoded descriptions, and audio URL"
// @Failure      400 {object} types.ErrorResponse "Unknown file path"
// @Failure      500 {object} types.ErrorResponse "Processing failed"
// @Router       /api/v1/pipelines/visual/video [post]
func VisualVideo(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if deps == nil || deps.Visual == nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Visual pipeline not available"})
			return
		}

		var req types.VisualMediaRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "file_path is required"})
			return
		}

		interval := req.IntervalSeconds
		if interval <= 0 && deps.Config != nil {
			interval = deps.Config.Processing.FrameInterval
		}

		videoPath, err := resolveUploadPath(deps, req.FilePath)
		if err != nil {
			respondError(c, "visual video", err)
			return
		}

		ctx, cancel := processContext(deps, c.Request.Context())
		defer cancel()

		result, err := deps.Visual.ProcessVideo(ctx, videoPath, interval)
		if err != nil {
			respondError(c, "visual video", err)
			return
		}

		c.JSON(http.StatusOK, result)
	}
}
