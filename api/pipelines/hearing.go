package pipelines

import (
	"log"
	"net/http"

	"github.com/adaptlearn/access-api/api/types"
	svc "github.com/adaptlearn/access-api/internal/services/pipelines"
	apperrors "github.com/adaptlearn/access-api/pkg/errors"
	"github.com/gin-gonic/gin"
)

// HearingVideo processes an uploaded video for deaf and hard-of-hearing users
// @Summary      Process video for hearing accessibility
// @Description  Extracts the audio track, transcribes it, and produces the requested output:
// @Description  word-timed SRT captions, a sign-language rendition, or a simplified summary.
// @Tags         pipelines
// @Accept       json
// @Produce      json
// @Param        request body types.HearingMediaRequest true "Uploaded file path and output type (captions, sign_language, summary)"
// @Success      200 {object} pipelines.HearingResult "Processed output"
// @Failure      400 {object} types.ErrorResponse "Unknown file path or output type"
// @Failure      500 {object} types.ErrorResponse "Processing failed"
// @Router       /api/v1/pipelines/hearing/video [post]
func HearingVideo(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if deps == nil || deps.Hearing == nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Hearing pipeline not available"})
			return
		}

		var req types.HearingMediaRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "file_path is required"})
			return
		}
		if req.OutputType == "" {
			req.OutputType = string(svc.VideoOutputCaptions)
		}

		videoPath, err := resolveUploadPath(deps, req.FilePath)
		if err != nil {
			respondError(c, "hearing video", err)
			return
		}

		ctx, cancel := processContext(deps, c.Request.Context())
		defer cancel()

		result, err := deps.Hearing.ProcessVideo(ctx, videoPath, svc.VideoOutputType(req.OutputType))
		if err != nil {
			respondError(c, "hearing video", err)
			return
		}

		c.JSON(http.StatusOK, result)
	}
}

// HearingAudio processes an uploaded audio file for deaf and hard-of-hearing users
// @Summary      Process audio for hearing accessibility
// @Description  Transcribes the audio and returns either a plain transcript or word-timed SRT captions.
// @Tags         pipelines
// @Accept       json
// @Produce      json
// @Param        request body types.HearingMediaRequest true "Uploaded file path and output type (transcript, captions)"
// @Success      200 {object} pipelines.HearingResult "Processed output"
// @Failure      400 {object} types.ErrorResponse "Unknown file path or output type"
// @Failure      500 {object} types.ErrorResponse "Processing failed"
// @Router       /api/v1/pipelines/hearing/audio [post]
func HearingAudio(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if deps == nil || deps.Hearing == nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Hearing pipeline not available"})
			return
		}

		var req types.HearingMediaRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "file_path is required"})
			return
		}
		if req.OutputType == "" {
			req.OutputType = string(svc.OutputTranscript)
		}

		audioPath, err := resolveUploadPath(deps, req.FilePath)
		if err != nil {
			respondError(c, "hearing audio", err)
			return
		}

		ctx, cancel := processContext(deps, c.Request.Context())
		defer cancel()

		result, err := deps.Hearing.ProcessAudio(ctx, audioPath, svc.AudioOutputType(req.OutputType))
		if err != nil {
			respondError(c, "hearing audio", err)
			return
		}

		c.JSON(http.StatusOK, result)
	}
}

// HearingText simplifies and explains raw text for deaf and hard-of-hearing users
// @Summary      Process text for hearing accessibility
// @Tags         pipelines
// @Accept       json
// @Produce      json
// @Param        request body types.TextRequest true "Text to process"
// @Success      200 {object} pipelines.HearingResult "Summarized and explained text"
// @Failure      400 {object} types.ErrorResponse "Missing text"
// @Failure      500 {object} types.ErrorResponse "Processing failed"
// @Router       /api/v1/pipelines/hearing/text [post]
func HearingText(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if deps == nil || deps.Hearing == nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Hearing pipeline not available"})
			return
		}

		var req types.TextRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
			return
		}

		ctx, cancel := processContext(deps, c.Request.Context())
		defer cancel()

		result, err := deps.Hearing.ProcessText(ctx, req.Text)
		if err != nil {
			respondError(c, "hearing text", err)
			return
		}

		c.JSON(http.StatusOK, result)
	}
}

// respondError logs the internal cause and answers with the coarse message
func respondError(c *gin.Context, label string, err error) {
	log.Printf("[ERROR] %s pipeline failed: %v", label, err)
	c.JSON(apperrors.HTTPStatus(err), gin.H{"error": apperrors.UserMessage(err)})
}
