package files

import (
	"context"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/adaptlearn/access-api/api/types"
	apperrors "github.com/adaptlearn/access-api/pkg/errors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const storeTimeout = 2 * time.Minute

// PostUpload handles validated uploads into object storage
// @Summary      Upload a file into object storage
// @Description  Validates the upload against the MIME allow-list and size cap, categorizes it,
// @Description  and persists it to the storage bucket. Returns a signed URL for the stored object.
// @Tags         files
// @Accept       multipart/form-data
// @Produce      json
// @Param        file formData file true "File to upload"
// @Success      200 {object} types.StoredFileResponse "File persisted to storage"
// @Failure      400 {object} types.ErrorResponse "Missing file, disallowed type, or oversized upload"
// @Failure      500 {object} types.ErrorResponse "Persistence failure"
// @Router       /api/files/upload [post]
func PostUpload(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if deps == nil || deps.Intake == nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "File intake not available"})
			return
		}

		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
			return
		}

		mimeType := file.Header.Get("Content-Type")
		if err := deps.Intake.Validate(file.Size, mimeType); err != nil {
			c.JSON(apperrors.HTTPStatus(err), gin.H{"error": apperrors.UserMessage(err)})
			return
		}

		tempDir := os.TempDir()
		if deps.Config != nil && deps.Config.Uploads.TempDir != "" {
			tempDir = deps.Config.Uploads.TempDir
		}
		if err := os.MkdirAll(tempDir, 0o755); err != nil {
			log.Printf("[ERROR] Failed to create temp directory %s: %v", tempDir, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "File upload failed"})
			return
		}

		tempPath := filepath.Join(tempDir, uuid.New().String()+filepath.Ext(file.Filename))
		if err := c.SaveUploadedFile(file, tempPath); err != nil {
			log.Printf("[ERROR] Failed to stage upload at %s: %v", tempPath, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "File upload failed"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
		defer cancel()

		stored, err := deps.Intake.Store(ctx, tempPath, file.Filename, mimeType)
		if err != nil {
			log.Printf("[ERROR] Failed to persist upload %s: %v", file.Filename, err)
			c.JSON(apperrors.HTTPStatus(err), gin.H{"error": apperrors.UserMessage(err)})
			return
		}

		c.JSON(http.StatusOK, types.StoredFileResponse{
			Message:  "File uploaded successfully",
			FileInfo: *stored,
		})
	}
}
