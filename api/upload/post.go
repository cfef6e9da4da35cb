package upload

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/adaptlearn/access-api/api/types"
	"github.com/gin-gonic/gin"
)

const defaultLocalDir = "./uploads"

// Post handles plain uploads onto local disk. The stored path is what the
// pipeline endpoints accept as file_path.
// @Summary      Upload a file to local storage
// @Description  Stores the uploaded file on local disk and returns its path. Pipeline endpoints
// @Description  accept the returned filePath as their file_path input.
// @Tags         upload
// @Accept       multipart/form-data
// @Produce      json
// @Param        file formData file true "File to upload"
// @Success      200 {object} types.UploadResponse "File stored on local disk"
// @Failure      400 {object} map[string]string "No file uploaded"
// @Failure      500 {object} map[string]string "Failed to store the file"
// @Router       /upload [post]
func Post(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "No file uploaded"})
			return
		}

		localDir := defaultLocalDir
		if deps != nil && deps.Config != nil && deps.Config.Uploads.LocalDir != "" {
			localDir = deps.Config.Uploads.LocalDir
		}

		if err := os.MkdirAll(localDir, 0o755); err != nil {
			log.Printf("[ERROR] Failed to create upload directory %s: %v", localDir, err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "File upload failed"})
			return
		}

		name := fmt.Sprintf("file-%d%s", time.Now().UnixMilli(), filepath.Ext(file.Filename))
		dest := filepath.Join(localDir, name)

		if err := c.SaveUploadedFile(file, dest); err != nil {
			log.Printf("[ERROR] Failed to save uploaded file to %s: %v", dest, err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "File upload failed"})
			return
		}

		c.JSON(http.StatusOK, types.UploadResponse{
			Message:  "File uploaded successfully",
			FilePath: "/uploads/" + name,
		})
	}
}
