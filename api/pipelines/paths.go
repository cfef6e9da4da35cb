package pipelines

import (
	"context"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/adaptlearn/access-api/api/types"
	apperrors "github.com/adaptlearn/access-api/pkg/errors"
)

const (
	defaultLocalDir       = "./uploads"
	defaultProcessTimeout = 5 * time.Minute
)

// resolveUploadPath maps a client-supplied file_path onto the local upload
// directory. Paths are normalized so a request can never escape it.
func resolveUploadPath(deps *types.Dependencies, requestPath string) (string, error) {
	localDir := defaultLocalDir
	if deps != nil && deps.Config != nil && deps.Config.Uploads.LocalDir != "" {
		localDir = deps.Config.Uploads.LocalDir
	}

	cleaned := strings.TrimPrefix(path.Clean("/"+filepath.ToSlash(requestPath)), "/")
	cleaned = strings.TrimPrefix(cleaned, "uploads/")
	if cleaned == "" || cleaned == "." {
		return "", apperrors.IntakeValidationError("file_path is required")
	}

	resolved := filepath.Join(localDir, filepath.FromSlash(cleaned))
	if _, err := os.Stat(resolved); err != nil {
		return "", apperrors.IntakeValidationError("uploaded file not found: " + requestPath)
	}

	return resolved, nil
}

// processContext derives a context bounded by the media processing timeout
func processContext(deps *types.Dependencies, parent context.Context) (context.Context, context.CancelFunc) {
	timeout := defaultProcessTimeout
	if deps != nil && deps.Config != nil && deps.Config.Processing.FFmpegTimeout > 0 {
		timeout = deps.Config.Processing.FFmpegTimeout
	}
	return context.WithTimeout(parent, timeout)
}
