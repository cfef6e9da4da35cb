// Package intake validates uploaded files and persists them to object
// storage under a category-based key layout.
package intake

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adaptlearn/access-api/internal/models"
	"github.com/adaptlearn/access-api/internal/services/storage"
	apperrors "github.com/adaptlearn/access-api/pkg/errors"
)

// MaxFileSize is the upload size ceiling
const MaxFileSize = 100 * 1024 * 1024

// allowedMimeTypes lists every upload content type the pipelines accept
var allowedMimeTypes = map[string]bool{
	"text/plain":         true,
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document":   true,
	"application/vnd.ms-powerpoint":                                             true,
	"application/vnd.openxmlformats-officedocument.presentationml.presentation": true,
	"audio/mpeg":       true,
	"audio/wav":        true,
	"audio/ogg":        true,
	"audio/mp4":        true,
	"video/mp4":        true,
	"video/quicktime":  true,
	"video/x-msvideo":  true,
	"video/x-matroska": true,
}

// AllowedMimeType reports whether mimeType is accepted for upload
func AllowedMimeType(mimeType string) bool {
	return allowedMimeTypes[strings.ToLower(strings.TrimSpace(mimeType))]
}

// GenerateUniqueFileName keeps the base name and extension and inserts a
// millisecond timestamp: "lecture.mp4" becomes "lecture_1700000000000.mp4".
func GenerateUniqueFileName(originalName string) string {
	ext := filepath.Ext(originalName)
	base := strings.TrimSuffix(filepath.Base(originalName), ext)
	return fmt.Sprintf("%s_%d%s", base, time.Now().UnixMilli(), ext)
}

// StoredFile describes an upload after persistence
type StoredFile struct {
	OriginalName string              `json:"originalName"`
	Category     models.FileCategory `json:"category"`
	Size         int64               `json:"size"`
	MimeType     string              `json:"mimeType"`
	StorageKey   string              `json:"-"`
	URL          string              `json:"url"`
}

// Service validates and persists uploads
type Service struct {
	store storage.ObjectStore
}

// NewService creates an intake service backed by the given store
func NewService(store storage.ObjectStore) *Service {
	return &Service{store: store}
}

// Validate rejects uploads that are too large or of a type no pipeline can
// process. It does not touch storage.
func (s *Service) Validate(size int64, mimeType string) error {
	if size > MaxFileSize {
		return apperrors.IntakeValidationError(fmt.Sprintf("file exceeds the %d byte limit", int64(MaxFileSize)))
	}
	if !AllowedMimeType(mimeType) {
		return apperrors.IntakeValidationError(fmt.Sprintf("unsupported file type: %s", mimeType))
	}
	return nil
}

// Accept stats the local copy at localPath, validates it, and builds the
// asset record that persistence works from. It does not touch storage.
func (s *Service) Accept(localPath, originalName, mimeType string) (*models.UploadedAsset, error) {
	info, err := os.Stat(localPath)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeUploadPersistence, "uploaded file missing from disk", 500)
	}
	if err := s.Validate(info.Size(), mimeType); err != nil {
		return nil, err
	}
	return &models.UploadedAsset{
		OriginalName: originalName,
		StoredPath:   localPath,
		MimeType:     mimeType,
		SizeBytes:    info.Size(),
		Category:     models.DetectFileCategory(originalName),
	}, nil
}

// Store validates the local file at localPath and moves it into object
// storage under uploads/<category>/<uniqueName>. The local file is removed
// whether or not persistence succeeds.
func (s *Service) Store(ctx context.Context, localPath, originalName, mimeType string) (*StoredFile, error) {
	defer func() {
		if err := os.Remove(localPath); err != nil && !os.IsNotExist(err) {
			log.Printf("[ERROR] Failed to remove temp upload %s: %v", localPath, err)
		}
	}()

	asset, err := s.Accept(localPath, originalName, mimeType)
	if err != nil {
		return nil, err
	}

	uniqueName := GenerateUniqueFileName(asset.OriginalName)
	key := fmt.Sprintf("uploads/%s/%s", strings.ToLower(string(asset.Category)), uniqueName)

	f, err := os.Open(asset.StoredPath)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeUploadPersistence, "failed to open uploaded file", 500)
	}
	defer f.Close()

	contentType := asset.MimeType
	if contentType == "" {
		contentType = storage.ContentTypeForKey(key)
	}
	if err := s.upload(ctx, key, contentType, f); err != nil {
		return nil, err
	}

	url, err := s.store.SignedURL(key)
	if err != nil {
		return nil, err
	}

	return &StoredFile{
		OriginalName: asset.OriginalName,
		Category:     asset.Category,
		Size:         asset.SizeBytes,
		MimeType:     asset.MimeType,
		StorageKey:   key,
		URL:          url,
	}, nil
}

func (s *Service) upload(ctx context.Context, key, contentType string, r io.Reader) error {
	if err := s.store.Upload(ctx, key, contentType, r); err != nil {
		log.Printf("[ERROR] Upload persistence failed for %s: %v", key, err)
		return err
	}
	return nil
}
