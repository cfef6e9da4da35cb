// Package storage persists processed files in a cloud bucket.
package storage

import (
	"context"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	gcs "cloud.google.com/go/storage"
	"google.golang.org/api/option"

	apperrors "github.com/adaptlearn/access-api/pkg/errors"
)

// GCSStore implements ObjectStore on a single Cloud Storage bucket
type GCSStore struct {
	client    *gcs.Client
	bucket    string
	signedTTL time.Duration
}

// NewGCSStore creates a store for the given bucket. signedTTL controls how
// long download links stay valid.
func NewGCSStore(ctx context.Context, bucket string, signedTTL time.Duration, opts ...option.ClientOption) (*GCSStore, error) {
	client, err := gcs.NewClient(ctx, opts...)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeUploadPersistence, "failed to create storage client", 500)
	}
	if signedTTL == 0 {
		signedTTL = 7 * 24 * time.Hour
	}
	return &GCSStore{client: client, bucket: bucket, signedTTL: signedTTL}, nil
}

// Close releases the underlying client
func (s *GCSStore) Close() error {
	return s.client.Close()
}

// Upload writes the object at key with the given content type
func (s *GCSStore) Upload(ctx context.Context, key string, contentType string, r io.Reader) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	w := s.client.Bucket(s.bucket).Object(key).NewWriter(ctx)
	if contentType != "" {
		w.ContentType = contentType
	}
	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()
		log.Printf("[ERROR] Failed to write object %s: %v", key, err)
		return apperrors.PersistenceError(err)
	}
	if err := w.Close(); err != nil {
		log.Printf("[ERROR] Failed to finalize object %s: %v", key, err)
		return apperrors.PersistenceError(err)
	}
	return nil
}

// SignedURL returns a time-limited GET link for key
func (s *GCSStore) SignedURL(key string) (string, error) {
	url, err := s.client.Bucket(s.bucket).SignedURL(key, &gcs.SignedURLOptions{
		Scheme:  gcs.SigningSchemeV4,
		Method:  http.MethodGet,
		Expires: time.Now().Add(s.signedTTL),
	})
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.ErrCodeUploadPersistence, "failed to sign download URL", 500)
	}
	return url, nil
}

// Delete removes the object at key
func (s *GCSStore) Delete(ctx context.Context, key string) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := s.client.Bucket(s.bucket).Object(key).Delete(ctx); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeUploadPersistence, "failed to delete object", 500)
	}
	return nil
}

// ContentTypeForKey guesses a content type from the object key's extension
func ContentTypeForKey(key string) string {
	k := strings.ToLower(strings.TrimSpace(key))
	switch {
	case strings.HasSuffix(k, ".mp3"):
		return "audio/mpeg"
	case strings.HasSuffix(k, ".wav"):
		return "audio/wav"
	case strings.HasSuffix(k, ".mp4"), strings.HasSuffix(k, ".m4v"):
		return "video/mp4"
	case strings.HasSuffix(k, ".webm"):
		return "video/webm"
	case strings.HasSuffix(k, ".mov"):
		return "video/quicktime"
	case strings.HasSuffix(k, ".jpg"), strings.HasSuffix(k, ".jpeg"):
		return "image/jpeg"
	case strings.HasSuffix(k, ".png"):
		return "image/png"
	case strings.HasSuffix(k, ".pdf"):
		return "application/pdf"
	case strings.HasSuffix(k, ".srt"):
		return "text/plain; charset=utf-8"
	case strings.HasSuffix(k, ".txt"):
		return "text/plain; charset=utf-8"
	case strings.HasSuffix(k, ".json"):
		return "application/json"
	default:
		return ""
	}
}
