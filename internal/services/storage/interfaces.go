package storage

import (
	"context"
	"io"
)

// ObjectStore persists processed files and hands out time-limited links
type ObjectStore interface {
	// Upload writes the object at key and returns nothing on success
	Upload(ctx context.Context, key string, contentType string, r io.Reader) error
	// SignedURL returns a time-limited download link for key
	SignedURL(key string) (string, error)
	// Delete removes the object at key
	Delete(ctx context.Context, key string) error
	// Close releases the underlying client
	Close() error
}
