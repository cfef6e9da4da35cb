package storage

import (
	"context"
	"fmt"
	"io"
	"sync"

	apperrors "github.com/adaptlearn/access-api/pkg/errors"
)

// MemoryStore is an in-process ObjectStore for tests and local development
type MemoryStore struct {
	mu      sync.RWMutex
	objects map[string][]byte
	types   map[string]string
	baseURL string
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		objects: make(map[string][]byte),
		types:   make(map[string]string),
		baseURL: "memory://",
	}
}

func (s *MemoryStore) Upload(ctx context.Context, key string, contentType string, r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return apperrors.PersistenceError(err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = data
	s.types[key] = contentType
	return nil
}

func (s *MemoryStore) SignedURL(key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.objects[key]; !ok {
		return "", apperrors.New(apperrors.ErrCodeUploadPersistence, fmt.Sprintf("object not found: %s", key), 404)
	}
	return s.baseURL + key, nil
}

func (s *MemoryStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, key)
	delete(s.types, key)
	return nil
}

func (s *MemoryStore) Close() error { return nil }

// Object returns stored bytes and whether the key exists. Test helper.
func (s *MemoryStore) Object(key string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.objects[key]
	return data, ok
}

// Len returns the number of stored objects. Test helper.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.objects)
}
