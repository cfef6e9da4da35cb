package tempfile

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Scope is a per-invocation temporary directory. Every path allocated through
// a scope lives under one unique directory, so concurrent requests never
// collide and a single Close removes everything the invocation produced,
// on success and failure alike.
type Scope struct {
	dir    string
	closed bool
}

// NewScope creates a fresh scope under baseDir. The directory name carries a
// UUID so concurrent scopes in the same base directory cannot collide.
func NewScope(baseDir string) (*Scope, error) {
	if baseDir == "" {
		baseDir = os.TempDir()
	}
	dir := filepath.Join(baseDir, "scope_"+uuid.NewString())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create temp scope: %w", err)
	}
	return &Scope{dir: dir}, nil
}

// Dir returns the scope's directory.
func (s *Scope) Dir() string {
	return s.dir
}

// Path allocates a path inside the scope for the given file name. The file is
// not created; callers hand the path to whatever writes it.
func (s *Scope) Path(name string) string {
	return filepath.Join(s.dir, name)
}

// Subdir creates and returns a named directory inside the scope.
func (s *Scope) Subdir(name string) (string, error) {
	dir := filepath.Join(s.dir, name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create scope subdir: %w", err)
	}
	return dir, nil
}

// CreateFile creates an empty file inside the scope and returns its path.
func (s *Scope) CreateFile(name string) (string, error) {
	path := s.Path(name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return path, nil
}

// Close removes the scope directory and everything inside it. Safe to call
// more than once; intended for defer so cleanup runs on every exit path.
func (s *Scope) Close() error {
	if s == nil || s.closed {
		return nil
	}
	s.closed = true
	if err := os.RemoveAll(s.dir); err != nil {
		log.Printf("Failed to cleanup temp scope %s: %v", s.dir, err)
		return err
	}
	return nil
}
