package cleanup

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"time"
)

// Janitor removes stale local uploads and processing scratch space. Uploaded
// files only need to live long enough for a pipeline call to pick them up.
type Janitor struct {
	roots    []string
	maxAge   time.Duration
	interval time.Duration
	cancel   context.CancelFunc
}

// NewJanitor creates a janitor sweeping the given directories
func NewJanitor(maxAge, interval time.Duration, roots ...string) *Janitor {
	return &Janitor{
		roots:    roots,
		maxAge:   maxAge,
		interval: interval,
	}
}

// Start begins periodic sweeping
func (j *Janitor) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	j.cancel = cancel

	// Run initial sweep
	j.Sweep()

	go func() {
		ticker := time.NewTicker(j.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				j.Sweep()
			case <-ctx.Done():
				log.Println("[INFO] Upload janitor stopped")
				return
			}
		}
	}()

	log.Printf("[INFO] Upload janitor started (interval: %v, max age: %v)", j.interval, j.maxAge)
}

// Stop stops the janitor
func (j *Janitor) Stop() {
	if j.cancel != nil {
		j.cancel()
	}
}

// Sweep removes files older than maxAge from every root, then drops
// directories the sweep emptied
func (j *Janitor) Sweep() {
	for _, root := range j.roots {
		j.sweepRoot(root)
	}
}

func (j *Janitor) sweepRoot(root string) {
	if _, err := os.Stat(root); os.IsNotExist(err) {
		return
	}

	var subdirs []string

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // Skip files with errors
		}

		if info.IsDir() {
			if path != root {
				subdirs = append(subdirs, path)
			}
			return nil
		}

		if time.Since(info.ModTime()) > j.maxAge {
			log.Printf("[DEBUG] Removing stale upload: %s", path)
			if err := os.Remove(path); err != nil {
				log.Printf("[WARN] Failed to remove stale upload %s: %v", path, err)
			}
		}

		return nil
	})
	if err != nil {
		log.Printf("[ERROR] Janitor walk error for %s: %v", root, err)
		return
	}

	// Deepest directories first so nested empty scopes collapse in one pass
	for i := len(subdirs) - 1; i >= 0; i-- {
		entries, err := os.ReadDir(subdirs[i])
		if err != nil || len(entries) > 0 {
			continue
		}
		if err := os.Remove(subdirs[i]); err != nil {
			log.Printf("[DEBUG] Failed to remove empty scope dir %s: %v", subdirs[i], err)
		}
	}
}
