package cleanup

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeAged(t *testing.T, path string, age time.Duration) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	old := time.Now().Add(-age)
	require.NoError(t, os.Chtimes(path, old, old))
}

func TestSweepRemovesOnlyStaleFiles(t *testing.T) {
	root := t.TempDir()
	stale := filepath.Join(root, "file-1700000000000.mp4")
	fresh := filepath.Join(root, "file-1700000099999.mp3")
	writeAged(t, stale, 2*time.Hour)
	writeAged(t, fresh, time.Minute)

	j := NewJanitor(time.Hour, time.Hour, root)
	j.Sweep()

	_, err := os.Stat(stale)
	assert.True(t, os.IsNotExist(err), "stale file should be removed")
	_, err = os.Stat(fresh)
	assert.NoError(t, err, "fresh file should survive")
}

func TestSweepCollapsesEmptyScopeDirs(t *testing.T) {
	root := t.TempDir()
	scope := filepath.Join(root, "3f6d1c", "frames")
	writeAged(t, filepath.Join(scope, "frame_1.jpg"), 2*time.Hour)

	j := NewJanitor(time.Hour, time.Hour, root)
	j.Sweep()

	_, err := os.Stat(filepath.Join(root, "3f6d1c"))
	assert.True(t, os.IsNotExist(err), "emptied scope dir should be removed")
}

func TestSweepHandlesMultipleRoots(t *testing.T) {
	uploads := t.TempDir()
	temp := t.TempDir()
	writeAged(t, filepath.Join(uploads, "file-1.mp4"), 2*time.Hour)
	writeAged(t, filepath.Join(temp, "audio_extract.wav"), 2*time.Hour)

	j := NewJanitor(time.Hour, time.Hour, uploads, temp)
	j.Sweep()

	for _, p := range []string{filepath.Join(uploads, "file-1.mp4"), filepath.Join(temp, "audio_extract.wav")} {
		_, err := os.Stat(p)
		assert.True(t, os.IsNotExist(err), p)
	}
}

func TestSweepIgnoresMissingRoot(t *testing.T) {
	j := NewJanitor(time.Hour, time.Hour, filepath.Join(t.TempDir(), "does-not-exist"))
	j.Sweep()
}
