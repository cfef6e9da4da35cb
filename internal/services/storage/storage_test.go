package storage

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentTypeForKey(t *testing.T) {
	tests := []struct {
		key      string
		expected string
	}{
		{"uploads/audio/lecture_1700000000000.mp3", "audio/mpeg"},
		{"uploads/video/clip.mp4", "video/mp4"},
		{"uploads/text/notes.txt", "text/plain; charset=utf-8"},
		{"captions.srt", "text/plain; charset=utf-8"},
		{"frame.JPG", "image/jpeg"},
		{"archive.tar.gz", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, ContentTypeForKey(tt.key), tt.key)
	}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Upload(ctx, "uploads/text/a.txt", "text/plain", strings.NewReader("hello")))

	data, ok := store.Object("uploads/text/a.txt")
	require.True(t, ok)
	assert.Equal(t, []byte("hello"), data)

	url, err := store.SignedURL("uploads/text/a.txt")
	require.NoError(t, err)
	assert.Equal(t, "memory://uploads/text/a.txt", url)

	require.NoError(t, store.Delete(ctx, "uploads/text/a.txt"))
	_, ok = store.Object("uploads/text/a.txt")
	assert.False(t, ok)
}

func TestMemoryStoreSignedURLMissing(t *testing.T) {
	store := NewMemoryStore()
	_, err := store.SignedURL("missing")
	require.Error(t, err)
}
