package signlang

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/adaptlearn/access-api/pkg/errors"
)

func TestRenderSuccess(t *testing.T) {
	var received renderRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		json.NewEncoder(w).Encode(renderResponse{VideoURL: "https://videos.example/sign/42.mp4"})
	}))
	defer server.Close()

	client := NewClient(Config{Endpoint: server.URL, APIKey: "secret"})

	url, err := client.Render(context.Background(), "Welcome to class")
	require.NoError(t, err)
	assert.Equal(t, "https://videos.example/sign/42.mp4", url)

	assert.Equal(t, "Welcome to class", received.Text)
	assert.Equal(t, "secret", received.APIKey)
	assert.Equal(t, "video", received.Format)
	assert.Equal(t, "high", received.Quality)
}

func TestRenderNon2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(Config{Endpoint: server.URL, APIKey: "secret"})

	_, err := client.Render(context.Background(), "hello")
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeRenderingFailed))
}

func TestRenderEmptyText(t *testing.T) {
	client := NewClient(Config{Endpoint: "http://localhost:0", APIKey: "secret"})

	_, err := client.Render(context.Background(), "")
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeRenderingFailed))
}

func TestRenderMissingVideoURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(Config{Endpoint: server.URL, APIKey: "secret"})

	_, err := client.Render(context.Background(), "hello")
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeRenderingFailed))
}

func TestRenderContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	client := NewClient(Config{Endpoint: server.URL, APIKey: "secret"})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := client.Render(ctx, "hello")
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeRenderingFailed))
}
