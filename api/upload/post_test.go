package upload

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adaptlearn/access-api/api/types"
	"github.com/adaptlearn/access-api/pkg/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(localDir string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	deps := &types.Dependencies{
		Config: &config.Config{
			Uploads: config.UploadsConfig{LocalDir: localDir},
		},
	}
	noop := func(c *gin.Context) { c.Next() }
	RegisterRoutes(router, deps, noop)
	return router
}

func multipartBody(t *testing.T, field, filename, content string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}

func TestPostStoresFile(t *testing.T) {
	localDir := t.TempDir()
	router := newTestRouter(localDir)

	body, contentType := multipartBody(t, "file", "lecture.mp4", "video bytes")
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp types.UploadResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "File uploaded successfully", resp.Message)
	assert.True(t, strings.HasPrefix(resp.FilePath, "/uploads/file-"))
	assert.True(t, strings.HasSuffix(resp.FilePath, ".mp4"))

	stored := filepath.Join(localDir, filepath.Base(resp.FilePath))
	data, err := os.ReadFile(stored)
	require.NoError(t, err)
	assert.Equal(t, "video bytes", string(data))
}

func TestPostRejectsMissingFile(t *testing.T) {
	router := newTestRouter(t.TempDir())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/upload", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "No file uploaded", resp["message"])
}

func TestPostRejectsWrongFieldName(t *testing.T) {
	router := newTestRouter(t.TempDir())

	body, contentType := multipartBody(t, "attachment", "notes.txt", "text")
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
