package pipelines

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/adaptlearn/access-api/api/types"
	svc "github.com/adaptlearn/access-api/internal/services/pipelines"
	"github.com/adaptlearn/access-api/pkg/config"
	apperrors "github.com/adaptlearn/access-api/pkg/errors"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHearing struct {
	err error

	lastAudioOutput svc.AudioOutputType
	lastVideoOutput svc.VideoOutputType
	lastPath        string
	lastText        string
}

func (f *fakeHearing) ProcessAudio(ctx context.Context, audioPath string, outputType svc.AudioOutputType) (*svc.HearingResult, error) {
	f.lastPath = audioPath
	f.lastAudioOutput = outputType
	if f.err != nil {
		return nil, f.err
	}
	return &svc.HearingResult{Type: string(outputType), Content: "hello world"}, nil
}

func (f *fakeHearing) ProcessVideo(ctx context.Context, videoPath string, outputType svc.VideoOutputType) (*svc.HearingResult, error) {
	f.lastPath = videoPath
	f.lastVideoOutput = outputType
	if f.err != nil {
		return nil, f.err
	}
	return &svc.HearingResult{Type: string(outputType), SRTContent: "1\n00:00:00,000 --> 00:00:00,500\nhello\n"}, nil
}

func (f *fakeHearing) ProcessText(ctx context.Context, text string) (*svc.HearingResult, error) {
	f.lastText = text
	if f.err != nil {
		return nil, f.err
	}
	return &svc.HearingResult{Type: "summary_and_explanation", Content: "summarized"}, nil
}

type fakeVisual struct {
	err error

	lastSimplify bool
	lastInterval int
}

func (f *fakeVisual) ProcessText(ctx context.Context, text string, simplify bool) (*svc.VisualTextResult, error) {
	f.lastSimplify = simplify
	if f.err != nil {
		return nil, f.err
	}
	return &svc.VisualTextResult{ProcessedText: text, AudioURL: "https://signed/audio.mp3", Simplified: simplify}, nil
}

func (f *fakeVisual) ProcessAudio(ctx context.Context, audioPath string, simplify bool) (*svc.VisualTextResult, error) {
	f.lastSimplify = simplify
	if f.err != nil {
		return nil, f.err
	}
	return &svc.VisualTextResult{ProcessedText: "transcribed", AudioURL: "https://signed/audio.mp3"}, nil
}

func (f *fakeVisual) ProcessVideo(ctx context.Context, videoPath string, intervalSeconds int) (*svc.VisualVideoResult, error) {
	f.lastInterval = intervalSeconds
	if f.err != nil {
		return nil, f.err
	}
	return &svc.VisualVideoResult{Narrative: "At 0:00: a title card", AudioURL: "https://signed/audio.mp3"}, nil
}

type fakeCognitive struct {
	err error
}

func (f *fakeCognitive) ProcessAudio(ctx context.Context, audioPath string) (*svc.CognitiveAudioResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &svc.CognitiveAudioResult{SimplifiedTranscript: "simple", KeyPoints: "points", FocusGuide: "guide"}, nil
}

func (f *fakeCognitive) ProcessVideo(ctx context.Context, videoPath string) (*svc.CognitiveVideoResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &svc.CognitiveVideoResult{Summary: "summary"}, nil
}

func (f *fakeCognitive) ProcessText(ctx context.Context, text string) (*svc.CognitiveTextResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &svc.CognitiveTextResult{Simplified: "simple", KeyPoints: "points"}, nil
}

type testEnv struct {
	router    *gin.Engine
	localDir  string
	hearing   *fakeHearing
	visual    *fakeVisual
	cognitive *fakeCognitive
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	env := &testEnv{
		localDir:  t.TempDir(),
		hearing:   &fakeHearing{},
		visual:    &fakeVisual{},
		cognitive: &fakeCognitive{},
	}

	deps := &types.Dependencies{
		Config: &config.Config{
			Uploads:    config.UploadsConfig{LocalDir: env.localDir},
			Processing: config.ProcessingConfig{FrameInterval: 5},
		},
		Hearing:   env.hearing,
		Visual:    env.visual,
		Cognitive: env.cognitive,
	}

	env.router = gin.New()
	RegisterRoutes(env.router.Group("/api/v1/pipelines"), deps)
	return env
}

// seedUpload places a file in the local upload dir and returns its request path
func (e *testEnv) seedUpload(t *testing.T, name string) string {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(e.localDir, name), []byte("media"), 0o644))
	return "/uploads/" + name
}

func (e *testEnv) post(t *testing.T, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	e.router.ServeHTTP(w, req)
	return w
}

func TestHearingVideoDefaultsToCaptions(t *testing.T) {
	env := newTestEnv(t)
	filePath := env.seedUpload(t, "lecture.mp4")

	w := env.post(t, "/api/v1/pipelines/hearing/video", gin.H{"file_path": filePath})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, svc.VideoOutputCaptions, env.hearing.lastVideoOutput)
	assert.Equal(t, filepath.Join(env.localDir, "lecture.mp4"), env.hearing.lastPath)

	var result svc.HearingResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Contains(t, result.SRTContent, "-->")
}

func TestHearingVideoUnknownFile(t *testing.T) {
	env := newTestEnv(t)

	w := env.post(t, "/api/v1/pipelines/hearing/video", gin.H{"file_path": "/uploads/missing.mp4"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHearingVideoRejectsPathTraversal(t *testing.T) {
	env := newTestEnv(t)

	w := env.post(t, "/api/v1/pipelines/hearing/video", gin.H{"file_path": "../../etc/passwd"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHearingAudioRequestedOutput(t *testing.T) {
	env := newTestEnv(t)
	filePath := env.seedUpload(t, "lecture.mp3")

	w := env.post(t, "/api/v1/pipelines/hearing/audio", gin.H{"file_path": filePath, "output_type": "captions"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, svc.OutputCaptions, env.hearing.lastAudioOutput)
}

func TestHearingTextRequiresText(t *testing.T) {
	env := newTestEnv(t)

	w := env.post(t, "/api/v1/pipelines/hearing/text", gin.H{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHearingPipelineFailureIsOpaque(t *testing.T) {
	env := newTestEnv(t)
	env.hearing.err = apperrors.TranscriptionError(assert.AnError)
	filePath := env.seedUpload(t, "lecture.mp3")

	w := env.post(t, "/api/v1/pipelines/hearing/audio", gin.H{"file_path": filePath})

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "failed to generate transcript", resp["error"])
	assert.NotContains(t, w.Body.String(), assert.AnError.Error())
}

func TestVisualTextPassesSimplifyFlag(t *testing.T) {
	env := newTestEnv(t)

	w := env.post(t, "/api/v1/pipelines/visual/text", gin.H{"text": "a long passage", "simplify": true})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.visual.lastSimplify)

	var result svc.VisualTextResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, "https://signed/audio.mp3", result.AudioURL)
}

func TestVisualVideoDefaultsInterval(t *testing.T) {
	env := newTestEnv(t)
	filePath := env.seedUpload(t, "scene.mp4")

	w := env.post(t, "/api/v1/pipelines/visual/video", gin.H{"file_path": filePath})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 5, env.visual.lastInterval)
}

func TestVisualVideoHonorsRequestedInterval(t *testing.T) {
	env := newTestEnv(t)
	filePath := env.seedUpload(t, "scene.mp4")

	w := env.post(t, "/api/v1/pipelines/visual/video", gin.H{"file_path": filePath, "interval_seconds": 10})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 10, env.visual.lastInterval)
}

func TestCognitiveAudioReturnsAllViews(t *testing.T) {
	env := newTestEnv(t)
	filePath := env.seedUpload(t, "lesson.mp3")

	w := env.post(t, "/api/v1/pipelines/cognitive/audio", gin.H{"file_path": filePath})

	assert.Equal(t, http.StatusOK, w.Code)

	var result svc.CognitiveAudioResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, "simple", result.SimplifiedTranscript)
	assert.Equal(t, "points", result.KeyPoints)
	assert.Equal(t, "guide", result.FocusGuide)
}

func TestCognitiveTextValidationError(t *testing.T) {
	env := newTestEnv(t)
	env.cognitive.err = apperrors.IntakeValidationError("text is required")

	w := env.post(t, "/api/v1/pipelines/cognitive/text", gin.H{"text": "   "})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPipelineNotWired(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	RegisterRoutes(router.Group("/api/v1/pipelines"), &types.Dependencies{})

	payload, _ := json.Marshal(gin.H{"text": "hello"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/pipelines/cognitive/text", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
