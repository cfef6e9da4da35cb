package pipelines

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adaptlearn/access-api/internal/models"
	"github.com/adaptlearn/access-api/internal/services/storage"
	"github.com/adaptlearn/access-api/internal/services/synthesis"
	"github.com/adaptlearn/access-api/internal/services/texttransform"
	"github.com/adaptlearn/access-api/internal/services/transcription"
	"github.com/adaptlearn/access-api/internal/services/vision"
	apperrors "github.com/adaptlearn/access-api/pkg/errors"
	"github.com/adaptlearn/access-api/pkg/tempfile"
)

// fakeMedia fabricates extraction outputs inside the scope
type fakeMedia struct {
	frameCount   int
	duration     float64
	durationErr  error
	lastInterval int
	extractErr   error
}

func (f *fakeMedia) ExtractAudio(ctx context.Context, videoPath string, scope *tempfile.Scope) (string, error) {
	if f.extractErr != nil {
		return "", f.extractErr
	}
	path := scope.Path("audio_extract.wav")
	if err := os.WriteFile(path, []byte("pcm"), 0o644); err != nil {
		return "", err
	}
	return path, nil
}

func (f *fakeMedia) ExtractFrames(ctx context.Context, videoPath string, intervalSeconds int, scope *tempfile.Scope) ([]string, error) {
	f.lastInterval = intervalSeconds
	if f.extractErr != nil {
		return nil, f.extractErr
	}
	paths := make([]string, 0, f.frameCount)
	for i := 1; i <= f.frameCount; i++ {
		path := scope.Path(fmt.Sprintf("frame_%d.jpg", i))
		if err := os.WriteFile(path, []byte{0xFF, 0xD8, byte(i)}, 0o644); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func (f *fakeMedia) Duration(ctx context.Context, mediaPath string) (float64, error) {
	if f.durationErr != nil {
		return 0, f.durationErr
	}
	if f.duration > 0 {
		return f.duration, nil
	}
	return float64(f.frameCount * 5), nil
}

// fakeTranscriber returns a fixed word-timed transcript
type fakeTranscriber struct {
	segments []models.TranscriptSegment
	err      error
	lastOpts transcription.Options
}

func (f *fakeTranscriber) TranscribeFile(ctx context.Context, audioPath string, opts transcription.Options) ([]models.TranscriptSegment, error) {
	f.lastOpts = opts
	if f.err != nil {
		return nil, f.err
	}
	if !opts.WithWordOffsets {
		stripped := make([]models.TranscriptSegment, len(f.segments))
		for i, s := range f.segments {
			stripped[i] = models.TranscriptSegment{Text: s.Text}
		}
		return stripped, nil
	}
	return f.segments, nil
}

func (f *fakeTranscriber) TranscribeBytes(ctx context.Context, audio []byte, opts transcription.Options) ([]models.TranscriptSegment, error) {
	return f.TranscribeFile(ctx, "", opts)
}

func (f *fakeTranscriber) Close() error { return nil }

// fakeTransformer echoes the task so assertions can see which ran
type fakeTransformer struct {
	err error
}

func (f *fakeTransformer) Transform(ctx context.Context, text string, task texttransform.TaskKind) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return fmt.Sprintf("[%s] %s", task, text), nil
}

func (f *fakeTransformer) TransformJSON(ctx context.Context, prompt string, out any) error {
	return errors.New("not used")
}

type fakeSpeaker struct{ err error }

func (f *fakeSpeaker) SynthesizeBytes(ctx context.Context, text string, profile synthesis.VoiceProfile) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []byte("mp3:" + text), nil
}

type fakeRenderer struct {
	lastText string
	err      error
}

func (f *fakeRenderer) Render(ctx context.Context, text string) (string, error) {
	f.lastText = text
	if f.err != nil {
		return "", f.err
	}
	return "https://videos.example/sign.mp4", nil
}

type fakeDescriber struct {
	audiences []vision.Audience
	err       error
}

func (f *fakeDescriber) DescribeFrame(ctx context.Context, frameJPEG []byte, audience vision.Audience) (string, error) {
	f.audiences = append(f.audiences, audience)
	if f.err != nil {
		return "", f.err
	}
	return fmt.Sprintf("scene %d", len(f.audiences)), nil
}

// thirtySecondLecture simulates a transcribed 30 second speech with word
// offsets
func thirtySecondLecture() []models.TranscriptSegment {
	words := []string{"welcome", "to", "today's", "lesson", "about", "plants"}
	timings := make([]models.WordTiming, len(words))
	for i, w := range words {
		timings[i] = models.WordTiming{
			Word:      w,
			StartTime: float64(i) * 5.0,
			EndTime:   float64(i)*5.0 + 4.5,
		}
	}
	return []models.TranscriptSegment{{Text: strings.Join(words, " "), Words: timings}}
}

func newMemStore(t *testing.T) *storage.MemoryStore {
	t.Helper()
	return storage.NewMemoryStore()
}

func writeFakeAudio(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lecture.wav")
	require.NoError(t, os.WriteFile(path, []byte("RIFFdata"), 0o644))
	return path
}

func TestHearingProcessAudioCaptions(t *testing.T) {
	transcriber := &fakeTranscriber{segments: thirtySecondLecture()}
	h := NewHearing(&fakeMedia{}, transcriber, &fakeTransformer{}, &fakeRenderer{}, t.TempDir())

	result, err := h.ProcessAudio(context.Background(), writeFakeAudio(t), OutputCaptions)
	require.NoError(t, err)

	assert.True(t, transcriber.lastOpts.WithWordOffsets)
	assert.Equal(t, "captions", result.Type)
	assert.True(t, strings.HasPrefix(result.SRTContent, "1\n00:00:0"))
	assert.Contains(t, result.SRTContent, "00:00:25,000 --> 00:00:29,500\nplants")
	assert.Equal(t, "welcome to today's lesson about plants", result.PlainTranscript)
}

func TestHearingProcessAudioTranscript(t *testing.T) {
	transcriber := &fakeTranscriber{segments: thirtySecondLecture()}
	h := NewHearing(&fakeMedia{}, transcriber, &fakeTransformer{}, &fakeRenderer{}, t.TempDir())

	result, err := h.ProcessAudio(context.Background(), writeFakeAudio(t), OutputTranscript)
	require.NoError(t, err)

	assert.False(t, transcriber.lastOpts.WithWordOffsets)
	assert.Equal(t, "welcome to today's lesson about plants", result.Content)
	assert.Empty(t, result.SRTContent)
}

func TestHearingProcessAudioInvalidOutput(t *testing.T) {
	h := NewHearing(&fakeMedia{}, &fakeTranscriber{}, &fakeTransformer{}, &fakeRenderer{}, t.TempDir())

	_, err := h.ProcessAudio(context.Background(), "x.wav", AudioOutputType("subtitles"))
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeIntakeValidation))
}

func TestHearingProcessVideoSignLanguage(t *testing.T) {
	renderer := &fakeRenderer{}
	h := NewHearing(&fakeMedia{}, &fakeTranscriber{segments: thirtySecondLecture()}, &fakeTransformer{}, renderer, t.TempDir())

	result, err := h.ProcessVideo(context.Background(), "lecture.mp4", VideoOutputSignLanguage)
	require.NoError(t, err)

	assert.Equal(t, "https://videos.example/sign.mp4", result.SignLanguageURL)
	assert.Equal(t, "welcome to today's lesson about plants", renderer.lastText)
}

func TestHearingProcessVideoSummary(t *testing.T) {
	h := NewHearing(&fakeMedia{}, &fakeTranscriber{segments: thirtySecondLecture()}, &fakeTransformer{}, &fakeRenderer{}, t.TempDir())

	result, err := h.ProcessVideo(context.Background(), "lecture.mp4", VideoOutputSummary)
	require.NoError(t, err)
	assert.Contains(t, result.Content, string(texttransform.TaskSimplifyForHearing))
}

func TestHearingProcessVideoExtractionFailure(t *testing.T) {
	h := NewHearing(&fakeMedia{extractErr: errors.New("codec error")}, &fakeTranscriber{}, &fakeTransformer{}, &fakeRenderer{}, t.TempDir())

	_, err := h.ProcessVideo(context.Background(), "broken.mp4", VideoOutputCaptions)
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeExtractionFailed))
}

func TestVisualProcessTextSimplified(t *testing.T) {
	store := newMemStore(t)
	v := NewVisual(&fakeMedia{}, &fakeTranscriber{}, &fakeTransformer{}, &fakeSpeaker{}, &fakeDescriber{}, store, t.TempDir())

	result, err := v.ProcessText(context.Background(), "dense academic prose", true)
	require.NoError(t, err)

	assert.True(t, result.Simplified)
	assert.Contains(t, result.ProcessedText, string(texttransform.TaskSimplifyAndSummarize))
	assert.NotEmpty(t, result.AudioURL)
	assert.Equal(t, 1, store.Len())
}

func TestVisualProcessTextVerbatim(t *testing.T) {
	v := NewVisual(&fakeMedia{}, &fakeTranscriber{}, &fakeTransformer{}, &fakeSpeaker{}, &fakeDescriber{}, newMemStore(t), t.TempDir())

	result, err := v.ProcessText(context.Background(), "short note", false)
	require.NoError(t, err)
	assert.Equal(t, "short note", result.ProcessedText)
	assert.False(t, result.Simplified)
}

func TestVisualProcessVideoNarrative(t *testing.T) {
	describer := &fakeDescriber{}
	v := NewVisual(&fakeMedia{frameCount: 3}, &fakeTranscriber{}, &fakeTransformer{}, &fakeSpeaker{}, describer, newMemStore(t), t.TempDir())

	result, err := v.ProcessVideo(context.Background(), "tour.mp4", 5)
	require.NoError(t, err)

	require.Len(t, result.TimecodedDescriptions, 3)
	assert.Equal(t, 0.0, result.TimecodedDescriptions[0].Time)
	assert.Equal(t, 10.0, result.TimecodedDescriptions[2].Time)
	assert.True(t, strings.HasPrefix(result.Narrative, "At 0:00: scene 1"))
	assert.Contains(t, result.Narrative, "At 0:10: scene 3")
	assert.NotEmpty(t, result.AudioURL)

	for _, audience := range describer.audiences {
		assert.Equal(t, vision.AudienceVisuallyImpaired, audience)
	}
}

func TestVisualProcessVideoWidensIntervalForLongVideo(t *testing.T) {
	media := &fakeMedia{frameCount: 2, duration: 600}
	v := NewVisual(media, &fakeTranscriber{}, &fakeTransformer{}, &fakeSpeaker{}, &fakeDescriber{}, newMemStore(t), t.TempDir())

	result, err := v.ProcessVideo(context.Background(), "documentary.mp4", 5)
	require.NoError(t, err)

	assert.Equal(t, 10, media.lastInterval, "600s at 5s intervals exceeds the frame cap")
	require.Len(t, result.TimecodedDescriptions, 2)
	assert.Equal(t, 10.0, result.TimecodedDescriptions[1].Time)
}

func TestVisualProcessVideoDurationProbeFailure(t *testing.T) {
	media := &fakeMedia{frameCount: 2, durationErr: errors.New("probe failed")}
	v := NewVisual(media, &fakeTranscriber{}, &fakeTransformer{}, &fakeSpeaker{}, &fakeDescriber{}, newMemStore(t), t.TempDir())

	_, err := v.ProcessVideo(context.Background(), "tour.mp4", 5)
	require.NoError(t, err)
	assert.Equal(t, 5, media.lastInterval, "requested interval stands when the probe fails")
}

func TestVisualProcessVideoDescriberFailure(t *testing.T) {
	describer := &fakeDescriber{err: errors.New("vision down")}
	v := NewVisual(&fakeMedia{frameCount: 2}, &fakeTranscriber{}, &fakeTransformer{}, &fakeSpeaker{}, describer, newMemStore(t), t.TempDir())

	_, err := v.ProcessVideo(context.Background(), "tour.mp4", 5)
	require.Error(t, err)
}

func TestCognitiveProcessAudioFanOut(t *testing.T) {
	c := NewCognitive(&fakeMedia{}, &fakeTranscriber{segments: thirtySecondLecture()}, &fakeTransformer{}, &fakeDescriber{}, t.TempDir())

	result, err := c.ProcessAudio(context.Background(), writeFakeAudio(t))
	require.NoError(t, err)

	assert.Equal(t, "welcome to today's lesson about plants", result.OriginalTranscript)
	assert.Contains(t, result.SimplifiedTranscript, string(texttransform.TaskSimplify))
	assert.Contains(t, result.KeyPoints, string(texttransform.TaskKeyPoints))
	assert.Contains(t, result.FocusGuide, string(texttransform.TaskFocusGuide))
}

func TestCognitiveProcessAudioAllOrNothing(t *testing.T) {
	c := NewCognitive(&fakeMedia{}, &fakeTranscriber{segments: thirtySecondLecture()}, &fakeTransformer{err: errors.New("model down")}, &fakeDescriber{}, t.TempDir())

	_, err := c.ProcessAudio(context.Background(), writeFakeAudio(t))
	require.Error(t, err)
}

func TestCognitiveProcessVideo(t *testing.T) {
	describer := &fakeDescriber{}
	c := NewCognitive(&fakeMedia{frameCount: 2}, &fakeTranscriber{segments: thirtySecondLecture()}, &fakeTransformer{}, describer, t.TempDir())

	result, err := c.ProcessVideo(context.Background(), "lesson.mp4")
	require.NoError(t, err)

	assert.Len(t, result.VisualBreakdown, 2)
	assert.Equal(t, "welcome to today's lesson about plants", result.Transcription.Original)
	assert.Contains(t, result.Transcription.Simplified, string(texttransform.TaskSimplify))
	assert.Contains(t, result.Summary, "Visual Scenes:")
	for _, audience := range describer.audiences {
		assert.Equal(t, vision.AudienceCognitive, audience)
	}
}

func TestCognitiveProcessText(t *testing.T) {
	c := NewCognitive(&fakeMedia{}, &fakeTranscriber{}, &fakeTransformer{}, &fakeDescriber{}, t.TempDir())

	result, err := c.ProcessText(context.Background(), "the water cycle")
	require.NoError(t, err)
	assert.Contains(t, result.Simplified, string(texttransform.TaskSimplify))
	assert.Contains(t, result.KeyPoints, string(texttransform.TaskKeyPoints))

	_, err = c.ProcessText(context.Background(), "")
	require.Error(t, err)
}
