package pipelines

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/adaptlearn/access-api/internal/services/storage"
	"github.com/adaptlearn/access-api/internal/services/synthesis"
	"github.com/adaptlearn/access-api/internal/services/texttransform"
	"github.com/adaptlearn/access-api/internal/services/transcription"
	"github.com/adaptlearn/access-api/internal/services/vision"
	apperrors "github.com/adaptlearn/access-api/pkg/errors"
	"github.com/adaptlearn/access-api/pkg/tempfile"
)

// defaultFrameInterval is the seconds between described video frames
const defaultFrameInterval = 5

// maxDescribedFrames caps how many frames a single run will narrate. Long
// videos get a widened sampling interval instead of an unbounded frame set.
const maxDescribedFrames = 60

// Visual serves blind and low-vision users: narrated text, transcribed and
// re-spoken audio, and timecoded audio descriptions of video.
type Visual struct {
	media       MediaToolkit
	transcriber transcription.Service
	transformer texttransform.Service
	speaker     Speaker
	describer   FrameDescriber
	store       storage.ObjectStore
	tempDir     string
}

// NewVisual wires a visual pipeline from its collaborators
func NewVisual(media MediaToolkit, transcriber transcription.Service, transformer texttransform.Service, speaker Speaker, describer FrameDescriber, store storage.ObjectStore, tempDir string) *Visual {
	return &Visual{
		media:       media,
		transcriber: transcriber,
		transformer: transformer,
		speaker:     speaker,
		describer:   describer,
		store:       store,
		tempDir:     tempDir,
	}
}

// ProcessText optionally simplifies text, then speaks it
func (v *Visual) ProcessText(ctx context.Context, text string, simplify bool) (*VisualTextResult, error) {
	if text == "" {
		return nil, apperrors.New(apperrors.ErrCodeIntakeValidation, "text is required", 400)
	}

	processed := text
	if simplify {
		simplified, err := v.transformer.Transform(ctx, text, texttransform.TaskSimplifyAndSummarize)
		if err != nil {
			return nil, err
		}
		processed = simplified
	}

	audioURL, err := v.speakAndPersist(ctx, processed)
	if err != nil {
		return nil, err
	}
	return &VisualTextResult{
		ProcessedText: processed,
		AudioURL:      audioURL,
		Simplified:    simplify,
		Timestamp:     time.Now().UTC(),
	}, nil
}

// ProcessAudio transcribes audio, optionally simplifies the transcript, and
// speaks the result back
func (v *Visual) ProcessAudio(ctx context.Context, audioPath string, simplify bool) (*VisualTextResult, error) {
	segments, err := v.transcriber.TranscribeFile(ctx, audioPath, transcription.Options{})
	if err != nil {
		return nil, err
	}
	transcriptText := plainText(segments)

	processed := transcriptText
	if simplify {
		simplified, err := v.transformer.Transform(ctx, transcriptText, texttransform.TaskSimplifyAndSummarize)
		if err != nil {
			return nil, err
		}
		processed = simplified
	}

	audioURL, err := v.speakAndPersist(ctx, processed)
	if err != nil {
		return nil, err
	}
	return &VisualTextResult{
		OriginalTranscription: transcriptText,
		ProcessedText:         processed,
		AudioURL:              audioURL,
		Simplified:            simplify,
		Timestamp:             time.Now().UTC(),
	}, nil
}

// ProcessVideo describes one frame per interval, assembles the descriptions
// into a timecoded narrative, and speaks it as an audio description track.
// Frames are described sequentially to keep narration order stable.
func (v *Visual) ProcessVideo(ctx context.Context, videoPath string, intervalSeconds int) (*VisualVideoResult, error) {
	if intervalSeconds <= 0 {
		intervalSeconds = defaultFrameInterval
	}
	intervalSeconds = v.boundedInterval(ctx, videoPath, intervalSeconds)

	scope, err := tempfile.NewScope(v.tempDir)
	if err != nil {
		return nil, err
	}
	defer scope.Close()

	framePaths, err := v.media.ExtractFrames(ctx, videoPath, intervalSeconds, scope)
	if err != nil {
		log.Printf("[ERROR] Frame extraction failed for %s: %v", videoPath, err)
		return nil, apperrors.ExtractionError(err)
	}

	descriptions := make([]TimecodedDescription, 0, len(framePaths))
	for i, framePath := range framePaths {
		frame, err := os.ReadFile(framePath)
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.ErrCodeExtractionFailed, "failed to read extracted frame", 500)
		}
		description, err := v.describer.DescribeFrame(ctx, frame, vision.AudienceVisuallyImpaired)
		if err != nil {
			return nil, err
		}
		descriptions = append(descriptions, TimecodedDescription{
			Time:        float64(i * intervalSeconds),
			Description: description,
		})
	}

	narrative := buildNarrative(descriptions)
	audioURL, err := v.speakAndPersist(ctx, narrative)
	if err != nil {
		return nil, err
	}

	return &VisualVideoResult{
		Narrative:             narrative,
		TimecodedDescriptions: descriptions,
		AudioURL:              audioURL,
		Timestamp:             time.Now().UTC(),
	}, nil
}

// boundedInterval widens the sampling interval when the probed duration would
// yield more than maxDescribedFrames frames. A failed probe leaves the
// requested interval in place; extraction reports its own errors.
func (v *Visual) boundedInterval(ctx context.Context, videoPath string, intervalSeconds int) int {
	duration, err := v.media.Duration(ctx, videoPath)
	if err != nil {
		log.Printf("[WARN] Duration probe failed for %s: %v", videoPath, err)
		return intervalSeconds
	}
	if int(duration)/intervalSeconds <= maxDescribedFrames {
		return intervalSeconds
	}
	widened := int(duration) / maxDescribedFrames
	log.Printf("[INFO] Widening frame interval from %ds to %ds for %.0fs video %s", intervalSeconds, widened, duration, videoPath)
	return widened
}

// buildNarrative joins timecoded descriptions in "At M:SS" form
func buildNarrative(descriptions []TimecodedDescription) string {
	parts := make([]string, len(descriptions))
	for i, d := range descriptions {
		parts[i] = fmt.Sprintf("At %s: %s", formatClockTime(d.Time), d.Description)
	}
	return strings.Join(parts, "\n\n")
}

func formatClockTime(seconds float64) string {
	total := int(seconds)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// speakAndPersist synthesizes text and stores the audio, returning a signed
// download URL
func (v *Visual) speakAndPersist(ctx context.Context, text string) (string, error) {
	audio, err := v.speaker.SynthesizeBytes(ctx, text, synthesis.DefaultProfile())
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("outputs/audio/%s.mp3", uuid.New().String())
	if err := v.store.Upload(ctx, key, "audio/mpeg", bytes.NewReader(audio)); err != nil {
		return "", err
	}
	return v.store.SignedURL(key)
}
