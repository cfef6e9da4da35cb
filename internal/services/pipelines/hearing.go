package pipelines

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/adaptlearn/access-api/internal/services/captions"
	"github.com/adaptlearn/access-api/internal/services/texttransform"
	"github.com/adaptlearn/access-api/internal/services/transcription"
	apperrors "github.com/adaptlearn/access-api/pkg/errors"
	"github.com/adaptlearn/access-api/pkg/tempfile"
)

// Hearing serves deaf and hard-of-hearing users: transcripts, word-timed
// captions, sign-language video, and text summaries.
type Hearing struct {
	media       MediaToolkit
	transcriber transcription.Service
	transformer texttransform.Service
	renderer    Renderer
	tempDir     string
}

// NewHearing wires a hearing pipeline from its collaborators
func NewHearing(media MediaToolkit, transcriber transcription.Service, transformer texttransform.Service, renderer Renderer, tempDir string) *Hearing {
	return &Hearing{
		media:       media,
		transcriber: transcriber,
		transformer: transformer,
		renderer:    renderer,
		tempDir:     tempDir,
	}
}

// ProcessAudio transcribes an audio file and returns either the plain
// transcript or a word-timed caption track
func (h *Hearing) ProcessAudio(ctx context.Context, audioPath string, outputType AudioOutputType) (*HearingResult, error) {
	switch outputType {
	case OutputTranscript, OutputCaptions:
	default:
		return nil, apperrors.New(apperrors.ErrCodeIntakeValidation, fmt.Sprintf("invalid output type: %s", outputType), 400)
	}

	segments, err := h.transcriber.TranscribeFile(ctx, audioPath, transcription.Options{
		WithWordOffsets: outputType == OutputCaptions,
	})
	if err != nil {
		return nil, err
	}

	result := &HearingResult{Type: string(outputType), Timestamp: time.Now().UTC()}
	if outputType == OutputTranscript {
		result.Content = plainText(segments)
		return result, nil
	}

	track := captions.ToSubtitleTrack(segments)
	result.SRTContent = track.SRTContent
	result.PlainTranscript = track.PlainTranscript
	return result, nil
}

// ProcessVideo extracts the audio track, transcribes it, and produces
// captions, a sign-language rendition, or a summary
func (h *Hearing) ProcessVideo(ctx context.Context, videoPath string, outputType VideoOutputType) (*HearingResult, error) {
	switch outputType {
	case VideoOutputCaptions, VideoOutputSignLanguage, VideoOutputSummary:
	default:
		return nil, apperrors.New(apperrors.ErrCodeIntakeValidation, fmt.Sprintf("invalid output type: %s", outputType), 400)
	}

	scope, err := tempfile.NewScope(h.tempDir)
	if err != nil {
		return nil, err
	}
	defer scope.Close()

	audioPath, err := h.media.ExtractAudio(ctx, videoPath, scope)
	if err != nil {
		log.Printf("[ERROR] Audio extraction failed for %s: %v", videoPath, err)
		return nil, apperrors.ExtractionError(err)
	}

	segments, err := h.transcriber.TranscribeFile(ctx, audioPath, transcription.Options{WithWordOffsets: true})
	if err != nil {
		return nil, err
	}
	track := captions.ToSubtitleTrack(segments)

	result := &HearingResult{Type: string(outputType), Timestamp: time.Now().UTC()}
	switch outputType {
	case VideoOutputCaptions:
		result.SRTContent = track.SRTContent
		result.PlainTranscript = track.PlainTranscript

	case VideoOutputSignLanguage:
		videoURL, err := h.renderer.Render(ctx, track.PlainTranscript)
		if err != nil {
			return nil, err
		}
		result.SignLanguageURL = videoURL
		result.PlainTranscript = track.PlainTranscript

	case VideoOutputSummary:
		summary, err := h.transformer.Transform(ctx, track.PlainTranscript, texttransform.TaskSimplifyForHearing)
		if err != nil {
			return nil, err
		}
		result.Content = summary
	}
	return result, nil
}

// ProcessText summarizes and explains written content
func (h *Hearing) ProcessText(ctx context.Context, text string) (*HearingResult, error) {
	if text == "" {
		return nil, apperrors.New(apperrors.ErrCodeIntakeValidation, "text is required", 400)
	}

	explained, err := h.transformer.Transform(ctx, text, texttransform.TaskSummarizeAndExplain)
	if err != nil {
		return nil, err
	}
	return &HearingResult{
		Type:      "summary_and_explanation",
		Content:   explained,
		Timestamp: time.Now().UTC(),
	}, nil
}
