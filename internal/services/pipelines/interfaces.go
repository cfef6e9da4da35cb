// Package pipelines orchestrates the per-profile processing flows that turn
// uploaded media into accessible artifacts.
package pipelines

import (
	"context"
	"time"

	"github.com/adaptlearn/access-api/internal/models"
	"github.com/adaptlearn/access-api/internal/services/synthesis"
	"github.com/adaptlearn/access-api/internal/services/vision"
	"github.com/adaptlearn/access-api/pkg/tempfile"
)

// MediaToolkit is the slice of the media tooling the pipelines need.
// *ffmpeg.FFmpeg satisfies it.
type MediaToolkit interface {
	ExtractAudio(ctx context.Context, videoPath string, scope *tempfile.Scope) (string, error)
	ExtractFrames(ctx context.Context, videoPath string, intervalSeconds int, scope *tempfile.Scope) ([]string, error)
	Duration(ctx context.Context, mediaPath string) (float64, error)
}

// Speaker produces spoken audio for text
type Speaker interface {
	SynthesizeBytes(ctx context.Context, text string, profile synthesis.VoiceProfile) ([]byte, error)
}

// Renderer produces sign-language video for text
type Renderer interface {
	Render(ctx context.Context, text string) (string, error)
}

// FrameDescriber narrates still frames for a given audience
type FrameDescriber interface {
	DescribeFrame(ctx context.Context, frameJPEG []byte, audience vision.Audience) (string, error)
}

// AudioOutputType selects what a hearing audio run returns
type AudioOutputType string

const (
	OutputTranscript AudioOutputType = "transcript"
	OutputCaptions   AudioOutputType = "captions"
)

// VideoOutputType selects what a hearing video run returns
type VideoOutputType string

const (
	VideoOutputCaptions     VideoOutputType = "captions"
	VideoOutputSignLanguage VideoOutputType = "sign_language"
	VideoOutputSummary      VideoOutputType = "summary"
)

// HearingResult is the outcome of a hearing-profile run. Fields are populated
// according to the requested output type.
type HearingResult struct {
	Type            string    `json:"type"`
	Content         string    `json:"content,omitempty"`
	SRTContent      string    `json:"srtContent,omitempty"`
	PlainTranscript string    `json:"plainTranscript,omitempty"`
	SignLanguageURL string    `json:"signLanguageUrl,omitempty"`
	Timestamp       time.Time `json:"timestamp"`
}

// VisualTextResult is narrated text for a listener who cannot read the source
type VisualTextResult struct {
	OriginalTranscription string    `json:"originalTranscription,omitempty"`
	ProcessedText         string    `json:"processedText"`
	AudioURL              string    `json:"audioUrl"`
	Simplified            bool      `json:"simplified"`
	Timestamp             time.Time `json:"timestamp"`
}

// TimecodedDescription is one narrated moment of a video
type TimecodedDescription struct {
	Time        float64 `json:"time"`
	Description string  `json:"description"`
}

// VisualVideoResult is a spoken audio description of a video
type VisualVideoResult struct {
	Narrative             string                 `json:"narrative"`
	TimecodedDescriptions []TimecodedDescription `json:"timecodedDescriptions"`
	AudioURL              string                 `json:"audioUrl"`
	Timestamp             time.Time              `json:"timestamp"`
}

// CognitiveAudioResult carries the three parallel views of a transcript
type CognitiveAudioResult struct {
	OriginalTranscript   string    `json:"originalTranscript"`
	SimplifiedTranscript string    `json:"simplifiedTranscript"`
	KeyPoints            string    `json:"keyPoints"`
	FocusGuide           string    `json:"focusGuide"`
	Timestamp            time.Time `json:"timestamp"`
}

// CognitiveTranscription pairs a raw transcript with its simplified form
type CognitiveTranscription struct {
	Original   string `json:"original"`
	Simplified string `json:"simplified"`
}

// CognitiveVideoResult combines simplified audio content with a visual
// breakdown and an overall summary
type CognitiveVideoResult struct {
	Summary         string                 `json:"summary"`
	Transcription   CognitiveTranscription `json:"transcription"`
	VisualBreakdown []string               `json:"visualBreakdown"`
	Timestamp       time.Time              `json:"timestamp"`
}

// CognitiveTextResult is simplified text plus extracted key points
type CognitiveTextResult struct {
	Simplified string    `json:"simplified"`
	KeyPoints  string    `json:"keyPoints"`
	Timestamp  time.Time `json:"timestamp"`
}

// plainText flattens transcript segments to a newline-joined string
func plainText(segments []models.TranscriptSegment) string {
	return models.PlainTranscript(segments)
}
