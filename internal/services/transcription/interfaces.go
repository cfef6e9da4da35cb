package transcription

import (
	"context"

	speechpb "cloud.google.com/go/speech/apiv1/speechpb"
	gax "github.com/googleapis/gax-go/v2"

	"github.com/adaptlearn/access-api/internal/models"
)

// Service converts recorded audio into transcript segments
type Service interface {
	// TranscribeFile transcribes the audio file at audioPath
	TranscribeFile(ctx context.Context, audioPath string, opts Options) ([]models.TranscriptSegment, error)
	// TranscribeBytes transcribes raw audio content
	TranscribeBytes(ctx context.Context, audio []byte, opts Options) ([]models.TranscriptSegment, error)
	// Close releases the underlying client
	Close() error
}

// Options tune a single recognition request. Zero values fall back to the
// service defaults: LINEAR16 mono at 16 kHz, en-US, latest_long.
type Options struct {
	Encoding        speechpb.RecognitionConfig_AudioEncoding
	SampleRateHertz int
	LanguageCode    string
	Model           string
	WithWordOffsets bool
}

// Recognizer is the slice of the Speech API client the service needs.
// *speech.Client satisfies it.
type Recognizer interface {
	Recognize(ctx context.Context, req *speechpb.RecognizeRequest, opts ...gax.CallOption) (*speechpb.RecognizeResponse, error)
	Close() error
}
