package transcription

import (
	"context"
	"log"
	"os"
	"strings"

	speech "cloud.google.com/go/speech/apiv1"
	speechpb "cloud.google.com/go/speech/apiv1/speechpb"
	"google.golang.org/api/option"
	"google.golang.org/protobuf/types/known/durationpb"

	"github.com/adaptlearn/access-api/internal/models"
	apperrors "github.com/adaptlearn/access-api/pkg/errors"
)

const (
	defaultSampleRate = 16000
	defaultLanguage   = "en-US"
	defaultModel      = "latest_long"
)

// GoogleService implements Service on top of the Cloud Speech-to-Text API
type GoogleService struct {
	client Recognizer
}

// NewService creates a transcription service with a real Speech client
func NewService(ctx context.Context, opts ...option.ClientOption) (*GoogleService, error) {
	client, err := speech.NewClient(ctx, opts...)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeTranscriptionFailed, "failed to create speech client", 500)
	}
	return &GoogleService{client: client}, nil
}

// NewServiceWithClient creates a transcription service around an existing
// recognizer. Used by tests.
func NewServiceWithClient(client Recognizer) *GoogleService {
	return &GoogleService{client: client}
}

// Close releases the underlying client
func (s *GoogleService) Close() error {
	if s.client == nil {
		return nil
	}
	return s.client.Close()
}

// TranscribeFile reads the audio file at audioPath and transcribes it
func (s *GoogleService) TranscribeFile(ctx context.Context, audioPath string, opts Options) ([]models.TranscriptSegment, error) {
	audio, err := os.ReadFile(audioPath)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeTranscriptionFailed, "failed to read audio file", 500)
	}
	return s.TranscribeBytes(ctx, audio, opts)
}

// TranscribeBytes sends raw audio content to the recognizer and converts
// the response into transcript segments
func (s *GoogleService) TranscribeBytes(ctx context.Context, audio []byte, opts Options) ([]models.TranscriptSegment, error) {
	if len(audio) == 0 {
		return nil, nil
	}

	req := &speechpb.RecognizeRequest{
		Config: buildRecognitionConfig(opts),
		Audio: &speechpb.RecognitionAudio{
			AudioSource: &speechpb.RecognitionAudio_Content{Content: audio},
		},
	}

	resp, err := s.client.Recognize(ctx, req)
	if err != nil {
		log.Printf("[ERROR] Speech recognition failed: %v", err)
		return nil, apperrors.TranscriptionError(err)
	}

	return parseRecognizeResponse(resp, opts.WithWordOffsets), nil
}

func buildRecognitionConfig(opts Options) *speechpb.RecognitionConfig {
	encoding := opts.Encoding
	if encoding == speechpb.RecognitionConfig_ENCODING_UNSPECIFIED {
		encoding = speechpb.RecognitionConfig_LINEAR16
	}
	sampleRate := opts.SampleRateHertz
	if sampleRate == 0 {
		sampleRate = defaultSampleRate
	}
	language := opts.LanguageCode
	if language == "" {
		language = defaultLanguage
	}
	model := opts.Model
	if model == "" {
		model = defaultModel
	}

	return &speechpb.RecognitionConfig{
		Encoding:                   encoding,
		SampleRateHertz:            int32(sampleRate),
		LanguageCode:               language,
		Model:                      model,
		EnableAutomaticPunctuation: true,
		EnableWordTimeOffsets:      opts.WithWordOffsets,
	}
}

// parseRecognizeResponse flattens recognition results into segments. Each
// non-empty result alternative becomes one segment; word offsets are carried
// through when requested.
func parseRecognizeResponse(resp *speechpb.RecognizeResponse, withWordOffsets bool) []models.TranscriptSegment {
	if resp == nil || len(resp.Results) == 0 {
		return nil
	}

	segments := make([]models.TranscriptSegment, 0, len(resp.Results))
	for _, result := range resp.Results {
		if result == nil || len(result.Alternatives) == 0 || result.Alternatives[0] == nil {
			continue
		}
		alt := result.Alternatives[0]
		text := strings.TrimSpace(alt.Transcript)
		if text == "" {
			continue
		}

		segment := models.TranscriptSegment{Text: text}
		if withWordOffsets {
			for _, word := range alt.Words {
				if word == nil {
					continue
				}
				segment.Words = append(segment.Words, models.WordTiming{
					Word:      word.Word,
					StartTime: durationSeconds(word.StartTime),
					EndTime:   durationSeconds(word.EndTime),
				})
			}
		}
		segments = append(segments, segment)
	}
	return segments
}

func durationSeconds(d *durationpb.Duration) float64 {
	if d == nil {
		return 0
	}
	return float64(d.Seconds) + float64(d.Nanos)/1e9
}
