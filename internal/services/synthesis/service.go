package synthesis

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	texttospeechpb "cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
	"google.golang.org/api/option"

	apperrors "github.com/adaptlearn/access-api/pkg/errors"
	"github.com/adaptlearn/access-api/pkg/tempfile"
)

// GoogleService implements Service on top of the Cloud Text-to-Speech API
type GoogleService struct {
	client Synthesizer
}

// NewService creates a synthesis service with a real Text-to-Speech client
func NewService(ctx context.Context, opts ...option.ClientOption) (*GoogleService, error) {
	client, err := texttospeech.NewClient(ctx, opts...)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeSynthesisFailed, "failed to create text-to-speech client", 500)
	}
	return &GoogleService{client: client}, nil
}

// NewServiceWithClient creates a synthesis service around an existing
// synthesizer. Used by tests.
func NewServiceWithClient(client Synthesizer) *GoogleService {
	return &GoogleService{client: client}
}

// Close releases the underlying client
func (s *GoogleService) Close() error {
	if s.client == nil {
		return nil
	}
	return s.client.Close()
}

// SynthesizeBytes returns the raw encoded audio for text
func (s *GoogleService) SynthesizeBytes(ctx context.Context, text string, profile VoiceProfile) ([]byte, error) {
	if text == "" {
		return nil, apperrors.New(apperrors.ErrCodeSynthesisFailed, "cannot synthesize empty text", 400)
	}

	req := &texttospeechpb.SynthesizeSpeechRequest{
		Input: &texttospeechpb.SynthesisInput{
			InputSource: &texttospeechpb.SynthesisInput_Text{Text: text},
		},
		Voice: &texttospeechpb.VoiceSelectionParams{
			LanguageCode: profile.LanguageCode,
			Name:         profile.VoiceName,
			SsmlGender:   profile.SSMLGender,
		},
		AudioConfig: &texttospeechpb.AudioConfig{
			AudioEncoding: profile.AudioEncoding,
			SpeakingRate:  profile.SpeakingRate,
			Pitch:         profile.Pitch,
			VolumeGainDb:  profile.VolumeGainDb,
		},
	}

	resp, err := s.client.SynthesizeSpeech(ctx, req)
	if err != nil {
		log.Printf("[ERROR] Speech synthesis failed: %v", err)
		return nil, apperrors.SynthesisError(err)
	}
	if len(resp.AudioContent) == 0 {
		return nil, apperrors.New(apperrors.ErrCodeSynthesisFailed, "synthesis returned no audio", 500)
	}
	return resp.AudioContent, nil
}

// Synthesize writes spoken audio for text into the scope and returns the path
func (s *GoogleService) Synthesize(ctx context.Context, text string, profile VoiceProfile, scope *tempfile.Scope) (string, error) {
	audio, err := s.SynthesizeBytes(ctx, text, profile)
	if err != nil {
		return "", err
	}

	outputPath := scope.Path(fmt.Sprintf("speech_%d.mp3", time.Now().UnixMilli()))
	if err := os.WriteFile(outputPath, audio, 0o644); err != nil {
		return "", apperrors.Wrap(err, apperrors.ErrCodeSynthesisFailed, "failed to write synthesized audio", 500)
	}
	return outputPath, nil
}
