package synthesis

import (
	"context"

	texttospeechpb "cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
	gax "github.com/googleapis/gax-go/v2"

	"github.com/adaptlearn/access-api/pkg/tempfile"
)

// VoiceProfile controls the synthesized voice and audio encoding
type VoiceProfile struct {
	LanguageCode  string
	VoiceName     string
	SSMLGender    texttospeechpb.SsmlVoiceGender
	AudioEncoding texttospeechpb.AudioEncoding
	SpeakingRate  float64
	Pitch         float64
	VolumeGainDb  float64
}

// DefaultProfile is the narration voice used across pipelines: a neutral
// neural voice, slightly slowed and boosted for clarity.
func DefaultProfile() VoiceProfile {
	return VoiceProfile{
		LanguageCode:  "en-US",
		VoiceName:     "en-US-Neural2-C",
		SSMLGender:    texttospeechpb.SsmlVoiceGender_NEUTRAL,
		AudioEncoding: texttospeechpb.AudioEncoding_MP3,
		SpeakingRate:  0.9,
		Pitch:         0.0,
		VolumeGainDb:  2.0,
	}
}

// SlowProfile slows narration further for exercise audio cues
func SlowProfile() VoiceProfile {
	p := DefaultProfile()
	p.SpeakingRate = 0.85
	return p
}

// Service turns text into spoken audio
type Service interface {
	// Synthesize writes spoken audio for text into the scope and returns the
	// file path
	Synthesize(ctx context.Context, text string, profile VoiceProfile, scope *tempfile.Scope) (string, error)
	// SynthesizeBytes returns the raw encoded audio
	SynthesizeBytes(ctx context.Context, text string, profile VoiceProfile) ([]byte, error)
	// Close releases the underlying client
	Close() error
}

// Synthesizer is the slice of the Text-to-Speech client the service needs.
// *texttospeech.Client satisfies it.
type Synthesizer interface {
	SynthesizeSpeech(ctx context.Context, req *texttospeechpb.SynthesizeSpeechRequest, opts ...gax.CallOption) (*texttospeechpb.SynthesizeSpeechResponse, error)
	Close() error
}
