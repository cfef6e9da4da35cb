package types

import (
	"context"

	"github.com/adaptlearn/access-api/internal/models"
	"github.com/adaptlearn/access-api/internal/services/intake"
	"github.com/adaptlearn/access-api/internal/services/pipelines"
	"github.com/adaptlearn/access-api/pkg/config"
)

// HearingPipeline produces transcripts, captions, sign-language renditions,
// and summaries for deaf and hard-of-hearing users.
type HearingPipeline interface {
	ProcessAudio(ctx context.Context, audioPath string, outputType pipelines.AudioOutputType) (*pipelines.HearingResult, error)
	ProcessVideo(ctx context.Context, videoPath string, outputType pipelines.VideoOutputType) (*pipelines.HearingResult, error)
	ProcessText(ctx context.Context, text string) (*pipelines.HearingResult, error)
}

// VisualPipeline produces narrated audio renditions for blind and
// low-vision users.
type VisualPipeline interface {
	ProcessText(ctx context.Context, text string, simplify bool) (*pipelines.VisualTextResult, error)
	ProcessAudio(ctx context.Context, audioPath string, simplify bool) (*pipelines.VisualTextResult, error)
	ProcessVideo(ctx context.Context, videoPath string, intervalSeconds int) (*pipelines.VisualVideoResult, error)
}

// CognitivePipeline produces simplified text, key points, and focus guides
// for users with cognitive disabilities.
type CognitivePipeline interface {
	ProcessAudio(ctx context.Context, audioPath string) (*pipelines.CognitiveAudioResult, error)
	ProcessVideo(ctx context.Context, videoPath string) (*pipelines.CognitiveVideoResult, error)
	ProcessText(ctx context.Context, text string) (*pipelines.CognitiveTextResult, error)
}

// ExerciseGenerator builds interactive practice exercises with generated
// audio and visual aids.
type ExerciseGenerator interface {
	Generate(ctx context.Context, topic, difficulty string, kind models.ExerciseKind) (*models.Exercise, error)
}

// FileIntake validates uploads and persists them to object storage.
type FileIntake interface {
	Validate(size int64, mimeType string) error
	Store(ctx context.Context, localPath, originalName, mimeType string) (*intake.StoredFile, error)
}

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	Config    *config.Config
	Hearing   HearingPipeline
	Visual    VisualPipeline
	Cognitive CognitivePipeline
	Exercises ExerciseGenerator
	Intake    FileIntake
}
