package pipelines

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/adaptlearn/access-api/internal/services/texttransform"
	"github.com/adaptlearn/access-api/internal/services/transcription"
	"github.com/adaptlearn/access-api/internal/services/vision"
	apperrors "github.com/adaptlearn/access-api/pkg/errors"
	"github.com/adaptlearn/access-api/pkg/tempfile"
)

// comprehensiveSummaryTemplate composes the simplified transcript and frame
// breakdown into one summary request
const comprehensiveSummaryTemplate = `Create a comprehensive but simple summary of this video content:
- Main topics and ideas
- Step-by-step explanations
- Visual descriptions
- Key takeaways

Content:
%s

Visual Scenes:
%s`

// Cognitive serves users with cognitive disabilities: simplified transcripts,
// key points, focus guides, and plain-language video breakdowns.
type Cognitive struct {
	media       MediaToolkit
	transcriber transcription.Service
	transformer texttransform.Service
	describer   FrameDescriber
	tempDir     string
}

// NewCognitive wires a cognitive pipeline from its collaborators
func NewCognitive(media MediaToolkit, transcriber transcription.Service, transformer texttransform.Service, describer FrameDescriber, tempDir string) *Cognitive {
	return &Cognitive{
		media:       media,
		transcriber: transcriber,
		transformer: transformer,
		describer:   describer,
		tempDir:     tempDir,
	}
}

// ProcessAudio transcribes the file once, then derives the simplified
// transcript, key points, and focus guide concurrently. All three must
// succeed.
func (c *Cognitive) ProcessAudio(ctx context.Context, audioPath string) (*CognitiveAudioResult, error) {
	segments, err := c.transcriber.TranscribeFile(ctx, audioPath, transcription.Options{})
	if err != nil {
		return nil, err
	}
	transcript := plainText(segments)

	result := &CognitiveAudioResult{
		OriginalTranscript: transcript,
		Timestamp:          time.Now().UTC(),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		simplified, err := c.transformer.Transform(gctx, transcript, texttransform.TaskSimplify)
		if err != nil {
			return err
		}
		result.SimplifiedTranscript = simplified
		return nil
	})
	g.Go(func() error {
		keyPoints, err := c.transformer.Transform(gctx, transcript, texttransform.TaskKeyPoints)
		if err != nil {
			return err
		}
		result.KeyPoints = keyPoints
		return nil
	})
	g.Go(func() error {
		guide, err := c.transformer.Transform(gctx, transcript, texttransform.TaskFocusGuide)
		if err != nil {
			return err
		}
		result.FocusGuide = guide
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}

// ProcessVideo runs audio extraction and frame breakdown in parallel, then
// simplifies the transcript and writes a comprehensive summary over both
func (c *Cognitive) ProcessVideo(ctx context.Context, videoPath string) (*CognitiveVideoResult, error) {
	scope, err := tempfile.NewScope(c.tempDir)
	if err != nil {
		return nil, err
	}
	defer scope.Close()

	var transcript string
	var breakdown []string

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		audioPath, err := c.media.ExtractAudio(gctx, videoPath, scope)
		if err != nil {
			log.Printf("[ERROR] Audio extraction failed for %s: %v", videoPath, err)
			return apperrors.ExtractionError(err)
		}
		segments, err := c.transcriber.TranscribeFile(gctx, audioPath, transcription.Options{})
		if err != nil {
			return err
		}
		transcript = plainText(segments)
		return nil
	})
	g.Go(func() error {
		frames, err := c.visualBreakdown(gctx, videoPath, scope)
		if err != nil {
			return err
		}
		breakdown = frames
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	simplified, err := c.transformer.Transform(ctx, transcript, texttransform.TaskSimplify)
	if err != nil {
		return nil, err
	}

	summaryInput := fmt.Sprintf(comprehensiveSummaryTemplate, simplified, strings.Join(breakdown, "\n"))
	summary, err := c.transformer.Transform(ctx, summaryInput, texttransform.TaskSummarize)
	if err != nil {
		return nil, err
	}

	return &CognitiveVideoResult{
		Summary:         summary,
		Transcription:   CognitiveTranscription{Original: transcript, Simplified: simplified},
		VisualBreakdown: breakdown,
		Timestamp:       time.Now().UTC(),
	}, nil
}

// ProcessText derives simplified text and key points concurrently
func (c *Cognitive) ProcessText(ctx context.Context, text string) (*CognitiveTextResult, error) {
	if text == "" {
		return nil, apperrors.New(apperrors.ErrCodeIntakeValidation, "text is required", 400)
	}

	result := &CognitiveTextResult{Timestamp: time.Now().UTC()}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		simplified, err := c.transformer.Transform(gctx, text, texttransform.TaskSimplify)
		if err != nil {
			return err
		}
		result.Simplified = simplified
		return nil
	})
	g.Go(func() error {
		keyPoints, err := c.transformer.Transform(gctx, text, texttransform.TaskKeyPoints)
		if err != nil {
			return err
		}
		result.KeyPoints = keyPoints
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}

// visualBreakdown describes each extracted frame in plain language
func (c *Cognitive) visualBreakdown(ctx context.Context, videoPath string, scope *tempfile.Scope) ([]string, error) {
	framePaths, err := c.media.ExtractFrames(ctx, videoPath, defaultFrameInterval, scope)
	if err != nil {
		log.Printf("[ERROR] Frame extraction failed for %s: %v", videoPath, err)
		return nil, apperrors.ExtractionError(err)
	}

	analyses := make([]string, 0, len(framePaths))
	for _, framePath := range framePaths {
		frame, err := os.ReadFile(framePath)
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.ErrCodeExtractionFailed, "failed to read extracted frame", 500)
		}
		description, err := c.describer.DescribeFrame(ctx, frame, vision.AudienceCognitive)
		if err != nil {
			return nil, err
		}
		analyses = append(analyses, description)
	}
	return analyses, nil
}
