// Package exercises generates interactive practice exercises and materializes
// their audio and visual supports.
package exercises

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/adaptlearn/access-api/internal/models"
	"github.com/adaptlearn/access-api/internal/services/storage"
	"github.com/adaptlearn/access-api/internal/services/synthesis"
	"github.com/adaptlearn/access-api/internal/services/texttransform"
	apperrors "github.com/adaptlearn/access-api/pkg/errors"
)

// Renderer produces sign-language video for text
type Renderer interface {
	Render(ctx context.Context, text string) (string, error)
}

// Illustrator produces supporting images for descriptions
type Illustrator interface {
	GenerateImage(ctx context.Context, description string) (string, error)
}

// Speaker produces spoken audio for text
type Speaker interface {
	SynthesizeBytes(ctx context.Context, text string, profile synthesis.VoiceProfile) ([]byte, error)
}

// Service generates exercises in two phases: schema-constrained content
// generation, then fan-out materialization of every audio and visual element.
// Any sub-element failure fails the whole exercise.
type Service struct {
	transformer texttransform.Service
	speaker     Speaker
	renderer    Renderer
	illustrator Illustrator
	store       storage.ObjectStore
}

// NewService wires an exercise generator from its collaborators
func NewService(transformer texttransform.Service, speaker Speaker, renderer Renderer, illustrator Illustrator, store storage.ObjectStore) *Service {
	return &Service{
		transformer: transformer,
		speaker:     speaker,
		renderer:    renderer,
		illustrator: illustrator,
		store:       store,
	}
}

// Generate creates a fully materialized exercise about topic
func (s *Service) Generate(ctx context.Context, topic, difficulty string, kind models.ExerciseKind) (*models.Exercise, error) {
	if topic == "" {
		return nil, apperrors.New(apperrors.ErrCodeGenerationFailed, "exercise topic is required", 400)
	}
	if difficulty == "" {
		difficulty = "medium"
	}
	if !models.ValidExerciseKind(kind) {
		return nil, apperrors.New(apperrors.ErrCodeGenerationFailed, fmt.Sprintf("unsupported exercise kind: %s", kind), 400)
	}

	exercise := &models.Exercise{
		Topic:      topic,
		Difficulty: difficulty,
		Kind:       kind,
		Timestamp:  time.Now().UTC(),
	}
	sessionID := uuid.New().String()

	var err error
	switch kind {
	case models.ExerciseFillInBlank:
		err = s.generateAudioExercise(ctx, exercise, sessionID)
	case models.ExerciseMatchingCards:
		err = s.generateMatchingExercise(ctx, exercise, sessionID)
	case models.ExerciseDragDrop:
		err = s.generateDragDropExercise(ctx, exercise, sessionID)
	case models.ExerciseMultipleChoice:
		err = s.generateMultipleChoiceExercise(ctx, exercise, sessionID)
	}
	if err != nil {
		return nil, err
	}
	return exercise, nil
}

func (s *Service) generateAudioExercise(ctx context.Context, exercise *models.Exercise, sessionID string) error {
	var content models.AudioExerciseContent
	if err := s.transformer.TransformJSON(ctx, audioExercisePrompt(exercise.Topic, exercise.Difficulty), &content); err != nil {
		return err
	}
	if len(content.FillInBlanks) == 0 || len(content.OneWordAnswers) == 0 {
		return apperrors.New(apperrors.ErrCodeGenerationFailed, "model returned an incomplete audio exercise", 500)
	}

	if err := s.materializeAudioContent(ctx, &content, sessionID); err != nil {
		return err
	}

	cues, err := s.createAudioCues(ctx, sessionID)
	if err != nil {
		return err
	}

	exercise.Audio = &content
	exercise.Cues = cues
	return nil
}

func (s *Service) generateMatchingExercise(ctx context.Context, exercise *models.Exercise, sessionID string) error {
	var content models.MatchingContent
	if err := s.transformer.TransformJSON(ctx, matchingCardsPrompt(exercise.Topic, exercise.Difficulty), &content); err != nil {
		return err
	}
	if len(content.CardSets) == 0 {
		return apperrors.New(apperrors.ErrCodeGenerationFailed, "model returned no card sets", 500)
	}

	if err := s.materializeMatchingContent(ctx, &content, sessionID); err != nil {
		return err
	}
	exercise.Matching = &content
	return nil
}

func (s *Service) generateDragDropExercise(ctx context.Context, exercise *models.Exercise, sessionID string) error {
	var content models.DragDropContent
	if err := s.transformer.TransformJSON(ctx, dragDropPrompt(exercise.Topic, exercise.Difficulty), &content); err != nil {
		return err
	}
	if len(content.Pairs) == 0 {
		return apperrors.New(apperrors.ErrCodeGenerationFailed, "model returned no drag-drop pairs", 500)
	}

	if err := s.materializeDragDropContent(ctx, &content); err != nil {
		return err
	}
	exercise.DragDrop = &content
	return nil
}

func (s *Service) generateMultipleChoiceExercise(ctx context.Context, exercise *models.Exercise, sessionID string) error {
	var content models.MultipleChoiceContent
	if err := s.transformer.TransformJSON(ctx, multipleChoicePrompt(exercise.Topic, exercise.Difficulty), &content); err != nil {
		return err
	}
	if len(content.Questions) == 0 {
		return apperrors.New(apperrors.ErrCodeGenerationFailed, "model returned no questions", 500)
	}

	if err := s.materializeMultipleChoiceContent(ctx, &content); err != nil {
		return err
	}
	exercise.Choice = &content
	return nil
}

// speakToArtifact synthesizes text, persists the audio, and returns an
// artifact carrying its download URL
func (s *Service) speakToArtifact(ctx context.Context, text, sessionID, name string) (*models.GeneratedArtifact, error) {
	audio, err := s.speaker.SynthesizeBytes(ctx, text, synthesis.SlowProfile())
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("exercises/%s/%s.mp3", sessionID, name)
	if err := s.store.Upload(ctx, key, "audio/mpeg", bytes.NewReader(audio)); err != nil {
		log.Printf("[ERROR] Failed to persist exercise audio %s: %v", key, err)
		return nil, err
	}
	url, err := s.store.SignedURL(key)
	if err != nil {
		return nil, err
	}
	artifact := models.NewAudioArtifact(url, text)
	return &artifact, nil
}

// visualAid renders a description as either a sign-language video or a
// generated image, matching on the description wording
func (s *Service) visualAid(ctx context.Context, description string) (*models.GeneratedArtifact, error) {
	if strings.Contains(strings.ToLower(description), "sign language") {
		videoURL, err := s.renderer.Render(ctx, description)
		if err != nil {
			return nil, err
		}
		artifact := models.NewVideoArtifact(videoURL, description)
		return &artifact, nil
	}

	imageURL, err := s.illustrator.GenerateImage(ctx, description)
	if err != nil {
		return nil, err
	}
	artifact := models.NewImageArtifact(imageURL, description)
	return &artifact, nil
}

func (s *Service) createAudioCues(ctx context.Context, sessionID string) (*models.AudioCues, error) {
	cueTexts := []struct {
		name string
		text string
	}{
		{"start_cue", "Exercise starting now. Listen carefully."},
		{"next_question", "Next question."},
		{"correct", "Correct answer!"},
		{"incorrect", "Incorrect. Try again."},
		{"hint", "Here's a hint:"},
	}

	artifacts := make([]*models.GeneratedArtifact, len(cueTexts))
	for i, cue := range cueTexts {
		artifact, err := s.speakToArtifact(ctx, cue.text, sessionID, cue.name)
		if err != nil {
			return nil, err
		}
		artifacts[i] = artifact
	}

	return &models.AudioCues{
		Start:     *artifacts[0],
		Next:      *artifacts[1],
		Correct:   *artifacts[2],
		Incorrect: *artifacts[3],
		Hint:      *artifacts[4],
	}, nil
}
