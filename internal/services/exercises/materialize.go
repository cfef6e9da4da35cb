package exercises

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/adaptlearn/access-api/internal/models"
)

// maxMaterializeConcurrency caps parallel calls to external services during
// fan-out
const maxMaterializeConcurrency = 4

// materializeAudioContent attaches question and hint audio to every element
// of an audio exercise. Calls run concurrently and join by index; any failure
// aborts the whole materialization.
func (s *Service) materializeAudioContent(ctx context.Context, content *models.AudioExerciseContent, sessionID string) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxMaterializeConcurrency)

	g.Go(func() error {
		artifact, err := s.speakToArtifact(gctx, content.Introduction, sessionID, "intro")
		if err != nil {
			return err
		}
		content.IntroductionAudio = artifact
		return nil
	})

	for i := range content.FillInBlanks {
		q := &content.FillInBlanks[i]
		name := fmt.Sprintf("fill_blank_%d", i)
		g.Go(func() error {
			spoken := fmt.Sprintf("Fill in the blank: %s blank %s", q.BeforeBlank, q.AfterBlank)
			artifact, err := s.speakToArtifact(gctx, spoken, sessionID, name)
			if err != nil {
				return err
			}
			q.QuestionAudio = artifact
			return nil
		})
	}

	for i := range content.OneWordAnswers {
		q := &content.OneWordAnswers[i]
		questionName := fmt.Sprintf("one_word_%d", i)
		hintName := fmt.Sprintf("hint_%d", i)
		g.Go(func() error {
			artifact, err := s.speakToArtifact(gctx, q.Question, sessionID, questionName)
			if err != nil {
				return err
			}
			q.QuestionAudio = artifact
			return nil
		})
		g.Go(func() error {
			artifact, err := s.speakToArtifact(gctx, q.Hint, sessionID, hintName)
			if err != nil {
				return err
			}
			q.HintAudio = artifact
			return nil
		})
	}

	return g.Wait()
}

// materializeMatchingContent attaches visual aids, question audio, and hint
// audio to a matching exercise
func (s *Service) materializeMatchingContent(ctx context.Context, content *models.MatchingContent, sessionID string) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxMaterializeConcurrency)

	g.Go(func() error {
		artifact, err := s.speakToArtifact(gctx, content.Instructions, sessionID, "instructions")
		if err != nil {
			return err
		}
		content.InstructionsAudio = artifact
		return nil
	})

	hintAudio := make([]models.GeneratedArtifact, len(content.ProgressiveHints))
	for i, hint := range content.ProgressiveHints {
		i, hint := i, hint
		name := fmt.Sprintf("progressive_hint_%d", i)
		g.Go(func() error {
			artifact, err := s.speakToArtifact(gctx, hint, sessionID, name)
			if err != nil {
				return err
			}
			hintAudio[i] = *artifact
			return nil
		})
	}

	for si := range content.CardSets {
		set := &content.CardSets[si]
		questionName := fmt.Sprintf("question_%d", si)
		g.Go(func() error {
			artifact, err := s.speakToArtifact(gctx, set.Question, sessionID, questionName)
			if err != nil {
				return err
			}
			set.QuestionAudio = artifact
			return nil
		})

		for ci := range set.Cards {
			card := &set.Cards[ci]
			hintName := fmt.Sprintf("card_hint_%d_%d", si, ci)
			g.Go(func() error {
				artifact, err := s.visualAid(gctx, card.VisualDescription)
				if err != nil {
					return err
				}
				card.VisualAid = artifact
				return nil
			})
			g.Go(func() error {
				artifact, err := s.speakToArtifact(gctx, card.Hint, sessionID, hintName)
				if err != nil {
					return err
				}
				card.HintAudio = artifact
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return err
	}
	content.HintAudio = hintAudio
	return nil
}

// materializeDragDropContent attaches a visual aid to both sides of every
// pair
func (s *Service) materializeDragDropContent(ctx context.Context, content *models.DragDropContent) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxMaterializeConcurrency)

	for i := range content.Pairs {
		pair := &content.Pairs[i]
		g.Go(func() error {
			artifact, err := s.visualAid(gctx, pair.Draggable.Description)
			if err != nil {
				return err
			}
			pair.Draggable.VisualAid = artifact
			return nil
		})
		g.Go(func() error {
			artifact, err := s.visualAid(gctx, pair.Target.Description)
			if err != nil {
				return err
			}
			pair.Target.VisualAid = artifact
			return nil
		})
	}

	return g.Wait()
}

// materializeMultipleChoiceContent attaches a hint image per question and an
// explanatory visual per option
func (s *Service) materializeMultipleChoiceContent(ctx context.Context, content *models.MultipleChoiceContent) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxMaterializeConcurrency)

	for qi := range content.Questions {
		question := &content.Questions[qi]
		g.Go(func() error {
			artifact, err := s.visualAid(gctx, question.VisualHint)
			if err != nil {
				return err
			}
			question.HintVisual = artifact
			return nil
		})

		for oi := range question.Options {
			option := &question.Options[oi]
			g.Go(func() error {
				artifact, err := s.visualAid(gctx, option.Explanation)
				if err != nil {
					return err
				}
				option.VisualAid = artifact
				return nil
			})
		}
	}

	return g.Wait()
}
