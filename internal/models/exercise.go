package models

import "time"

// ExerciseKind selects the structure of a generated practice exercise.
type ExerciseKind string

const (
	ExerciseFillInBlank    ExerciseKind = "fill-in-blank"
	ExerciseMatchingCards  ExerciseKind = "matching-cards"
	ExerciseDragDrop       ExerciseKind = "drag-drop"
	ExerciseMultipleChoice ExerciseKind = "multiple-choice"
)

// ValidExerciseKind reports whether k is one of the supported kinds.
func ValidExerciseKind(k ExerciseKind) bool {
	switch k {
	case ExerciseFillInBlank, ExerciseMatchingCards, ExerciseDragDrop, ExerciseMultipleChoice:
		return true
	}
	return false
}

// FillInBlank is a single fill-in-the-blank question. QuestionAudio is
// attached during materialization.
type FillInBlank struct {
	Question      string             `json:"question"`
	Answer        string             `json:"answer"`
	BeforeBlank   string             `json:"beforeBlank"`
	AfterBlank    string             `json:"afterBlank"`
	QuestionAudio *GeneratedArtifact `json:"question_audio,omitempty"`
}

// OneWordAnswer is a spoken short-answer question with an audible hint.
type OneWordAnswer struct {
	Question      string             `json:"question"`
	Answer        string             `json:"answer"`
	Hint          string             `json:"hint"`
	QuestionAudio *GeneratedArtifact `json:"question_audio,omitempty"`
	HintAudio     *GeneratedArtifact `json:"hint_audio,omitempty"`
}

// AudioExerciseContent is the audio-first exercise payload (fill-in-blank kind).
type AudioExerciseContent struct {
	Introduction      string             `json:"introduction"`
	FillInBlanks      []FillInBlank      `json:"fillInBlanks"`
	OneWordAnswers    []OneWordAnswer    `json:"oneWordAnswers"`
	IntroductionAudio *GeneratedArtifact `json:"introduction_audio,omitempty"`
}

// AudioCues are the fixed prompts played around audio exercises.
type AudioCues struct {
	Start     GeneratedArtifact `json:"start"`
	Next      GeneratedArtifact `json:"next"`
	Correct   GeneratedArtifact `json:"correct"`
	Incorrect GeneratedArtifact `json:"incorrect"`
	Hint      GeneratedArtifact `json:"hint"`
}

// MatchingCard is one card in a matching set. VisualAid carries the
// materialized image (or sign-language video) for VisualDescription.
type MatchingCard struct {
	Text              string             `json:"text"`
	IsCorrect         bool               `json:"isCorrect"`
	VisualDescription string             `json:"visualDescription"`
	Hint              string             `json:"hint"`
	VisualAid         *GeneratedArtifact `json:"visual_aid,omitempty"`
	HintAudio         *GeneratedArtifact `json:"hint_audio,omitempty"`
}

// MatchingCardSet is one question with its candidate cards.
type MatchingCardSet struct {
	Question      string             `json:"question"`
	Cards         []MatchingCard     `json:"cards"`
	Difficulty    string             `json:"difficulty"`
	QuestionAudio *GeneratedArtifact `json:"question_audio,omitempty"`
}

// MatchingContent is the card-matching exercise payload.
type MatchingContent struct {
	Instructions      string              `json:"instructions"`
	CardSets          []MatchingCardSet   `json:"cardSets"`
	ProgressiveHints  []string            `json:"progressiveHints"`
	InstructionsAudio *GeneratedArtifact  `json:"instructions_audio,omitempty"`
	HintAudio         []GeneratedArtifact `json:"hint_audio,omitempty"`
}

// DragDropItem is one side of a drag-drop pair.
type DragDropItem struct {
	Text        string             `json:"text"`
	Description string             `json:"description"`
	VisualAid   *GeneratedArtifact `json:"visual_aid,omitempty"`
}

// DragDropPair couples a draggable element with its target.
type DragDropPair struct {
	Draggable DragDropItem `json:"draggable"`
	Target    DragDropItem `json:"target"`
}

// DragDropFeedback holds the visual feedback messages shown on a match.
type DragDropFeedback struct {
	Correct   string `json:"correct"`
	Incorrect string `json:"incorrect"`
}

// DragDropContent is the drag-and-drop exercise payload.
type DragDropContent struct {
	Instructions string           `json:"instructions"`
	Pairs        []DragDropPair   `json:"pairs"`
	Feedback     DragDropFeedback `json:"feedback"`
}

// MultipleChoiceOption is one selectable answer with its explanation.
type MultipleChoiceOption struct {
	Text        string             `json:"text"`
	IsCorrect   bool               `json:"isCorrect"`
	Explanation string             `json:"explanation"`
	VisualAid   *GeneratedArtifact `json:"visual_aid,omitempty"`
}

// MultipleChoiceQuestion is one question with four options and a visual hint.
type MultipleChoiceQuestion struct {
	Question   string                 `json:"question"`
	Options    []MultipleChoiceOption `json:"options"`
	VisualHint string                 `json:"visualHint"`
	HintVisual *GeneratedArtifact     `json:"hint_visual,omitempty"`
}

// MultipleChoiceContent is the multiple-choice exercise payload.
type MultipleChoiceContent struct {
	Instructions string                   `json:"instructions"`
	Questions    []MultipleChoiceQuestion `json:"questions"`
}

// Exercise is a fully materialized practice exercise. Exactly one of the
// content fields is set, matching Kind. An exercise is returned only when
// every sub-element's audio or visual artifact was produced.
type Exercise struct {
	Topic      string                 `json:"topic"`
	Difficulty string                 `json:"difficulty"`
	Kind       ExerciseKind           `json:"kind"`
	Audio      *AudioExerciseContent  `json:"audio_content,omitempty"`
	Matching   *MatchingContent       `json:"matching_content,omitempty"`
	DragDrop   *DragDropContent       `json:"drag_drop_content,omitempty"`
	Choice     *MultipleChoiceContent `json:"multiple_choice_content,omitempty"`
	Cues       *AudioCues             `json:"audio_cues,omitempty"`
	Timestamp  time.Time              `json:"timestamp"`
}
