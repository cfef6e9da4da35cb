package types

// HearingMediaRequest selects an uploaded file and output format for the
// hearing pipeline
type HearingMediaRequest struct {
	FilePath   string `json:"file_path" binding:"required"`
	OutputType string `json:"output_type"`
}

// VisualMediaRequest selects an uploaded file for the visual pipeline
type VisualMediaRequest struct {
	FilePath        string `json:"file_path" binding:"required"`
	Simplify        bool   `json:"simplify"`
	IntervalSeconds int    `json:"interval_seconds"`
}

// CognitiveMediaRequest selects an uploaded file for the cognitive pipeline
type CognitiveMediaRequest struct {
	FilePath string `json:"file_path" binding:"required"`
}

// TextRequest carries raw text input for a pipeline
type TextRequest struct {
	Text     string `json:"text" binding:"required"`
	Simplify bool   `json:"simplify"`
}

// ExerciseRequest describes the exercise to generate
type ExerciseRequest struct {
	Topic      string `json:"topic" binding:"required"`
	Difficulty string `json:"difficulty"`
	Kind       string `json:"kind" binding:"required"`
}
