package texttransform

import (
	"context"

	openai "github.com/sashabaranov/go-openai"
)

// TaskKind selects the prompt template applied to a transform
type TaskKind string

const (
	// TaskSimplify rewrites text in clear simple sections with term explanations
	TaskSimplify TaskKind = "simplify"
	// TaskSummarize produces a concise summary
	TaskSummarize TaskKind = "summarize"
	// TaskSummarizeAndExplain produces a summary plus a detailed breakdown
	TaskSummarizeAndExplain TaskKind = "summarize_and_explain"
	// TaskKeyPoints extracts and explains the most important ideas
	TaskKeyPoints TaskKind = "key_points"
	// TaskFocusGuide builds a study guide with questions and memory aids
	TaskFocusGuide TaskKind = "focus_guide"
	// TaskSimplifyForHearing summarizes content for hearing impaired readers
	TaskSimplifyForHearing TaskKind = "simplify_for_hearing"
	// TaskSimplifyAndSummarize condenses text for listeners of synthesized audio
	TaskSimplifyAndSummarize TaskKind = "simplify_and_summarize"
)

// Service runs text through a language model
type Service interface {
	// Transform rewrites text according to the given task
	Transform(ctx context.Context, text string, task TaskKind) (string, error)
	// TransformJSON asks the model for a JSON document matching the prompt's
	// schema and unmarshals it into out
	TransformJSON(ctx context.Context, prompt string, out any) error
}

// ChatClient is the slice of the OpenAI client the service needs.
// *openai.Client satisfies it.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}
