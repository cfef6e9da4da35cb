package texttransform

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	apperrors "github.com/adaptlearn/access-api/pkg/errors"
)

const systemPrompt = "You are an assistant that adapts educational content " +
	"for accessibility. Follow the formatting instructions exactly."

// OpenAIService implements Service using chat completions
type OpenAIService struct {
	client ChatClient
	model  string
}

// NewService creates a transform service. model may be empty, in which case
// GPT-4o mini is used.
func NewService(client ChatClient, model string) *OpenAIService {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIService{client: client, model: model}
}

// Transform rewrites text according to the given task
func (s *OpenAIService) Transform(ctx context.Context, text string, task TaskKind) (string, error) {
	prompt, ok := promptFor(task, text)
	if !ok {
		return "", apperrors.New(apperrors.ErrCodeTransformFailed, fmt.Sprintf("unknown transform task: %s", task), 500)
	}

	content, err := s.complete(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", err
	}
	return content, nil
}

// TransformJSON asks the model for a JSON document and unmarshals it into out.
// A response that does not parse is a transform failure; there is no retry.
func (s *OpenAIService) TransformJSON(ctx context.Context, prompt string, out any) error {
	content, err := s.complete(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: "Respond with a single JSON object only. No prose, no code fences."},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return err
	}

	if err := json.Unmarshal([]byte(stripCodeFence(content)), out); err != nil {
		log.Printf("[ERROR] Failed to parse model JSON response: %v", err)
		return apperrors.Wrap(err, apperrors.ErrCodeTransformFailed, "model returned malformed JSON", 500)
	}
	return nil
}

func (s *OpenAIService) complete(ctx context.Context, req openai.ChatCompletionRequest) (string, error) {
	resp, err := s.client.CreateChatCompletion(ctx, req)
	if err != nil {
		log.Printf("[ERROR] Chat completion failed: %v", err)
		return "", apperrors.TransformError(err)
	}

	if len(resp.Choices) == 0 {
		return "", apperrors.New(apperrors.ErrCodeTransformFailed, "model returned no choices", 500)
	}
	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", apperrors.New(apperrors.ErrCodeTransformFailed, "model returned empty content", 500)
	}
	return content, nil
}

// stripCodeFence removes a markdown fence if the model wrapped its JSON in one
func stripCodeFence(content string) string {
	trimmed := strings.TrimSpace(content)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
