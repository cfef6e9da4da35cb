// Package vision describes still video frames for listeners who cannot see
// them, via a multimodal chat model.
package vision

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	apperrors "github.com/adaptlearn/access-api/pkg/errors"
)

// Audience selects the register of the generated description
type Audience string

const (
	// AudienceVisuallyImpaired asks for detailed scene narration
	AudienceVisuallyImpaired Audience = "visually_impaired"
	// AudienceCognitive asks for short plain-language descriptions
	AudienceCognitive Audience = "cognitive"
)

var audiencePrompts = map[Audience]string{
	AudienceVisuallyImpaired: "Please provide a detailed audio description of this video scene for a visually impaired person. " +
		"Focus on important visual elements, actions, and context.",
	AudienceCognitive: "Describe this video scene in short, simple sentences for someone with a cognitive disability. " +
		"Name the main people and objects and what is happening. Avoid figurative language.",
}

// ChatClient is the slice of the OpenAI client the service needs
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Service generates frame descriptions
type Service struct {
	client ChatClient
	model  string
}

// NewService creates a vision service. model may be empty, in which case
// GPT-4o is used.
func NewService(client ChatClient, model string) *Service {
	if model == "" {
		model = openai.GPT4o
	}
	return &Service{client: client, model: model}
}

// DescribeFrame returns a textual description of a JPEG frame for the given
// audience
func (s *Service) DescribeFrame(ctx context.Context, frameJPEG []byte, audience Audience) (string, error) {
	if len(frameJPEG) == 0 {
		return "", apperrors.New(apperrors.ErrCodeTransformFailed, "cannot describe an empty frame", 400)
	}
	prompt, ok := audiencePrompts[audience]
	if !ok {
		return "", apperrors.New(apperrors.ErrCodeTransformFailed, fmt.Sprintf("unknown audience: %s", audience), 500)
	}

	dataURL := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(frameJPEG)

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{Type: openai.ChatMessagePartTypeText, Text: prompt},
					{
						Type:     openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{URL: dataURL, Detail: openai.ImageURLDetailAuto},
					},
				},
			},
		},
	})
	if err != nil {
		log.Printf("[ERROR] Frame description failed: %v", err)
		return "", apperrors.TransformError(err)
	}
	if len(resp.Choices) == 0 {
		return "", apperrors.New(apperrors.ErrCodeTransformFailed, "model returned no choices", 500)
	}

	description := strings.TrimSpace(resp.Choices[0].Message.Content)
	if description == "" {
		return "", apperrors.New(apperrors.ErrCodeTransformFailed, "model returned an empty description", 500)
	}
	return description, nil
}
