// Package imagegen produces supporting illustrations for exercises.
package imagegen

import (
	"context"
	"log"

	openai "github.com/sashabaranov/go-openai"

	apperrors "github.com/adaptlearn/access-api/pkg/errors"
)

const promptPrefix = "Create a simple, clear, and engaging visual for cognitive disability support: "

// ImageClient is the slice of the OpenAI client the service needs
type ImageClient interface {
	CreateImage(ctx context.Context, req openai.ImageRequest) (openai.ImageResponse, error)
}

// Service generates illustration images and returns their hosted URLs
type Service struct {
	client ImageClient
}

// NewService creates an image generation service
func NewService(client ImageClient) *Service {
	return &Service{client: client}
}

// GenerateImage renders a single 512x512 illustration for description and
// returns its URL
func (s *Service) GenerateImage(ctx context.Context, description string) (string, error) {
	if description == "" {
		return "", apperrors.New(apperrors.ErrCodeGenerationFailed, "cannot generate image for empty description", 400)
	}

	resp, err := s.client.CreateImage(ctx, openai.ImageRequest{
		Prompt: promptPrefix + description,
		N:      1,
		Size:   openai.CreateImageSize512x512,
	})
	if err != nil {
		log.Printf("[ERROR] Image generation failed: %v", err)
		return "", apperrors.GenerationError(err)
	}
	if len(resp.Data) == 0 || resp.Data[0].URL == "" {
		return "", apperrors.New(apperrors.ErrCodeGenerationFailed, "image generation returned no result", 500)
	}
	return resp.Data[0].URL, nil
}
