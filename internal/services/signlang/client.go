// Package signlang renders text as sign-language video through an external
// rendering API.
package signlang

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	apperrors "github.com/adaptlearn/access-api/pkg/errors"
)

// Client handles communication with the sign-language rendering API
type Client struct {
	httpClient *http.Client
	endpoint   string
	apiKey     string
}

// Config holds configuration for the sign-language client
type Config struct {
	Endpoint string
	APIKey   string
	Timeout  time.Duration
}

type renderRequest struct {
	Text    string `json:"text"`
	APIKey  string `json:"apiKey"`
	Format  string `json:"format"`
	Quality string `json:"quality"`
}

type renderResponse struct {
	VideoURL string `json:"videoUrl"`
}

// NewClient creates a new sign-language rendering client
func NewClient(cfg Config) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = 60 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		endpoint:   cfg.Endpoint,
		apiKey:     cfg.APIKey,
	}
}

// Render submits text for rendering and returns the URL of the produced
// video. There is no fallback: any transport or API failure surfaces as a
// rendering error.
func (c *Client) Render(ctx context.Context, text string) (string, error) {
	if text == "" {
		return "", apperrors.New(apperrors.ErrCodeRenderingFailed, "cannot render empty text", 400)
	}

	body, err := json.Marshal(renderRequest{
		Text:    text,
		APIKey:  c.apiKey,
		Format:  "video",
		Quality: "high",
	})
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.ErrCodeRenderingFailed, "failed to encode render request", 500)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.ErrCodeRenderingFailed, "failed to create render request", 500)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[ERROR] Sign-language render request failed: %v", err)
		return "", apperrors.RenderingError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("[ERROR] Sign-language API returned status %d", resp.StatusCode)
		return "", apperrors.New(apperrors.ErrCodeRenderingFailed,
			fmt.Sprintf("sign-language API returned status %d", resp.StatusCode), 500)
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.ErrCodeRenderingFailed, "failed to read render response", 500)
	}

	var result renderResponse
	if err := json.Unmarshal(payload, &result); err != nil {
		return "", apperrors.Wrap(err, apperrors.ErrCodeRenderingFailed, "failed to decode render response", 500)
	}
	if result.VideoURL == "" {
		return "", apperrors.New(apperrors.ErrCodeRenderingFailed, "render response missing video URL", 500)
	}
	return result.VideoURL, nil
}
