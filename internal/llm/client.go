// Package llm wraps an OpenAI-compatible chat endpoint (OpenRouter, Ollama,
// LM Studio, vLLM, ...) behind the one call shape this app needs.
package llm

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/sashabaranov/go-openai"
)

// Config holds the endpoint configuration.
type Config struct {
	BaseURL string // e.g. "https://openrouter.ai/api/v1"
	APIKey  string
	Model   string // e.g. "openai/gpt-4o-mini"
	Timeout time.Duration
}

// Client is a thin wrapper around the go-openai client.
type Client struct {
	api   *openai.Client
	model string
}

// NewClient creates a client for the configured endpoint.
func NewClient(cfg Config) *Client {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}
	if cfg.Timeout > 0 {
		clientConfig.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}

	return &Client{
		api:   openai.NewClientWithConfig(clientConfig),
		model: cfg.Model,
	}
}

// Complete sends a single-turn prompt and returns the raw text response.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.3,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("model returned no choices")
	}

	content := resp.Choices[0].Message.Content
	if content == "" {
		return "", fmt.Errorf("model returned empty content")
	}

	return content, nil
}
