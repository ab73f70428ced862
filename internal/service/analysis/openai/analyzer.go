// Package openai implements analysis.Analyzer over the OpenAI chat
// completions API.
package openai

import (
	"context"
	"errors"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"sales-call-insights-service/internal/models"
	"sales-call-insights-service/internal/service/analysis"
)

// Config holds the analyzer settings.
type Config struct {
	APIKey  string
	BaseURL string // override for tests; empty uses the OpenAI API
	Model   string
}

// DefaultConfig returns the analyzer settings used in production.
func DefaultConfig(apiKey string) Config {
	return Config{
		APIKey: apiKey,
		Model:  openai.GPT4o,
	}
}

// Analyzer sends the transcript plus the fixed instruction to the chat
// completions API and parses the JSON-only response.
type Analyzer struct {
	client *openai.Client
	model  string
}

// New creates an OpenAI analyzer from the given config.
func New(cfg Config) *Analyzer {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	model := cfg.Model
	if model == "" {
		model = openai.GPT4o
	}
	return &Analyzer{
		client: openai.NewClientWithConfig(clientCfg),
		model:  model,
	}
}

// Analyze requests a strict-JSON completion at low temperature and decodes
// it into the SalesAnalysis shape.
func (a *Analyzer) Analyze(ctx context.Context, transcript string) (models.SalesAnalysis, error) {
	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       a.model,
		Temperature: analysis.Temperature,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: analysis.SystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: transcript},
		},
	})
	if err != nil {
		return models.SalesAnalysis{}, fmt.Errorf("openai completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return models.SalesAnalysis{}, errors.New("openai completion returned no choices")
	}

	return analysis.Parse([]byte(resp.Choices[0].Message.Content))
}
