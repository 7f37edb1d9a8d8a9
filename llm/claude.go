package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/ReminisceHackathon/Reminisce/core"
)

// Config configures the Claude generator.
type Config struct {
	// APIKey is the Anthropic API key.
	APIKey string

	// Model is the Claude model name (default: claude-sonnet-4-20250514).
	Model string

	// Temperature is the default sampling temperature (default: 0.7).
	Temperature float64

	// MaxTokens is the default response token limit (default: 1024).
	MaxTokens int64
}

// Claude generates completions through the Anthropic Messages API.
type Claude struct {
	client      anthropic.Client
	model       string
	temperature float64
	maxTokens   int64
}

// NewClaude creates a Claude generator.
func NewClaude(cfg Config) *Claude {
	if cfg.Model == "" {
		cfg.Model = "claude-sonnet-4-20250514"
	}
	if cfg.Temperature == 0 {
		cfg.Temperature = 0.7
	}
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = 1024
	}
	return &Claude{
		client:      anthropic.NewClient(option.WithAPIKey(cfg.APIKey)),
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
	}
}

// Generate sends the prompt as a single user message and returns the
// completion text. An upstream failure or an empty completion fails with
// core.ErrGeneration; there is no fallback text.
func (c *Claude) Generate(ctx context.Context, prompt string, opts ...Option) (string, error) {
	options := Options{
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
	}
	for _, opt := range opts {
		opt(&options)
	}

	resp, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(c.model),
		MaxTokens:   options.MaxTokens,
		Temperature: anthropic.Float(options.Temperature),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", core.ErrGeneration, err)
	}

	var text string
	for _, block := range resp.Content {
		if block.Type == "text" {
			text += block.Text
		}
	}
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: empty completion", core.ErrGeneration)
	}

	return text, nil
}
