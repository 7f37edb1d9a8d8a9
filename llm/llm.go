// Package llm wraps the language-model service used for response
// generation and fact extraction.
package llm

import "context"

// Generator produces a text completion for a fully assembled prompt.
// Implementations are stateless per call.
type Generator interface {
	Generate(ctx context.Context, prompt string, opts ...Option) (string, error)
}

// Options are per-call overrides of the generator's construction-time
// sampling parameters.
type Options struct {
	Temperature float64
	MaxTokens   int64
}

// Option overrides a sampling parameter for a single call.
type Option func(*Options)

// WithTemperature overrides the sampling temperature.
func WithTemperature(t float64) Option {
	return func(o *Options) {
		o.Temperature = t
	}
}

// WithMaxTokens overrides the output token limit.
func WithMaxTokens(n int64) Option {
	return func(o *Options) {
		o.MaxTokens = n
	}
}
