// Package gemini embeds text with Vertex AI embedding models through the
// google.golang.org/genai client.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/ReminisceHackathon/Reminisce/core"
)

// Config configures the Vertex AI embedder.
type Config struct {
	// Project is the Google Cloud project ID.
	Project string

	// Location is the Google Cloud region (default: us-central1).
	Location string

	// Model is the embedding model name (default: text-embedding-004).
	Model string

	// Dimensions is the embedding vector size (default: 768,
	// text-embedding-004's native output).
	Dimensions int
}

// Embedder calls Vertex AI for text embeddings. Deterministic for a fixed
// model version; no retry logic, callers decide how to treat failures.
type Embedder struct {
	client     *genai.Client
	model      string
	dimensions int
}

// New creates a Vertex AI embedder using Application Default Credentials.
func New(ctx context.Context, cfg Config) (*Embedder, error) {
	if cfg.Project == "" {
		return nil, fmt.Errorf("Project is required")
	}
	if cfg.Location == "" {
		cfg.Location = "us-central1"
	}
	if cfg.Model == "" {
		cfg.Model = "text-embedding-004"
	}
	if cfg.Dimensions == 0 {
		cfg.Dimensions = 768
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Project:  cfg.Project,
		Location: cfg.Location,
		Backend:  genai.BackendVertexAI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &Embedder{
		client:     client,
		model:      cfg.Model,
		dimensions: cfg.Dimensions,
	}, nil
}

// Embed converts text to an embedding vector.
func (e *Embedder) Embed(ctx context.Context, text string) ([]float32, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: empty text", core.ErrEmbedding)
	}

	dims := int32(e.dimensions)
	resp, err := e.client.Models.EmbedContent(ctx, e.model, genai.Text(text), &genai.EmbedContentConfig{
		OutputDimensionality: &dims,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrEmbedding, err)
	}
	if len(resp.Embeddings) == 0 || len(resp.Embeddings[0].Values) == 0 {
		return nil, fmt.Errorf("%w: empty embedding response", core.ErrEmbedding)
	}

	values := resp.Embeddings[0].Values
	if len(values) != e.dimensions {
		return nil, fmt.Errorf("%w: model returned %d dimensions, expected %d",
			core.ErrEmbedding, len(values), e.dimensions)
	}
	return values, nil
}

// Dimensions returns the embedding vector size.
func (e *Embedder) Dimensions() int {
	return e.dimensions
}
