// Package mock provides a deterministic embedder for tests: identical
// texts always map to identical unit vectors, without any model files
// or network access.
package mock

import (
	"context"
	"fmt"
	"hash/fnv"
	"math"
	"strings"

	"github.com/ReminisceHackathon/Reminisce/core"
)

// Embedder generates hash-seeded pseudo-random embeddings. It gives no
// real semantic similarity, but same-text queries score ~1.0, which is
// what the tests rely on.
type Embedder struct {
	dimensions int
}

// New creates a mock embedder producing vectors of the given size.
func New(dimensions int) *Embedder {
	return &Embedder{dimensions: dimensions}
}

// Embed creates a deterministic unit vector from the text hash.
func (m *Embedder) Embed(ctx context.Context, text string) ([]float32, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: empty text", core.ErrEmbedding)
	}

	h := fnv.New64a()
	h.Write([]byte(text))
	seed := h.Sum64()

	embedding := make([]float32, m.dimensions)
	for i := range embedding {
		// LCG keeps the sequence reproducible per seed
		seed = seed*6364136223846793005 + 1442695040888963407
		embedding[i] = float32(int64(seed)) / float32(math.MaxInt64)
	}

	return normalize(embedding), nil
}

// Dimensions returns the embedding size.
func (m *Embedder) Dimensions() int {
	return m.dimensions
}

// normalize converts the vector to unit length.
func normalize(vec []float32) []float32 {
	var norm float32
	for _, v := range vec {
		norm += v * v
	}
	if norm == 0 {
		return vec
	}

	norm = float32(math.Sqrt(float64(norm)))
	for i, v := range vec {
		vec[i] = v / norm
	}
	return vec
}
