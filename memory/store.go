package memory

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/ReminisceHackathon/Reminisce/core"
)

// MemoryStore provides the high-level memory operations: save, similarity
// search, namespace purge, and diagnostics. It owns embedding of both
// stored texts and queries; callers never see vectors.
type MemoryStore struct {
	backend  Store
	embedder Embedder
	config   *Config
}

// New creates a MemoryStore. The embedder's output dimension must match
// config.VectorDimension; a mismatch is a setup error.
func New(backend Store, embedder Embedder, config *Config) (*MemoryStore, error) {
	if config == nil {
		config = DefaultConfig
	}
	if dims := embedder.Dimensions(); dims != config.VectorDimension {
		return nil, fmt.Errorf("embedder produces %d-dim vectors, config expects %d", dims, config.VectorDimension)
	}
	return &MemoryStore{
		backend:  backend,
		embedder: embedder,
		config:   config,
	}, nil
}

// Config returns the store's policy settings.
func (m *MemoryStore) Config() *Config {
	return m.config
}

// Save embeds text and writes a new record into the user's namespace.
// Returns the generated record ID. Every save creates a fresh record;
// there is no update-in-place, so concurrent saves for one user are safe.
func (m *MemoryStore) Save(ctx context.Context, text, userID string, category core.Category) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: empty text", core.ErrStoreWrite)
	}

	embedding, err := m.embedder.Embed(ctx, text)
	if err != nil {
		return "", fmt.Errorf("%w: %w", core.ErrStoreWrite, err)
	}

	rec := NewRecord(userID, text, category)
	rec.Embedding = embedding

	if err := m.backend.Insert(ctx, rec); err != nil {
		return "", fmt.Errorf("%w: %w", core.ErrStoreWrite, err)
	}

	log.Printf("[MEMORY] Saved memory for user %s: %s", userID, truncateLog(text, 50))
	return rec.ID, nil
}

// Search returns the most relevant memories for the query using the
// configured top-k and relevance threshold.
func (m *MemoryStore) Search(ctx context.Context, query, userID string) ([]Retrieved, error) {
	return m.SearchWith(ctx, query, userID, m.config.TopK, m.config.RelevanceThreshold)
}

// SearchWith is Search with explicit top-k and threshold. Results are
// sorted by score descending; ties break toward the most recent record.
// An empty or unqualifying namespace yields an empty result, not an error.
func (m *MemoryStore) SearchWith(ctx context.Context, query, userID string, topK int, threshold float64) ([]Retrieved, error) {
	embedding, err := m.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", core.ErrEmbedding, err)
	}

	results, err := m.backend.Query(ctx, userID, embedding, topK)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", core.ErrStoreRead, err)
	}

	relevant := results[:0]
	for _, r := range results {
		if r.Score >= threshold {
			relevant = append(relevant, r)
		}
	}

	sort.SliceStable(relevant, func(i, j int) bool {
		if relevant[i].Score != relevant[j].Score {
			return relevant[i].Score > relevant[j].Score
		}
		return relevant[i].CreatedAt.After(relevant[j].CreatedAt)
	})

	if len(relevant) > topK {
		relevant = relevant[:topK]
	}

	log.Printf("[MEMORY] Found %d relevant memories for user %s (query: %s)",
		len(relevant), userID, truncateLog(query, 50))
	return relevant, nil
}

// DeleteAll removes every memory in the user's namespace. Idempotent:
// purging an empty or never-used namespace succeeds silently.
func (m *MemoryStore) DeleteAll(ctx context.Context, userID string) error {
	if err := m.backend.DeleteAll(ctx, userID); err != nil {
		return fmt.Errorf("%w: %w", core.ErrStoreWrite, err)
	}
	log.Printf("[MEMORY] Deleted all memories for user %s", userID)
	return nil
}

// Stats returns the number of records in the user's namespace.
// Diagnostics only.
func (m *MemoryStore) Stats(ctx context.Context, userID string) (int, error) {
	count, err := m.backend.Count(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", core.ErrStoreRead, err)
	}
	return count, nil
}

// truncateLog truncates text for logging.
func truncateLog(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
