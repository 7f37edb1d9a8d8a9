package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ReminisceHackathon/Reminisce/core"
)

// Record is one long-term fact stored for a user. Records are immutable
// after creation and live inside exactly one user namespace; they are only
// ever removed by a full-namespace purge.
type Record struct {
	ID        string
	UserID    string
	Text      string
	Category  core.Category
	CreatedAt time.Time
	Embedding []float32
}

// NewRecord creates a Record with a fresh unique ID. The embedding is set
// by MemoryStore before the record reaches the backend.
func NewRecord(userID, text string, category core.Category) Record {
	if category == "" {
		category = core.CategoryGeneral
	}
	return Record{
		ID:        uuid.New().String(),
		UserID:    userID,
		Text:      text,
		Category:  category,
		CreatedAt: time.Now().UTC(),
	}
}

// Retrieved is a Record annotated with its similarity score at query time.
// It is ephemeral and scoped to a single request.
type Retrieved struct {
	Record
	Score float64
}

// Store is the vector storage backend interface.
// Implementations: chromem.Store (embedded, local), or a hosted index
// (Pinecone-style) in production. Every operation is scoped to exactly
// one user namespace; implementations must never read or write across
// namespaces.
type Store interface {
	// Insert writes a record into its user's namespace.
	// The record must have its embedding set.
	Insert(ctx context.Context, rec Record) error

	// Query returns up to limit records from the user's namespace by
	// vector similarity, highest first. An empty namespace yields an
	// empty result, not an error.
	Query(ctx context.Context, userID string, embedding []float32, limit int) ([]Retrieved, error)

	// DeleteAll removes every record in the user's namespace.
	// Idempotent: deleting an empty namespace succeeds.
	DeleteAll(ctx context.Context, userID string) error

	// Count returns the number of records in the user's namespace.
	Count(ctx context.Context, userID string) (int, error)
}

// Embedder converts text to fixed-length vector embeddings.
// Implementations: mock (testing), gemini (Vertex AI), onnx (offline).
type Embedder interface {
	// Embed converts a single text to an embedding vector.
	Embed(ctx context.Context, text string) ([]float32, error)

	// Dimensions returns the embedding vector size.
	Dimensions() int
}
