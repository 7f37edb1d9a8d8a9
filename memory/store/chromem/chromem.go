// Package chromem implements the memory.Store backend on chromem-go,
// a pure Go embedded vector database.
package chromem

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	chromem "github.com/philippgille/chromem-go"

	"github.com/ReminisceHackathon/Reminisce/core"
	"github.com/ReminisceHackathon/Reminisce/memory"
)

// Store keeps one chromem collection per user namespace. Isolation is
// structural: an operation can only ever touch the collection derived
// from its user ID.
type Store struct {
	db          *chromem.DB
	collections map[string]*chromem.Collection
	mu          sync.RWMutex
}

// New creates an empty in-memory store.
func New() (*Store, error) {
	return &Store{
		db:          chromem.NewDB(),
		collections: make(map[string]*chromem.Collection),
	}, nil
}

func collectionName(userID string) string {
	return "user_" + userID
}

// getOrCreateCollection returns the collection for a user namespace,
// creating it on first use.
func (s *Store) getOrCreateCollection(userID string) (*chromem.Collection, error) {
	s.mu.RLock()
	col, exists := s.collections[userID]
	s.mu.RUnlock()

	if exists {
		return col, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Double-check after acquiring write lock
	if col, exists := s.collections[userID]; exists {
		return col, nil
	}

	// nil embedding func: callers always provide embeddings.
	// nil distance func: default cosine similarity.
	col, err := s.db.CreateCollection(collectionName(userID), nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create collection: %w", err)
	}

	s.collections[userID] = col
	return col, nil
}

// Insert writes a record into its user's collection.
func (s *Store) Insert(ctx context.Context, rec memory.Record) error {
	col, err := s.getOrCreateCollection(rec.UserID)
	if err != nil {
		return err
	}

	doc := chromem.Document{
		ID:        rec.ID,
		Content:   rec.Text,
		Embedding: rec.Embedding,
		Metadata: map[string]string{
			"user_id":    rec.UserID,
			"category":   string(rec.Category),
			"created_at": rec.CreatedAt.Format(time.RFC3339Nano),
		},
	}

	if err := col.AddDocument(ctx, doc); err != nil {
		return fmt.Errorf("add document: %w", err)
	}

	log.Printf("[CHROMEM] Stored record %s for user %s", rec.ID, rec.UserID)
	return nil
}

// Query returns up to limit records from the user's collection by cosine
// similarity, highest first. An empty collection yields an empty result.
func (s *Store) Query(ctx context.Context, userID string, embedding []float32, limit int) ([]memory.Retrieved, error) {
	col, err := s.getOrCreateCollection(userID)
	if err != nil {
		return nil, err
	}

	// chromem rejects nResults larger than the collection, so clamp first
	// and treat an empty collection as no matches.
	if n := col.Count(); n == 0 {
		return nil, nil
	} else if limit > n {
		limit = n
	}

	where := map[string]string{"user_id": userID}
	results, err := col.QueryEmbedding(ctx, embedding, limit, where, nil)
	if err != nil {
		if isInsufficientDocsError(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("chromem query: %w", err)
	}

	retrieved := make([]memory.Retrieved, 0, len(results))
	for i, result := range results {
		rec, err := recordFromResult(result)
		if err != nil {
			log.Printf("[CHROMEM] Skipping result #%d: %v", i+1, err)
			continue
		}
		retrieved = append(retrieved, memory.Retrieved{
			Record: rec,
			Score:  float64(result.Similarity),
		})
	}

	return retrieved, nil
}

// DeleteAll drops the user's collection. Unknown namespaces are a no-op.
func (s *Store) DeleteAll(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.db.DeleteCollection(collectionName(userID)); err != nil {
		return fmt.Errorf("delete collection: %w", err)
	}
	delete(s.collections, userID)

	log.Printf("[CHROMEM] Deleted collection for user %s", userID)
	return nil
}

// Count returns the number of records in the user's collection.
func (s *Store) Count(ctx context.Context, userID string) (int, error) {
	s.mu.RLock()
	col, exists := s.collections[userID]
	s.mu.RUnlock()

	if !exists {
		return 0, nil
	}
	return col.Count(), nil
}

// recordFromResult converts a chromem result back into a memory.Record.
func recordFromResult(result chromem.Result) (memory.Record, error) {
	createdAt, err := time.Parse(time.RFC3339Nano, result.Metadata["created_at"])
	if err != nil {
		return memory.Record{}, fmt.Errorf("parse created_at: %w", err)
	}

	return memory.Record{
		ID:        result.ID,
		UserID:    result.Metadata["user_id"],
		Text:      result.Content,
		Category:  core.Category(result.Metadata["category"]),
		CreatedAt: createdAt,
		Embedding: result.Embedding,
	}, nil
}

// isInsufficientDocsError reports whether err is chromem complaining that
// nResults exceeds the number of stored documents.
func isInsufficientDocsError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "nResults must be") || strings.Contains(msg, "number of documents")
}
