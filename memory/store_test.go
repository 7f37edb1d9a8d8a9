package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ReminisceHackathon/Reminisce/core"
	"github.com/ReminisceHackathon/Reminisce/memory"
	"github.com/ReminisceHackathon/Reminisce/memory/embedder/mock"
	"github.com/ReminisceHackathon/Reminisce/memory/store/chromem"
)

const testDims = 384

func newTestStore(t *testing.T) *memory.MemoryStore {
	t.Helper()

	backend, err := chromem.New()
	if err != nil {
		t.Fatalf("Failed to create backend: %v", err)
	}

	store, err := memory.New(backend, mock.New(testDims), &memory.Config{
		RelevanceThreshold: 0.7,
		TopK:               5,
		VectorDimension:    testDims,
	})
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	return store
}

func TestMemoryStore_SaveAndSearch(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	text := "User's daughter Sarah lives in Ohio"
	id, err := store.Save(ctx, text, "u1", core.CategoryFamily)
	if err != nil {
		t.Fatalf("Failed to save memory: %v", err)
	}
	if id == "" {
		t.Fatal("Expected a generated record ID")
	}

	// The mock embedder maps identical text to identical vectors, so a
	// same-text query scores ~1.0 and clears the 0.7 threshold.
	results, err := store.Search(ctx, text, "u1")
	if err != nil {
		t.Fatalf("Failed to search: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(results))
	}
	if results[0].Text != text {
		t.Errorf("Expected text %q, got %q", text, results[0].Text)
	}
	if results[0].Category != core.CategoryFamily {
		t.Errorf("Expected category family, got %q", results[0].Category)
	}
	if results[0].Score < 0.7 {
		t.Errorf("Expected score >= 0.7, got %f", results[0].Score)
	}
}

func TestMemoryStore_NamespaceIsolation(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	text := "User's daughter Sarah lives in Ohio"
	if _, err := store.Save(ctx, text, "u1", core.CategoryFamily); err != nil {
		t.Fatalf("Failed to save memory: %v", err)
	}

	// A fact saved under u1 must never surface for u2, even with an
	// identical query.
	results, err := store.Search(ctx, text, "u2")
	if err != nil {
		t.Fatalf("Failed to search: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("Expected no results for u2, got %d", len(results))
	}
}

func TestMemoryStore_SearchOrderingAndLimit(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	texts := []string{
		"User grew up on a farm in Iowa",
		"User's favorite meal is pot roast",
		"User plays bridge every Thursday",
		"User's grandson is named Tommy",
		"User worked as a schoolteacher for 30 years",
	}
	for _, text := range texts {
		if _, err := store.Save(ctx, text, "u1", core.CategoryGeneral); err != nil {
			t.Fatalf("Failed to save %q: %v", text, err)
		}
	}

	// Threshold -1 admits everything; the mock embedder gives no real
	// semantic similarity, so only ordering and the cap are checked.
	results, err := store.SearchWith(ctx, "tell me about the user", "u1", 3, -1)
	if err != nil {
		t.Fatalf("Failed to search: %v", err)
	}
	if len(results) > 3 {
		t.Fatalf("Expected at most 3 results, got %d", len(results))
	}
	for i := 1; i < len(results); i++ {
		if results[i].Score > results[i-1].Score {
			t.Errorf("Results not sorted by score: %f before %f", results[i-1].Score, results[i].Score)
		}
	}
}

func TestMemoryStore_TieBreakNewestFirst(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	// Identical text yields identical vectors from the mock embedder, so
	// both records score the same against a same-text query and only the
	// timestamp tiebreak decides the order.
	text := "User plays bridge every Thursday"
	firstID, err := store.Save(ctx, text, "u1", core.CategoryEvent)
	if err != nil {
		t.Fatalf("Failed to save first record: %v", err)
	}
	time.Sleep(5 * time.Millisecond)
	secondID, err := store.Save(ctx, text, "u1", core.CategoryEvent)
	if err != nil {
		t.Fatalf("Failed to save second record: %v", err)
	}

	results, err := store.Search(ctx, text, "u1")
	if err != nil {
		t.Fatalf("Failed to search: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}
	if results[0].ID != secondID {
		t.Errorf("Expected the newer record first, got %s", results[0].ID)
	}
	if results[1].ID != firstID {
		t.Errorf("Expected the older record second, got %s", results[1].ID)
	}
}

func TestMemoryStore_ThresholdFiltering(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	if _, err := store.Save(ctx, "User loves gardening", "u1", core.CategoryPreference); err != nil {
		t.Fatalf("Failed to save: %v", err)
	}

	// An impossible threshold must yield an empty result, not an error.
	results, err := store.SearchWith(ctx, "User loves gardening", "u1", 5, 1.01)
	if err != nil {
		t.Fatalf("Failed to search: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("Expected no results above threshold 1.01, got %d", len(results))
	}
}

func TestMemoryStore_DeleteAllIdempotent(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	if _, err := store.Save(ctx, "User's cat is named Whiskers", "u1", core.CategoryGeneral); err != nil {
		t.Fatalf("Failed to save: %v", err)
	}

	if err := store.DeleteAll(ctx, "u1"); err != nil {
		t.Fatalf("First delete failed: %v", err)
	}
	if err := store.DeleteAll(ctx, "u1"); err != nil {
		t.Fatalf("Second delete failed: %v", err)
	}
	if err := store.DeleteAll(ctx, "never-used"); err != nil {
		t.Fatalf("Delete on never-used namespace failed: %v", err)
	}

	count, err := store.Stats(ctx, "u1")
	if err != nil {
		t.Fatalf("Failed to get stats: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected 0 records after delete, got %d", count)
	}
}

func TestMemoryStore_StatsEmptyNamespace(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	count, err := store.Stats(ctx, "u3")
	if err != nil {
		t.Fatalf("Failed to get stats: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected 0 for never-used namespace, got %d", count)
	}
}

func TestMemoryStore_SaveEmptyText(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	_, err := store.Save(ctx, "   ", "u1", core.CategoryGeneral)
	if !errors.Is(err, core.ErrStoreWrite) {
		t.Errorf("Expected ErrStoreWrite for empty text, got %v", err)
	}
}

func TestMemoryStore_DimensionMismatch(t *testing.T) {
	backend, err := chromem.New()
	if err != nil {
		t.Fatalf("Failed to create backend: %v", err)
	}

	_, err = memory.New(backend, mock.New(testDims), &memory.Config{
		RelevanceThreshold: 0.7,
		TopK:               5,
		VectorDimension:    768,
	})
	if err == nil {
		t.Fatal("Expected setup error for dimension mismatch")
	}
}
