// Package facts derives long-term personal facts from conversational
// exchanges and persists them as memories.
package facts

import (
	"context"
	"log"

	"github.com/ReminisceHackathon/Reminisce/llm"
	"github.com/ReminisceHackathon/Reminisce/memory"
)

// extractionTemperature keeps extraction output consistent across runs.
const extractionTemperature = 0.1

// Extractor asks the language model for new facts about the user and
// saves each accepted fact into the user's memory namespace.
type Extractor struct {
	generator llm.Generator
	store     *memory.MemoryStore
}

// NewExtractor creates an Extractor.
func NewExtractor(generator llm.Generator, store *memory.MemoryStore) *Extractor {
	return &Extractor{generator: generator, store: store}
}

// ExtractAndSave runs extraction over the transcript and persists each
// accepted fact. Returns the texts of the facts that were saved. A store
// failure on one fact skips that fact only; the orchestrator treats any
// returned error as non-fatal.
func (e *Extractor) ExtractAndSave(ctx context.Context, userID, transcript string) ([]string, error) {
	raw, err := e.generator.Generate(ctx, buildPrompt(transcript),
		llm.WithTemperature(extractionTemperature),
	)
	if err != nil {
		return nil, err
	}

	parsed := Parse(raw)
	if len(parsed) == 0 {
		log.Printf("[FACTS] No facts extracted for user %s", userID)
		return nil, nil
	}

	saved := make([]string, 0, len(parsed))
	for _, fact := range parsed {
		if _, err := e.store.Save(ctx, fact.Text, userID, fact.Category); err != nil {
			log.Printf("[FACTS] Failed to save fact for user %s: %v", userID, err)
			continue
		}
		saved = append(saved, fact.Text)
	}

	log.Printf("[FACTS] Extracted and saved %d facts for user %s", len(saved), userID)
	return saved, nil
}
