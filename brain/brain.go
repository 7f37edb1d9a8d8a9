// Package brain orchestrates the conversational memory pipeline:
// retrieve relevant long-term memories, compose a prompt, generate a
// reply, and learn new facts from the exchange.
//
// The brain is stateless across calls; conversation history is always
// supplied by the caller. The only shared state is the set of client
// handles established at construction, so concurrent calls are safe.
package brain

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/ReminisceHackathon/Reminisce/core"
	"github.com/ReminisceHackathon/Reminisce/facts"
	"github.com/ReminisceHackathon/Reminisce/llm"
	"github.com/ReminisceHackathon/Reminisce/memory"
	"github.com/ReminisceHackathon/Reminisce/prompt"
)

// healthProbeNamespace is the reserved namespace used by HealthCheck so
// probes never touch real user data.
const healthProbeNamespace = "health-probe"

// Brain composes the memory store, prompt composer, response generator,
// and fact extractor into the two public entry points.
type Brain struct {
	generator llm.Generator
	store     *memory.MemoryStore
	extractor *facts.Extractor
	composer  *prompt.Composer
	config    *Config
}

// New creates a Brain. Zero fields in config fall back to the
// production defaults, so a partial Config never sends a zero token
// limit to the generator.
func New(generator llm.Generator, store *memory.MemoryStore, config *Config) *Brain {
	if config == nil {
		config = DefaultConfig
	} else {
		cfg := *config
		if cfg.Temperature == 0 {
			cfg.Temperature = DefaultConfig.Temperature
		}
		if cfg.MaxOutputTokens == 0 {
			cfg.MaxOutputTokens = DefaultConfig.MaxOutputTokens
		}
		if cfg.MaxHistoryMessages == 0 {
			cfg.MaxHistoryMessages = DefaultConfig.MaxHistoryMessages
		}
		config = &cfg
	}
	return &Brain{
		generator: generator,
		store:     store,
		extractor: facts.NewExtractor(generator, store),
		composer:  prompt.NewComposer(config.Persona, config.MaxHistoryMessages),
		config:    config,
	}
}

// Memory exposes the underlying store for the direct memory operations
// (save, search, purge, stats).
func (b *Brain) Memory() *memory.MemoryStore {
	return b.store
}

// Request carries one generation call. History is ordered oldest first.
type Request struct {
	UserID  string
	Message string
	History []core.Turn

	// IncludeMemories enables retrieval of long-term memories into the
	// prompt.
	IncludeMemories bool

	// ExtractFacts enables background fact learning after the reply is
	// returned. Ignored by GenerateResponseSync, which always learns.
	ExtractFacts bool
}

// NewRequest builds a Request with retrieval and learning enabled.
func NewRequest(userID, message string, history []core.Turn) *Request {
	return &Request{
		UserID:          userID,
		Message:         message,
		History:         history,
		IncludeMemories: true,
		ExtractFacts:    true,
	}
}

// SyncResult is the return value of GenerateResponseSync.
type SyncResult struct {
	Response       string   `json:"response"`
	ExtractedFacts []string `json:"extracted_facts"`
}

// GenerateResponse produces a reply grounded in the user's long-term
// memories. Retrieval failures are absorbed (the reply is generated
// without memories); generation failures propagate. When learning is
// enabled, fact extraction is dispatched in the background after the
// reply is ready and its outcome never reaches this caller.
func (b *Brain) GenerateResponse(ctx context.Context, req *Request) (string, error) {
	reply, transcript, err := b.respond(ctx, req)
	if err != nil {
		return "", err
	}

	if req.ExtractFacts {
		userID := req.UserID
		dispatch("fact-extraction", func(ctx context.Context) {
			if _, err := b.extractor.ExtractAndSave(ctx, userID, transcript); err != nil {
				log.Printf("[BRAIN] Fact extraction failed for user %s: %v", userID, err)
			}
		})
	}

	return reply, nil
}

// GenerateResponseSync is GenerateResponse with learning performed on the
// calling path: it returns only after extraction completes, and includes
// the extracted facts in the result. Extraction failures are still
// absorbed; the reply is never lost to a learning error.
func (b *Brain) GenerateResponseSync(ctx context.Context, req *Request) (*SyncResult, error) {
	reply, transcript, err := b.respond(ctx, req)
	if err != nil {
		return nil, err
	}

	extracted, err := b.extractor.ExtractAndSave(ctx, req.UserID, transcript)
	if err != nil {
		log.Printf("[BRAIN] Fact extraction failed for user %s: %v", req.UserID, err)
		extracted = nil
	}

	return &SyncResult{
		Response:       reply,
		ExtractedFacts: extracted,
	}, nil
}

// respond runs the shared retrieve-compose-generate pipeline and returns
// the reply plus the extraction transcript for the exchange.
func (b *Brain) respond(ctx context.Context, req *Request) (reply, transcript string, err error) {
	var memories []memory.Retrieved
	if req.IncludeMemories {
		memories, err = b.store.Search(ctx, req.Message, req.UserID)
		if err != nil {
			// Retrieval is best-effort: answer without memories.
			log.Printf("[BRAIN] Memory retrieval failed for user %s: %v", req.UserID, err)
			memories = nil
		}
	}

	fullPrompt := b.composer.Compose(memories, req.History, req.Message)

	reply, err = b.generator.Generate(ctx, fullPrompt,
		llm.WithTemperature(b.config.Temperature),
		llm.WithMaxTokens(b.config.MaxOutputTokens),
	)
	if err != nil {
		return "", "", err
	}

	return reply, prompt.Transcript(req.History, req.Message, reply), nil
}

// HealthCheck probes the language model and the memory store
// independently and reports a status per dependency. A failing probe
// never prevents the other from running, and the call never returns an
// error itself.
func (b *Brain) HealthCheck(ctx context.Context) map[string]string {
	status := map[string]string{
		"brain":  "ok",
		"llm":    "unknown",
		"memory": "unknown",
	}

	reply, err := b.generator.Generate(ctx, "Say 'ok' and nothing else.", llm.WithMaxTokens(8))
	switch {
	case err != nil:
		status["llm"] = "error: " + err.Error()
	case strings.Contains(strings.ToLower(reply), "ok"):
		status["llm"] = "ok"
	default:
		status["llm"] = "warning"
	}

	if count, err := b.store.Stats(ctx, healthProbeNamespace); err != nil {
		status["memory"] = "error: " + err.Error()
	} else {
		status["memory"] = fmt.Sprintf("ok (records: %d)", count)
	}

	return status
}
