package facts

import (
	"encoding/json"
	"log"
	"strings"

	"github.com/ReminisceHackathon/Reminisce/core"
)

// Parse extracts validated facts from a raw model completion. The parser
// is tolerant by design: fragments that do not match the expected shape
// are skipped, and a fully malformed response yields an empty list, never
// an error. Categories outside the closed set are dropped.
func Parse(raw string) []core.Fact {
	raw = stripCodeFence(strings.TrimSpace(raw))
	if raw == "" {
		return nil
	}

	var entries []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		log.Printf("[FACTS] Extraction output is not a JSON array, dropping: %v", err)
		return nil
	}

	var parsed []core.Fact
	for i, entry := range entries {
		var candidate struct {
			Fact     string `json:"fact"`
			Category string `json:"category"`
		}
		if err := json.Unmarshal(entry, &candidate); err != nil {
			log.Printf("[FACTS] Skipping malformed entry #%d: %v", i+1, err)
			continue
		}

		text := strings.TrimSpace(candidate.Fact)
		if text == "" {
			log.Printf("[FACTS] Skipping entry #%d: empty fact", i+1)
			continue
		}

		category, ok := core.ParseCategory(candidate.Category)
		if !ok {
			log.Printf("[FACTS] Skipping entry #%d: unknown category %q", i+1, candidate.Category)
			continue
		}

		parsed = append(parsed, core.Fact{Text: text, Category: category})
	}

	return parsed
}

// stripCodeFence unwraps a ```json ... ``` block if the model added one
// despite instructions.
func stripCodeFence(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}

	lines := strings.Split(s, "\n")
	if len(lines) < 2 {
		return s
	}

	// Drop the opening fence line and a trailing fence if present.
	lines = lines[1:]
	if strings.TrimSpace(lines[len(lines)-1]) == "```" {
		lines = lines[:len(lines)-1]
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
