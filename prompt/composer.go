// Package prompt assembles generation and extraction prompts. Pure
// functions over caller-supplied data; no I/O.
package prompt

import (
	"fmt"
	"strings"

	"github.com/ReminisceHackathon/Reminisce/core"
	"github.com/ReminisceHackathon/Reminisce/memory"
)

// transcriptTurns is how many trailing history turns the extraction
// transcript includes for context.
const transcriptTurns = 5

// Composer builds the single generation prompt from persona, retrieved
// memories, recent history, and the current message — in that order.
// Memories sit before history so the model treats them as long-lived
// background rather than recent chat; callers must not reorder.
type Composer struct {
	// Persona is the system instruction block (default: DefaultPersona).
	Persona string

	// MaxHistory bounds how many trailing conversation turns are
	// included (default: 10).
	MaxHistory int
}

// NewComposer creates a composer with the given persona, or the default
// senior-companion persona when empty.
func NewComposer(persona string, maxHistory int) *Composer {
	if persona == "" {
		persona = DefaultPersona
	}
	if maxHistory <= 0 {
		maxHistory = 10
	}
	return &Composer{Persona: persona, MaxHistory: maxHistory}
}

// Compose assembles the full generation prompt. Memories must already be
// sorted by descending relevance; they are rendered in that order. When
// no memories were retrieved (or retrieval was skipped), the memory
// section is omitted entirely.
func (c *Composer) Compose(memories []memory.Retrieved, history []core.Turn, message string) string {
	var b strings.Builder
	b.WriteString(c.Persona)

	if len(memories) > 0 {
		b.WriteString("\n\n## Long-Term Memory (from previous conversations):\n")
		b.WriteString("Relevant information about this user:")
		for _, mem := range memories {
			if mem.Category != "" && mem.Category != core.CategoryGeneral {
				fmt.Fprintf(&b, "\n- [%s] %s", mem.Category, mem.Text)
			} else {
				fmt.Fprintf(&b, "\n- %s", mem.Text)
			}
		}
	}

	b.WriteString("\n\n## Recent Conversation:\n")
	recent := lastTurns(history, c.MaxHistory)
	if len(recent) == 0 {
		b.WriteString("No previous messages.")
	} else {
		for i, turn := range recent {
			if i > 0 {
				b.WriteString("\n")
			}
			fmt.Fprintf(&b, "%s: %s", turn.Role, turn.Text)
		}
	}

	fmt.Fprintf(&b, "\n\n## Current Message:\nUser: %s\n\n## Your Response:", message)
	return b.String()
}

// Transcript formats the latest exchange (with a little trailing history)
// for fact extraction.
func Transcript(history []core.Turn, message, reply string) string {
	var b strings.Builder
	for _, turn := range lastTurns(history, transcriptTurns) {
		fmt.Fprintf(&b, "%s: %s\n", turn.Role, turn.Text)
	}
	fmt.Fprintf(&b, "User: %s\nAssistant: %s", message, reply)
	return b.String()
}

// lastTurns returns the trailing n turns in their original order.
func lastTurns(history []core.Turn, n int) []core.Turn {
	if len(history) <= n {
		return history
	}
	return history[len(history)-n:]
}
