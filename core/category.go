package core

import "strings"

// Category classifies a long-term fact about a user.
// The set is closed: the fact extractor drops anything outside it.
type Category string

const (
	CategoryFamily     Category = "family"
	CategoryPlace      Category = "place"
	CategoryPreference Category = "preference"
	CategoryEvent      Category = "event"
	CategoryHealth     Category = "health"
	CategoryHistory    Category = "history"

	// CategoryGeneral is the fallback for directly saved memories that
	// carry no category. Extracted facts never use it.
	CategoryGeneral Category = "general"
)

// ParseCategory maps a raw model-emitted string to a known category.
// Returns false for anything outside the closed extraction set.
func ParseCategory(s string) (Category, bool) {
	switch Category(strings.ToLower(strings.TrimSpace(s))) {
	case CategoryFamily:
		return CategoryFamily, true
	case CategoryPlace:
		return CategoryPlace, true
	case CategoryPreference:
		return CategoryPreference, true
	case CategoryEvent:
		return CategoryEvent, true
	case CategoryHealth:
		return CategoryHealth, true
	case CategoryHistory:
		return CategoryHistory, true
	}
	return "", false
}

// Fact is one extracted (text, category) pair. Transient: facts are
// consumed immediately to create memory records.
type Fact struct {
	Text     string   `json:"fact"`
	Category Category `json:"category"`
}
