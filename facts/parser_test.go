package facts

import (
	"testing"

	"github.com/ReminisceHackathon/Reminisce/core"
)

func TestParse_ValidArray(t *testing.T) {
	raw := `[{"fact": "User's daughter Sarah lives in Ohio", "category": "family"},
		{"fact": "User loves gardening", "category": "preference"}]`

	parsed := Parse(raw)
	if len(parsed) != 2 {
		t.Fatalf("Expected 2 facts, got %d", len(parsed))
	}
	if parsed[0].Category != core.CategoryFamily {
		t.Errorf("Expected family, got %q", parsed[0].Category)
	}
	if parsed[1].Text != "User loves gardening" {
		t.Errorf("Unexpected fact text: %q", parsed[1].Text)
	}
}

func TestParse_MarkdownFence(t *testing.T) {
	raw := "```json\n[{\"fact\": \"User plays bridge on Thursdays\", \"category\": \"event\"}]\n```"

	parsed := Parse(raw)
	if len(parsed) != 1 {
		t.Fatalf("Expected 1 fact, got %d", len(parsed))
	}
	if parsed[0].Category != core.CategoryEvent {
		t.Errorf("Expected event, got %q", parsed[0].Category)
	}
}

func TestParse_SkipsMalformedEntries(t *testing.T) {
	raw := `[{"fact": "User grew up in Iowa", "category": "history"},
		"not an object",
		{"fact": "", "category": "place"},
		{"fact": "User is allergic to penicillin", "category": "health"}]`

	parsed := Parse(raw)
	if len(parsed) != 2 {
		t.Fatalf("Expected 2 facts after skipping malformed entries, got %d", len(parsed))
	}
	if parsed[0].Text != "User grew up in Iowa" {
		t.Errorf("Unexpected first fact: %q", parsed[0].Text)
	}
	if parsed[1].Category != core.CategoryHealth {
		t.Errorf("Expected health, got %q", parsed[1].Category)
	}
}

func TestParse_DropsUnknownCategories(t *testing.T) {
	raw := `[{"fact": "User likes mornings", "category": "mood"},
		{"fact": "User lived in Paris", "category": "place"}]`

	parsed := Parse(raw)
	if len(parsed) != 1 {
		t.Fatalf("Expected 1 fact, got %d", len(parsed))
	}
	if parsed[0].Category != core.CategoryPlace {
		t.Errorf("Expected place, got %q", parsed[0].Category)
	}
}

func TestParse_GeneralNotAcceptedFromModel(t *testing.T) {
	// The extractor's closed set excludes the direct-save fallback.
	raw := `[{"fact": "Something vague", "category": "general"}]`

	if parsed := Parse(raw); len(parsed) != 0 {
		t.Errorf("Expected general category to be dropped, got %d facts", len(parsed))
	}
}

func TestParse_MalformedResponses(t *testing.T) {
	cases := map[string]string{
		"empty":        "",
		"whitespace":   "   \n ",
		"not json":     "I couldn't find any facts in this conversation.",
		"empty array":  "[]",
		"json object":  `{"fact": "x", "category": "family"}`,
		"broken fence": "```",
	}

	for name, raw := range cases {
		if parsed := Parse(raw); len(parsed) != 0 {
			t.Errorf("%s: expected no facts, got %d", name, len(parsed))
		}
	}
}
