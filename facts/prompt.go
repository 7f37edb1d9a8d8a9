package facts

import "fmt"

// extractionPrompt instructs the model to emit a bounded JSON array of
// atomic personal facts. Categories outside the closed set are dropped
// by the parser.
const extractionPrompt = `Analyze this conversation and extract ONLY new permanent facts about the user's life.

Focus on:
- Family members (names, relationships, where they live)
- Important places (home, previous residences, favorite locations)
- Personal preferences (food, activities, routines)
- Important dates (birthdays, anniversaries, appointments)
- Health information (if mentioned)
- Life history (career, education, significant events)

Rules:
1. Only extract FACTS, not opinions or temporary states
2. Be specific - include names, dates, and details when mentioned
3. Do NOT extract greetings, pleasantries, or weather talk
4. If no extractable facts exist, return an empty array

Return as JSON array ONLY (no markdown, no explanation):
[{"fact": "...", "category": "family|place|preference|event|health|history"}]

Return [] if no extractable facts.

Conversation:
%s`

// buildPrompt fills the extraction prompt with the conversation transcript.
func buildPrompt(transcript string) string {
	return fmt.Sprintf(extractionPrompt, transcript)
}
