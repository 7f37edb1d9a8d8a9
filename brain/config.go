package brain

// Config holds the orchestrator's generation and prompt policy. Memory
// retrieval policy (threshold, top-k) lives on the MemoryStore config.
type Config struct {
	// Temperature is the sampling temperature for replies. Fact
	// extraction always runs at its own low temperature.
	Temperature float64

	// MaxOutputTokens caps reply length.
	MaxOutputTokens int64

	// Persona overrides the default system instruction block.
	Persona string

	// MaxHistoryMessages bounds how many trailing conversation turns
	// enter the prompt.
	MaxHistoryMessages int
}

// DefaultConfig returns the production defaults.
var DefaultConfig = &Config{
	Temperature:        0.7,
	MaxOutputTokens:    1024,
	MaxHistoryMessages: 10,
}
