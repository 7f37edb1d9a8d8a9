package memory

// Config holds MemoryStore policy settings.
type Config struct {
	// RelevanceThreshold is the minimum similarity score for retrieval.
	// Lower values admit noisier matches.
	RelevanceThreshold float64

	// TopK caps the number of memories returned per query. Bounds both
	// prompt size and retrieval cost.
	TopK int

	// VectorDimension must match the embedding model output.
	// A mismatch is a fatal setup error.
	VectorDimension int
}

// DefaultConfig matches the production embedding model
// (text-embedding-004, 768 dimensions).
var DefaultConfig = &Config{
	RelevanceThreshold: 0.7,
	TopK:               5,
	VectorDimension:    768,
}
