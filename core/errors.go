package core

import "errors"

// Error taxonomy for upstream-service failures. Components wrap these with
// fmt.Errorf("...: %w", ...) so callers can classify with errors.Is and
// apply the propagation policy:
//
//   - retrieval failures (ErrEmbedding, ErrStoreRead) are absorbed: the
//     pipeline proceeds as if no memories were found
//   - generation failures (ErrGeneration) are fatal and propagate verbatim
//   - learning failures (including ErrStoreWrite) are logged and absorbed
var (
	// ErrEmbedding indicates the embedding service failed or the input
	// text was empty.
	ErrEmbedding = errors.New("embedding failed")

	// ErrStoreRead indicates a vector store query failed at the
	// transport or auth level. An empty result set is not an error.
	ErrStoreRead = errors.New("memory store read failed")

	// ErrStoreWrite indicates a vector store upsert failed.
	ErrStoreWrite = errors.New("memory store write failed")

	// ErrGeneration indicates the language model call failed or
	// returned an empty completion.
	ErrGeneration = errors.New("response generation failed")
)
