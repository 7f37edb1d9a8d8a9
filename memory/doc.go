// Package memory stores and retrieves long-term facts about users.
//
// Facts are embedded as fixed-length vectors and kept in a namespace per
// user (the user ID), with no cross-namespace visibility. Retrieval is by
// cosine similarity, filtered by a relevance threshold and capped at top-k.
//
// Architecture:
//   - Store: vector storage backend (chromem-go embedded for local use,
//     a hosted index in production)
//   - Embedder: text-to-vector conversion (Vertex AI, ONNX offline, mock)
//   - MemoryStore: the high-level save/search/purge/stats operations
//
// Records are write-once: saves always create a new record with a fresh
// ID, so concurrent learning tasks for one user cannot lose updates.
package memory
