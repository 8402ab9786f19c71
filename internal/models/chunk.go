// ABOUTME: Chunk represents a bounded span of concatenated notebook text
// ABOUTME: Atomic retrieval unit with a deterministic per-notebook ID
package models

import "fmt"

// Chunk is a contiguous span of concatenated source fragments from one
// notebook. Chunks are immutable once created; re-indexing an unchanged
// notebook reproduces byte-identical chunks with the same IDs.
type Chunk struct {
	ID         string `json:"id"`
	Text       string `json:"text"`
	Notebook   string `json:"notebook"`
	ChunkIndex int    `json:"chunk_index"`
}

// ChunkID builds the deterministic chunk identifier for a notebook chunk.
// The format is stable so that upserts by ID overwrite prior runs.
func ChunkID(notebook string, index int) string {
	return fmt.Sprintf("%s_chunk_%d", notebook, index)
}

// Length returns the chunk text length in characters.
func (c Chunk) Length() int {
	return len(c.Text)
}
