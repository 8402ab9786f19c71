// ABOUTME: Chunker merges ordered notebook fragments into bounded-size chunks
// ABOUTME: Greedy accumulation gated by a hard max size, never splitting fragments
package chunker

import (
	"strings"

	"github.com/harper/study-concierge/internal/models"
)

const (
	// DefaultTargetSize is advisory only: the packing loop is gated solely
	// by the max size. Kept because callers configure it and a future
	// two-threshold policy would use it.
	DefaultTargetSize = 900

	// DefaultMaxSize is the hard cap on a chunk, except when a single
	// fragment alone exceeds it.
	DefaultMaxSize = 1200

	// Separator joins consecutive fragments inside one chunk.
	Separator = "\n\n"
)

// Chunker packs ordered text fragments into chunks. Fragments are never
// reordered, split, or truncated: a fragment larger than MaxSize becomes its
// own oversized chunk.
type Chunker struct {
	TargetSize int
	MaxSize    int
}

// New creates a Chunker with the default size policy.
func New() *Chunker {
	return &Chunker{
		TargetSize: DefaultTargetSize,
		MaxSize:    DefaultMaxSize,
	}
}

// Chunk greedily accumulates fragments into chunk texts. The buffer is
// flushed whenever appending the next fragment would push the accumulated
// fragment length past MaxSize. The separator length is not counted against
// the budget, matching the original size accounting.
func (c *Chunker) Chunk(fragments []string) []string {
	var chunks []string
	var current strings.Builder
	currentLen := 0

	for _, fragment := range fragments {
		fragmentLen := len(fragment)

		// An empty buffer always seeds with the fragment, however large.
		if currentLen == 0 {
			current.WriteString(fragment)
			currentLen = fragmentLen
			continue
		}

		if currentLen+fragmentLen <= c.MaxSize {
			current.WriteString(Separator)
			current.WriteString(fragment)
			currentLen += fragmentLen
		} else {
			chunks = append(chunks, current.String())
			current.Reset()
			current.WriteString(fragment)
			currentLen = fragmentLen
		}
	}

	if currentLen > 0 {
		chunks = append(chunks, current.String())
	}

	return chunks
}

// BuildChunks chunks a notebook's fragments and assigns deterministic IDs in
// document order.
func (c *Chunker) BuildChunks(notebook string, fragments []string) []models.Chunk {
	texts := c.Chunk(fragments)

	chunks := make([]models.Chunk, len(texts))
	for i, text := range texts {
		chunks[i] = models.Chunk{
			ID:         models.ChunkID(notebook, i),
			Text:       text,
			Notebook:   notebook,
			ChunkIndex: i,
		}
	}
	return chunks
}
