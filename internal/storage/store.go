// ABOUTME: VectorStore contract and record types for the indexed collection
// ABOUTME: Upsert-by-id persistence plus top-k nearest-neighbor queries
package storage

import "math"

// RecordMetadata travels with each indexed chunk.
type RecordMetadata struct {
	Notebook   string `json:"notebook"`
	ChunkIndex int    `json:"chunk_index"`
	SourcePath string `json:"source_path"`
}

// IndexedRecord is a chunk plus its embedding, persisted keyed by ID.
type IndexedRecord struct {
	ID       string         `json:"id"`
	Vector   []float64      `json:"vector"`
	Text     string         `json:"text"`
	Metadata RecordMetadata `json:"metadata"`
}

// SearchResult is one ranked query hit.
type SearchResult struct {
	Record IndexedRecord
	Score  float64
}

// VectorStore persists indexed records and answers nearest-neighbor queries.
// Upsert overwrites by ID, so re-indexing unchanged content is a no-op.
// Query returns results in descending similarity order; the similarity
// metric is the store's choice.
type VectorStore interface {
	Upsert(records []IndexedRecord) error
	Query(vector []float64, k int) ([]SearchResult, error)
	Count() (int, error)
	Close() error
}

// cosineSimilarity calculates cosine similarity between two vectors
func cosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0.0
	}

	var dotProduct, normA, normB float64
	for i := range a {
		dotProduct += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0.0
	}

	return dotProduct / (math.Sqrt(normA) * math.Sqrt(normB))
}
