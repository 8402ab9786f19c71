// ABOUTME: In-memory vector store used by tests and local runs
// ABOUTME: Same upsert/query semantics as the Charm-backed store, no persistence
package storage

import (
	"sort"
	"sync"
)

// MemoryStore keeps records in a map, guarded for concurrent use.
type MemoryStore struct {
	mu      sync.Mutex
	records map[string]IndexedRecord
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]IndexedRecord)}
}

// Upsert overwrites records by ID.
func (s *MemoryStore) Upsert(records []IndexedRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, record := range records {
		s.records[record.ID] = record
	}
	return nil
}

// Query returns the top k records by cosine similarity, descending.
func (s *MemoryStore) Query(vector []float64, k int) ([]SearchResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var results []SearchResult
	for _, record := range s.records {
		results = append(results, SearchResult{
			Record: record,
			Score:  cosineSimilarity(vector, record.Vector),
		})
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > k {
		results = results[:k]
	}
	return results, nil
}

// Count returns the number of stored records.
func (s *MemoryStore) Count() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records), nil
}

// Close is a no-op for the in-memory store.
func (s *MemoryStore) Close() error {
	return nil
}

// Get returns a record by ID, for test assertions.
func (s *MemoryStore) Get(id string) (IndexedRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	record, ok := s.records[id]
	return record, ok
}
