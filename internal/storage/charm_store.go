// ABOUTME: Charm KV backed vector store with cosine similarity search
// ABOUTME: Records are JSON values under a per-collection key prefix
package storage

import (
	"fmt"
	"sort"

	"github.com/harper/study-concierge/internal/charm"
)

// CharmStore persists one named collection of indexed records in Charm KV.
type CharmStore struct {
	client     *charm.Client
	collection string
}

// NewCharmStore creates a store over the given client and collection name.
func NewCharmStore(client *charm.Client, collection string) *CharmStore {
	return &CharmStore{client: client, collection: collection}
}

// Upsert writes each record under its deterministic key, overwriting any
// prior version. Records already written stay in place if a later write
// fails; there is no rollback.
func (s *CharmStore) Upsert(records []IndexedRecord) error {
	for _, record := range records {
		key := charm.RecordKey(s.collection, record.ID)
		if err := s.client.SetJSON(key, record); err != nil {
			return fmt.Errorf("upserting record %s: %w", record.ID, err)
		}
	}
	return nil
}

// Query scans the collection, scores every record by cosine similarity, and
// returns the top k in descending score order.
func (s *CharmStore) Query(vector []float64, k int) ([]SearchResult, error) {
	keys, err := s.client.ListKeys(charm.CollectionPrefix(s.collection))
	if err != nil {
		return nil, fmt.Errorf("listing record keys: %w", err)
	}

	var results []SearchResult
	for _, key := range keys {
		var record IndexedRecord
		if err := s.client.GetJSON(key, &record); err != nil {
			continue
		}
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

// Count returns the number of records in the collection.
func (s *CharmStore) Count() (int, error) {
	keys, err := s.client.ListKeys(charm.CollectionPrefix(s.collection))
	if err != nil {
		return 0, fmt.Errorf("listing record keys: %w", err)
	}
	return len(keys), nil
}

// Close closes the underlying KV client.
func (s *CharmStore) Close() error {
	return s.client.Close()
}
