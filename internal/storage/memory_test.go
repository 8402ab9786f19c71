// ABOUTME: Tests for the in-memory vector store
// ABOUTME: Verifies upsert-by-id overwrite, ranked queries, and top-k capping
package storage

import (
	"testing"
)

func record(id string, vector []float64, text string) IndexedRecord {
	return IndexedRecord{ID: id, Vector: vector, Text: text}
}

func TestMemoryStore_UpsertOverwritesByID(t *testing.T) {
	store := NewMemoryStore()

	if err := store.Upsert([]IndexedRecord{record("a", []float64{1, 0}, "first")}); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}
	if err := store.Upsert([]IndexedRecord{record("a", []float64{1, 0}, "second")}); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	count, err := store.Count()
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if count != 1 {
		t.Errorf("Count() = %d, want 1 (upsert must overwrite)", count)
	}

	got, ok := store.Get("a")
	if !ok {
		t.Fatal("record a not found")
	}
	if got.Text != "second" {
		t.Errorf("Text = %q, want %q", got.Text, "second")
	}
}

func TestMemoryStore_QueryRanksBySimilarity(t *testing.T) {
	store := NewMemoryStore()

	err := store.Upsert([]IndexedRecord{
		record("exact", []float64{1, 0, 0}, "exact match"),
		record("close", []float64{0.9, 0.1, 0}, "close match"),
		record("far", []float64{0, 0, 1}, "orthogonal"),
	})
	if err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	results, err := store.Query([]float64{1, 0, 0}, 3)
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}

	if len(results) != 3 {
		t.Fatalf("len(results) = %d, want 3", len(results))
	}
	wantOrder := []string{"exact", "close", "far"}
	for i, w := range wantOrder {
		if results[i].Record.ID != w {
			t.Errorf("results[%d].ID = %q, want %q", i, results[i].Record.ID, w)
		}
	}
	for i := 1; i < len(results); i++ {
		if results[i].Score > results[i-1].Score {
			t.Errorf("results not in descending score order at %d", i)
		}
	}
}

func TestMemoryStore_QueryCapsAtK(t *testing.T) {
	store := NewMemoryStore()

	var records []IndexedRecord
	for i := 0; i < 10; i++ {
		records = append(records, record(string(rune('a'+i)), []float64{1, float64(i)}, "text"))
	}
	if err := store.Upsert(records); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	results, err := store.Query([]float64{1, 0}, 4)
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	if len(results) != 4 {
		t.Errorf("len(results) = %d, want 4", len(results))
	}
}

func TestMemoryStore_QueryEmpty(t *testing.T) {
	store := NewMemoryStore()

	results, err := store.Query([]float64{1, 0}, 4)
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	if len(results) != 0 {
		t.Errorf("len(results) = %d, want 0", len(results))
	}
}

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		want float64
	}{
		{name: "identical", a: []float64{1, 0}, b: []float64{1, 0}, want: 1},
		{name: "orthogonal", a: []float64{1, 0}, b: []float64{0, 1}, want: 0},
		{name: "opposite", a: []float64{1, 0}, b: []float64{-1, 0}, want: -1},
		{name: "length mismatch", a: []float64{1}, b: []float64{1, 0}, want: 0},
		{name: "zero vector", a: []float64{0, 0}, b: []float64{1, 0}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cosineSimilarity(tt.a, tt.b)
			if diff := got - tt.want; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("cosineSimilarity() = %v, want %v", got, tt.want)
			}
		})
	}
}
