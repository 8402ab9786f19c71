// ABOUTME: Tests for Chunk ID generation and length accounting
// ABOUTME: Verifies deterministic IDs stay stable across runs
package models

import "testing"

func TestChunkID(t *testing.T) {
	tests := []struct {
		name     string
		notebook string
		index    int
		want     string
	}{
		{
			name:     "first chunk",
			notebook: "01_1_introduction.ipynb",
			index:    0,
			want:     "01_1_introduction.ipynb_chunk_0",
		},
		{
			name:     "later chunk",
			notebook: "01_2_longer_context.ipynb",
			index:    12,
			want:     "01_2_longer_context.ipynb_chunk_12",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ChunkID(tt.notebook, tt.index); got != tt.want {
				t.Errorf("ChunkID() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestChunkID_Deterministic(t *testing.T) {
	a := ChunkID("nb.ipynb", 3)
	b := ChunkID("nb.ipynb", 3)
	if a != b {
		t.Errorf("ChunkID not deterministic: %q != %q", a, b)
	}
}

func TestChunk_Length(t *testing.T) {
	c := Chunk{ID: "nb_chunk_0", Text: "hello world", Notebook: "nb", ChunkIndex: 0}
	if c.Length() != 11 {
		t.Errorf("Length() = %d, want 11", c.Length())
	}
}
