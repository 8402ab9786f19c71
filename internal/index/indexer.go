// ABOUTME: Indexer turns named notebooks into embedded records in the vector store
// ABOUTME: Fail-fast on missing sources, batch embedding, idempotent upserts
package index

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/harper/study-concierge/internal/chunker"
	"github.com/harper/study-concierge/internal/models"
	"github.com/harper/study-concierge/internal/notebook"
	"github.com/harper/study-concierge/internal/storage"
)

// Embedder is the embedding capability the indexer needs. Interfaces are
// defined by the consumer so tests can inject fakes.
type Embedder interface {
	EmbedTexts(ctx context.Context, texts []string) ([][]float64, error)
}

// FragmentLoader loads the ordered fragments of one source document.
// Defaults to the notebook markdown-cell loader.
type FragmentLoader func(path string) ([]string, error)

// Source names one document to index.
type Source struct {
	Name string
	Path string
}

// Result reports what an indexing run produced.
type Result struct {
	Sources   int
	Fragments int
	Chunks    int
	Records   int
}

// Indexer builds the persistent vector collection from source notebooks.
type Indexer struct {
	chunker  *chunker.Chunker
	embedder Embedder
	store    storage.VectorStore
	loader   FragmentLoader
	verbose  bool
}

// New creates an Indexer with injected collaborators.
func New(c *chunker.Chunker, embedder Embedder, store storage.VectorStore) *Indexer {
	return &Indexer{
		chunker:  c,
		embedder: embedder,
		store:    store,
		loader:   notebook.LoadMarkdownCells,
	}
}

// SetLoader overrides the fragment loader (tests).
func (idx *Indexer) SetLoader(loader FragmentLoader) {
	idx.loader = loader
}

// SetVerbose enables progress logging.
func (idx *Indexer) SetVerbose(v bool) {
	idx.verbose = v
}

// Build indexes the sources into the store. Every source path is checked
// before any embedding call is issued: a missing source fails the whole run
// fatally with nothing embedded or written. A failure mid-run aborts the run;
// documents already upserted stay in place (no rollback).
func (idx *Indexer) Build(ctx context.Context, sources []Source) (*Result, error) {
	// Fail fast: resolve every source before touching the network.
	for _, src := range sources {
		if _, err := os.Stat(src.Path); err != nil {
			return nil, fmt.Errorf("source document %s not found at %s: %w", src.Name, src.Path, err)
		}
	}

	result := &Result{Sources: len(sources)}

	var allChunks []models.Chunk
	var allPaths []string
	for _, src := range sources {
		fragments, err := idx.loader(src.Path)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", src.Name, err)
		}
		result.Fragments += len(fragments)

		chunks := idx.chunker.BuildChunks(src.Name, fragments)
		result.Chunks += len(chunks)

		if idx.verbose {
			log.Printf("[Indexer] %s: %d fragments, %d chunks", src.Name, len(fragments), len(chunks))
		}

		for _, chunk := range chunks {
			allChunks = append(allChunks, chunk)
			allPaths = append(allPaths, src.Path)
		}
	}

	if len(allChunks) == 0 {
		return result, nil
	}

	texts := make([]string, len(allChunks))
	for i, chunk := range allChunks {
		texts[i] = chunk.Text
	}

	vectors, err := idx.embedder.EmbedTexts(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("embedding %d chunks: %w", len(texts), err)
	}
	if len(vectors) != len(allChunks) {
		return nil, fmt.Errorf("embedder returned %d vectors for %d chunks", len(vectors), len(allChunks))
	}

	records := make([]storage.IndexedRecord, len(allChunks))
	for i, chunk := range allChunks {
		records[i] = storage.IndexedRecord{
			ID:     chunk.ID,
			Vector: vectors[i],
			Text:   chunk.Text,
			Metadata: storage.RecordMetadata{
				Notebook:   chunk.Notebook,
				ChunkIndex: chunk.ChunkIndex,
				SourcePath: filepath.Clean(allPaths[i]),
			},
		}
	}

	if err := idx.store.Upsert(records); err != nil {
		return nil, fmt.Errorf("upserting records: %w", err)
	}
	result.Records = len(records)

	return result, nil
}
