// ABOUTME: Retriever answers questions from the indexed course materials
// ABOUTME: Embeds the query, pulls top-k chunks, and grounds a model call
package retrieval

import (
	"context"
	"fmt"
	"strings"

	"github.com/harper/study-concierge/internal/storage"
)

// ContextSeparator joins retrieved chunk texts in rank order.
const ContextSeparator = "\n\n---\n\n"

// NotFoundReply is returned when retrieval yields no usable context. It is a
// normal reply, not an error, and no model call happens.
const NotFoundReply = "I could not find relevant information in the course materials " +
	"for that question."

// systemPrompt constrains the model to the supplied context.
const systemPrompt = "You are an AI study concierge and teaching assistant. " +
	"Use ONLY the provided context from course notebooks to answer the user's question. " +
	"If the context is insufficient, say you are not sure and avoid guessing."

// Embedder is the embedding capability the retriever needs.
type Embedder interface {
	EmbedTexts(ctx context.Context, texts []string) ([][]float64, error)
}

// Completer is the model completion capability.
type Completer interface {
	Complete(ctx context.Context, systemInstruction, userContent string) (string, error)
}

// DefaultK is the default retrieval breadth.
const DefaultK = 4

// Retriever performs semantic search over the vector store and grounds
// answers in the retrieved context.
type Retriever struct {
	embedder  Embedder
	completer Completer
	store     storage.VectorStore
	k         int
}

// New creates a Retriever. k <= 0 falls back to DefaultK.
func New(embedder Embedder, completer Completer, store storage.VectorStore, k int) *Retriever {
	if k <= 0 {
		k = DefaultK
	}
	return &Retriever{
		embedder:  embedder,
		completer: completer,
		store:     store,
		k:         k,
	}
}

// Retrieve embeds the query and returns the top-k chunk texts joined with
// the context separator, preserving the store's rank order. An empty string
// means no context was found.
func (r *Retriever) Retrieve(ctx context.Context, query string) (string, error) {
	vectors, err := r.embedder.EmbedTexts(ctx, []string{query})
	if err != nil {
		return "", fmt.Errorf("embedding query: %w", err)
	}
	if len(vectors) != 1 {
		return "", fmt.Errorf("expected 1 query vector, got %d", len(vectors))
	}

	results, err := r.store.Query(vectors[0], r.k)
	if err != nil {
		return "", fmt.Errorf("querying vector store: %w", err)
	}

	texts := make([]string, 0, len(results))
	for _, result := range results {
		texts = append(texts, result.Record.Text)
	}
	return strings.Join(texts, ContextSeparator), nil
}

// Answer retrieves context for the question and asks the model for a
// grounded reply. Empty or whitespace-only context short-circuits to the
// fixed not-found reply without invoking the model.
func (r *Retriever) Answer(ctx context.Context, question string) (string, error) {
	contextText, err := r.Retrieve(ctx, question)
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(contextText) == "" {
		return NotFoundReply, nil
	}

	userContent := fmt.Sprintf(
		"Context from course materials:\n%s\n\nUser question:\n%s",
		contextText, question)

	answer, err := r.completer.Complete(ctx, systemPrompt, userContent)
	if err != nil {
		return "", fmt.Errorf("model completion: %w", err)
	}
	return answer, nil
}
