// ABOUTME: MCP tool handler implementations for the study concierge server
// ABOUTME: Tool failures become tool-result errors, never transport errors
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/harper/study-concierge/internal/models"
	"github.com/harper/study-concierge/internal/storage"
)

// Answerer resolves a question against the indexed course materials.
type Answerer interface {
	Answer(ctx context.Context, question string) (string, error)
}

// Embedder embeds query text for semantic search.
type Embedder interface {
	EmbedTexts(ctx context.Context, texts []string) ([][]float64, error)
}

// WeatherExplainer produces a weather summary for a city.
type WeatherExplainer interface {
	Explain(ctx context.Context, city string) (string, error)
}

// defaultSearchResults caps search_materials when max_results is omitted.
const defaultSearchResults = 4

// Handlers contains the handler functions for all concierge tools.
type Handlers struct {
	answerer  Answerer
	embedder  Embedder
	store     storage.VectorStore
	explainer WeatherExplainer
}

// AskMaterials handles the ask_materials tool
func (h *Handlers) AskMaterials(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	question, err := request.RequireString("question")
	if err != nil {
		return mcp.NewToolResultError("question argument is required and must be a string"), nil
	}

	answer, err := h.answerer.Answer(ctx, question)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("answering failed: %v", err)), nil
	}

	response := map[string]interface{}{
		"question": question,
		"answer":   answer,
	}
	responseJSON, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}
	return mcp.NewToolResultText(string(responseJSON)), nil
}

// SearchMaterials handles the search_materials tool
func (h *Handlers) SearchMaterials(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("query argument is required and must be a string"), nil
	}

	maxResults := request.GetInt("max_results", defaultSearchResults)

	vectors, err := h.embedder.EmbedTexts(ctx, []string{query})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("embedding query failed: %v", err)), nil
	}
	if len(vectors) != 1 {
		return mcp.NewToolResultError(fmt.Sprintf("expected 1 query vector, got %d", len(vectors))), nil
	}

	results, err := h.store.Query(vectors[0], maxResults)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("vector search failed: %v", err)), nil
	}

	chunks := make([]map[string]interface{}, 0, len(results))
	for _, result := range results {
		chunks = append(chunks, map[string]interface{}{
			"id":          result.Record.ID,
			"notebook":    result.Record.Metadata.Notebook,
			"chunk_index": result.Record.Metadata.ChunkIndex,
			"score":       result.Score,
			"text":        result.Record.Text,
		})
	}

	response := map[string]interface{}{
		"query":   query,
		"results": chunks,
	}
	responseJSON, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}
	return mcp.NewToolResultText(string(responseJSON)), nil
}

// PlanStudySession handles the plan_study_session tool
func (h *Handlers) PlanStudySession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	topic, err := request.RequireString("topic")
	if err != nil {
		return mcp.NewToolResultError("topic argument is required and must be a string"), nil
	}
	duration := request.GetInt("duration_minutes", 0)
	if duration <= 0 {
		return mcp.NewToolResultError("duration_minutes argument is required and must be a positive integer"), nil
	}

	plan := models.NewStudyPlan(topic, duration)

	blocks := make([]map[string]interface{}, 0, len(plan.Blocks))
	for _, block := range plan.Blocks {
		blocks = append(blocks, map[string]interface{}{
			"block":   block.BlockNumber,
			"minutes": block.MinutesPerBlock,
			"focus":   block.FocusLabel,
		})
	}

	response := map[string]interface{}{
		"topic":    plan.Topic,
		"duration": plan.DurationMinutes,
		"blocks":   blocks,
	}
	responseJSON, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}
	return mcp.NewToolResultText(string(responseJSON)), nil
}

// GetWeather handles the get_weather tool
func (h *Handlers) GetWeather(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	city := request.GetString("city", "toronto")

	summary, err := h.explainer.Explain(ctx, city)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("weather lookup failed: %v", err)), nil
	}

	response := map[string]interface{}{
		"city":    city,
		"summary": summary,
	}
	responseJSON, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}
	return mcp.NewToolResultText(string(responseJSON)), nil
}
