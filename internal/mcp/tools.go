// ABOUTME: MCP tool definitions and registration for the study concierge server
// ABOUTME: Exposes course-material QA, semantic search, planning, and weather
package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/harper/study-concierge/internal/storage"
)

// RegisterTools registers the concierge tools with the server and returns
// the handler set backing them.
func RegisterTools(server *mcpserver.MCPServer, answerer Answerer, embedder Embedder, store storage.VectorStore, explainer WeatherExplainer) *Handlers {
	handlers := &Handlers{
		answerer:  answerer,
		embedder:  embedder,
		store:     store,
		explainer: explainer,
	}

	// 1. ask_materials - grounded QA over the indexed course notebooks
	server.AddTool(mcp.Tool{
		Name:        "ask_materials",
		Description: "Answer a question using only the indexed course materials. Retrieves relevant passages and grounds a model reply in them.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"question": map[string]interface{}{
					"type":        "string",
					"description": "Question to answer from the course materials",
				},
			},
			Required: []string{"question"},
		},
	}, handlers.AskMaterials)

	// 2. search_materials - raw semantic search without a model call
	server.AddTool(mcp.Tool{
		Name:        "search_materials",
		Description: "Semantic search over the indexed course materials. Returns the ranked matching chunks with scores, no model call.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Search query",
				},
				"max_results": map[string]interface{}{
					"type":        "number",
					"description": "Maximum number of chunks to return (default: 4)",
					"default":     4,
				},
			},
			Required: []string{"query"},
		},
	}, handlers.SearchMaterials)

	// 3. plan_study_session - deterministic study plan
	server.AddTool(mcp.Tool{
		Name:        "plan_study_session",
		Description: "Create a structured study plan for a topic. Fully deterministic, no model call.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"topic": map[string]interface{}{
					"type":        "string",
					"description": "Topic to study",
				},
				"duration_minutes": map[string]interface{}{
					"type":        "integer",
					"description": "Total session length in minutes",
				},
			},
			Required: []string{"topic", "duration_minutes"},
		},
	}, handlers.PlanStudySession)

	// 4. get_weather - current conditions for a supported city
	server.AddTool(mcp.Tool{
		Name:        "get_weather",
		Description: "Get a natural-language weather summary for a supported city (Toronto, Vancouver, Montreal).",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"city": map[string]interface{}{
					"type":        "string",
					"description": "City name (default: toronto)",
					"default":     "toronto",
				},
			},
		},
	}, handlers.GetWeather)

	return handlers
}
