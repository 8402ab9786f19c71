// ABOUTME: Shared pipeline wiring for CLI commands
// ABOUTME: Constructs config, clients, store, retriever, and router once
package commands

import (
	"fmt"

	"github.com/joho/godotenv"
	openai "github.com/sashabaranov/go-openai"

	"github.com/harper/study-concierge/internal/charm"
	"github.com/harper/study-concierge/internal/config"
	"github.com/harper/study-concierge/internal/guard"
	"github.com/harper/study-concierge/internal/llm"
	"github.com/harper/study-concierge/internal/planner"
	"github.com/harper/study-concierge/internal/retrieval"
	"github.com/harper/study-concierge/internal/router"
	"github.com/harper/study-concierge/internal/storage"
	"github.com/harper/study-concierge/internal/weather"
)

// pipeline holds the constructed collaborators shared by the chat, ask, and
// mcp commands. Built once at command start and reused for every message.
type pipeline struct {
	cfg       *config.Config
	llmClient *llm.Client
	store     storage.VectorStore
	retriever *retrieval.Retriever
	weather   *weather.Service
	router    *router.Router
}

// newPipeline loads configuration and wires the full message pipeline.
func newPipeline() (*pipeline, error) {
	// Load .env if present (API keys)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}

	llmClient, err := newLLMClient(cfg)
	if err != nil {
		return nil, err
	}

	store, err := newStore(cfg)
	if err != nil {
		return nil, err
	}

	retriever := retrieval.New(llmClient, llmClient, store, cfg.RetrievalK)
	weatherSvc := weather.NewService(weather.NewClient(cfg.WeatherTimeout))
	rt := router.New(guard.NewFilter(nil), retriever, planner.New(), weatherSvc,
		cfg.DefaultCity, cfg.MaxHistoryTurns)

	return &pipeline{
		cfg:       cfg,
		llmClient: llmClient,
		store:     store,
		retriever: retriever,
		weather:   weatherSvc,
		router:    rt,
	}, nil
}

// Close releases the pipeline's persistent resources.
func (p *pipeline) Close() error {
	return p.store.Close()
}

func newLLMClient(cfg *config.Config) (*llm.Client, error) {
	client, err := llm.NewClientWithConfig(&llm.ClientConfig{
		APIKey:         cfg.OpenAIKey,
		ChatModel:      cfg.ChatModel,
		EmbeddingModel: openai.EmbeddingModel(cfg.EmbeddingModel),
		Timeout:        cfg.Timeout,
		MaxRetries:     cfg.MaxRetries,
		RetryDelay:     cfg.RetryDelay,
	})
	if err != nil {
		return nil, fmt.Errorf("initializing OpenAI client: %w", err)
	}
	return client, nil
}

func newStore(cfg *config.Config) (storage.VectorStore, error) {
	client, err := charm.NewClient(&charm.Config{
		Host:     cfg.CharmHost,
		DBName:   cfg.CharmDBName,
		AutoSync: cfg.AutoSync,
	})
	if err != nil {
		return nil, fmt.Errorf("initializing charm storage: %w", err)
	}
	return storage.NewCharmStore(client, cfg.Collection), nil
}
