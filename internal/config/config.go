// ABOUTME: Centralized configuration for the study concierge
// ABOUTME: Loads from environment variables with validation and defaults
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the concierge.
type Config struct {
	// Charm settings
	CharmHost   string
	CharmDBName string
	AutoSync    bool

	// OpenAI settings
	OpenAIKey      string
	ChatModel      string
	EmbeddingModel string
	Timeout        time.Duration
	MaxRetries     int
	RetryDelay     time.Duration

	// Indexing settings
	Collection      string
	TargetChunkSize int
	MaxChunkSize    int

	// Chat settings
	RetrievalK      int
	MaxHistoryTurns int

	// Weather settings
	DefaultCity    string
	WeatherTimeout time.Duration
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		// Defaults
		CharmHost:       getEnv("CHARM_HOST", "cloud.charm.sh"),
		CharmDBName:     getEnv("CHARM_DB", "concierge"),
		AutoSync:        getEnvBool("CHARM_AUTO_SYNC", true),
		OpenAIKey:       os.Getenv("OPENAI_API_KEY"),
		ChatModel:       getEnv("CONCIERGE_CHAT_MODEL", "gpt-4o-mini"),
		EmbeddingModel:  getEnv("CONCIERGE_EMBEDDING_MODEL", "text-embedding-3-small"),
		Timeout:         getEnvDuration("CONCIERGE_TIMEOUT", 30*time.Second),
		MaxRetries:      getEnvInt("CONCIERGE_MAX_RETRIES", 0),
		RetryDelay:      getEnvDuration("CONCIERGE_RETRY_DELAY", 2*time.Second),
		Collection:      getEnv("CONCIERGE_COLLECTION", "course_materials"),
		TargetChunkSize: getEnvInt("CONCIERGE_TARGET_CHUNK_SIZE", 900),
		MaxChunkSize:    getEnvInt("CONCIERGE_MAX_CHUNK_SIZE", 1200),
		RetrievalK:      getEnvInt("CONCIERGE_RETRIEVAL_K", 4),
		MaxHistoryTurns: getEnvInt("CONCIERGE_MAX_HISTORY_TURNS", 8),
		DefaultCity:     getEnv("CONCIERGE_DEFAULT_CITY", "toronto"),
		WeatherTimeout:  getEnvDuration("CONCIERGE_WEATHER_TIMEOUT", 5*time.Second),
	}

	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if c.TargetChunkSize <= 0 {
		return fmt.Errorf("CONCIERGE_TARGET_CHUNK_SIZE must be positive, got %d", c.TargetChunkSize)
	}
	if c.MaxChunkSize < c.TargetChunkSize {
		return fmt.Errorf("CONCIERGE_MAX_CHUNK_SIZE (%d) must be >= CONCIERGE_TARGET_CHUNK_SIZE (%d)",
			c.MaxChunkSize, c.TargetChunkSize)
	}
	if c.RetrievalK <= 0 {
		return fmt.Errorf("CONCIERGE_RETRIEVAL_K must be positive, got %d", c.RetrievalK)
	}
	if c.MaxHistoryTurns <= 0 {
		return fmt.Errorf("CONCIERGE_MAX_HISTORY_TURNS must be positive, got %d", c.MaxHistoryTurns)
	}
	if c.MaxRetries < 0 || c.MaxRetries > 10 {
		return fmt.Errorf("CONCIERGE_MAX_RETRIES must be 0-10, got %d", c.MaxRetries)
	}
	if c.WeatherTimeout <= 0 {
		return fmt.Errorf("CONCIERGE_WEATHER_TIMEOUT must be positive, got %v", c.WeatherTimeout)
	}
	return nil
}

// Helper functions
func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	return v == "true" || v == "1"
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
