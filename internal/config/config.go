package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	// QdrantURL points at the vector store. Empty means search is disabled:
	// every search operation degrades to its no-op fallback.
	QdrantURL string
	// VectorSize is the embedding dimensionality every collection is created with.
	// It must match the output size of the upstream embedding model.
	VectorSize int
	// LexicalIndexPath is the root directory for per-chatbot lexical indexes.
	// Empty means indexes are kept in memory only.
	LexicalIndexPath string

	// EmbeddingBaseURL is an optional OpenAI-compatible embeddings endpoint.
	// When set, the search API can embed query text for callers that do not
	// supply a query vector themselves.
	EmbeddingBaseURL string
	EmbeddingModel   string
	EmbeddingAPIKey  string

	APIPort   string
	LogLevel  slog.Level
	LogFormat string
}

// Load reads configuration from environment variables and returns a Config struct.
// It applies defaults for optional fields and validates the rest.
// If a .env file exists in the current directory or project root, it will be loaded automatically.
// Environment variables already set take precedence over .env file values.
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	// Check current directory first, then walk up to find project root (where go.mod is)
	_ = godotenv.Load() // Try current directory

	wd, err := os.Getwd()
	if err == nil {
		dir := wd
		for i := 0; i < 5; i++ { // Limit search depth
			envPath := filepath.Join(dir, ".env")
			if _, err := os.Stat(envPath); err == nil {
				_ = godotenv.Load(envPath)
				break
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				break // Reached filesystem root
			}
			dir = parent
		}
	}

	cfg := &Config{
		QdrantURL:        getEnv("QDRANT_URL", ""),
		LexicalIndexPath: getEnv("LEXICAL_INDEX_PATH", "./data/lexical"),
		EmbeddingBaseURL: getEnv("EMBEDDING_BASE_URL", ""),
		EmbeddingModel:   getEnv("EMBEDDING_MODEL", "text-embedding-3-large"),
		EmbeddingAPIKey:  getEnv("EMBEDDING_API_KEY", "dummy-key"),
		APIPort:          getEnv("API_PORT", "9000"),
		LogFormat:        getEnv("LOG_FORMAT", "text"),
	}

	// VECTOR_SIZE must match the output vector size of the embedding model.
	// If it changes, every collection must be recreated and repopulated.
	vectorSizeStr := getEnv("VECTOR_SIZE", "3072")
	vectorSize, err := strconv.Atoi(vectorSizeStr)
	if err != nil {
		return nil, fmt.Errorf("VECTOR_SIZE must be a valid integer: %w", err)
	}
	if vectorSize <= 0 {
		return nil, fmt.Errorf("VECTOR_SIZE must be greater than 0")
	}
	cfg.VectorSize = vectorSize

	level, err := parseLogLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, err
	}
	cfg.LogLevel = level

	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("LOG_FORMAT must be \"text\" or \"json\", got %q", cfg.LogFormat)
	}

	if cfg.LexicalIndexPath != "" {
		if err := os.MkdirAll(cfg.LexicalIndexPath, 0755); err != nil {
			return nil, fmt.Errorf("failed to create lexical index directory: %w", err)
		}
	}

	return cfg, nil
}

// SearchEnabled reports whether the document store is configured at all.
func (c *Config) SearchEnabled() bool {
	return c.QdrantURL != ""
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid LOG_LEVEL %q", s)
	}
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
