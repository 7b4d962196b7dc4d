package main

import (
	"log"
	"log/slog"
	nethttp "net/http"
	"os"

	"faqsearch/internal/config"
	"faqsearch/internal/embedding"
	"faqsearch/internal/http"
	"faqsearch/internal/index"
	"faqsearch/internal/search"
	"faqsearch/internal/service"
	"faqsearch/internal/store"
)

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure structured logging with configurable level and format
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))
	slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)

	// The document store is optional at deployment time. Without it, every
	// search operation degrades to its documented fallback and the rest of
	// the platform keeps working.
	var documentStore store.DocumentStore
	if cfg.SearchEnabled() {
		vectors, err := store.NewQdrantStore(cfg.QdrantURL, cfg.VectorSize)
		if err != nil {
			log.Fatalf("Failed to create Qdrant client: %v", err)
		}
		lexical := store.NewBleveStore(cfg.LexicalIndexPath)
		documentStore = store.NewHybridStore(vectors, lexical)
		slog.Info("Document store configured",
			"qdrant_url", cfg.QdrantURL,
			"vector_size", cfg.VectorSize,
			"lexical_index_path", cfg.LexicalIndexPath,
		)
	} else {
		slog.Warn("QDRANT_URL not set; search is disabled and all operations will degrade")
	}

	indexManager := index.NewManager(documentStore)
	writer := search.NewWriter(indexManager, cfg.VectorSize)
	orchestrator := search.NewOrchestrator(indexManager)
	faqSearch := service.NewFaqSearch(indexManager, writer, orchestrator)

	// Optional embeddings client for callers that do not supply query vectors.
	var embedder *embedding.Client
	if cfg.EmbeddingBaseURL != "" {
		embedder = embedding.NewClient(cfg.EmbeddingBaseURL, cfg.EmbeddingAPIKey, cfg.EmbeddingModel, cfg.VectorSize)
		slog.Info("Embeddings client configured", "base_url", cfg.EmbeddingBaseURL, "model", cfg.EmbeddingModel)
	}

	router := http.NewRouter(&http.Deps{
		Service:  faqSearch,
		Index:    indexManager,
		Embedder: embedder,
	})

	addr := ":" + cfg.APIPort
	slog.Info("Starting API server", "addr", addr)
	if err := nethttp.ListenAndServe(addr, router); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
