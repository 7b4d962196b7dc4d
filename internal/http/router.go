package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"faqsearch/internal/embedding"
	"faqsearch/internal/handlers"
	"faqsearch/internal/index"
	"faqsearch/internal/service"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	Service  service.FaqSearch
	Index    *index.Manager
	Embedder *embedding.Client // optional
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(LoggerMiddleware)
	r.Use(CORS)

	searchHandler := handlers.NewSearchHandler(deps.Service, deps.Embedder)
	faqHandler := handlers.NewFaqHandler(deps.Service)
	collectionHandler := handlers.NewCollectionHandler(deps.Service)
	healthHandler := handlers.NewHealthHandler(deps.Index)

	r.Route("/api", func(r chi.Router) {
		r.Method(http.MethodPost, "/search", searchHandler)
		r.Method(http.MethodGet, "/health", healthHandler)

		r.Put("/faqs", faqHandler.Upsert)
		r.Delete("/faqs/{chatbotID}/{faqID}", faqHandler.Remove)

		r.Put("/collections/{chatbotID}", collectionHandler.Ensure)
		r.Post("/collections/{chatbotID}/recreate", collectionHandler.Recreate)
		r.Delete("/collections/{chatbotID}", collectionHandler.Delete)
	})

	return r
}
