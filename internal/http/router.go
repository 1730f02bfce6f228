package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"searchindex/internal/handlers"
	"searchindex/internal/service"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	IndexService service.IndexService
	Database     handlers.Pinger
	Dialect      string
	// Gatherer serves /metrics. Nil uses the default registry.
	Gatherer prometheus.Gatherer
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	// Add chi middleware
	r.Use(LoggerMiddleware)
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)

	// Add CORS middleware
	r.Use(CORS)

	indexHandler := handlers.NewIndexHandler(deps.IndexService)
	batchHandler := handlers.NewBatchIndexHandler(deps.IndexService)
	removeHandler := handlers.NewRemoveHandler(deps.IndexService)
	removeFieldHandler := handlers.NewRemoveFieldHandler(deps.IndexService)
	keywordsHandler := handlers.NewKeywordsHandler(deps.IndexService)
	searchHandler := handlers.NewSearchHandler(deps.IndexService)
	healthHandler := handlers.NewHealthHandler(deps.Database, deps.Dialect)

	// Register API routes
	r.Route("/api", func(r chi.Router) {
		r.Method(http.MethodPost, "/index", indexHandler)
		r.Method(http.MethodPost, "/index/batch", batchHandler)
		r.Method(http.MethodGet, "/index/{entityID}", keywordsHandler)
		r.Method(http.MethodDelete, "/index/{entityID}", removeHandler)
		r.Method(http.MethodDelete, "/index/fields/{fieldID}", removeFieldHandler)
		r.Method(http.MethodGet, "/search", searchHandler)
		r.Method(http.MethodGet, "/health", healthHandler)
	})

	gatherer := deps.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	return r
}
