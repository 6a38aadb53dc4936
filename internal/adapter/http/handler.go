package httpadapter

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"creative-factory/internal/core/port"
	"creative-factory/internal/metrics"
)

// Services bundles the use cases served over HTTP.
type Services struct {
	Generator port.GeneratorUseCase
	Catalog   port.CatalogUseCase
	Trends    port.TrendsUseCase
	ABTests   port.ABTestUseCase
	Models    port.ModelCatalog
}

// Limits tunes request handling.
type Limits struct {
	// DefaultCount is used when a generation request omits count.
	DefaultCount int
	// GenerateTimeout bounds generation calls. Zero disables the bound.
	GenerateTimeout time.Duration
}

// Handler is the inbound HTTP adapter. Every JSON response uses the
// {success, message, data} envelope.
type Handler struct {
	svc     Services
	limits  Limits
	logger  *slog.Logger
	metrics *metrics.Metrics
	router  chi.Router
}

// NewHandler registers all routes on a new chi.Router. Every route shares
// the request id, panic recovery and access log middleware. m may be nil,
// in which case /metrics is not mounted and no HTTP metrics are recorded.
func NewHandler(svc Services, limits Limits, logger *slog.Logger, m *metrics.Metrics) *Handler {
	h := &Handler{
		svc:     svc,
		limits:  limits,
		logger:  logger.With(slog.String("component", "http")),
		metrics: m,
	}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(h.accessLog)

	r.Get("/healthz", h.handleHealth)
	if m != nil {
		r.Method(http.MethodGet, "/metrics", m.Handler())
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/dimensions", h.handleListDimensions)
		r.Put("/dimensions/{id}", h.handleUpdateDimension)
		r.Post("/dimensions/{id}/options", h.handleAddOption)

		r.Get("/creatives", h.handleListCreatives)
		r.Post("/creatives", h.handleSaveCreatives)
		r.Post("/creatives/generate", h.handleGenerate)
		r.Post("/creatives/generate-simple", h.handleGenerateSimple)

		r.Get("/models", h.handleModels)

		r.Post("/trending-topics", h.handleTrendingTopics)
		r.Get("/trending-topics/countries", h.handleCountries)
		r.Get("/trending-topics/time-ranges", h.handleTimeRanges)
		r.Get("/trending-topics/test", h.handleTrendsTest)

		r.Get("/ab-tests", h.handleListABTests)
		r.Post("/ab-tests", h.handleCreateABTest)
		r.Get("/ab-tests/{id}", h.handleGetABTest)
		r.Post("/ab-tests/{id}/events", h.handleRecordEvent)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

// handleHealth reports liveness. It does not touch the database.
func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	h.writeOK(w, "", map[string]string{"status": "ok"})
}
