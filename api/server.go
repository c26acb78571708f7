// ABOUTME: Huma API server configuration and setup
// ABOUTME: Wires CORS, request logging, HTTP metrics and the Prometheus scrape endpoint onto chi

package api

import (
	"net/http"

	"feed-discovery-api/api/middleware"
	"feed-discovery-api/core/interfaces"
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

const (
	apiTitle   = "Feed Discovery API"
	apiVersion = "1.0.0"
)

// MetricsProvider records HTTP traffic and serves the scrape endpoint
type MetricsProvider interface {
	middleware.RequestObserver
	Handler() http.Handler
}

// APIConfig holds configuration for the API
type APIConfig struct {
	Logger interfaces.Logger

	// Metrics enables request metrics and GET /metrics when set
	Metrics MetricsProvider
}

// NewAPI creates and configures a new Huma API instance without middleware
func NewAPI() (huma.API, chi.Router) {
	return NewAPIWithMiddleware(APIConfig{})
}

// NewAPIWithMiddleware creates a new API with middleware configured
func NewAPIWithMiddleware(cfg APIConfig) (huma.API, chi.Router) {
	router := chi.NewRouter()

	// CORS first so preflight requests short-circuit
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         300, // Maximum value not ignored by any of major browsers
	}))

	if cfg.Logger != nil {
		router.Use(middleware.RequestLoggingMiddleware(cfg.Logger))
	}

	if cfg.Metrics != nil {
		router.Use(middleware.MetricsMiddleware(cfg.Metrics))
		router.Method(http.MethodGet, "/metrics", cfg.Metrics.Handler())
	}

	config := huma.DefaultConfig(apiTitle, apiVersion)
	config.Info.Description = "Ranks a curated corpus of syndication feeds by keyword relevance and validates candidate feed URLs"

	// The OpenAPI spec is available at /openapi.json and the docs UI at /docs
	api := humachi.New(router, config)

	return api, router
}
