// ABOUTME: Huma API server configuration and setup
// ABOUTME: Provides OpenAPI documentation, CORS, panic recovery, request logging and metrics exposition

package api

import (
	"net/http"
	"time"

	"email-shield-api/api/middleware"
	"email-shield-api/core/interfaces"
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

const (
	// Title is the OpenAPI title of the service
	Title = "Email Shield API"

	// Version is the OpenAPI version of the service
	Version = "1.0.0"
)

// APIConfig holds configuration for the API
type APIConfig struct {
	Logger         interfaces.Logger
	AllowedOrigins []string     // CORS origins, defaults to "*"
	MetricsHandler http.Handler // mounted at /metrics when set

	// SlowRequestThreshold marks requests worth a warning, defaults to middleware.DefaultSlowRequestThreshold
	SlowRequestThreshold time.Duration
}

// NewAPI creates and configures a new Huma API instance
func NewAPI(cfg APIConfig) (huma.API, chi.Router) {
	router := chi.NewRouter()

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	// CORS first so preflight requests never reach the handlers
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	logger := cfg.Logger
	if logger == nil {
		logger = interfaces.NopLogger{}
	}

	// Logging wraps recovery so a recovered 500 is still logged as completed
	router.Use(middleware.RequestLoggingMiddleware(logger, cfg.SlowRequestThreshold))
	router.Use(middleware.RecoveryMiddleware(logger))

	if cfg.MetricsHandler != nil {
		router.Handle("/metrics", cfg.MetricsHandler)
	}

	config := huma.DefaultConfig(Title, Version)
	config.Info.Description = "Estimates the public exposure of an email address by running scoped search-engine dork queries"
	// Keep response bodies to the documented fields only
	config.CreateHooks = nil

	// The OpenAPI spec is automatically available at /openapi.json
	// The Swagger UI is automatically available at /docs
	api := humachi.New(router, config)

	return api, router
}
