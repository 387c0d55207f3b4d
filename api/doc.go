// Package api provides the HTTP API layer for the Email Shield service.
// It uses the Huma framework to provide automatic OpenAPI documentation,
// request/response validation, and a clean handler interface.
//
// # Architecture
//
// The API package is structured as follows:
//
// - server.go: Huma API configuration and setup
// - handlers/: HTTP request handlers
// - dto/: Data Transfer Objects for requests and responses
// - middleware/: HTTP middleware for cross-cutting concerns
//
// # Endpoints
//
//	POST /v1/analyze/email   run the scoped dork searches for an address
//	GET  /health             liveness probe
//	GET  /metrics            Prometheus exposition (when enabled)
//	GET  /openapi.json       generated OpenAPI 3.1 document
//	GET  /docs               interactive documentation
//
// # Middleware
//
// Requests pass through CORS handling, request logging with a request ID
// (reused from X-Request-ID when present) and panic recovery.
//
// # Usage Example
//
//	humaAPI, router := api.NewAPI(api.APIConfig{
//	    Logger:         logger,
//	    AllowedOrigins: []string{"*"},
//	    MetricsHandler: recorder.Handler(),
//	})
//
//	handlers.NewHealthHandler().RegisterRoutes(humaAPI)
//	handlers.NewEmailHandler(analysisService).RegisterRoutes(humaAPI)
//
//	http.ListenAndServe(":8000", router)
//
// # Error Handling
//
// Errors use the RFC 7807 problem format:
//
//	{
//	    "status": 400,
//	    "title": "Bad Request",
//	    "detail": "validation error on field 'email': value is not a valid email address"
//	}
//
// Domain errors are mapped to HTTP status codes in handlers/errors.go.
package api
