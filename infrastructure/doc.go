// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as HTTP communication, the search provider, metrics, and logging.
//
// The infrastructure package is organized by technical concern:
//
// - http/standard: net/http client with request logging and secret redaction
// - serpapi: SerpApi search provider adapter
// - metrics: Prometheus recorder for per-query measurements
// - logger/standard: logrus-backed structured logger
//
// # HTTP Client
//
//	client := standard.NewLoggingHTTPClient(30*time.Second, logger)
//	resp, err := client.Get(ctx, "https://serpapi.com/search.json?q=...")
//
// Requests are made exactly once; failed calls are not retried.
//
// # Search Provider
//
//	provider, err := serpapi.NewClient(serpapi.Config{APIKey: key}, deps)
//	outcome := provider.Search(ctx, "site:github.com intext:someone@example.com")
//
// Provider failures are logged and reported as an empty outcome.
//
// # Metrics
//
//	recorder := metrics.NewRecorder()
//	router.Handle("/metrics", recorder.Handler())
//
// # Logger
//
// The logger supports structured logging with fields:
//
//	logger, err := standard.NewLogger(standard.Options{Level: "info", Format: "json"})
//	logger.Info("Email analysis completed", map[string]interface{}{
//	    "total_mentions": 42,
//	})
package infrastructure
