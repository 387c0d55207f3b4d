// ABOUTME: Main entry point for the Email Shield API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"email-shield-api/api"
	"email-shield-api/api/handlers"
	"email-shield-api/core/analysis"
	"email-shield-api/core/interfaces"
	"email-shield-api/core/search"
	stdhttp "email-shield-api/infrastructure/http/standard"
	stdlogger "email-shield-api/infrastructure/logger/standard"
	"email-shield-api/infrastructure/metrics"
	"email-shield-api/infrastructure/serpapi"
	"email-shield-api/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Create logger
	logger, err := stdlogger.NewLogger(stdlogger.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	logger.Info("Starting Email Shield API", map[string]interface{}{
		"port":            cfg.Server.Port,
		"engine":          cfg.Search.Engine,
		"query_timeout":   cfg.Search.QueryTimeout.String(),
		"metrics_enabled": cfg.Metrics.Enabled,
	})

	// Create HTTP client
	httpClient := stdhttp.NewLoggingHTTPClient(cfg.Search.HTTPTimeout, logger)

	// Create dependencies container
	deps := interfaces.Dependencies{
		HTTPClient: httpClient,
		Logger:     logger,
	}

	var metricsHandler http.Handler
	if cfg.Metrics.Enabled {
		recorder := metrics.NewRecorder()
		deps.Metrics = recorder
		metricsHandler = recorder.Handler()
	}

	// Create services
	provider, err := serpapi.NewClient(serpapi.Config{
		APIKey:  cfg.Search.APIKey,
		BaseURL: cfg.Search.BaseURL,
		Engine:  cfg.Search.Engine,
	}, deps)
	if err != nil {
		log.Fatalf("Failed to create search provider: %v", err)
	}
	executor := search.NewExecutor(provider, cfg.Search.QueryTimeout, deps)
	analysisService := analysis.NewAnalysisService(executor, deps)

	// Create API with middleware
	// scopes run in parallel, so one query budget bounds a normal request
	humaAPI, router := api.NewAPI(api.APIConfig{
		Logger:               logger,
		AllowedOrigins:       cfg.Server.AllowedOrigins,
		MetricsHandler:       metricsHandler,
		SlowRequestThreshold: cfg.Search.QueryTimeout + 2*time.Second,
	})

	// Create and register handlers
	handlers.NewHealthHandler().RegisterRoutes(humaAPI)
	handlers.NewEmailHandler(analysisService).RegisterRoutes(humaAPI)

	// Create HTTP server
	srv := &http.Server{
		Addr:        ":" + cfg.Server.Port,
		Handler:     router,
		ReadTimeout: 15 * time.Second,
		// queries run in parallel so one budget plus headroom covers a request
		WriteTimeout: cfg.Search.QueryTimeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server stopped", nil)
}

func init() {
	// Print banner
	fmt.Println(`
    ______                _ __   _____ __    _      __    __
   / ____/___ ___  ____ _(_) /  / ___// /_  (_)__  / /___/ /
  / __/ / __ '__ \/ __ '/ / /   \__ \/ __ \/ / _ \/ / __  / 
 / /___/ / / / / / /_/ / / /   ___/ / / / / /  __/ / /_/ /  
/_____/_/ /_/ /_/\__,_/_/_/   /____/_/ /_/_/\___/_/\__,_/   
	`)
}
