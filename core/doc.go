// Package core contains the business logic for the Email Shield API.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Scopes, dork queries, query outcomes and the aggregated email features
// - dork: Builds the scoped search-engine queries for an address
// - search: Runs one query with a time budget and failure isolation
// - analysis: Validates the address and fans the scope queries out concurrently
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (search provider, HTTP, logger, metrics)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No HTTP framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Nothing is persisted; every request is independent
//
// # Usage Example
//
//	import (
//	    "email-shield-api/core/analysis"
//	    "email-shield-api/core/interfaces"
//	    "email-shield-api/core/search"
//	)
//
//	deps := interfaces.Dependencies{
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	executor := search.NewExecutor(provider, 10*time.Second, deps)
//	analyzer := analysis.NewAnalysisService(executor, deps)
//
//	features, err := analyzer.AnalyzeEmail(ctx, "someone@example.com")
package core
