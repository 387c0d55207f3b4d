// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines contracts between the HTTP layer, the orchestrator and the search provider

package interfaces

import (
	"context"
	"time"

	"email-shield-api/core/domain"
)

// SearchProvider runs a single query against an external search API.
// Implementations absorb provider failures and return an empty outcome
// instead of an error.
type SearchProvider interface {
	Search(ctx context.Context, query string) domain.QueryOutcome
}

// QueryExecutor runs a dork query with a time bound and failure isolation
type QueryExecutor interface {
	Execute(ctx context.Context, query domain.DorkQuery) domain.QueryOutcome
}

// EmailAnalyzer validates an email and aggregates the outcome of every scope
type EmailAnalyzer interface {
	AnalyzeEmail(ctx context.Context, email string) (*domain.EmailFeatures, error)
}

// MetricsRecorder receives per-query execution measurements
type MetricsRecorder interface {
	ObserveQuery(scope domain.Scope, status string, duration time.Duration)
}
