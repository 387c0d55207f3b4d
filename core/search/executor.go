// ABOUTME: Bounded query executor isolates each dork query behind a timeout
// ABOUTME: Converts timeouts, cancellations and panics into empty outcomes so one scope never fails a request

package search

import (
	"context"
	"fmt"
	"time"

	"email-shield-api/core/domain"
	"email-shield-api/core/interfaces"
)

// DefaultQueryTimeout bounds a single provider call
const DefaultQueryTimeout = 10 * time.Second

// Execution statuses reported to the metrics recorder
const (
	StatusOK      = "ok"
	StatusTimeout = "timeout"
	StatusError   = "error"
)

// Executor runs provider searches off the caller's goroutine with a fixed time budget
type Executor struct {
	provider interfaces.SearchProvider
	timeout  time.Duration
	logger   interfaces.Logger
	metrics  interfaces.MetricsRecorder
}

// NewExecutor creates an executor. A non-positive timeout selects DefaultQueryTimeout.
func NewExecutor(provider interfaces.SearchProvider, timeout time.Duration, deps interfaces.Dependencies) *Executor {
	if timeout <= 0 {
		timeout = DefaultQueryTimeout
	}

	logger := deps.Logger
	if logger == nil {
		logger = interfaces.NopLogger{}
	}

	return &Executor{
		provider: provider,
		timeout:  timeout,
		logger:   logger,
		metrics:  deps.Metrics,
	}
}

// Timeout returns the per-query time budget
func (e *Executor) Timeout() time.Duration {
	return e.timeout
}

type result struct {
	outcome domain.QueryOutcome
	err     error
}

// Execute runs the query and always returns an outcome. On timeout the
// in-flight call is abandoned; its late result is dropped.
func (e *Executor) Execute(ctx context.Context, query domain.DorkQuery) domain.QueryOutcome {
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	// buffered so an abandoned call can still deliver and exit
	done := make(chan result, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- result{err: fmt.Errorf("search provider panic: %v", r)}
			}
		}()

		if e.provider == nil {
			done <- result{err: fmt.Errorf("search provider not configured")}
			return
		}
		done <- result{outcome: e.provider.Search(ctx, query.Text)}
	}()

	select {
	case res := <-done:
		if res.err != nil {
			e.logger.Error("Error running dork query", map[string]interface{}{
				"scope": string(query.Scope),
				"query": query.Text,
				"error": res.err.Error(),
			})
			e.observe(query.Scope, StatusError, start)
			return domain.EmptyOutcome()
		}

		outcome := res.outcome
		if outcome.Items == nil {
			outcome.Items = []domain.SearchResultItem{}
		}
		e.observe(query.Scope, StatusOK, start)
		return outcome

	case <-ctx.Done():
		e.logger.Warn("Timeout while running dork query", map[string]interface{}{
			"scope":   string(query.Scope),
			"query":   query.Text,
			"timeout": e.timeout.String(),
			"reason":  ctx.Err().Error(),
		})
		e.observe(query.Scope, StatusTimeout, start)
		return domain.EmptyOutcome()
	}
}

func (e *Executor) observe(scope domain.Scope, status string, start time.Time) {
	if e.metrics == nil {
		return
	}
	e.metrics.ObserveQuery(scope, status, time.Since(start))
}
