// ABOUTME: Email analysis service orchestrates the four scoped dork searches
// ABOUTME: Validates the address, fans queries out concurrently and assembles results in fixed scope order

package analysis

import (
	"context"
	"strings"

	"email-shield-api/core/domain"
	"email-shield-api/core/dork"
	coreerrors "email-shield-api/core/errors"
	"email-shield-api/core/interfaces"
	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"
)

// AnalysisService implements interfaces.EmailAnalyzer
type AnalysisService struct {
	executor interfaces.QueryExecutor
	logger   interfaces.Logger
	validate *validator.Validate
}

// NewAnalysisService creates a new analysis service instance
func NewAnalysisService(executor interfaces.QueryExecutor, deps interfaces.Dependencies) *AnalysisService {
	logger := deps.Logger
	if logger == nil {
		logger = interfaces.NopLogger{}
	}

	return &AnalysisService{
		executor: executor,
		logger:   logger,
		validate: validator.New(),
	}
}

// ValidateEmail checks the address syntax
func (s *AnalysisService) ValidateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return &coreerrors.ValidationError{Field: "email", Message: "email is required"}
	}

	if err := s.validate.Var(email, "email"); err != nil {
		return &coreerrors.ValidationError{Field: "email", Message: "value is not a valid email address"}
	}

	return nil
}

// AnalyzeEmail runs every scope query for the address and returns the aggregate.
// Invalid input fails before any query is issued.
func (s *AnalysisService) AnalyzeEmail(ctx context.Context, email string) (*domain.EmailFeatures, error) {
	if err := s.ValidateEmail(email); err != nil {
		return nil, err
	}

	queries := dork.Build(email)
	outcomes := make([]domain.QueryOutcome, len(queries))

	// every query starts before any is awaited; each slot is written by one goroutine
	var g errgroup.Group
	for i, q := range queries {
		g.Go(func() error {
			outcomes[i] = s.executor.Execute(ctx, q)
			return nil
		})
	}
	// Execute absorbs timeouts, panics and provider errors into an empty
	// outcome and every goroutine returns nil, so Wait's error is always nil
	_ = g.Wait()

	features := &domain.EmailFeatures{}
	for i, q := range queries {
		features.Set(q.Scope, outcomes[i])
	}

	s.logger.Info("Email analysis completed", map[string]interface{}{
		"total_mentions":         features.General.TotalCount,
		"pastebin_mentions":      features.Pastebin.TotalCount,
		"github_mentions":        features.GitHub.TotalCount,
		"stackoverflow_mentions": features.StackOverflow.TotalCount,
	})

	return features, nil
}
