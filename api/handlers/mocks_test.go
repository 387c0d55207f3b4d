package handlers

import (
	"context"
	"sync"

	"email-shield-api/core/domain"
)

// mockAnalyzer is a mock implementation of the EmailAnalyzer interface
type mockAnalyzer struct {
	mu          sync.Mutex
	emails      []string
	analyzeFunc func(ctx context.Context, email string) (*domain.EmailFeatures, error)
}

func (m *mockAnalyzer) AnalyzeEmail(ctx context.Context, email string) (*domain.EmailFeatures, error) {
	m.mu.Lock()
	m.emails = append(m.emails, email)
	m.mu.Unlock()

	if m.analyzeFunc != nil {
		return m.analyzeFunc(ctx, email)
	}
	return &domain.EmailFeatures{}, nil
}

// mockProvider is a mock implementation of the SearchProvider interface
type mockProvider struct {
	mu         sync.Mutex
	queries    []string
	searchFunc func(ctx context.Context, query string) domain.QueryOutcome
}

func (m *mockProvider) Search(ctx context.Context, query string) domain.QueryOutcome {
	m.mu.Lock()
	m.queries = append(m.queries, query)
	m.mu.Unlock()

	if m.searchFunc != nil {
		return m.searchFunc(ctx, query)
	}
	return domain.EmptyOutcome()
}

func (m *mockProvider) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.queries)
}
