package analysis

import (
	"context"
	"sync"

	"email-shield-api/core/domain"
)

// mockExecutor is a mock implementation of the QueryExecutor interface
type mockExecutor struct {
	mu          sync.Mutex
	calls       []domain.DorkQuery
	executeFunc func(ctx context.Context, query domain.DorkQuery) domain.QueryOutcome
}

func (m *mockExecutor) Execute(ctx context.Context, query domain.DorkQuery) domain.QueryOutcome {
	m.mu.Lock()
	m.calls = append(m.calls, query)
	m.mu.Unlock()

	if m.executeFunc != nil {
		return m.executeFunc(ctx, query)
	}
	return domain.EmptyOutcome()
}

func (m *mockExecutor) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// mockProvider is a mock implementation of the SearchProvider interface
type mockProvider struct {
	searchFunc func(ctx context.Context, query string) domain.QueryOutcome
}

func (m *mockProvider) Search(ctx context.Context, query string) domain.QueryOutcome {
	if m.searchFunc != nil {
		return m.searchFunc(ctx, query)
	}
	return domain.EmptyOutcome()
}
