package search

import (
	"context"
	"sync"
	"time"

	"email-shield-api/core/domain"
)

// mockProvider is a mock implementation of the SearchProvider interface
type mockProvider struct {
	searchFunc func(ctx context.Context, query string) domain.QueryOutcome
}

func (m *mockProvider) Search(ctx context.Context, query string) domain.QueryOutcome {
	if m.searchFunc != nil {
		return m.searchFunc(ctx, query)
	}
	return domain.QueryOutcome{}
}

type logEntry struct {
	Level   string
	Message string
	Fields  map[string]interface{}
}

// mockLogger records log calls; safe for concurrent use
type mockLogger struct {
	mu   sync.Mutex
	logs []logEntry
}

func (m *mockLogger) record(level, msg string, fields map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.logs = append(m.logs, logEntry{level, msg, fields})
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) { m.record("DEBUG", msg, fields) }
func (m *mockLogger) Info(msg string, fields map[string]interface{})  { m.record("INFO", msg, fields) }
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  { m.record("WARN", msg, fields) }
func (m *mockLogger) Error(msg string, fields map[string]interface{}) { m.record("ERROR", msg, fields) }

func (m *mockLogger) entries() []logEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]logEntry(nil), m.logs...)
}

type observation struct {
	scope  domain.Scope
	status string
}

// mockMetrics records query observations
type mockMetrics struct {
	mu           sync.Mutex
	observations []observation
}

func (m *mockMetrics) ObserveQuery(scope domain.Scope, status string, duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.observations = append(m.observations, observation{scope, status})
}
