package analysis

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"email-shield-api/core/domain"
	coreerrors "email-shield-api/core/errors"
	"email-shield-api/core/interfaces"
	"email-shield-api/core/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEmail(t *testing.T) {
	service := NewAnalysisService(&mockExecutor{}, interfaces.Dependencies{})

	valid := []string{
		"test@example.com",
		"first.last+tag@sub.example.org",
	}
	for _, email := range valid {
		assert.NoError(t, service.ValidateEmail(email), email)
	}

	invalid := []string{
		"",
		"   ",
		"not-an-email",
		"missing@",
		"@example.com",
		"a b@example.com",
		"user@@example.com",
		"Name <user@example.com>",
	}
	for _, email := range invalid {
		err := service.ValidateEmail(email)
		require.Error(t, err, email)
		assert.True(t, coreerrors.IsValidation(err), email)
	}
}

func TestAnalyzeEmail_InvalidEmailIssuesNoQueries(t *testing.T) {
	executor := &mockExecutor{}
	service := NewAnalysisService(executor, interfaces.Dependencies{})

	features, err := service.AnalyzeEmail(context.Background(), "definitely not an email")

	assert.Nil(t, features)
	assert.True(t, coreerrors.IsValidation(err))
	assert.Equal(t, 0, executor.callCount())
}

func TestAnalyzeEmail_IssuesFourScopedQueries(t *testing.T) {
	executor := &mockExecutor{}
	service := NewAnalysisService(executor, interfaces.Dependencies{})

	_, err := service.AnalyzeEmail(context.Background(), "test@example.com")
	require.NoError(t, err)

	texts := make([]string, 0, len(executor.calls))
	for _, q := range executor.calls {
		texts = append(texts, q.Text)
	}

	assert.ElementsMatch(t, []string{
		"intext:test@example.com",
		"site:pastebin.com intext:test@example.com",
		"site:github.com intext:test@example.com",
		"site:stackoverflow.com intext:test@example.com",
	}, texts)
}

func TestAnalyzeEmail_EndToEndWithMockedProvider(t *testing.T) {
	provider := &mockProvider{
		searchFunc: func(ctx context.Context, query string) domain.QueryOutcome {
			if query == "intext:test@example.com" {
				return domain.QueryOutcome{
					TotalCount: 42,
					Items: []domain.SearchResultItem{{
						Title:   "Test Result",
						Link:    "https://example.com/leak",
						Snippet: "test@example.com found here",
						Source:  "Example",
					}},
				}
			}
			return domain.QueryOutcome{TotalCount: 0, Items: []domain.SearchResultItem{}}
		},
	}
	executor := search.NewExecutor(provider, time.Second, interfaces.Dependencies{})
	service := NewAnalysisService(executor, interfaces.Dependencies{})

	features, err := service.AnalyzeEmail(context.Background(), "test@example.com")
	require.NoError(t, err)

	assert.Equal(t, int64(42), features.General.TotalCount)
	require.Len(t, features.General.Items, 1)
	assert.Equal(t, "Test Result", features.General.Items[0].Title)

	for _, scope := range []domain.Scope{domain.ScopePastebin, domain.ScopeGitHub, domain.ScopeStackOverflow} {
		outcome := features.Get(scope)
		assert.Equal(t, int64(0), outcome.TotalCount, scope)
		assert.NotNil(t, outcome.Items, scope)
		assert.Empty(t, outcome.Items, scope)
	}
}

func TestAnalyzeEmail_RunsQueriesConcurrently(t *testing.T) {
	var wg sync.WaitGroup
	wg.Add(4)
	allStarted := make(chan struct{})
	go func() {
		wg.Wait()
		close(allStarted)
	}()

	executor := &mockExecutor{
		executeFunc: func(ctx context.Context, query domain.DorkQuery) domain.QueryOutcome {
			wg.Done()
			// only returns once every query is in flight at the same time
			select {
			case <-allStarted:
				return domain.QueryOutcome{TotalCount: 1}
			case <-time.After(2 * time.Second):
				return domain.QueryOutcome{TotalCount: -1}
			}
		},
	}
	service := NewAnalysisService(executor, interfaces.Dependencies{})

	features, err := service.AnalyzeEmail(context.Background(), "test@example.com")
	require.NoError(t, err)

	for _, scope := range domain.Scopes {
		assert.Equal(t, int64(1), features.Get(scope).TotalCount, scope)
	}
}

func TestAnalyzeEmail_OrderIndependentOfCompletion(t *testing.T) {
	delays := map[domain.Scope]time.Duration{
		domain.ScopeGeneral:       80 * time.Millisecond,
		domain.ScopePastebin:      40 * time.Millisecond,
		domain.ScopeGitHub:        0,
		domain.ScopeStackOverflow: 20 * time.Millisecond,
	}

	executor := &mockExecutor{
		executeFunc: func(ctx context.Context, query domain.DorkQuery) domain.QueryOutcome {
			time.Sleep(delays[query.Scope])
			return domain.QueryOutcome{
				TotalCount: int64(len(query.Scope)),
				Items:      []domain.SearchResultItem{{Source: string(query.Scope)}},
			}
		},
	}
	service := NewAnalysisService(executor, interfaces.Dependencies{})

	features, err := service.AnalyzeEmail(context.Background(), "test@example.com")
	require.NoError(t, err)

	for _, scope := range domain.Scopes {
		outcome := features.Get(scope)
		assert.Equal(t, int64(len(scope)), outcome.TotalCount)
		assert.Equal(t, string(scope), outcome.Items[0].Source)
	}
}

func TestAnalyzeEmail_SlowScopeTimesOutAlone(t *testing.T) {
	provider := &mockProvider{
		searchFunc: func(ctx context.Context, query string) domain.QueryOutcome {
			if strings.HasPrefix(query, "site:github.com") {
				<-ctx.Done()
				time.Sleep(20 * time.Millisecond)
				return domain.QueryOutcome{TotalCount: 1000}
			}
			return domain.QueryOutcome{
				TotalCount: 7,
				Items:      []domain.SearchResultItem{{Link: query}},
			}
		},
	}
	executor := search.NewExecutor(provider, 50*time.Millisecond, interfaces.Dependencies{})
	service := NewAnalysisService(executor, interfaces.Dependencies{})

	features, err := service.AnalyzeEmail(context.Background(), "test@example.com")
	require.NoError(t, err)

	assert.Equal(t, domain.EmptyOutcome(), features.GitHub)
	assert.Equal(t, int64(7), features.General.TotalCount)
	assert.Equal(t, int64(7), features.Pastebin.TotalCount)
	assert.Equal(t, int64(7), features.StackOverflow.TotalCount)
	assert.Equal(t, "site:stackoverflow.com intext:test@example.com", features.StackOverflow.Items[0].Link)
}
