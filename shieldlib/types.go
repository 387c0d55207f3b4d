// ABOUTME: Public types for the Email Shield library API
// ABOUTME: Provides user-friendly types that wrap internal domain models

package shield

import "email-shield-api/core/domain"

// SearchResult is one organic search hit
type SearchResult struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
	Source  string `json:"source"`
}

// EmailFeatures carries the estimated mention counts and top results per scope
type EmailFeatures struct {
	TotalMentions         int64          `json:"total_mentions"`
	PastebinMentions      int64          `json:"pastebin_mentions"`
	GitHubMentions        int64          `json:"github_mentions"`
	StackOverflowMentions int64          `json:"stackoverflow_mentions"`
	TotalResults          []SearchResult `json:"total_results"`
	PastebinResults       []SearchResult `json:"pastebin_results"`
	GitHubResults         []SearchResult `json:"github_results"`
	StackOverflowResults  []SearchResult `json:"stackoverflow_results"`
}

func domainFeaturesToPublic(f *domain.EmailFeatures) *EmailFeatures {
	if f == nil {
		f = &domain.EmailFeatures{}
	}
	return &EmailFeatures{
		TotalMentions:         f.General.TotalCount,
		PastebinMentions:      f.Pastebin.TotalCount,
		GitHubMentions:        f.GitHub.TotalCount,
		StackOverflowMentions: f.StackOverflow.TotalCount,
		TotalResults:          domainItemsToPublic(f.General.Items),
		PastebinResults:       domainItemsToPublic(f.Pastebin.Items),
		GitHubResults:         domainItemsToPublic(f.GitHub.Items),
		StackOverflowResults:  domainItemsToPublic(f.StackOverflow.Items),
	}
}

func domainItemsToPublic(items []domain.SearchResultItem) []SearchResult {
	results := make([]SearchResult, len(items))
	for i, item := range items {
		results[i] = SearchResult(item)
	}
	return results
}
