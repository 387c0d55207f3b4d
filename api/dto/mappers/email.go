// ABOUTME: Mappers for converting between domain models and API DTOs
// ABOUTME: Provides clean separation between business logic and API layer

package mappers

import (
	"email-shield-api/api/dto/responses"
	"email-shield-api/core/domain"
)

// ToEmailFeaturesResponse converts domain EmailFeatures to the response DTO.
// A nil input yields a fully shaped zero response.
func ToEmailFeaturesResponse(features *domain.EmailFeatures) responses.EmailFeaturesResponse {
	if features == nil {
		features = &domain.EmailFeatures{}
	}

	return responses.EmailFeaturesResponse{
		TotalMentions:         features.General.TotalCount,
		PastebinMentions:      features.Pastebin.TotalCount,
		GitHubMentions:        features.GitHub.TotalCount,
		StackOverflowMentions: features.StackOverflow.TotalCount,
		TotalResults:          ToSearchResults(features.General.Items),
		PastebinResults:       ToSearchResults(features.Pastebin.Items),
		GitHubResults:         ToSearchResults(features.GitHub.Items),
		StackOverflowResults:  ToSearchResults(features.StackOverflow.Items),
	}
}

// ToSearchResults converts result items, never returning nil
func ToSearchResults(items []domain.SearchResultItem) []responses.SearchResult {
	results := make([]responses.SearchResult, 0, len(items))
	for _, item := range items {
		results = append(results, responses.SearchResult{
			Title:   item.Title,
			Link:    item.Link,
			Snippet: item.Snippet,
			Source:  item.Source,
		})
	}
	return results
}
