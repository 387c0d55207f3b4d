// ABOUTME: Response DTOs for email analysis endpoints
// ABOUTME: Field names are part of the public contract

package responses

// SearchResult is one organic search hit
type SearchResult struct {
	Title   string `json:"title" doc:"Result title"`
	Link    string `json:"link" doc:"Result URL"`
	Snippet string `json:"snippet" doc:"Text snippet around the match"`
	Source  string `json:"source" doc:"Site or publisher name"`
}

// EmailFeaturesResponse carries the per-scope mention counts and results
type EmailFeaturesResponse struct {
	TotalMentions         int64          `json:"total_mentions" doc:"Estimated matches across the whole web"`
	PastebinMentions      int64          `json:"pastebin_mentions" doc:"Estimated matches on pastebin.com"`
	GitHubMentions        int64          `json:"github_mentions" doc:"Estimated matches on github.com"`
	StackOverflowMentions int64          `json:"stackoverflow_mentions" doc:"Estimated matches on stackoverflow.com"`
	TotalResults          []SearchResult `json:"total_results" doc:"Top web results"`
	PastebinResults       []SearchResult `json:"pastebin_results" doc:"Top pastebin.com results"`
	GitHubResults         []SearchResult `json:"github_results" doc:"Top github.com results"`
	StackOverflowResults  []SearchResult `json:"stackoverflow_results" doc:"Top stackoverflow.com results"`
}

// HealthResponse is the liveness payload
type HealthResponse struct {
	Status string `json:"status" example:"healthy" doc:"Service status"`
}
