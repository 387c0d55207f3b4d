// ABOUTME: Leak search domain models for email exposure analysis
// ABOUTME: Defines scopes, dork queries, per-query outcomes and the aggregate features

package domain

// Scope identifies one of the search categories every analysis covers
type Scope string

const (
	// ScopeGeneral searches the whole web
	ScopeGeneral Scope = "general"

	// ScopePastebin restricts results to pastebin.com
	ScopePastebin Scope = "pastebin"

	// ScopeGitHub restricts results to github.com
	ScopeGitHub Scope = "github"

	// ScopeStackOverflow restricts results to stackoverflow.com
	ScopeStackOverflow Scope = "stackoverflow"
)

// Scopes lists every scope in response order
var Scopes = []Scope{ScopeGeneral, ScopePastebin, ScopeGitHub, ScopeStackOverflow}

// Site returns the domain a scope is restricted to, or "" for the general scope
func (s Scope) Site() string {
	switch s {
	case ScopePastebin:
		return "pastebin.com"
	case ScopeGitHub:
		return "github.com"
	case ScopeStackOverflow:
		return "stackoverflow.com"
	default:
		return ""
	}
}

// DorkQuery is a search query using provider operators such as site: and intext:
type DorkQuery struct {
	// Scope is the category this query belongs to
	Scope Scope

	// Text is the raw query string sent to the search provider
	Text string
}

// String returns the query text
func (q DorkQuery) String() string {
	return q.Text
}

// SearchResultItem is a single organic result returned by the search provider
type SearchResultItem struct {
	Title   string
	Link    string
	Snippet string
	Source  string
}

// QueryOutcome is the result of running one dork query
type QueryOutcome struct {
	// TotalCount is the provider's estimated total number of matches
	TotalCount int64

	// Items holds at most MaxResultsPerQuery organic results
	Items []SearchResultItem
}

// MaxResultsPerQuery caps the number of organic results requested per query
const MaxResultsPerQuery = 10

// EmptyOutcome returns the zero-result outcome used for failed or degraded queries
func EmptyOutcome() QueryOutcome {
	return QueryOutcome{TotalCount: 0, Items: []SearchResultItem{}}
}

// EmailFeatures aggregates the outcomes of every scope for one email address
type EmailFeatures struct {
	General       QueryOutcome
	Pastebin      QueryOutcome
	GitHub        QueryOutcome
	StackOverflow QueryOutcome
}

// Set stores an outcome in the slot for the given scope
func (f *EmailFeatures) Set(scope Scope, outcome QueryOutcome) {
	if outcome.Items == nil {
		outcome.Items = []SearchResultItem{}
	}

	switch scope {
	case ScopeGeneral:
		f.General = outcome
	case ScopePastebin:
		f.Pastebin = outcome
	case ScopeGitHub:
		f.GitHub = outcome
	case ScopeStackOverflow:
		f.StackOverflow = outcome
	}
}

// Get returns the outcome stored for the given scope
func (f *EmailFeatures) Get(scope Scope) QueryOutcome {
	switch scope {
	case ScopeGeneral:
		return f.General
	case ScopePastebin:
		return f.Pastebin
	case ScopeGitHub:
		return f.GitHub
	case ScopeStackOverflow:
		return f.StackOverflow
	default:
		return EmptyOutcome()
	}
}
