// ABOUTME: Dork query construction for email leak searches
// ABOUTME: Produces one site-scoped intext: query per scope in fixed order

package dork

import (
	"fmt"

	"email-shield-api/core/domain"
)

// ForScope builds the dork query for one scope.
// The general scope has no site: clause.
func ForScope(scope domain.Scope, email string) domain.DorkQuery {
	text := fmt.Sprintf("intext:%s", email)
	if site := scope.Site(); site != "" {
		text = fmt.Sprintf("site:%s %s", site, text)
	}

	return domain.DorkQuery{
		Scope: scope,
		Text:  text,
	}
}

// Build returns the queries for every scope, ordered as domain.Scopes
func Build(email string) []domain.DorkQuery {
	queries := make([]domain.DorkQuery, 0, len(domain.Scopes))
	for _, scope := range domain.Scopes {
		queries = append(queries, ForScope(scope, email))
	}
	return queries
}
