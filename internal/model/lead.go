// Package model holds the request-scoped entities of the lead pipeline.
// Everything here is created, transformed, and discarded within a single
// pipeline invocation; nothing survives across requests.
package model

import "strings"

// SearchQuery is a single lead search request. Both fields are required and
// trimmed at construction; a query is never mutated after NewSearchQuery.
type SearchQuery struct {
	Location string `json:"location"`
	Industry string `json:"industry"`
}

// NewSearchQuery builds a trimmed query. Emptiness is validated by the
// pipeline, not here, so callers get a single validation path.
func NewSearchQuery(location, industry string) SearchQuery {
	return SearchQuery{
		Location: strings.TrimSpace(location),
		Industry: strings.TrimSpace(industry),
	}
}

// PlaceCandidate is one nearby-search result prior to enrichment. ExternalID
// is the upstream service's opaque place identifier and is only used to fetch
// details; it is never persisted beyond the request.
type PlaceCandidate struct {
	ExternalID string `json:"external_id"`
	Name       string `json:"name"`
	Address    string `json:"address"`
}

// Lead is the terminal, caller-visible record for one candidate. Only Name
// and Address are guaranteed non-empty; every other field is best-effort.
// ContactURL is derived from the website's scheme and host, never fetched
// from any API. Email is empty unless a syntactic match was found on the
// contact page.
type Lead struct {
	Name       string `json:"name"`
	Address    string `json:"address"`
	Website    string `json:"website"`
	ContactURL string `json:"contact"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
}
