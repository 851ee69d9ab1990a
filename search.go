package docserve

import "context"

// DefaultSearchLimit caps results when the caller does not specify a limit.
const DefaultSearchLimit = 50

// ExcerptContext is the amount of context kept on each side of the first
// match when building an excerpt.
const ExcerptContext = 120

// SearchResult is a single search hit. Results are constructed per query
// and never persisted.
type SearchResult struct {
	Document *Document `json:"document"`
	Score    float64   `json:"score"`
	Excerpt  string    `json:"excerpt"`
}

// Searcher answers literal substring queries over the document set.
// Matching is case-insensitive and the query is never interpreted as a
// pattern language.
type Searcher interface {
	// Search returns results ordered by score descending, ties broken by
	// RelPath ascending. A blank query yields no results and no error.
	// limit <= 0 means DefaultSearchLimit.
	Search(ctx context.Context, query string, limit int) ([]SearchResult, error)
}
