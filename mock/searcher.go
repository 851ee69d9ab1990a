package mock

import (
	"context"

	"github.com/fwojciec/docserve"
)

var _ docserve.Searcher = (*Searcher)(nil)

// Searcher is a mock implementation of docserve.Searcher.
type Searcher struct {
	SearchFn func(ctx context.Context, query string, limit int) ([]docserve.SearchResult, error)
}

func (s *Searcher) Search(ctx context.Context, query string, limit int) ([]docserve.SearchResult, error) {
	return s.SearchFn(ctx, query, limit)
}
