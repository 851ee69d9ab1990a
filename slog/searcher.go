package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docserve"
)

// Ensure LoggingSearcher implements docserve.Searcher.
var _ docserve.Searcher = (*LoggingSearcher)(nil)

// LoggingSearcher wraps a Searcher and logs each query.
type LoggingSearcher struct {
	next   docserve.Searcher
	logger *slog.Logger
}

// NewLoggingSearcher creates a new LoggingSearcher.
func NewLoggingSearcher(next docserve.Searcher, logger *slog.Logger) *LoggingSearcher {
	return &LoggingSearcher{next: next, logger: logger}
}

// Search delegates to the wrapped searcher and logs the operation.
func (s *LoggingSearcher) Search(ctx context.Context, query string, limit int) (results []docserve.SearchResult, err error) {
	defer func(begin time.Time) {
		s.logger.Info("search",
			"query", query,
			"count", len(results),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Search(ctx, query, limit)
}
