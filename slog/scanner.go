// Package slog provides logging decorators for the docserve services,
// built on the standard library's log/slog package.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docserve"
)

// Ensure LoggingScanner implements docserve.Scanner.
var _ docserve.Scanner = (*LoggingScanner)(nil)

// LoggingScanner wraps a Scanner and logs each scan.
type LoggingScanner struct {
	next   docserve.Scanner
	logger *slog.Logger
}

// NewLoggingScanner creates a new LoggingScanner.
func NewLoggingScanner(next docserve.Scanner, logger *slog.Logger) *LoggingScanner {
	return &LoggingScanner{next: next, logger: logger}
}

// Scan delegates to the wrapped scanner and logs the operation.
func (s *LoggingScanner) Scan(ctx context.Context) (docs []*docserve.Document, err error) {
	defer func(begin time.Time) {
		s.logger.Info("document scan",
			"count", len(docs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Scan(ctx)
}
