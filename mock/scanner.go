// Package mock provides mock implementations of the docserve service
// interfaces for testing.
package mock

import (
	"context"

	"github.com/fwojciec/docserve"
)

var _ docserve.Scanner = (*Scanner)(nil)

// Scanner is a mock implementation of docserve.Scanner.
type Scanner struct {
	ScanFn func(ctx context.Context) ([]*docserve.Document, error)
}

func (s *Scanner) Scan(ctx context.Context) ([]*docserve.Document, error) {
	return s.ScanFn(ctx)
}
