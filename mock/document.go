package mock

import (
	"context"

	"github.com/fwojciec/docserve"
)

var _ docserve.DocumentService = (*DocumentService)(nil)

// DocumentService is a mock implementation of docserve.DocumentService.
type DocumentService struct {
	AllDocumentsFn       func(ctx context.Context) ([]*docserve.Document, error)
	FindDocumentByPathFn func(ctx context.Context, relPath string) (*docserve.Document, error)
	CountDocumentsFn     func(ctx context.Context) (int, error)
}

func (s *DocumentService) AllDocuments(ctx context.Context) ([]*docserve.Document, error) {
	return s.AllDocumentsFn(ctx)
}

func (s *DocumentService) FindDocumentByPath(ctx context.Context, relPath string) (*docserve.Document, error) {
	return s.FindDocumentByPathFn(ctx, relPath)
}

func (s *DocumentService) CountDocuments(ctx context.Context) (int, error) {
	return s.CountDocumentsFn(ctx)
}
