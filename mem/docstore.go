// Package mem provides in-memory implementations of the docserve services.
// The stores are built once from the startup scan and are safe for
// concurrent readers because they are never mutated afterwards.
package mem

import (
	"context"
	"strings"

	"github.com/fwojciec/docserve"
)

// Ensure DocumentStore implements docserve.DocumentService at compile time.
var _ docserve.DocumentService = (*DocumentStore)(nil)

// DocumentStore serves lookups over the scanned document list.
type DocumentStore struct {
	docs   []*docserve.Document
	byPath map[string]*docserve.Document
}

// NewDocumentStore creates a DocumentStore. docs must already be sorted by
// RelPath, as produced by the scanner.
func NewDocumentStore(docs []*docserve.Document) *DocumentStore {
	byPath := make(map[string]*docserve.Document, len(docs))
	for _, doc := range docs {
		byPath[doc.RelPath] = doc
	}
	return &DocumentStore{docs: docs, byPath: byPath}
}

// AllDocuments returns every document in RelPath order.
func (s *DocumentStore) AllDocuments(ctx context.Context) ([]*docserve.Document, error) {
	return s.docs, nil
}

// CountDocuments returns the number of scanned documents.
func (s *DocumentStore) CountDocuments(ctx context.Context) (int, error) {
	return len(s.docs), nil
}

// FindDocumentByPath retrieves a document by relative path. Leading and
// trailing slashes are trimmed before lookup.
func (s *DocumentStore) FindDocumentByPath(ctx context.Context, relPath string) (*docserve.Document, error) {
	normalized := strings.Trim(relPath, "/")
	doc, ok := s.byPath[normalized]
	if !ok {
		return nil, docserve.Errorf(docserve.ENOTFOUND, "document %q not found", normalized)
	}
	return doc, nil
}
