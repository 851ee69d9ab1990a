package docserve

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"path"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Document represents a single text or markdown file discovered under the
// configured root. Documents are created once during the startup scan and
// never mutated afterwards.
type Document struct {
	// AbsPath is the canonical filesystem path, used only for loading.
	AbsPath string `json:"-"`

	// RelPath is the /-separated path relative to the root, regardless of
	// host platform. It is unique across the document set and serves as the
	// document identifier.
	RelPath string `json:"relPath"`

	// Title is derived from the content: first markdown H1, else the first
	// non-blank line, else the filename stem.
	Title string `json:"title"`

	// Content is the full text of the file.
	Content string `json:"content"`

	// ContentHash is the xxhash of Content, used for HTTP caching.
	ContentHash string `json:"contentHash"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.RelPath == "" {
		return Errorf(EINVALID, "document relative path required")
	}
	if strings.Contains(d.RelPath, `\`) {
		return Errorf(EINVALID, "document relative path must use / separators")
	}
	return nil
}

// ExtractTitle derives a document title from its content. The first line
// whose trimmed form starts with "# " yields the remainder; otherwise the
// first non-blank line wins; otherwise the filename stem of relPath.
func ExtractTitle(relPath, content string) string {
	for line := range strings.Lines(content) {
		stripped := strings.TrimSpace(line)
		if rest, ok := strings.CutPrefix(stripped, "# "); ok {
			return strings.TrimSpace(rest)
		}
		if stripped != "" {
			return stripped
		}
	}
	base := path.Base(relPath)
	return strings.TrimSuffix(base, path.Ext(base))
}

// HashContent computes the xxhash of content and returns it as a hex string.
func HashContent(content string) string {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, xxhash.Sum64String(content))
	return hex.EncodeToString(b)
}

// Scanner discovers documents under a configured root directory.
type Scanner interface {
	// Scan walks the root and returns documents sorted ascending by
	// RelPath (byte-wise). The ordering is deterministic across runs for
	// identical filesystem state.
	Scan(ctx context.Context) ([]*Document, error)
}

// DocumentService provides read access to the scanned document set.
type DocumentService interface {
	// AllDocuments returns every document, sorted by RelPath.
	AllDocuments(ctx context.Context) ([]*Document, error)

	// FindDocumentByPath retrieves a document by its relative path.
	// Leading and trailing slashes are trimmed before lookup.
	// Returns ENOTFOUND if no document has that path.
	FindDocumentByPath(ctx context.Context, relPath string) (*Document, error)

	// CountDocuments returns the size of the document set.
	CountDocuments(ctx context.Context) (int, error)
}
