package mem

import (
	"context"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/docserve"
)

// Ensure Index implements docserve.Searcher at compile time.
var _ docserve.Searcher = (*Index)(nil)

// Index answers substring queries with a linear scan over the document set.
// There is no tokenization and no inverted index; for small to medium
// document sets a full rescan per query is fast enough and keeps the
// startup build trivial.
type Index struct {
	entries []indexEntry
}

type indexEntry struct {
	doc          *docserve.Document
	lowerTitle   string
	lowerContent string
}

// NewIndex builds an Index over docs. docs should be sorted by RelPath so
// that iteration order matches the tie-break order.
func NewIndex(docs []*docserve.Document) *Index {
	entries := make([]indexEntry, len(docs))
	for i, doc := range docs {
		entries[i] = indexEntry{
			doc:          doc,
			lowerTitle:   strings.ToLower(doc.Title),
			lowerContent: strings.ToLower(doc.Content),
		}
	}
	return &Index{entries: entries}
}

// Search implements docserve.Searcher. Matching is literal and
// case-insensitive; the query is never interpreted as a pattern.
func (idx *Index) Search(ctx context.Context, query string, limit int) ([]docserve.SearchResult, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil, nil
	}
	if limit <= 0 {
		limit = docserve.DefaultSearchLimit
	}

	var results []docserve.SearchResult
	for _, e := range idx.entries {
		titleHits := strings.Count(e.lowerTitle, q)
		contentHits := strings.Count(e.lowerContent, q)
		score := float64(5*titleHits + contentHits)
		if score == 0 {
			continue
		}
		results = append(results, docserve.SearchResult{
			Document: e.doc,
			Score:    score,
			Excerpt:  makeExcerpt(e.doc.Content, e.lowerContent, q),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Document.RelPath < results[j].Document.RelPath
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// makeExcerpt builds a one-line excerpt around the first content match.
// When the query only matched the title, the head of the content is used
// instead.
func makeExcerpt(content, lowerContent, q string) string {
	pos := strings.Index(lowerContent, q)
	if pos < 0 || pos > len(content) {
		end := 2 * docserve.ExcerptContext
		if end >= len(content) {
			end = len(content)
		} else {
			end = snapRuneStart(content, end)
		}
		return collapseNewlines(content[:end])
	}

	start := pos - docserve.ExcerptContext
	if start < 0 {
		start = 0
	}
	end := pos + len(q) + docserve.ExcerptContext
	if end > len(content) {
		end = len(content)
	}
	start = snapRuneStart(content, start)
	end = snapRuneStart(content, end)

	var b strings.Builder
	if start > 0 {
		b.WriteString("…")
	}
	b.WriteString(collapseNewlines(content[start:end]))
	if end < len(content) {
		b.WriteString("…")
	}
	return b.String()
}

// snapRuneStart moves i back to the nearest UTF-8 rune boundary in s.
func snapRuneStart(s string, i int) int {
	for i > 0 && i < len(s) && !utf8.RuneStart(s[i]) {
		i--
	}
	return i
}

func collapseNewlines(s string) string {
	return strings.ReplaceAll(s, "\n", " ")
}
