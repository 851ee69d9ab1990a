// Package fs implements document discovery over the local filesystem.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/docserve"
)

// Default scan configuration, mirroring common documentation layouts.
var (
	DefaultExtensions = []string{".md", ".markdown", ".txt"}

	DefaultExcludeDirs = []string{
		".git", ".github", "node_modules", "__pycache__", "venv", ".venv",
		".mypy_cache", ".pytest_cache", ".idea", ".vscode", ".cursor",
	}
)

// Config configures a Scanner.
type Config struct {
	// Root is the directory to scan. Required.
	Root string

	// Extensions is the file extension allow-set. Entries may omit the
	// leading dot. Defaults to DefaultExtensions.
	Extensions []string

	// ExcludeDirs are directory names pruned during traversal. Defaults to
	// DefaultExcludeDirs.
	ExcludeDirs []string

	// ExcludePrefixes are absolute path prefixes pruned during traversal.
	ExcludePrefixes []string
}

// Ensure Scanner implements docserve.Scanner at compile time.
var _ docserve.Scanner = (*Scanner)(nil)

// Scanner discovers documents under a root directory. The scan is
// single-threaded and runs once at startup; a single unreadable file or
// directory never aborts it.
type Scanner struct {
	root  string // resolved absolute root
	rules Rules
}

// NewScanner creates a Scanner. It returns EINVALID if the configured root
// does not exist or is not a directory.
func NewScanner(cfg Config) (*Scanner, error) {
	info, err := os.Stat(cfg.Root)
	if err != nil || !info.IsDir() {
		return nil, docserve.Errorf(docserve.EINVALID, "root %q is not a directory", cfg.Root)
	}

	root, err := filepath.Abs(cfg.Root)
	if err != nil {
		return nil, err
	}
	if resolved, err := filepath.EvalSymlinks(root); err == nil {
		root = resolved
	}

	exts := cfg.Extensions
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	extSet := make(map[string]struct{}, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(ext)
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		extSet[ext] = struct{}{}
	}

	dirs := cfg.ExcludeDirs
	if len(dirs) == 0 {
		dirs = DefaultExcludeDirs
	}
	dirSet := make(map[string]struct{}, len(dirs))
	for _, d := range dirs {
		dirSet[d] = struct{}{}
	}

	prefixes := make([]string, 0, len(cfg.ExcludePrefixes))
	for _, p := range cfg.ExcludePrefixes {
		abs, err := filepath.Abs(p)
		if err != nil {
			continue
		}
		if resolved, err := filepath.EvalSymlinks(abs); err == nil {
			abs = resolved
		}
		prefixes = append(prefixes, abs)
	}

	return &Scanner{
		root: root,
		rules: Rules{
			Extensions:      extSet,
			ExcludeDirs:     dirSet,
			ExcludePrefixes: prefixes,
		},
	}, nil
}

// Root returns the resolved absolute root directory.
func (s *Scanner) Root() string { return s.root }

// Scan walks the root and returns the document list sorted ascending by
// RelPath. This ordering is the sole ordering guarantee the rest of the
// system relies on.
func (s *Scanner) Scan(ctx context.Context) ([]*docserve.Document, error) {
	var docs []*docserve.Document
	seen := make(map[string]struct{})

	if err := s.walk(ctx, s.root, "", seen, &docs); err != nil {
		return nil, err
	}

	sort.Slice(docs, func(i, j int) bool { return docs[i].RelPath < docs[j].RelPath })
	return docs, nil
}

func (s *Scanner) walk(ctx context.Context, dir, rel string, seen map[string]struct{}, docs *[]*docserve.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		// Unreadable directories are skipped, not fatal.
		return nil
	}

	for _, entry := range entries {
		name := entry.Name()
		childRel := name
		if rel != "" {
			childRel = rel + "/" + name
		}
		childPath := filepath.Join(dir, name)

		if entry.IsDir() {
			// Pruned subtrees are never opened or enumerated.
			if s.rules.SkipDir(childRel, childPath) {
				continue
			}
			if err := s.walk(ctx, childPath, childRel, seen, docs); err != nil {
				return err
			}
			continue
		}

		doc, ok := s.loadFile(childPath)
		if !ok {
			continue
		}
		if _, dup := seen[doc.RelPath]; dup {
			// Symlink alias of a file already indexed.
			continue
		}
		seen[doc.RelPath] = struct{}{}
		*docs = append(*docs, doc)
	}

	return nil
}

// loadFile reads a single candidate file. Ineligible extensions, symlinks
// escaping the root, and unreadable files all result in a silent skip.
func (s *Scanner) loadFile(path string) (*docserve.Document, bool) {
	if !s.rules.AllowedFile(path) {
		return nil, false
	}

	abs, err := filepath.EvalSymlinks(path)
	if err != nil {
		return nil, false
	}
	if !UnderRoot(abs, s.root) {
		return nil, false
	}

	raw, err := os.ReadFile(abs)
	if err != nil {
		return nil, false
	}

	content := string(raw)
	if !utf8.ValidString(content) {
		content = strings.ToValidUTF8(content, "")
	}

	rel, err := filepath.Rel(s.root, abs)
	if err != nil {
		return nil, false
	}
	rel = filepath.ToSlash(rel)

	return &docserve.Document{
		AbsPath:     abs,
		RelPath:     rel,
		Title:       docserve.ExtractTitle(rel, content),
		Content:     content,
		ContentHash: docserve.HashContent(content),
	}, true
}
