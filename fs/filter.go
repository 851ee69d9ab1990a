package fs

import (
	"path/filepath"
	"strings"
)

// Rules holds the exclusion configuration applied during a scan. All
// methods are pure predicates with no filesystem access.
type Rules struct {
	// Extensions is the allow-set of file extensions, lowercase with a
	// leading dot (".md").
	Extensions map[string]struct{}

	// ExcludeDirs is the set of directory names pruned wherever they
	// appear in the tree (version-control metadata, dependency caches,
	// editor state).
	ExcludeDirs map[string]struct{}

	// ExcludePrefixes are resolved absolute path prefixes whose subtrees
	// are pruned, for known non-document areas such as font assets.
	ExcludePrefixes []string
}

// SkipDir reports whether a directory should be pruned. relPath is the
// /-separated path of the directory relative to the root; absPath is its
// absolute path.
func (r *Rules) SkipDir(relPath, absPath string) bool {
	for part := range strings.SplitSeq(relPath, "/") {
		if _, ok := r.ExcludeDirs[part]; ok {
			return true
		}
	}
	for _, prefix := range r.ExcludePrefixes {
		if UnderRoot(absPath, prefix) {
			return true
		}
	}
	return false
}

// AllowedFile reports whether a file is eligible by extension. The check is
// case-insensitive.
func (r *Rules) AllowedFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	_, ok := r.Extensions[ext]
	return ok
}

// UnderRoot reports whether path equals root or lies beneath it. Both
// arguments must be absolute.
func UnderRoot(path, root string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	if rel == "." {
		return true
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
