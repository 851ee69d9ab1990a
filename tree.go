package docserve

import (
	"sort"
	"strings"
)

// NodeKind distinguishes directory and file tree nodes.
type NodeKind int

// NodeKind values.
const (
	NodeDir NodeKind = iota
	NodeFile
)

// TreeNode is a node in the navigation tree. The root node has an empty
// Name and Path. The tree is built fresh from the full document list and is
// never mutated afterwards.
type TreeNode struct {
	// Name is the path segment, empty for the root.
	Name string

	// Path is the full /-separated path from the root, empty for the root.
	Path string

	// Kind marks the node as a directory or a file.
	Kind NodeKind

	// Children maps segment names to child nodes. Only directories have
	// children. The map is unordered; use SortedChildren for rendering.
	Children map[string]*TreeNode
}

// IsDir reports whether the node is a directory.
func (n *TreeNode) IsDir() bool {
	return n.Kind == NodeDir
}

// BuildTree builds the navigation tree from the document list. Every
// document becomes a file leaf and every intermediate path segment becomes
// a directory node, so the tree exactly mirrors the set of relative paths.
func BuildTree(docs []*Document) *TreeNode {
	root := &TreeNode{Kind: NodeDir, Children: make(map[string]*TreeNode)}

	for _, doc := range docs {
		parts := strings.Split(doc.RelPath, "/")
		cursor := root
		for i, part := range parts {
			if cursor.Children == nil {
				cursor.Children = make(map[string]*TreeNode)
			}
			child, ok := cursor.Children[part]
			if !ok {
				kind := NodeDir
				if i == len(parts)-1 {
					kind = NodeFile
				}
				child = &TreeNode{
					Name: part,
					Path: strings.Join(parts[:i+1], "/"),
					Kind: kind,
				}
				cursor.Children[part] = child
			}
			cursor = child
		}
	}

	return root
}

// SortedChildren returns the node's children with directories first, then
// files, each group sorted by name. This is rendering policy only; the
// structural invariant is carried by the Children map.
func (n *TreeNode) SortedChildren() []*TreeNode {
	children := make([]*TreeNode, 0, len(n.Children))
	for _, c := range n.Children {
		children = append(children, c)
	}
	sort.Slice(children, func(i, j int) bool {
		if children[i].Kind != children[j].Kind {
			return children[i].Kind == NodeDir
		}
		return children[i].Name < children[j].Name
	})
	return children
}

// Find walks the tree by /-separated path and returns the matching node, or
// nil if no such node exists. The empty path returns the receiver.
func (n *TreeNode) Find(p string) *TreeNode {
	p = strings.Trim(p, "/")
	if p == "" {
		return n
	}
	cursor := n
	for part := range strings.SplitSeq(p, "/") {
		child, ok := cursor.Children[part]
		if !ok {
			return nil
		}
		cursor = child
	}
	return cursor
}
