package docserve_test

import (
	"testing"

	"github.com/fwojciec/docserve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func docsFromPaths(paths ...string) []*docserve.Document {
	docs := make([]*docserve.Document, 0, len(paths))
	for _, p := range paths {
		docs = append(docs, &docserve.Document{RelPath: p})
	}
	return docs
}

func TestBuildTree(t *testing.T) {
	t.Parallel()

	t.Run("every document reaches a file leaf at its path", func(t *testing.T) {
		t.Parallel()

		docs := docsFromPaths(
			"README.md",
			"docs/api/users.md",
			"docs/guide.md",
			"docs/api/index.md",
		)

		root := docserve.BuildTree(docs)

		for _, doc := range docs {
			node := root.Find(doc.RelPath)
			require.NotNil(t, node, "missing node for %s", doc.RelPath)
			assert.Equal(t, docserve.NodeFile, node.Kind)
			assert.Equal(t, doc.RelPath, node.Path)
		}
	})

	t.Run("intermediate segments are directory nodes", func(t *testing.T) {
		t.Parallel()

		root := docserve.BuildTree(docsFromPaths("docs/api/users.md"))

		docsNode := root.Find("docs")
		require.NotNil(t, docsNode)
		assert.Equal(t, docserve.NodeDir, docsNode.Kind)
		assert.Equal(t, "docs", docsNode.Path)

		apiNode := root.Find("docs/api")
		require.NotNil(t, apiNode)
		assert.Equal(t, docserve.NodeDir, apiNode.Kind)
		assert.Equal(t, "docs/api", apiNode.Path)
	})

	t.Run("no extra file nodes beyond the document set", func(t *testing.T) {
		t.Parallel()

		docs := docsFromPaths("a.md", "sub/b.md", "sub/c.md")
		root := docserve.BuildTree(docs)

		var files []string
		var walk func(n *docserve.TreeNode)
		walk = func(n *docserve.TreeNode) {
			if n.Kind == docserve.NodeFile {
				files = append(files, n.Path)
				return
			}
			for _, c := range n.Children {
				walk(c)
			}
		}
		walk(root)

		assert.ElementsMatch(t, []string{"a.md", "sub/b.md", "sub/c.md"}, files)
	})

	t.Run("root node has empty name and path", func(t *testing.T) {
		t.Parallel()

		root := docserve.BuildTree(docsFromPaths("a.md"))

		assert.Empty(t, root.Name)
		assert.Empty(t, root.Path)
		assert.Equal(t, docserve.NodeDir, root.Kind)
	})

	t.Run("empty document list yields bare root", func(t *testing.T) {
		t.Parallel()

		root := docserve.BuildTree(nil)

		assert.Empty(t, root.Children)
	})
}

func TestTreeNode_SortedChildren(t *testing.T) {
	t.Parallel()

	root := docserve.BuildTree(docsFromPaths(
		"zebra.md",
		"alpha.md",
		"sub/one.md",
		"another/two.md",
	))

	var names []string
	for _, c := range root.SortedChildren() {
		names = append(names, c.Name)
	}

	// Directories first, then files, each sorted by name.
	assert.Equal(t, []string{"another", "sub", "alpha.md", "zebra.md"}, names)
}

func TestTreeNode_Find(t *testing.T) {
	t.Parallel()

	root := docserve.BuildTree(docsFromPaths("docs/api/users.md"))

	t.Run("empty path returns root", func(t *testing.T) {
		t.Parallel()

		assert.Same(t, root, root.Find(""))
	})

	t.Run("trims surrounding slashes", func(t *testing.T) {
		t.Parallel()

		node := root.Find("/docs/api/users.md/")
		require.NotNil(t, node)
		assert.Equal(t, "docs/api/users.md", node.Path)
	})

	t.Run("unknown path returns nil", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, root.Find("docs/missing.md"))
	})
}

func TestTreeNode_IsDir(t *testing.T) {
	t.Parallel()

	root := docserve.BuildTree(docsFromPaths("docs/a.md"))

	assert.True(t, root.IsDir())
	assert.True(t, root.Find("docs").IsDir())
	assert.False(t, root.Find("docs/a.md").IsDir())
}
