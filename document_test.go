package docserve_test

import (
	"testing"

	"github.com/fwojciec/docserve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		relPath string
		content string
		want    string
	}{
		{
			name:    "first H1 heading",
			relPath: "docs/hello.md",
			content: "# Hello\n\nBody text.",
			want:    "Hello",
		},
		{
			name:    "H1 after blank lines",
			relPath: "docs/hello.md",
			content: "\n\n  # Indented Heading  \nrest",
			want:    "Indented Heading",
		},
		{
			name:    "no heading falls back to first non-blank line",
			relPath: "notes.txt",
			content: "first line\nsecond",
			want:    "first line",
		},
		{
			name:    "lower-level heading treated as plain text",
			relPath: "notes.md",
			content: "## Not an H1\nmore",
			want:    "## Not an H1",
		},
		{
			name:    "hash without space is not a heading",
			relPath: "notes.md",
			content: "#NoSpace\nmore",
			want:    "#NoSpace",
		},
		{
			name:    "empty file falls back to filename stem",
			relPath: "docs/guide/setup.md",
			content: "",
			want:    "setup",
		},
		{
			name:    "whitespace-only file falls back to filename stem",
			relPath: "readme.markdown",
			content: "   \n\t\n",
			want:    "readme",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, docserve.ExtractTitle(tt.relPath, tt.content))
		})
	}
}

func TestDocument_Validate(t *testing.T) {
	t.Parallel()

	t.Run("accepts valid document", func(t *testing.T) {
		t.Parallel()

		doc := &docserve.Document{RelPath: "docs/a.md"}

		require.NoError(t, doc.Validate())
	})

	t.Run("rejects empty relative path", func(t *testing.T) {
		t.Parallel()

		doc := &docserve.Document{}

		err := doc.Validate()
		require.Error(t, err)
		assert.Equal(t, docserve.EINVALID, docserve.ErrorCode(err))
	})

	t.Run("rejects backslash separators", func(t *testing.T) {
		t.Parallel()

		doc := &docserve.Document{RelPath: `docs\a.md`}

		err := doc.Validate()
		require.Error(t, err)
		assert.Equal(t, docserve.EINVALID, docserve.ErrorCode(err))
	})
}

func TestHashContent(t *testing.T) {
	t.Parallel()

	a := docserve.HashContent("hello")
	b := docserve.HashContent("hello")
	c := docserve.HashContent("world")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 16)
}
