// Package goldmark renders markdown documents to HTML using the
// github.com/yuin/goldmark library.
package goldmark

import (
	"bytes"

	highlighting "github.com/yuin/goldmark-highlighting/v2"

	"github.com/fwojciec/docserve"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// Ensure Renderer implements docserve.Renderer at compile time.
var _ docserve.Renderer = (*Renderer)(nil)

// Renderer converts markdown to HTML with GFM extensions and syntax
// highlighted code blocks. A Renderer is safe for concurrent use.
type Renderer struct {
	md goldmark.Markdown
}

// NewRenderer creates a Renderer. Raw HTML in documents is passed through
// unchanged; the server only renders local files the operator chose to
// serve, so the usual sanitization concerns do not apply.
func NewRenderer() *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Typographer,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)
	return &Renderer{md: md}
}

// Render implements docserve.Renderer.
func (r *Renderer) Render(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(markdown), &buf); err != nil {
		return "", docserve.Errorf(docserve.EINTERNAL, "rendering markdown: %v", err)
	}
	return buf.String(), nil
}
