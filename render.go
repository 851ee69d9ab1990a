package docserve

// Renderer converts markdown source to HTML for the web views.
type Renderer interface {
	Render(markdown string) (string, error)
}
