package mock

import "github.com/fwojciec/docserve"

var _ docserve.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of docserve.Renderer.
type Renderer struct {
	RenderFn func(markdown string) (string, error)
}

func (r *Renderer) Render(markdown string) (string, error) {
	return r.RenderFn(markdown)
}
