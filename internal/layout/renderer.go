package layout

import (
	"embed"
	"fmt"

	"github.com/joeblew999/plat-mailcraft/pkg/mjml"
)

//go:embed templates/*.mjml
var templateFS embed.FS

// Renderer renders Fields into layouts.
type Renderer struct {
	mjml *mjml.Renderer
}

// NewRenderer loads every layout of the static table into an MJML renderer.
func NewRenderer(opts ...mjml.RendererOption) (*Renderer, error) {
	r, err := mjml.NewRenderer(opts...)
	if err != nil {
		return nil, err
	}
	for _, l := range All {
		if err := r.LoadTemplateFromFS(templateFS, l.String(), definitions[l].source); err != nil {
			return nil, fmt.Errorf("load layout %s: %w", l, err)
		}
	}

	return &Renderer{mjml: r}, nil
}

// Render fills layout l with f and returns the email HTML.
func (r *Renderer) Render(l Layout, f Fields) (string, error) {
	if _, ok := definitions[l]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownLayout, string(l))
	}

	return r.mjml.RenderTemplate(l.String(), f)
}

// RenderNamed validates name against the allow-list and renders it.
func (r *Renderer) RenderNamed(name string, f Fields) (string, error) {
	l, err := Parse(name)
	if err != nil {
		return "", err
	}

	return r.Render(l, f)
}
