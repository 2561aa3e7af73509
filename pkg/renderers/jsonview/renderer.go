// Package jsonview renders pages as JSON for API clients.
package jsonview

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/goliatone/go-pizzaform/pkg/model"
	"github.com/goliatone/go-pizzaform/pkg/render"
)

// Name is the registry name of the JSON renderer.
const Name = "json"

// Renderer encodes the localized page model.
type Renderer struct {
	indent string
}

// Option configures the renderer.
type Option func(*Renderer)

// WithIndent pretty-prints output using indent per level.
func WithIndent(indent string) Option {
	return func(r *Renderer) {
		r.indent = indent
	}
}

// New constructs the JSON renderer.
func New(options ...Option) *Renderer {
	r := &Renderer{}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "application/json; charset=utf-8"
}

func (r *Renderer) Render(_ context.Context, page model.Page, options render.RenderOptions) ([]byte, error) {
	page = page.Clone()
	render.LocalizePage(&page, options)

	var (
		out []byte
		err error
	)
	if r.indent != "" {
		out, err = json.MarshalIndent(page, "", r.indent)
	} else {
		out, err = json.Marshal(page)
	}
	if err != nil {
		return nil, fmt.Errorf("jsonview renderer: encode page: %w", err)
	}
	return out, nil
}
