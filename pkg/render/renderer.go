package render

import (
	"context"

	"github.com/goliatone/go-pizzaform/pkg/model"
)

// Renderer converts a Page into a byte representation (HTML, JSON, text).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, page model.Page, options RenderOptions) ([]byte, error)
}
