// Package pizzaform is the top-level entry point: it re-exports the
// orchestrator constructor and a few one-call helpers for embedding the
// order form in another program.
package pizzaform

import (
	"context"

	"github.com/goliatone/go-pizzaform/pkg/model"
	"github.com/goliatone/go-pizzaform/pkg/order"
	"github.com/goliatone/go-pizzaform/pkg/orchestrator"
	"github.com/goliatone/go-pizzaform/pkg/render"
)

// RenderOptions carries the locale and translator used for a render.
type RenderOptions = render.RenderOptions

// Form is a submitted order keyed by input name.
type Form = order.Form

// Receipt is the outcome of a valid order.
type Receipt = order.Receipt

// ErrCatalogUnavailable is wrapped by every catalog fetch failure.
var ErrCatalogUnavailable = orchestrator.ErrCatalogUnavailable

// NewOrchestrator exposes the orchestrator constructor from the module root.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// GenerateForm renders an empty order form with the named renderer.
func GenerateForm(ctx context.Context, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Page:     model.PageForm,
		Renderer: rendererName,
	})
}

// SubmitOrder quotes form and renders the outcome: the receipt when the order
// is accepted, the form with its message when it is rejected. The error is
// non-nil in the rejected case as well, so callers can pick a status code.
func SubmitOrder(ctx context.Context, form Form, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	receipt, err := gen.Quote(ctx, form)
	if err != nil {
		verr, ok := order.AsValidationError(err)
		if !ok {
			return nil, err
		}
		page, renderErr := gen.Generate(ctx, orchestrator.Request{
			Page:         model.PageForm,
			Renderer:     rendererName,
			Form:         form,
			Message:      verr.Code,
			InvalidField: verr.Field,
		})
		if renderErr != nil {
			return nil, renderErr
		}
		return page, err
	}
	return gen.Generate(ctx, orchestrator.Request{
		Page:     model.PageReceipt,
		Renderer: rendererName,
		Receipt:  &receipt,
	})
}
