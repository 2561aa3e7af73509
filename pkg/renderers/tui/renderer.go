package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-pizzaform/pkg/model"
	"github.com/goliatone/go-pizzaform/pkg/render"
)

// Name is the registry name of the terminal renderer.
const Name = "tui"

// Renderer prints pages as plain text. Interactive ordering lives in Session;
// the renderer produces what a session shows between prompts.
type Renderer struct {
	theme Theme
}

// New constructs the terminal renderer.
func New(options ...Option) *Renderer {
	cfg := config{}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	return &Renderer{theme: cfg.theme}
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

// Render writes a text rendition of page.
func (r *Renderer) Render(_ context.Context, page model.Page, options render.RenderOptions) ([]byte, error) {
	page = page.Clone()
	render.LocalizePage(&page, options)

	var b strings.Builder
	switch page.Kind {
	case model.PageForm:
		if page.Form == nil {
			return nil, fmt.Errorf("tui renderer: form page without form view")
		}
		r.writeForm(&b, page)
	case model.PageReceipt:
		if page.Receipt == nil {
			return nil, fmt.Errorf("tui renderer: receipt page without receipt view")
		}
		r.writeReceipt(&b, page)
	case model.PageError:
		if page.Error == nil {
			return nil, fmt.Errorf("tui renderer: error page without error view")
		}
		fmt.Fprintf(&b, "%s\n%s%s\n", page.Labels[model.LabelErrorTitle], r.theme.ErrorPrefix, page.Error.Message)
	default:
		return nil, fmt.Errorf("tui renderer: unsupported page kind %q", page.Kind)
	}
	return []byte(b.String()), nil
}

func (r *Renderer) writeForm(b *strings.Builder, page model.Page) {
	form := page.Form
	fmt.Fprintf(b, "%s\n", page.Labels[model.LabelTitle])
	if form.HasMessage() {
		fmt.Fprintf(b, "%s%s\n", r.theme.ErrorPrefix, form.Message)
	}
	if len(form.Inputs) > 0 {
		fmt.Fprintf(b, "\n%s\n", page.Labels[model.LabelCustomer])
		for _, input := range form.Inputs {
			fmt.Fprintf(b, "  %s: %s\n", input.Label, input.Value)
		}
	}
	fmt.Fprintf(b, "\n%s\n", page.Labels[model.LabelSizes])
	for _, choice := range form.Sizes {
		mark := " "
		if choice.Checked {
			mark = "x"
		}
		fmt.Fprintf(b, "  (%s) %s\n", mark, choice.Label)
	}
	fmt.Fprintf(b, "\n%s\n", page.Labels[model.LabelIngredients])
	for _, choice := range form.Ingredients {
		mark := " "
		if choice.Checked {
			mark = "x"
		}
		fmt.Fprintf(b, "  [%s] %s\n", mark, choice.Label)
	}
}

func (r *Renderer) writeReceipt(b *strings.Builder, page model.Page) {
	receipt := page.Receipt
	fmt.Fprintf(b, "%s%s\n", r.theme.InfoPrefix, page.Labels[model.LabelReceiptTitle])
	for _, input := range receipt.Customer {
		fmt.Fprintf(b, "  %s: %s\n", input.Label, input.Value)
	}
	fmt.Fprintf(b, "  %s: %s  %s\n", page.Labels[model.LabelReceiptSize], receipt.Size.Name, receipt.Size.Price)
	for _, line := range receipt.Ingredients {
		fmt.Fprintf(b, "  + %s  %s\n", line.Name, line.Price)
	}
	fmt.Fprintf(b, "  %s: %s\n", page.Labels[model.LabelReceiptTotal], receipt.Total)
}
