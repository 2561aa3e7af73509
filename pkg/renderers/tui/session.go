package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-pizzaform/pkg/catalog"
	"github.com/goliatone/go-pizzaform/pkg/model"
	"github.com/goliatone/go-pizzaform/pkg/order"
	"github.com/goliatone/go-pizzaform/pkg/render"
)

// Service is what a session needs from the order pipeline.
type Service interface {
	Catalog(ctx context.Context) (catalog.Catalog, error)
	Refresh(ctx context.Context) (catalog.Catalog, error)
	Quote(ctx context.Context, form order.Form) (order.Receipt, error)
}

// Menu entries offered after a successful order.
const (
	MenuNewOrder = iota
	MenuRefresh
	MenuQuit
)

const (
	labelMenu      = "tui.menu"
	labelMenuQuit  = "tui.quit"
	defaultMenuMsg = "¿Qué quieres hacer?"
)

// Session runs the order flow interactively: prompt, validate, show the
// total, then start over, refresh the catalog, or quit.
type Session struct {
	service  Service
	driver   PromptDriver
	renderer *Renderer
	fields   []order.Field
	opts     render.RenderOptions
	receipts []order.Receipt
}

// NewSession wires a session to service.
func NewSession(service Service, options ...Option) (*Session, error) {
	if service == nil {
		return nil, errors.New("tui: service is required")
	}
	cfg := newConfig(options)
	return &Session{
		service:  service,
		driver:   cfg.driver,
		renderer: &Renderer{theme: cfg.theme},
		fields:   cfg.fields,
		opts:     cfg.renderOptions,
	}, nil
}

// Run loops until the user quits, aborts, or the catalog cannot be fetched.
// A fetch failure is shown to the user and returned.
func (s *Session) Run(ctx context.Context) error {
	cat, err := s.service.Catalog(ctx)
	if err != nil {
		return s.fetchFailed(ctx, err)
	}

	form := order.Form{}
	for {
		if err := s.prompt(ctx, cat, form); err != nil {
			return err
		}

		receipt, err := s.service.Quote(ctx, form)
		if verr, ok := order.AsValidationError(err); ok {
			if err := s.info(ctx, s.theme().ErrorPrefix+s.message(verr.Code)); err != nil {
				return err
			}
			continue
		}
		if err != nil {
			return s.fetchFailed(ctx, err)
		}
		s.receipts = append(s.receipts, receipt)

		if err := s.show(ctx, receiptPage(receipt, s.fields)); err != nil {
			return err
		}

		choice, err := s.menu(ctx)
		if err != nil {
			return err
		}
		switch choice {
		case MenuNewOrder:
			form = order.Form{}
		case MenuRefresh:
			form = order.Form{}
			if cat, err = s.service.Refresh(ctx); err != nil {
				return s.fetchFailed(ctx, err)
			}
		default:
			return nil
		}
	}
}

// Receipts returns the orders accepted so far, oldest first.
func (s *Session) Receipts() []order.Receipt {
	return append([]order.Receipt(nil), s.receipts...)
}

// prompt fills form in place, offering previous answers as defaults so a
// rejected order only needs the missing parts.
func (s *Session) prompt(ctx context.Context, cat catalog.Catalog, form order.Form) error {
	view := model.BuildForm(cat, model.FormOptions{Fields: s.fields, Values: form})
	page := model.NewPage(model.PageForm)
	page.Form = &view
	render.LocalizePage(&page, s.opts)

	for _, input := range view.Inputs {
		value, err := s.driver.Input(ctx, InputConfig{
			Message: s.theme().PromptPrefix + input.Label,
			Default: input.Value,
		})
		if err != nil {
			return err
		}
		form[input.Name] = value
	}

	sizeOptions := make([]string, 0, len(view.Sizes))
	defaultSize := -1
	for i, choice := range view.Sizes {
		sizeOptions = append(sizeOptions, choice.Label)
		if choice.Checked {
			defaultSize = i
		}
	}
	idx, err := s.driver.Select(ctx, SelectConfig{
		Message:      s.theme().PromptPrefix + page.Labels[model.LabelSizes],
		Options:      sizeOptions,
		DefaultIndex: defaultSize,
	})
	if err != nil {
		return err
	}
	delete(form, order.SizeField)
	if idx >= 0 && idx < len(view.Sizes) {
		form[order.SizeField] = view.Sizes[idx].Value
	}

	ingredientOptions := make([]string, 0, len(view.Ingredients))
	var checked []int
	for i, choice := range view.Ingredients {
		ingredientOptions = append(ingredientOptions, choice.Label)
		if choice.Checked {
			checked = append(checked, i)
		}
	}
	picked, err := s.driver.MultiSelect(ctx, SelectConfig{
		Message:  s.theme().PromptPrefix + page.Labels[model.LabelIngredients],
		Options:  ingredientOptions,
		Defaults: checked,
	})
	if err != nil {
		return err
	}
	for _, choice := range view.Ingredients {
		delete(form, choice.Name)
	}
	for _, i := range picked {
		if i >= 0 && i < len(view.Ingredients) {
			form[view.Ingredients[i].Name] = order.CheckedValue
		}
	}
	return nil
}

func (s *Session) menu(ctx context.Context) (int, error) {
	labels := model.DefaultLabels()
	options := []string{
		render.Translate(s.opts, model.LabelReceiptNewOrder, labels[model.LabelReceiptNewOrder]),
		render.Translate(s.opts, model.LabelRefresh, labels[model.LabelRefresh]),
		render.Translate(s.opts, labelMenuQuit, "Salir"),
	}
	idx, err := s.driver.Select(ctx, SelectConfig{
		Message: s.theme().PromptPrefix + render.Translate(s.opts, labelMenu, defaultMenuMsg),
		Options: options,
	})
	if err != nil {
		return MenuQuit, err
	}
	if idx < 0 {
		return MenuQuit, nil
	}
	return idx, nil
}

func (s *Session) fetchFailed(ctx context.Context, cause error) error {
	page := model.NewPage(model.PageError)
	page.Error = &model.ErrorView{MessageKey: string(order.MessageFetchFailed)}
	if err := s.show(ctx, page); err != nil {
		return errors.Join(cause, err)
	}
	return fmt.Errorf("tui: %w", cause)
}

func (s *Session) show(ctx context.Context, page model.Page) error {
	out, err := s.renderer.Render(ctx, page, s.opts)
	if err != nil {
		return err
	}
	return s.info(ctx, string(out))
}

func (s *Session) info(ctx context.Context, msg string) error {
	return s.driver.Info(ctx, msg)
}

func (s *Session) message(key order.MessageKey) string {
	return render.Translate(s.opts, string(key), render.DefaultMessage(key))
}

func (s *Session) theme() Theme {
	return s.renderer.theme
}

func receiptPage(receipt order.Receipt, fields []order.Field) model.Page {
	page := model.NewPage(model.PageReceipt)
	view := model.BuildReceipt(receipt, fields, "")
	page.Receipt = &view
	return page
}
