package model

import (
	"net/url"
	"strings"

	"github.com/goliatone/go-pizzaform/pkg/catalog"
	"github.com/goliatone/go-pizzaform/pkg/order"
)

// Routes the built views link to. Callers mounting the server under a prefix
// override them through FormOptions.
const (
	DefaultAction        = "/order"
	DefaultRefreshAction = "/refresh"
	DefaultNewOrderURL   = "/"
)

// FormOptions tunes BuildForm.
type FormOptions struct {
	Fields        []order.Field
	Values        order.Form
	MessageKey    order.MessageKey
	Action        string
	RefreshAction string
	// InvalidField marks the input that triggered MessageKey.
	InvalidField string
}

// BuildForm arranges the catalog into size radios and ingredient checkboxes
// in catalog order, prefilled from opts.Values so a rejected submission keeps
// what the user entered.
func BuildForm(cat catalog.Catalog, opts FormOptions) FormView {
	view := FormView{
		Action:        firstNonEmpty(opts.Action, DefaultAction),
		RefreshAction: firstNonEmpty(opts.RefreshAction, DefaultRefreshAction),
		MessageKey:    string(opts.MessageKey),
		Inputs:        make([]Input, 0, len(opts.Fields)),
		Sizes:         make([]Choice, 0, len(cat.Sizes)),
		Ingredients:   make([]Choice, 0, len(cat.Ingredients)),
	}

	for _, field := range opts.Fields {
		label := strings.TrimSpace(field.Label)
		if label == "" {
			label = DefaultLabeler(field.Name)
		}
		view.Inputs = append(view.Inputs, Input{
			Name:     field.Name,
			Type:     field.InputType(),
			Label:    label,
			LabelKey: "field." + field.Name,
			Value:    opts.Values[field.Name],
			Invalid:  opts.InvalidField != "" && opts.InvalidField == field.Name,
		})
	}

	selectedSize, _ := opts.Values.Size()
	for _, size := range cat.Sizes {
		view.Sizes = append(view.Sizes, Choice{
			ID:      size.Value,
			Name:    order.SizeField,
			Value:   size.Value,
			Label:   size.Label(),
			Price:   size.Price.String(),
			Checked: selectedSize != "" && selectedSize == size.Value,
		})
	}

	for _, ingredient := range cat.Ingredients {
		view.Ingredients = append(view.Ingredients, Choice{
			ID:      ingredient.Value,
			Name:    ingredient.Value,
			Value:   order.CheckedValue,
			Label:   ingredient.Label(),
			Price:   ingredient.Price.String(),
			Checked: opts.Values.Has(ingredient.Value),
		})
	}

	return view
}

// BuildReceipt formats a receipt for display.
func BuildReceipt(receipt order.Receipt, fields []order.Field, newOrderURL string) ReceiptView {
	view := ReceiptView{
		ID:          receipt.ID,
		Size:        lineView(receipt.Size),
		Ingredients: make([]ReceiptLine, 0, len(receipt.Ingredients)),
		Total:       receipt.Total.Display(),
		Amount:      receipt.Total.String(),
		NewOrderURL: firstNonEmpty(newOrderURL, DefaultNewOrderURL),
	}
	for _, line := range receipt.Ingredients {
		view.Ingredients = append(view.Ingredients, lineView(line))
	}
	for _, field := range fields {
		value, ok := receipt.Customer[field.Name]
		if !ok {
			continue
		}
		label := strings.TrimSpace(field.Label)
		if label == "" {
			label = DefaultLabeler(field.Name)
		}
		view.Customer = append(view.Customer, Input{
			Name:     field.Name,
			Type:     field.InputType(),
			Label:    label,
			LabelKey: "field." + field.Name,
			Value:    value,
		})
	}
	return view
}

func lineView(line order.Line) ReceiptLine {
	return ReceiptLine{Name: line.Name, Price: line.Price.Display(), Amount: line.Price.String()}
}

// Links are the routes a page points back to.
type Links struct {
	Action        string
	RefreshAction string
	NewOrderURL   string
	RetryURL      string
}

// DefaultLinks returns the routes served by the bundled HTTP server.
func DefaultLinks() Links {
	return Links{
		Action:        DefaultAction,
		RefreshAction: DefaultRefreshAction,
		NewOrderURL:   DefaultNewOrderURL,
		RetryURL:      DefaultNewOrderURL,
	}
}

// WithQuery returns l with query appended to every link, so request state
// such as the locale survives the next navigation. Empty links stay empty.
func (l Links) WithQuery(query url.Values) Links {
	encoded := query.Encode()
	if encoded == "" {
		return l
	}
	add := func(link string) string {
		if link == "" {
			return ""
		}
		sep := "?"
		if strings.Contains(link, "?") {
			sep = "&"
		}
		return link + sep + encoded
	}
	return Links{
		Action:        add(l.Action),
		RefreshAction: add(l.RefreshAction),
		NewOrderURL:   add(l.NewOrderURL),
		RetryURL:      add(l.RetryURL),
	}
}

// NewPage returns a page of the given kind seeded with the default labels.
func NewPage(kind PageKind) Page {
	return Page{Kind: kind, Labels: DefaultLabels()}
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
