// Package testsupport holds fixtures shared by package tests.
package testsupport

import (
	"bytes"
	"context"
	"io"
	"sync/atomic"
	"testing"

	"github.com/goliatone/go-pizzaform/pkg/catalog"
	"github.com/goliatone/go-pizzaform/pkg/order"
)

// Catalog returns a small catalog with two sizes and three ingredients.
func Catalog() catalog.Catalog {
	return catalog.Catalog{
		Sizes: []catalog.Item{
			{Value: "pequena", Name: "Pequeña", Price: 600},
			{Value: "mediana", Name: "Mediana", Price: 850},
		},
		Ingredients: []catalog.Item{
			{Value: "queso", Name: "Queso", Price: 100},
			{Value: "jamon", Name: "Jamón", Price: 150},
			{Value: "pina", Name: "Piña", Price: 120},
		},
	}
}

// ValidForm returns a submission that passes validation against Catalog with
// the default fields. Its total is 9.50.
func ValidForm() order.Form {
	return order.Form{
		"nombre":    "Ada",
		"direccion": "Calle Mayor 1",
		"telefono":  "600000000",
		"email":     "ada@example.com",
		"pizzaSize": "mediana",
		"queso":     order.CheckedValue,
	}
}

// StaticLoader serves a fixed catalog or error and counts calls.
type StaticLoader struct {
	Catalog catalog.Catalog
	Err     error

	calls atomic.Int64
}

// Load implements catalog.Loader.
func (l *StaticLoader) Load(ctx context.Context, _ catalog.Source) (catalog.Catalog, error) {
	l.calls.Add(1)
	if err := ctx.Err(); err != nil {
		return catalog.Catalog{}, err
	}
	if l.Err != nil {
		return catalog.Catalog{}, l.Err
	}
	return l.Catalog.Clone(), nil
}

// Calls reports how many times Load ran.
func (l *StaticLoader) Calls() int {
	return int(l.calls.Load())
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// CaptureTemplateOutput executes a render function that writes to an
// io.Writer, returning both the string result and the writer contents.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}
