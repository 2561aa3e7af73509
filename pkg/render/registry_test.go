package render_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-pizzaform/pkg/model"
	"github.com/goliatone/go-pizzaform/pkg/render"
)

type namedRenderer string

func (n namedRenderer) Name() string        { return string(n) }
func (n namedRenderer) ContentType() string { return "text/plain" }
func (n namedRenderer) Render(context.Context, model.Page, render.RenderOptions) ([]byte, error) {
	return []byte(n), nil
}

func TestRegistry(t *testing.T) {
	registry, err := render.NewRegistry(namedRenderer("vanilla"), namedRenderer("json"))
	if err != nil {
		t.Fatalf("new registry: %v", err)
	}

	if err := registry.Register(namedRenderer("json")); err == nil {
		t.Fatalf("expected duplicate registration to fail")
	}
	if err := registry.Register(namedRenderer(" ")); err == nil {
		t.Fatalf("expected blank name to fail")
	}
	if diff := cmp.Diff([]string{"json", "vanilla"}, registry.List()); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}
	if !registry.Has("vanilla") || registry.Has("tui") {
		t.Fatalf("unexpected Has results")
	}
	if _, err := registry.Get("tui"); err == nil {
		t.Fatalf("expected missing renderer error")
	}
	got, err := registry.Get("json")
	if err != nil || got.Name() != "json" {
		t.Fatalf("get json: %v %v", got, err)
	}
}
