package template_test

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"testing"

	"github.com/goliatone/go-pizzaform/pkg/catalog"
	"github.com/goliatone/go-pizzaform/pkg/render/template/gotemplate"
	"github.com/goliatone/go-pizzaform/pkg/testsupport"
)

//go:embed testdata/templates/*.tmpl
var embeddedTemplates embed.FS

func TestGoTemplateEngine_RenderTemplate(t *testing.T) {
	engine := newEngine(t)

	result, written := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("hello", map[string]any{"name": "Ada"}, w)
	})

	if result != "Hello Ada!" {
		t.Fatalf("unexpected result %q", result)
	}
	if written != result {
		t.Fatalf("writer mismatch\nwant: %q\n got: %q", result, written)
	}
}

func TestGoTemplateEngine_GlobalContext(t *testing.T) {
	engine := newEngine(t)
	if err := engine.GlobalContext(map[string]any{
		"settings": map[string]any{"env": "staging"},
	}); err != nil {
		t.Fatalf("global context: %v", err)
	}

	result, err := engine.RenderTemplate("use-global", nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result != "staging" {
		t.Fatalf("unexpected result %q", result)
	}
}

func TestGoTemplateEngine_RegisterFilter(t *testing.T) {
	engine := newEngine(t)
	err := engine.RegisterFilter("shout", func(input any, _ any) (any, error) {
		if input == nil {
			return "", nil
		}
		return fmt.Sprintf("%s!", strings.ToUpper(fmt.Sprint(input))), nil
	})
	if err != nil {
		t.Fatalf("register filter: %v", err)
	}
	if err := engine.RegisterFilter("shout", func(any, any) (any, error) { return nil, nil }); err == nil {
		t.Fatalf("expected duplicate filter registration to fail")
	}

	result, err := engine.RenderTemplate("use-filter", map[string]any{"name": "Ada"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result != "ADA!" {
		t.Fatalf("unexpected result %q", result)
	}
}

func TestGoTemplateEngine_StructDataUsesJSONNames(t *testing.T) {
	engine := newEngine(t)

	item := catalog.Item{Value: "mediana", Name: "Mediana", Price: 850}
	result, err := engine.RenderTemplate("use-money", struct {
		Item catalog.Item `json:"item"`
	}{Item: item})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result != "Mediana: 8.50 €" {
		t.Fatalf("unexpected result %q", result)
	}
}

func TestGoTemplateEngine_EscapesOutput(t *testing.T) {
	engine := newEngine(t)

	result, err := engine.Render("escape", map[string]any{"name": "<b>Ada</b>"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(result, "<b>") {
		t.Fatalf("expected escaped output, got %q", result)
	}
}

func TestGoTemplateEngine_RenderString(t *testing.T) {
	engine := newEngine(t)

	result, err := engine.Render("{{ greeting|trim }}", map[string]any{"greeting": "  hola  "})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if result != "hola" {
		t.Fatalf("unexpected result %q", result)
	}
}

func TestGoTemplateEngine_RequiresLoader(t *testing.T) {
	if _, err := gotemplate.New(); err == nil {
		t.Fatalf("expected error without base dir or fs")
	}
}

func newEngine(t *testing.T) *gotemplate.Engine {
	t.Helper()

	templatesFS, err := fs.Sub(embeddedTemplates, "testdata/templates")
	if err != nil {
		t.Fatalf("sub fs: %v", err)
	}

	engine, err := gotemplate.New(gotemplate.WithFS(templatesFS))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}
