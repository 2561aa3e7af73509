package vanilla

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"github.com/goliatone/go-pizzaform/pkg/model"
	"github.com/goliatone/go-pizzaform/pkg/render"
	rendertemplate "github.com/goliatone/go-pizzaform/pkg/render/template"
	gotemplate "github.com/goliatone/go-pizzaform/pkg/render/template/gotemplate"
)

// Name is the registry name of the HTML renderer.
const Name = "vanilla"

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	translator       render.Translator
	stylesheet       string
	inlineStyles     bool
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS. The bundle
// must contain templates/form.tmpl, templates/receipt.tmpl and
// templates/error.tmpl.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithTranslator backs the translate template helper.
func WithTranslator(t render.Translator) Option {
	return func(cfg *config) {
		if t != nil {
			cfg.translator = t
		}
	}
}

// WithStylesheet links an external stylesheet from every page.
func WithStylesheet(href string) Option {
	return func(cfg *config) {
		cfg.stylesheet = href
	}
}

// WithDefaultStyles inlines the embedded stylesheet into every page.
func WithDefaultStyles() Option {
	return func(cfg *config) {
		cfg.inlineStyles = true
	}
}

type Renderer struct {
	templates  rendertemplate.TemplateRenderer
	stylesheet string
	styles     string
}

// New constructs the vanilla renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{
		templateFS: TemplatesFS(),
		translator: render.DefaultTranslator(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithName(Name),
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
			gotemplate.WithTemplateFunc(render.TemplateI18nFuncs(cfg.translator, render.TemplateI18nConfig{})),
		)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	out := &Renderer{templates: renderer, stylesheet: cfg.stylesheet}
	if cfg.inlineStyles {
		out.styles = defaultStylesheet()
	}
	return out, nil
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render localizes the page and executes the template matching its kind.
func (r *Renderer) Render(_ context.Context, page model.Page, options render.RenderOptions) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("vanilla renderer: template renderer is nil")
	}

	name, err := templateFor(page)
	if err != nil {
		return nil, err
	}

	page = page.Clone()
	render.LocalizePage(&page, options)

	result, err := r.templates.RenderTemplate(name, map[string]any{
		"page":       page,
		"classes":    chromeClasses(),
		"stylesheet": r.stylesheet,
		"styles":     r.styles,
	})
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render template: %w", err)
	}
	return []byte(result), nil
}

func templateFor(page model.Page) (string, error) {
	switch page.Kind {
	case model.PageForm:
		if page.Form == nil {
			return "", fmt.Errorf("vanilla renderer: form page without form view")
		}
		return "templates/form.tmpl", nil
	case model.PageReceipt:
		if page.Receipt == nil {
			return "", fmt.Errorf("vanilla renderer: receipt page without receipt view")
		}
		return "templates/receipt.tmpl", nil
	case model.PageError:
		if page.Error == nil {
			return "", fmt.Errorf("vanilla renderer: error page without error view")
		}
		return "templates/error.tmpl", nil
	default:
		return "", fmt.Errorf("vanilla renderer: unsupported page kind %q", page.Kind)
	}
}
