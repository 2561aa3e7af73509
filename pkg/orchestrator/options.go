package orchestrator

import (
	"go.uber.org/zap"

	"github.com/goliatone/go-pizzaform/pkg/catalog"
	"github.com/goliatone/go-pizzaform/pkg/order"
	"github.com/goliatone/go-pizzaform/pkg/render"
)

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom catalog loader.
func WithLoader(loader catalog.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithSource selects where the catalog is fetched from. Defaults to the
// embedded datos.json.
func WithSource(src catalog.Source) Option {
	return func(o *Orchestrator) {
		o.source = src
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithFields replaces the customer fields of the order form.
func WithFields(fields []order.Field) Option {
	return func(o *Orchestrator) {
		if len(fields) > 0 {
			o.fields = append([]order.Field(nil), fields...)
		}
	}
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *Orchestrator) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithTranslator sets the translator used when a request brings none.
func WithTranslator(t render.Translator) Option {
	return func(o *Orchestrator) {
		o.translator = t
	}
}

// WithLocale sets the locale used when a request brings none.
func WithLocale(locale string) Option {
	return func(o *Orchestrator) {
		o.locale = locale
	}
}
