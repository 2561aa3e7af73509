package tui

import (
	"github.com/goliatone/go-pizzaform/pkg/order"
	"github.com/goliatone/go-pizzaform/pkg/render"
)

// Theme captures optional message prefixes. Keep minimal to avoid coupling
// session logic to ANSI specifics.
type Theme struct {
	PromptPrefix string
	InfoPrefix   string
	ErrorPrefix  string
}

type config struct {
	driver        PromptDriver
	theme         Theme
	fields        []order.Field
	renderOptions render.RenderOptions
}

// Option configures the renderer and sessions.
type Option func(*config)

// WithPromptDriver overrides the prompt driver.
func WithPromptDriver(driver PromptDriver) Option {
	return func(cfg *config) {
		if driver != nil {
			cfg.driver = driver
		}
	}
}

// WithTheme applies optional message prefixes.
func WithTheme(theme Theme) Option {
	return func(cfg *config) {
		cfg.theme = theme
	}
}

// WithFields overrides the customer fields a session prompts for.
func WithFields(fields []order.Field) Option {
	return func(cfg *config) {
		if len(fields) > 0 {
			cfg.fields = append([]order.Field(nil), fields...)
		}
	}
}

// WithRenderOptions sets the locale and translator used for prompts and
// messages.
func WithRenderOptions(opts render.RenderOptions) Option {
	return func(cfg *config) {
		cfg.renderOptions = opts
	}
}

func newConfig(options []Option) config {
	cfg := config{
		fields: order.DefaultFields(),
		renderOptions: render.RenderOptions{
			Translator: render.DefaultTranslator(),
		},
	}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.driver == nil {
		cfg.driver = NewSurveyDriver(nil)
	}
	return cfg
}
