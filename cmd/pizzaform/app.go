package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-pizzaform/internal/catalog/loader"
	"github.com/goliatone/go-pizzaform/internal/config"
	"github.com/goliatone/go-pizzaform/internal/logging"
	"github.com/goliatone/go-pizzaform/pkg/orchestrator"
	"github.com/goliatone/go-pizzaform/pkg/render"
	"github.com/goliatone/go-pizzaform/pkg/renderers/jsonview"
	"github.com/goliatone/go-pizzaform/pkg/renderers/tui"
	"github.com/goliatone/go-pizzaform/pkg/renderers/vanilla"
	"github.com/goliatone/go-pizzaform/pkg/server"
)

// app carries state shared by every subcommand.
type app struct {
	configPath string
	verbose    bool
	source     string
	locale     string

	cfg    config.Config
	logger *zap.Logger
	out    io.Writer
	errOut io.Writer
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("source") {
		cfg.Catalog.Source = a.source
	}
	if cmd.Flags().Changed("locale") {
		cfg.Locale = a.locale
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	cfg.Log.Verbose = a.verbose

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logger
	return nil
}

func (a *app) teardown(*cobra.Command, []string) error {
	if a.logger != nil {
		_ = a.logger.Sync()
	}
	return nil
}

func (a *app) orchestrator() (*orchestrator.Orchestrator, error) {
	src, err := a.cfg.CatalogSource()
	if err != nil {
		return nil, err
	}

	translator := render.DefaultTranslator()
	html, err := vanilla.New(
		vanilla.WithTranslator(translator),
		vanilla.WithStylesheet(server.AssetsPath+vanilla.StylesheetName),
	)
	if err != nil {
		return nil, err
	}
	registry, err := render.NewRegistry(
		html,
		jsonview.New(),
		tui.New(tui.WithFields(a.cfg.Fields)),
	)
	if err != nil {
		return nil, err
	}

	return orchestrator.New(
		orchestrator.WithLoader(loader.New(a.cfg.LoaderOptions())),
		orchestrator.WithSource(src),
		orchestrator.WithRegistry(registry),
		orchestrator.WithDefaultRenderer(a.cfg.Renderer),
		orchestrator.WithFields(a.cfg.Fields),
		orchestrator.WithTranslator(translator),
		orchestrator.WithLocale(a.cfg.Locale),
		orchestrator.WithLogger(a.logger),
	), nil
}

func (a *app) renderOptions() render.RenderOptions {
	return render.RenderOptions{Locale: a.cfg.Locale, Translator: render.DefaultTranslator()}
}
