package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	catalogloader "github.com/goliatone/go-pizzaform/internal/catalog/loader"
	"github.com/goliatone/go-pizzaform/pkg/catalog"
	"github.com/goliatone/go-pizzaform/pkg/model"
	"github.com/goliatone/go-pizzaform/pkg/order"
	"github.com/goliatone/go-pizzaform/pkg/render"
	"github.com/goliatone/go-pizzaform/pkg/renderers/vanilla"
)

const defaultRendererName = vanilla.Name

// ErrCatalogUnavailable wraps every catalog fetch failure so callers can tell
// it apart from a rejected order.
var ErrCatalogUnavailable = errors.New("orchestrator: catalog unavailable")

// Orchestrator coordinates catalog loading, order validation and rendering.
// It applies defaults (embedded catalog, vanilla renderer, Spanish bundle)
// while remaining open to dependency injection.
type Orchestrator struct {
	loader          catalog.Loader
	source          catalog.Source
	registry        *render.Registry
	defaultRenderer string
	fields          []order.Field
	logger          *zap.Logger
	translator      render.Translator
	locale          string
	initialiseErr   error

	mu     sync.RWMutex
	cached *catalog.Catalog
}

// New constructs an Orchestrator applying any provided options.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes a page to render.
type Request struct {
	// Page selects the screen. Empty means the order form.
	Page model.PageKind

	// Renderer names the renderer to use. If empty, the orchestrator falls back
	// to the configured default renderer.
	Renderer string

	// Form prefills the order form with a previous submission.
	Form order.Form

	// Message is shown above the order form.
	Message order.MessageKey

	// InvalidField marks the input Message refers to.
	InvalidField string

	// Catalog renders the form from an already loaded catalog instead of the
	// cached one.
	Catalog *catalog.Catalog

	// Receipt is required for receipt pages.
	Receipt *order.Receipt

	// Links overrides the routes the page points to. Empty fields use
	// model.DefaultLinks.
	Links model.Links

	// RenderOptions carries the locale and translator. Empty fields fall back
	// to the orchestrator defaults.
	RenderOptions render.RenderOptions
}

// NewOrder returns the request for an empty order form.
func (o *Orchestrator) NewOrder() Request {
	return Request{Page: model.PageForm}
}

// Fields lists the configured customer fields.
func (o *Orchestrator) Fields() []order.Field {
	return append([]order.Field(nil), o.fields...)
}

// Source reports where the catalog is fetched from.
func (o *Orchestrator) Source() catalog.Source {
	return o.source
}

// Catalog returns the cached catalog, loading it on first use.
func (o *Orchestrator) Catalog(ctx context.Context) (catalog.Catalog, error) {
	o.mu.RLock()
	cached := o.cached
	o.mu.RUnlock()
	if cached != nil {
		return cached.Clone(), nil
	}
	return o.load(ctx)
}

// Refresh drops the cached catalog and loads it again.
func (o *Orchestrator) Refresh(ctx context.Context) (catalog.Catalog, error) {
	o.Invalidate()
	return o.load(ctx)
}

// Invalidate drops the cached catalog; the next Catalog call reloads it.
func (o *Orchestrator) Invalidate() {
	o.mu.Lock()
	o.cached = nil
	o.mu.Unlock()
}

// Quote fetches the catalog, validates the form against it and computes the
// receipt. Fetch failures wrap ErrCatalogUnavailable; rejected orders return
// an *order.ValidationError.
func (o *Orchestrator) Quote(ctx context.Context, form order.Form) (order.Receipt, error) {
	if err := o.ready(ctx); err != nil {
		return order.Receipt{}, err
	}
	cat, err := o.load(ctx)
	if err != nil {
		return order.Receipt{}, err
	}
	receipt, err := order.Quote(form, o.fields, cat)
	if err != nil {
		if verr, ok := order.AsValidationError(err); ok {
			o.logger.Debug("order rejected", zap.String("code", string(verr.Code)), zap.String("field", verr.Field))
		}
		return order.Receipt{}, err
	}
	o.logger.Info("order quoted",
		zap.String("id", receipt.ID),
		zap.String("size", receipt.Size.Value),
		zap.Int("ingredients", len(receipt.Ingredients)),
		zap.String("total", receipt.Total.String()),
	)
	return receipt, nil
}

// Generate builds the requested page and renders it.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	if err := o.ready(ctx); err != nil {
		return nil, err
	}

	page, err := o.Page(ctx, req)
	if err != nil {
		return nil, err
	}

	renderer, err := o.Renderer(req.Renderer)
	if err != nil {
		return nil, err
	}

	output, err := renderer.Render(ctx, page, o.RenderOptions(req.RenderOptions))
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render output: %w", err)
	}
	return output, nil
}

// Page builds the unlocalized page model for req.
func (o *Orchestrator) Page(ctx context.Context, req Request) (model.Page, error) {
	kind := req.Page
	if kind == "" {
		kind = model.PageForm
	}
	page := model.NewPage(kind)
	links := req.resolvedLinks()

	switch kind {
	case model.PageForm:
		var cat catalog.Catalog
		if req.Catalog != nil {
			cat = *req.Catalog
		} else {
			loaded, err := o.Catalog(ctx)
			if err != nil {
				return model.Page{}, err
			}
			cat = loaded
		}
		view := model.BuildForm(cat, model.FormOptions{
			Fields:        o.fields,
			Values:        req.Form,
			MessageKey:    req.Message,
			InvalidField:  req.InvalidField,
			Action:        links.Action,
			RefreshAction: links.RefreshAction,
		})
		page.Form = &view
	case model.PageReceipt:
		if req.Receipt == nil {
			return model.Page{}, errors.New("orchestrator: receipt is required")
		}
		view := model.BuildReceipt(*req.Receipt, o.fields, links.NewOrderURL)
		page.Receipt = &view
	case model.PageError:
		page.Error = &model.ErrorView{
			MessageKey: string(order.MessageFetchFailed),
			RetryURL:   links.RetryURL,
		}
	default:
		return model.Page{}, fmt.Errorf("orchestrator: unsupported page %q", kind)
	}
	return page, nil
}

func (r Request) resolvedLinks() model.Links {
	links := model.DefaultLinks()
	if r.Links.Action != "" {
		links.Action = r.Links.Action
	}
	if r.Links.RefreshAction != "" {
		links.RefreshAction = r.Links.RefreshAction
	}
	if r.Links.NewOrderURL != "" {
		links.NewOrderURL = r.Links.NewOrderURL
	}
	if r.Links.RetryURL != "" {
		links.RetryURL = r.Links.RetryURL
	}
	return links
}

// RenderOptions fills unset fields of opts with the orchestrator defaults.
func (o *Orchestrator) RenderOptions(opts render.RenderOptions) render.RenderOptions {
	if opts.Locale == "" {
		opts.Locale = o.locale
	}
	if opts.Translator == nil {
		opts.Translator = o.translator
	}
	return opts
}

// Renderer resolves a renderer by name, falling back to the default renderer
// and then to the first registered one.
func (o *Orchestrator) Renderer(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	if target != "" {
		renderer, err := o.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}

	renderer, err := o.registry.Get(names[0])
	if err != nil {
		return nil, fmt.Errorf("orchestrator: renderer %q: %w", names[0], err)
	}
	return renderer, nil
}

func (o *Orchestrator) load(ctx context.Context) (catalog.Catalog, error) {
	if err := o.ready(ctx); err != nil {
		return catalog.Catalog{}, err
	}

	started := time.Now()
	cat, err := o.loader.Load(ctx, o.source)
	if err != nil {
		o.logger.Warn("catalog fetch failed",
			zap.String("source", o.source.Location()),
			zap.Duration("elapsed", time.Since(started)),
			zap.Error(err),
		)
		return catalog.Catalog{}, fmt.Errorf("%w: %w", ErrCatalogUnavailable, err)
	}

	o.logger.Debug("catalog loaded",
		zap.String("source", o.source.Location()),
		zap.Int("sizes", len(cat.Sizes)),
		zap.Int("ingredients", len(cat.Ingredients)),
		zap.Duration("elapsed", time.Since(started)),
	)

	stored := cat.Clone()
	o.mu.Lock()
	o.cached = &stored
	o.mu.Unlock()
	return cat, nil
}

func (o *Orchestrator) ready(ctx context.Context) error {
	if ctx == nil {
		return errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return o.initialiseErr
}

func (o *Orchestrator) applyDefaults() {
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	if o.loader == nil {
		o.loader = catalogloader.New(catalog.NewLoaderOptions())
	}
	if o.source == nil {
		o.source = catalog.SourceFromFS(catalog.DefaultName)
	}
	if len(o.fields) == 0 {
		o.fields = order.DefaultFields()
	}
	if o.translator == nil {
		o.translator = render.DefaultTranslator()
	}
	if o.locale == "" {
		o.locale = render.DefaultLocale
	}
	if o.registry == nil {
		registry, err := render.NewRegistry()
		if err != nil {
			o.initialiseErr = err
			return
		}
		renderer, err := vanilla.New(vanilla.WithTranslator(o.translator))
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default renderer: %w", err)
			return
		}
		registry.MustRegister(renderer)
		o.registry = registry
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}
}
