package catalog

import (
	"context"

	pizzacatalog "github.com/goliatone/go-pizzaform/pkg/catalog"
)

const (
	defaultRoutePath    = "/" + pizzacatalog.DefaultName
	defaultCacheControl = "no-cache"
)

// Provider supplies the catalog for each request.
type Provider func(ctx context.Context) (pizzacatalog.Catalog, error)

type Options struct {
	RoutePath    string
	CacheControl string
	Provider     Provider

	Catalog *pizzacatalog.Catalog
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		RoutePath:    defaultRoutePath,
		CacheControl: defaultCacheControl,
	}
}

func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if opts.RoutePath == "" {
		opts.RoutePath = defaultRoutePath
	}
	if opts.CacheControl == "" {
		opts.CacheControl = defaultCacheControl
	}
	if opts.Catalog != nil {
		clone := opts.Catalog.Clone()
		opts.Catalog = &clone
	}
	return opts
}

func WithRoutePath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.RoutePath = path
	}
}

func WithCacheControl(value string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.CacheControl = value
	}
}

// WithCatalog serves a fixed catalog.
func WithCatalog(cat pizzacatalog.Catalog) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		clone := cat.Clone()
		o.Catalog = &clone
	}
}

// WithProvider resolves the catalog per request; it wins over WithCatalog.
func WithProvider(provider Provider) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Provider = provider
	}
}
