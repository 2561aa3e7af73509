package catalog

import (
	"context"
	"io/fs"
	"net/http"
	"time"
)

// Loader fetches catalog documents from different sources (filesystem, fs.FS,
// HTTP). The implementation lives under internal/catalog/loader.
type Loader interface {
	Load(ctx context.Context, src Source) (Catalog, error)
}

// LoaderOptions configures how a Loader resolves sources.
type LoaderOptions struct {
	// FileSystem backs fs sources; the embedded bundle is used when nil.
	FileSystem fs.FS

	// HTTPClient allows callers to inject custom HTTP behaviour (timeouts,
	// proxies). Nil means URL sources are rejected unless AllowHTTPFallback is
	// true.
	HTTPClient *http.Client

	// AllowHTTPFallback enables a default client when HTTPClient is nil.
	AllowHTTPFallback bool

	// RequestTimeout caps each remote fetch.
	RequestTimeout time.Duration
}

// LoaderOption mutates LoaderOptions prior to construction.
type LoaderOption func(*LoaderOptions)

// WithFileSystem injects an fs.FS implementation for fs sources.
func WithFileSystem(files fs.FS) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.FileSystem = files
	}
}

// WithHTTPClient injects a custom HTTP client for remote catalogs.
func WithHTTPClient(client *http.Client) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.HTTPClient = client
	}
}

// WithHTTPFallback enables HTTP loading with a default client and assigns an
// optional timeout.
func WithHTTPFallback(timeout time.Duration) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.AllowHTTPFallback = true
		opts.RequestTimeout = timeout
	}
}

// WithRequestTimeout caps remote fetches without toggling HTTP support.
func WithRequestTimeout(timeout time.Duration) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.RequestTimeout = timeout
	}
}

// NewLoaderOptions applies a set of LoaderOption values and returns the
// resulting configuration.
func NewLoaderOptions(options ...LoaderOption) LoaderOptions {
	cfg := LoaderOptions{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return cfg
}
