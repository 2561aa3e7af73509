package loader

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"time"

	"github.com/goliatone/go-pizzaform/pkg/catalog"
)

// Loader implements catalog.Loader by delegating to file, fs.FS, or HTTP
// strategies. Each Load performs exactly one fetch attempt.
type Loader struct {
	fs        fs.FS
	http      *http.Client
	allowHTTP bool
	timeout   time.Duration
}

var _ catalog.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options.
func New(options catalog.LoaderOptions) catalog.Loader {
	timeout := options.RequestTimeout

	var httpClient *http.Client
	switch {
	case options.HTTPClient != nil:
		clone := *options.HTTPClient
		if timeout > 0 && clone.Timeout == 0 {
			clone.Timeout = timeout
		}
		httpClient = &clone
	case options.AllowHTTPFallback:
		httpClient = &http.Client{Timeout: timeout}
	}

	files := options.FileSystem
	if files == nil {
		files = catalog.EmbeddedFS()
	}

	return &Loader{
		fs:        files,
		http:      httpClient,
		allowHTTP: httpClient != nil,
		timeout:   timeout,
	}
}

// Load fetches and parses the catalog identified by src.
func (l *Loader) Load(ctx context.Context, src catalog.Source) (catalog.Catalog, error) {
	if src == nil {
		return catalog.Catalog{}, errors.New("catalog loader: source is nil")
	}

	var (
		data []byte
		err  error
	)

	switch src.Kind() {
	case catalog.SourceKindFile:
		data, err = loadFile(ctx, src.Location())
	case catalog.SourceKindFS:
		data, err = loadFromFS(ctx, l.fs, src.Location())
	case catalog.SourceKindURL:
		if !l.allowHTTP {
			return catalog.Catalog{}, errors.New("catalog loader: http support disabled")
		}
		data, err = loadHTTP(ctx, l.http, src.Location(), l.timeout)
	default:
		err = errors.New("catalog loader: unsupported source kind")
	}
	if err != nil {
		return catalog.Catalog{}, err
	}

	return catalog.Parse(data, src.Location())
}
