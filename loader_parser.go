package pizzaform

import (
	catalogloader "github.com/goliatone/go-pizzaform/internal/catalog/loader"
	"github.com/goliatone/go-pizzaform/pkg/catalog"
)

// NewLoader constructs a catalog loader using the internal implementation
// while keeping the concrete type hidden from consumers.
func NewLoader(options ...catalog.LoaderOption) catalog.Loader {
	cfg := catalog.NewLoaderOptions(options...)
	return catalogloader.New(cfg)
}

// ParseCatalog decodes and validates a JSON or YAML catalog document.
func ParseCatalog(data []byte, name string) (catalog.Catalog, error) {
	return catalog.Parse(data, name)
}
