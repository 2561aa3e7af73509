package catalog

import (
	"embed"
	"io/fs"
)

//go:embed data/datos.json
var embeddedData embed.FS

// EmbeddedFS exposes the bundled default catalog rooted so that DefaultName
// resolves directly.
func EmbeddedFS() fs.FS {
	sub, err := fs.Sub(embeddedData, "data")
	if err != nil {
		return embeddedData
	}
	return sub
}

// Default parses the bundled catalog.
func Default() (Catalog, error) {
	data, err := fs.ReadFile(EmbeddedFS(), DefaultName)
	if err != nil {
		return Catalog{}, err
	}
	return Parse(data, DefaultName)
}
