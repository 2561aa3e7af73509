package pizzaform

import (
	"io/fs"

	"github.com/goliatone/go-pizzaform/pkg/renderers/vanilla"
)

// AssetsFS exposes the stylesheet linked by the HTML pages.
//
// Typical mount:
//
//	mux.Handle("/assets/",
//	  http.StripPrefix("/assets/",
//	    http.FileServerFS(pizzaform.AssetsFS()),
//	  ),
//	)
func AssetsFS() fs.FS {
	return vanilla.AssetsFS()
}
