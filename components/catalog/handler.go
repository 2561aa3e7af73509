package catalog

import (
	"encoding/json"
	"errors"
	"net/http"

	pizzacatalog "github.com/goliatone/go-pizzaform/pkg/catalog"
)

type HTTPError interface {
	error
	StatusCode() int
}

// StatusError lets a Provider choose the response status.
type StatusError struct {
	Code int
	Err  error
}

func (e StatusError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.Code)
}

func (e StatusError) Unwrap() error { return e.Err }

func (e StatusError) StatusCode() int {
	if e.Code <= 0 {
		return http.StatusInternalServerError
	}
	return e.Code
}

// Handler builds a net/http handler with default options plus any overrides.
func Handler(fns ...OptionFn) http.Handler {
	return HandlerWithOptions(NewOptions(fns...))
}

// HandlerWithOptions builds a net/http handler from a pre-constructed Options
// value.
func HandlerWithOptions(opts Options) http.Handler {
	opts = NewOptions(func(o *Options) { *o = opts })
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r == nil {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", http.MethodGet+", "+http.MethodHead)
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}

		cat, err := resolve(r, opts)
		if err != nil {
			writeProviderError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", opts.CacheControl)
		w.WriteHeader(http.StatusOK)
		if r.Method == http.MethodHead {
			return
		}

		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(true)
		_ = enc.Encode(cat)
	})
}

func resolve(r *http.Request, opts Options) (pizzacatalog.Catalog, error) {
	switch {
	case opts.Provider != nil:
		return opts.Provider(r.Context())
	case opts.Catalog != nil:
		return *opts.Catalog, nil
	default:
		return pizzacatalog.Default()
	}
}

func writeProviderError(w http.ResponseWriter, err error) {
	code := http.StatusBadGateway
	var httpErr HTTPError
	if errors.As(err, &httpErr) && httpErr != nil {
		code = httpErr.StatusCode()
	}
	http.Error(w, http.StatusText(code), code)
}
