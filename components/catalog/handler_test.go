package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	pizzacatalog "github.com/goliatone/go-pizzaform/pkg/catalog"
)

func fixedCatalog() pizzacatalog.Catalog {
	return pizzacatalog.Catalog{
		Sizes:       []pizzacatalog.Item{{Value: "mediana", Name: "Mediana", Price: 850}},
		Ingredients: []pizzacatalog.Item{{Value: "queso", Name: "Queso", Price: 100}},
	}
}

func TestHandler_ServesDefaultCatalog(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/datos.json", nil)
	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, req)

	res := rec.Result()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", res.StatusCode)
	}
	if ct := res.Header.Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Fatalf("expected JSON content-type, got %q", ct)
	}

	var payload map[string][]map[string]any
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(payload["tamanosPizza"]) != 4 || len(payload["ingredientes"]) != 8 {
		t.Fatalf("unexpected payload sizes: %d/%d", len(payload["tamanosPizza"]), len(payload["ingredientes"]))
	}
	if price, ok := payload["tamanosPizza"][0]["precio"].(string); !ok || price != "6.00" {
		t.Fatalf("expected price as string, got %#v", payload["tamanosPizza"][0]["precio"])
	}
}

func TestHandler_FixedCatalogRoundTrips(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/datos.json", nil)
	rec := httptest.NewRecorder()
	Handler(WithCatalog(fixedCatalog())).ServeHTTP(rec, req)

	got, err := pizzacatalog.Parse(rec.Body.Bytes(), "response")
	if err != nil {
		t.Fatalf("parse response: %v", err)
	}
	if diff := cmp.Diff(fixedCatalog(), got); diff != "" {
		t.Fatalf("catalog mismatch (-want +got):\n%s", diff)
	}
}

func TestHandler_ProviderWins(t *testing.T) {
	called := false
	h := Handler(
		WithCatalog(pizzacatalog.Catalog{}),
		WithProvider(func(context.Context) (pizzacatalog.Catalog, error) {
			called = true
			return fixedCatalog(), nil
		}),
	)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/datos.json", nil))

	if !called || rec.Code != http.StatusOK {
		t.Fatalf("expected provider to serve the request, status %d", rec.Code)
	}
}

func TestHandler_ProviderErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{name: "plain error", err: errors.New("offline"), want: http.StatusBadGateway},
		{name: "status error", err: StatusError{Code: http.StatusServiceUnavailable}, want: http.StatusServiceUnavailable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := Handler(WithProvider(func(context.Context) (pizzacatalog.Catalog, error) {
				return pizzacatalog.Catalog{}, tc.err
			}))
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/datos.json", nil))
			if rec.Code != tc.want {
				t.Fatalf("expected status %d, got %d", tc.want, rec.Code)
			}
		})
	}
}

func TestHandler_HeadHasNoBody(t *testing.T) {
	rec := httptest.NewRecorder()
	Handler(WithCacheControl("max-age=60")).ServeHTTP(rec, httptest.NewRequest(http.MethodHead, "/datos.json", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("expected empty body, got %q", rec.Body.String())
	}
	if got := rec.Header().Get("Cache-Control"); got != "max-age=60" {
		t.Fatalf("unexpected cache-control %q", got)
	}
}

func TestHandler_MethodNotAllowed(t *testing.T) {
	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/datos.json", nil))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected status 405, got %d", rec.Code)
	}
	if allow := rec.Header().Get("Allow"); allow != "GET, HEAD" {
		t.Fatalf("unexpected Allow header %q", allow)
	}
}
