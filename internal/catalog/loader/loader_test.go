package loader

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"testing/fstest"
	"time"

	"github.com/goliatone/go-pizzaform/pkg/catalog"
)

const sampleCatalog = `{
  "tamanosPizza": [{"value": "mediana", "nombre": "Mediana", "precio": "8.50"}],
  "ingredientes": [{"value": "queso", "nombre": "Queso", "precio": "1.00"}]
}`

func TestLoader_EmbeddedDefault(t *testing.T) {
	l := New(catalog.NewLoaderOptions())

	cat, err := l.Load(context.Background(), catalog.SourceFromFS(catalog.DefaultName))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cat.Empty() {
		t.Fatalf("expected embedded catalog to have items")
	}
}

func TestLoader_FileSystem(t *testing.T) {
	files := fstest.MapFS{
		"menu/datos.json": &fstest.MapFile{Data: []byte(sampleCatalog)},
	}
	l := New(catalog.NewLoaderOptions(catalog.WithFileSystem(files)))

	cat, err := l.Load(context.Background(), catalog.SourceFromFS("menu/datos.json"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, ok := cat.Size("mediana"); !ok {
		t.Fatalf("expected mediana size, got %#v", cat)
	}
}

func TestLoader_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "datos.json")
	if err := os.WriteFile(path, []byte(sampleCatalog), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	l := New(catalog.NewLoaderOptions())
	cat, err := l.Load(context.Background(), catalog.SourceFromFile(path))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, ok := cat.Ingredient("queso"); !ok {
		t.Fatalf("expected queso ingredient, got %#v", cat)
	}
}

func TestLoader_FileHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	l := New(catalog.NewLoaderOptions())
	if _, err := l.Load(ctx, catalog.SourceFromFile("datos.json")); err == nil {
		t.Fatalf("expected cancelled context error")
	}
}

func TestLoader_HTTP(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleCatalog))
	}))
	defer srv.Close()

	l := New(catalog.NewLoaderOptions(catalog.WithHTTPFallback(time.Second)))
	cat, err := l.Load(context.Background(), catalog.SourceFromURL(srv.URL+"/datos.json"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, ok := cat.Size("mediana"); !ok {
		t.Fatalf("expected mediana size, got %#v", cat)
	}
	if got := atomic.LoadInt32(&hits); got != 1 {
		t.Fatalf("expected exactly one request, got %d", got)
	}
}

func TestLoader_HTTPStatusErrorIsNotRetried(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	l := New(catalog.NewLoaderOptions(catalog.WithHTTPClient(srv.Client())))
	_, err := l.Load(context.Background(), catalog.SourceFromURL(srv.URL))
	if err == nil {
		t.Fatalf("expected status error")
	}
	if !strings.Contains(err.Error(), "unexpected status") {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := atomic.LoadInt32(&hits); got != 1 {
		t.Fatalf("expected a single attempt, got %d", got)
	}
}

func TestLoader_HTTPDisabled(t *testing.T) {
	l := New(catalog.NewLoaderOptions())
	_, err := l.Load(context.Background(), catalog.SourceFromURL("http://localhost:5500/datos.json"))
	if err == nil || !strings.Contains(err.Error(), "http support disabled") {
		t.Fatalf("expected http disabled error, got %v", err)
	}
}
