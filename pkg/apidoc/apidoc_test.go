package apidoc

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoad_ValidatesEmbeddedDocument(t *testing.T) {
	spec, err := Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if spec.Info == nil || spec.Info.Title != "Pizzaform" {
		t.Fatalf("unexpected info: %#v", spec.Info)
	}
}

func TestLoad_CancelledFirstCallerDoesNotStickToCache(t *testing.T) {
	loadOnce = sync.Once{}
	loaded, loadErr = nil, nil

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Load(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected cancelled caller to see context.Canceled, got %v", err)
	}

	spec, err := Load(context.Background())
	if err != nil {
		t.Fatalf("load after cancelled caller: %v", err)
	}
	if spec == nil || spec.Paths == nil {
		t.Fatalf("expected a parsed document")
	}
}

func TestOperations_ListsHTTPSurface(t *testing.T) {
	ops, err := Operations(context.Background())
	if err != nil {
		t.Fatalf("operations: %v", err)
	}
	got := make([]string, 0, len(ops))
	for _, op := range ops {
		got = append(got, op.Method+" "+op.Path+" "+op.ID)
	}
	want := []string{
		"GET / newOrder",
		"GET /api/catalog currentCatalog",
		"POST /api/orders quoteOrder",
		"GET /datos.json catalogDocument",
		"GET /healthz health",
		"POST /order submitOrder",
		"POST /refresh refreshCatalog",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("operations mismatch (-want +got):\n%s", diff)
	}
}

func TestJSON_IsValidJSON(t *testing.T) {
	data, err := JSON(context.Background())
	if err != nil {
		t.Fatalf("json: %v", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if doc["openapi"] != "3.0.3" {
		t.Fatalf("unexpected openapi version: %v", doc["openapi"])
	}
}

func TestParse_RejectsInvalidDocument(t *testing.T) {
	if _, err := parse(context.Background(), []byte("openapi: 3.0.3\ninfo: {}\npaths: {}\n")); err == nil {
		t.Fatal("expected validation error")
	}
}
