package orchestrator_test

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/goliatone/go-pizzaform/pkg/model"
	"github.com/goliatone/go-pizzaform/pkg/order"
	"github.com/goliatone/go-pizzaform/pkg/orchestrator"
	"github.com/goliatone/go-pizzaform/pkg/render"
	"github.com/goliatone/go-pizzaform/pkg/renderers/jsonview"
	"github.com/goliatone/go-pizzaform/pkg/renderers/vanilla"
	"github.com/goliatone/go-pizzaform/pkg/testsupport"
)

func TestOrchestrator_DefaultsUseEmbeddedCatalog(t *testing.T) {
	orch := orchestrator.New()

	cat, err := orch.Catalog(testsupport.Context())
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	if len(cat.Sizes) != 4 || len(cat.Ingredients) != 8 {
		t.Fatalf("unexpected embedded catalog: %d sizes, %d ingredients", len(cat.Sizes), len(cat.Ingredients))
	}

	output, err := orch.Generate(testsupport.Context(), orch.NewOrder())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(string(output), `name="pizzaSize"`) {
		t.Fatalf("expected size radios in default output")
	}
}

func TestOrchestrator_CatalogIsCachedUntilRefresh(t *testing.T) {
	loader := &testsupport.StaticLoader{Catalog: testsupport.Catalog()}
	orch := orchestrator.New(orchestrator.WithLoader(loader))
	ctx := testsupport.Context()

	for i := 0; i < 3; i++ {
		if _, err := orch.Catalog(ctx); err != nil {
			t.Fatalf("catalog: %v", err)
		}
	}
	if loader.Calls() != 1 {
		t.Fatalf("expected a single fetch, got %d", loader.Calls())
	}

	if _, err := orch.Refresh(ctx); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if loader.Calls() != 2 {
		t.Fatalf("expected refresh to fetch again, got %d", loader.Calls())
	}

	orch.Invalidate()
	if _, err := orch.Catalog(ctx); err != nil {
		t.Fatalf("catalog: %v", err)
	}
	if loader.Calls() != 3 {
		t.Fatalf("expected invalidate to force a fetch, got %d", loader.Calls())
	}
}

func TestOrchestrator_QuoteFetchesEachTime(t *testing.T) {
	loader := &testsupport.StaticLoader{Catalog: testsupport.Catalog()}
	orch := orchestrator.New(orchestrator.WithLoader(loader))

	receipt, err := orch.Quote(testsupport.Context(), testsupport.ValidForm())
	if err != nil {
		t.Fatalf("quote: %v", err)
	}
	if receipt.Total.Display() != "9.50 €" {
		t.Fatalf("unexpected total %s", receipt.Total.Display())
	}
	if _, err := orch.Quote(testsupport.Context(), testsupport.ValidForm()); err != nil {
		t.Fatalf("quote: %v", err)
	}
	if loader.Calls() != 2 {
		t.Fatalf("expected one fetch per submission, got %d", loader.Calls())
	}
}

func TestOrchestrator_QuoteErrors(t *testing.T) {
	ctx := testsupport.Context()

	orch := orchestrator.New(orchestrator.WithLoader(&testsupport.StaticLoader{Catalog: testsupport.Catalog()}))
	form := testsupport.ValidForm()
	delete(form, order.SizeField)
	_, err := orch.Quote(ctx, form)
	if verr, ok := order.AsValidationError(err); !ok || verr.Code != order.MessageMissingSize {
		t.Fatalf("expected missing size, got %v", err)
	}

	failing := orchestrator.New(orchestrator.WithLoader(&testsupport.StaticLoader{Err: errors.New("offline")}))
	_, err = failing.Quote(ctx, testsupport.ValidForm())
	if !errors.Is(err, orchestrator.ErrCatalogUnavailable) {
		t.Fatalf("expected ErrCatalogUnavailable, got %v", err)
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	if _, err := orch.Quote(cancelled, testsupport.ValidForm()); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestOrchestrator_PageKinds(t *testing.T) {
	orch := orchestrator.New(orchestrator.WithLoader(&testsupport.StaticLoader{Catalog: testsupport.Catalog()}))
	ctx := testsupport.Context()

	page, err := orch.Page(ctx, orchestrator.Request{Form: order.Form{"pizzaSize": "mediana"}, Message: order.MessageMissingIngredient})
	if err != nil {
		t.Fatalf("form page: %v", err)
	}
	if page.Kind != model.PageForm || page.Form.MessageKey != string(order.MessageMissingIngredient) || !page.Form.Sizes[1].Checked {
		t.Fatalf("unexpected form page %#v", page.Form)
	}

	if _, err := orch.Page(ctx, orchestrator.Request{Page: model.PageReceipt}); err == nil {
		t.Fatalf("expected receipt page without receipt to fail")
	}

	page, err = orch.Page(ctx, orchestrator.Request{Page: model.PageError})
	if err != nil {
		t.Fatalf("error page: %v", err)
	}
	if page.Error.MessageKey != string(order.MessageFetchFailed) {
		t.Fatalf("unexpected error page %#v", page.Error)
	}
}

func TestOrchestrator_PageLinks(t *testing.T) {
	orch := orchestrator.New(orchestrator.WithLoader(&testsupport.StaticLoader{Catalog: testsupport.Catalog()}))
	ctx := testsupport.Context()
	links := model.DefaultLinks().WithQuery(url.Values{"lang": {"en"}})

	page, err := orch.Page(ctx, orchestrator.Request{Links: links})
	if err != nil {
		t.Fatalf("form page: %v", err)
	}
	if page.Form.Action != "/order?lang=en" || page.Form.RefreshAction != "/refresh?lang=en" {
		t.Fatalf("unexpected form links: %q %q", page.Form.Action, page.Form.RefreshAction)
	}

	receipt, err := orch.Quote(ctx, testsupport.ValidForm())
	if err != nil {
		t.Fatalf("quote: %v", err)
	}
	page, err = orch.Page(ctx, orchestrator.Request{Page: model.PageReceipt, Receipt: &receipt, Links: links})
	if err != nil {
		t.Fatalf("receipt page: %v", err)
	}
	if page.Receipt.NewOrderURL != "/?lang=en" {
		t.Fatalf("unexpected new order link %q", page.Receipt.NewOrderURL)
	}

	page, err = orch.Page(ctx, orchestrator.Request{Page: model.PageError, Links: model.Links{RetryURL: "/retry"}})
	if err != nil {
		t.Fatalf("error page: %v", err)
	}
	if page.Error.RetryURL != "/retry" {
		t.Fatalf("unexpected retry link %q", page.Error.RetryURL)
	}
}

func TestOrchestrator_RendererSelection(t *testing.T) {
	vanillaRenderer, err := vanilla.New()
	if err != nil {
		t.Fatalf("vanilla: %v", err)
	}
	registry, err := render.NewRegistry(vanillaRenderer, jsonview.New())
	if err != nil {
		t.Fatalf("registry: %v", err)
	}

	orch := orchestrator.New(
		orchestrator.WithLoader(&testsupport.StaticLoader{Catalog: testsupport.Catalog()}),
		orchestrator.WithRegistry(registry),
		orchestrator.WithDefaultRenderer(jsonview.Name),
		orchestrator.WithLocale("en"),
	)

	output, err := orch.Generate(testsupport.Context(), orch.NewOrder())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.HasPrefix(string(output), "{") || !strings.Contains(string(output), `"locale":"en"`) {
		t.Fatalf("expected english json output, got %s", output)
	}

	if _, err := orch.Generate(testsupport.Context(), orchestrator.Request{Renderer: "pdf"}); err == nil {
		t.Fatalf("expected unknown renderer to fail")
	}
}
