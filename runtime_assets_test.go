package pizzaform

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/goliatone/go-pizzaform/pkg/renderers/vanilla"
)

func TestAssetsFSContainsStylesheet(t *testing.T) {
	data, err := fs.ReadFile(AssetsFS(), vanilla.StylesheetName)
	if err != nil {
		t.Fatalf("expected stylesheet to be readable: %v", err)
	}
	if !strings.Contains(string(data), ".pizzaform-hidden") {
		t.Fatalf("expected stylesheet to style hidden messages")
	}
}

func TestEmbeddedTemplatesListsPages(t *testing.T) {
	for _, name := range []string{"templates/form.tmpl", "templates/receipt.tmpl", "templates/error.tmpl"} {
		if _, err := fs.Stat(EmbeddedTemplates(), name); err != nil {
			t.Fatalf("expected %s: %v", name, err)
		}
	}
}
