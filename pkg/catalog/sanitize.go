package catalog

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	namePolicyOnce sync.Once
	namePolicy     *bluemonday.Policy
)

// sanitizeName strips any markup from a display name served by a remote
// catalog. Templates escape on output, so the escaped entities bluemonday
// produces are decoded back to plain text here.
func sanitizeName(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	cleaned := nameSanitizer().Sanitize(trimmed)
	return strings.TrimSpace(html.UnescapeString(cleaned))
}

func nameSanitizer() *bluemonday.Policy {
	namePolicyOnce.Do(func() {
		namePolicy = bluemonday.StrictPolicy()
	})
	return namePolicy
}
