package catalog

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parse decodes a catalog document. JSON is tried first, then YAML. Item
// values are trimmed, names stripped of markup (falling back to the value when
// nothing is left), and the result validated.
func Parse(data []byte, source string) (Catalog, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Catalog{}, fmt.Errorf("catalog: document %s is empty", source)
	}

	var cat Catalog
	jsonErr := json.Unmarshal(data, &cat)
	if jsonErr != nil {
		cat = Catalog{}
		if err := yaml.Unmarshal(data, &cat); err != nil {
			return Catalog{}, fmt.Errorf("catalog: parse %s: invalid JSON or YAML: %w", source, jsonErr)
		}
	}

	normalizeItems(cat.Sizes)
	normalizeItems(cat.Ingredients)

	if err := cat.Validate(); err != nil {
		return Catalog{}, fmt.Errorf("catalog: %s: %w", source, err)
	}
	return cat, nil
}

func normalizeItems(items []Item) {
	for i := range items {
		items[i].Value = strings.TrimSpace(items[i].Value)
		name := sanitizeName(items[i].Name)
		if name == "" {
			name = items[i].Value
		}
		items[i].Name = name
	}
}
