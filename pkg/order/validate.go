package order

import (
	"strings"

	"github.com/goliatone/go-pizzaform/pkg/catalog"
)

// Validate applies the order form rules in sequence and returns the first
// failure:
//
//  1. a configured field missing, or any submitted value blank after trimming
//  2. no pizza size chosen, or a size the catalog does not offer
//  3. none of the catalog ingredients selected
func Validate(form Form, fields []Field, cat catalog.Catalog) error {
	for _, field := range fields {
		value, ok := form[field.Name]
		if !ok || strings.TrimSpace(value) == "" {
			return &ValidationError{Code: MessageIncomplete, Field: field.Name}
		}
	}
	for _, key := range form.Keys() {
		if strings.TrimSpace(form[key]) == "" {
			return &ValidationError{Code: MessageIncomplete, Field: key}
		}
	}

	size, ok := form.Size()
	if !ok {
		return &ValidationError{Code: MessageMissingSize, Field: SizeField}
	}
	if _, found := cat.Size(size); !found {
		return &ValidationError{Code: MessageMissingSize, Field: SizeField}
	}

	if !hasIngredient(form, cat) {
		return &ValidationError{Code: MessageMissingIngredient}
	}
	return nil
}

func hasIngredient(form Form, cat catalog.Catalog) bool {
	for _, value := range cat.IngredientValues() {
		if form.Has(value) {
			return true
		}
	}
	return false
}
