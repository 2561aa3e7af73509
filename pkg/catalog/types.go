package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// Item is a single size or ingredient entry. Value doubles as the form input
// identifier: sizes are submitted as the pizzaSize radio value and ingredients
// as checkbox names.
type Item struct {
	Value string `json:"value" yaml:"value"`
	Name  string `json:"nombre" yaml:"nombre"`
	Price Price  `json:"precio" yaml:"precio"`
}

// Label renders the text shown next to the form control, e.g.
// "Mediana - 8.50 €".
func (i Item) Label() string {
	return fmt.Sprintf("%s - %s", i.Name, i.Price.Display())
}

// Catalog is the payload returned by the catalog endpoint.
type Catalog struct {
	Sizes       []Item `json:"tamanosPizza" yaml:"tamanosPizza"`
	Ingredients []Item `json:"ingredientes" yaml:"ingredientes"`
}

// Size looks up a pizza size by value.
func (c Catalog) Size(value string) (Item, bool) {
	return find(c.Sizes, value)
}

// Ingredient looks up an ingredient by value.
func (c Catalog) Ingredient(value string) (Item, bool) {
	return find(c.Ingredients, value)
}

// IngredientValues lists ingredient values in catalog order.
func (c Catalog) IngredientValues() []string {
	out := make([]string, 0, len(c.Ingredients))
	for _, item := range c.Ingredients {
		out = append(out, item.Value)
	}
	return out
}

// Empty reports whether the catalog has neither sizes nor ingredients.
func (c Catalog) Empty() bool {
	return len(c.Sizes) == 0 && len(c.Ingredients) == 0
}

// Clone returns a deep copy so cached catalogs can be handed out safely.
func (c Catalog) Clone() Catalog {
	return Catalog{
		Sizes:       append([]Item(nil), c.Sizes...),
		Ingredients: append([]Item(nil), c.Ingredients...),
	}
}

// Validate checks that every item carries a value, values are unique within
// their list, and no price is negative.
func (c Catalog) Validate() error {
	var errs []error
	errs = append(errs, validateItems("tamanosPizza", c.Sizes)...)
	errs = append(errs, validateItems("ingredientes", c.Ingredients)...)
	return errors.Join(errs...)
}

func validateItems(list string, items []Item) []error {
	var errs []error
	seen := make(map[string]struct{}, len(items))
	for idx, item := range items {
		value := strings.TrimSpace(item.Value)
		if value == "" {
			errs = append(errs, fmt.Errorf("catalog: %s[%d]: value is required", list, idx))
			continue
		}
		if _, ok := seen[value]; ok {
			errs = append(errs, fmt.Errorf("catalog: %s[%d]: duplicate value %q", list, idx, value))
		}
		seen[value] = struct{}{}
		if item.Price < 0 {
			errs = append(errs, fmt.Errorf("catalog: %s[%d]: negative price %s", list, idx, item.Price))
		}
	}
	return errs
}

func find(items []Item, value string) (Item, bool) {
	for _, item := range items {
		if item.Value == value {
			return item, true
		}
	}
	return Item{}, false
}
