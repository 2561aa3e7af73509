package order

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-pizzaform/pkg/catalog"
)

// Line is a priced entry on a receipt.
type Line struct {
	Value string        `json:"value"`
	Name  string        `json:"name"`
	Price catalog.Price `json:"price"`
}

// Receipt is the outcome of a valid order.
type Receipt struct {
	ID          string            `json:"id"`
	Size        Line              `json:"size"`
	Ingredients []Line            `json:"ingredients"`
	Total       catalog.Price     `json:"total"`
	Customer    map[string]string `json:"customer,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
}

// Total sums the selected size price and the price of every catalog
// ingredient present in the form. Unknown form keys are ignored; an unknown
// size yields ErrUnknownSize.
func Total(form Form, cat catalog.Catalog) (Receipt, error) {
	sizeValue, _ := form.Size()
	size, ok := cat.Size(sizeValue)
	if !ok {
		return Receipt{}, fmt.Errorf("%w: %q", ErrUnknownSize, sizeValue)
	}

	receipt := Receipt{
		ID:        uuid.NewString(),
		Size:      lineFor(size),
		CreatedAt: time.Now().UTC(),
	}
	total := size.Price
	for _, ingredient := range cat.Ingredients {
		if !form.Has(ingredient.Value) {
			continue
		}
		receipt.Ingredients = append(receipt.Ingredients, lineFor(ingredient))
		total += ingredient.Price
	}
	receipt.Total = total
	return receipt, nil
}

// Quote validates the form and, when it passes, computes the receipt with the
// customer details attached.
func Quote(form Form, fields []Field, cat catalog.Catalog) (Receipt, error) {
	if err := Validate(form, fields, cat); err != nil {
		return Receipt{}, err
	}
	receipt, err := Total(form, cat)
	if err != nil {
		return Receipt{}, err
	}
	receipt.Customer = form.Customer(fields)
	return receipt, nil
}

func lineFor(item catalog.Item) Line {
	return Line{Value: item.Value, Name: item.Name, Price: item.Price}
}
