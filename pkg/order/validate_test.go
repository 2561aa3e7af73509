package order

import (
	"errors"
	"net/url"
	"testing"

	"github.com/goliatone/go-pizzaform/pkg/catalog"
)

func testCatalog() catalog.Catalog {
	return catalog.Catalog{
		Sizes: []catalog.Item{
			{Value: "pequena", Name: "Pequeña", Price: 600},
			{Value: "mediana", Name: "Mediana", Price: 850},
		},
		Ingredients: []catalog.Item{
			{Value: "queso", Name: "Queso", Price: 100},
			{Value: "jamon", Name: "Jamón", Price: 150},
			{Value: "pina", Name: "Piña", Price: 120},
		},
	}
}

func validForm() Form {
	return Form{
		"nombre":    "Ada",
		"direccion": "Calle Mayor 1",
		"telefono":  "600000000",
		"email":     "ada@example.com",
		"pizzaSize": "mediana",
		"queso":     CheckedValue,
	}
}

func TestValidate_AcceptsCompleteForm(t *testing.T) {
	if err := Validate(validForm(), DefaultFields(), testCatalog()); err != nil {
		t.Fatalf("expected valid form, got %v", err)
	}
}

func TestValidate_RuleOrder(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(Form)
		code   MessageKey
		field  string
	}{
		{
			name:   "whitespace field",
			mutate: func(f Form) { f["direccion"] = "   " },
			code:   MessageIncomplete,
			field:  "direccion",
		},
		{
			name:   "missing configured field",
			mutate: func(f Form) { delete(f, "telefono") },
			code:   MessageIncomplete,
			field:  "telefono",
		},
		{
			name:   "blank unknown input",
			mutate: func(f Form) { f["notas"] = "" },
			code:   MessageIncomplete,
			field:  "notas",
		},
		{
			name: "blank beats missing size and ingredient",
			mutate: func(f Form) {
				f["nombre"] = ""
				delete(f, "pizzaSize")
				delete(f, "queso")
			},
			code:  MessageIncomplete,
			field: "nombre",
		},
		{
			name:   "missing size",
			mutate: func(f Form) { delete(f, "pizzaSize") },
			code:   MessageMissingSize,
			field:  SizeField,
		},
		{
			name:   "unknown size",
			mutate: func(f Form) { f["pizzaSize"] = "gigante" },
			code:   MessageMissingSize,
			field:  SizeField,
		},
		{
			name: "size beats ingredient",
			mutate: func(f Form) {
				delete(f, "pizzaSize")
				delete(f, "queso")
			},
			code:  MessageMissingSize,
			field: SizeField,
		},
		{
			name:   "no ingredient",
			mutate: func(f Form) { delete(f, "queso") },
			code:   MessageMissingIngredient,
		},
		{
			name: "only non catalog checkbox",
			mutate: func(f Form) {
				delete(f, "queso")
				f["anchoas"] = CheckedValue
			},
			code: MessageMissingIngredient,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			form := validForm()
			tc.mutate(form)

			err := Validate(form, DefaultFields(), testCatalog())
			verr, ok := AsValidationError(err)
			if !ok {
				t.Fatalf("expected validation error, got %v", err)
			}
			if verr.Code != tc.code {
				t.Fatalf("expected code %q, got %q", tc.code, verr.Code)
			}
			if verr.Field != tc.field {
				t.Fatalf("expected field %q, got %q", tc.field, verr.Field)
			}
		})
	}
}

func TestValidate_NoConfiguredFields(t *testing.T) {
	form := Form{"pizzaSize": "pequena", "pina": CheckedValue}
	if err := Validate(form, nil, testCatalog()); err != nil {
		t.Fatalf("expected valid form, got %v", err)
	}
}

func TestFormFromValues_FirstValueWins(t *testing.T) {
	values := url.Values{
		"nombre":    {"Ada", "Grace"},
		"pizzaSize": {"mediana"},
		"empty":     {},
	}
	form := FormFromValues(values)
	if form["nombre"] != "Ada" {
		t.Fatalf("expected first value, got %q", form["nombre"])
	}
	if form.Has("empty") {
		t.Fatalf("expected keys without values to be dropped")
	}
	if size, ok := form.Size(); !ok || size != "mediana" {
		t.Fatalf("unexpected size %q", size)
	}
}

func TestValidationError_Message(t *testing.T) {
	err := error(&ValidationError{Code: MessageMissingSize, Field: SizeField})
	if got := err.Error(); got != "order: validation failed: order.missingSize (pizzaSize)" {
		t.Fatalf("unexpected message: %q", got)
	}
	if _, ok := AsValidationError(errors.New("other")); ok {
		t.Fatalf("expected plain error not to match")
	}
}
