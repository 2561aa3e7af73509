package order

import (
	"net/url"
	"sort"
	"strings"
)

// SizeField is the radio input name carrying the selected pizza size.
const SizeField = "pizzaSize"

// CheckedValue is what browsers submit for a checked checkbox without an
// explicit value attribute.
const CheckedValue = "on"

// Form holds submitted values keyed by input name. Absent keys mean the
// control was not submitted (an unchecked checkbox or radio group).
type Form map[string]string

// FormFromValues flattens url.Values, keeping the first value for each key.
func FormFromValues(values url.Values) Form {
	form := make(Form, len(values))
	for key, vals := range values {
		if len(vals) == 0 {
			continue
		}
		form[key] = vals[0]
	}
	return form
}

// Has reports whether key was submitted.
func (f Form) Has(key string) bool {
	_, ok := f[key]
	return ok
}

// Size returns the submitted pizza size, if any.
func (f Form) Size() (string, bool) {
	value, ok := f[SizeField]
	return value, ok
}

// Clone returns an independent copy.
func (f Form) Clone() Form {
	out := make(Form, len(f))
	for key, value := range f {
		out[key] = value
	}
	return out
}

// Keys lists submitted keys in sorted order.
func (f Form) Keys() []string {
	keys := make([]string, 0, len(f))
	for key := range f {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Customer extracts the trimmed values of the configured customer fields.
func (f Form) Customer(fields []Field) map[string]string {
	if len(fields) == 0 {
		return nil
	}
	out := make(map[string]string, len(fields))
	for _, field := range fields {
		out[field.Name] = strings.TrimSpace(f[field.Name])
	}
	return out
}

// Only keeps the submitted values of fields, dropping size and ingredient
// selections.
func (f Form) Only(fields []Field) Form {
	out := make(Form, len(fields))
	for _, field := range fields {
		if value, ok := f[field.Name]; ok {
			out[field.Name] = value
		}
	}
	return out
}
