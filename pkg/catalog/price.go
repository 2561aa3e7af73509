package catalog

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Currency is appended to every displayed amount.
const Currency = "€"

// Price is an amount in euro cents. The catalog endpoint serves prices either
// as JSON numbers or as numeric strings ("8.50"); both decode to cents so
// totals never accumulate floating point drift.
type Price int64

// ParsePrice converts a decimal string into cents, rounding half away from
// zero at the second decimal.
func ParsePrice(raw string) (Price, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, fmt.Errorf("catalog: empty price")
	}
	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, fmt.Errorf("catalog: invalid price %q: %w", raw, err)
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("catalog: invalid price %q", raw)
	}
	cents := math.Round(value * 100)
	// float64(math.MaxInt64) is 2^63, the first value that no longer fits.
	if math.Abs(cents) >= float64(math.MaxInt64) {
		return 0, fmt.Errorf("catalog: price %q out of range", raw)
	}
	return Price(cents), nil
}

// String renders the amount with exactly two decimals (8.5 => "8.50").
func (p Price) String() string {
	cents := int64(p)
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

// Display renders the amount followed by the currency symbol.
func (p Price) Display() string {
	return p.String() + " " + Currency
}

// Float returns the amount in euros.
func (p Price) Float() float64 {
	return float64(p) / 100
}

// MarshalJSON emits the amount as a two-decimal string, matching the format
// served by the catalog endpoint.
func (p Price) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// UnmarshalJSON accepts either a JSON number or a numeric string.
func (p *Price) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		*p = 0
		return nil
	}
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("catalog: decode price: %w", err)
		}
		raw = s
	}
	parsed, err := ParsePrice(raw)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// UnmarshalYAML accepts quoted and unquoted scalars alike.
func (p *Price) UnmarshalYAML(node *yaml.Node) error {
	if node == nil || node.Kind != yaml.ScalarNode {
		return fmt.Errorf("catalog: price must be a scalar")
	}
	parsed, err := ParsePrice(node.Value)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// MarshalYAML emits the two-decimal form so documents round-trip.
func (p Price) MarshalYAML() (any, error) {
	return p.String(), nil
}
