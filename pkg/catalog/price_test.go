package catalog

import (
	"encoding/json"
	"testing"
)

func TestParsePrice_RoundsToCents(t *testing.T) {
	cases := map[string]Price{
		"8.50":   850,
		" 11 ":   1100,
		"1.2":    120,
		"-0.5":   -50,
		"14.499": 1450,
	}
	for raw, want := range cases {
		got, err := ParsePrice(raw)
		if err != nil {
			t.Fatalf("parse %q: %v", raw, err)
		}
		if got != want {
			t.Fatalf("parse %q: expected %d, got %d", raw, want, got)
		}
	}
}

func TestParsePrice_RejectsGarbage(t *testing.T) {
	for _, raw := range []string{"", "  ", "abc", "NaN", "Inf", "8,50", "1e19", "-1e19", "92233720368547759"} {
		if _, err := ParsePrice(raw); err == nil {
			t.Fatalf("expected error for %q", raw)
		}
	}
}

func TestPrice_StringAndDisplay(t *testing.T) {
	if got := Price(850).String(); got != "8.50" {
		t.Fatalf("unexpected string: %q", got)
	}
	if got := Price(5).String(); got != "0.05" {
		t.Fatalf("unexpected string: %q", got)
	}
	if got := Price(-120).String(); got != "-1.20" {
		t.Fatalf("unexpected string: %q", got)
	}
	if got := Price(1100).Display(); got != "11.00 €" {
		t.Fatalf("unexpected display: %q", got)
	}
}

func TestPrice_UnmarshalJSONAcceptsNumbersAndStrings(t *testing.T) {
	var payload struct {
		A Price `json:"a"`
		B Price `json:"b"`
		C Price `json:"c"`
	}
	if err := json.Unmarshal([]byte(`{"a": 8.5, "b": "1.20", "c": null}`), &payload); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if payload.A != 850 || payload.B != 120 || payload.C != 0 {
		t.Fatalf("unexpected prices: %#v", payload)
	}

	out, err := json.Marshal(payload.A)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `"8.50"` {
		t.Fatalf("unexpected marshal output: %s", out)
	}
}

func TestParsePrice_AcceptsLargestAmount(t *testing.T) {
	got, err := ParsePrice("90000000000000000")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got != Price(9000000000000000000) {
		t.Fatalf("unexpected cents %d", got)
	}
}
