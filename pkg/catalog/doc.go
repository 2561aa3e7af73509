// Package catalog describes the pizza size and ingredient price list served by
// the static catalog endpoint (datos.json). It defines the typed catalog, the
// price representation used for totals, the Source abstraction shared by the
// loaders, and a JSON-or-YAML parser. An embedded default catalog is bundled
// under data/datos.json so the service runs without any external endpoint.
package catalog
