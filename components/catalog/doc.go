// Package catalog serves the pizza catalog as the static datos.json document
// the order form fetches its sizes and ingredients from.
//
// The handler responds to GET and HEAD requests only. The payload comes from
// a Provider when one is configured, else from a fixed catalog, else from the
// catalog bundled with the module.
package catalog
