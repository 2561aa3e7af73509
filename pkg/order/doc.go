// Package order validates a submitted pizza order form and computes its total
// against a catalog. A Form mirrors what a browser submits for the order page:
// every text input is present (possibly blank), a checked ingredient checkbox
// is present under the ingredient value, and the checked size radio is present
// under the pizzaSize key.
package order
