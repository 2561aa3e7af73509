// Package model defines the page view model consumed by renderers. A Page is
// one of three screens of the order flow: the order form, the receipt shown
// after a valid submission, and the error screen shown when the catalog could
// not be fetched. Builders here only arrange data; user-facing text is carried
// as message keys with fallbacks and localized by the render package.
package model
