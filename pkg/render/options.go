package render

// RenderOptions describe per-request data renderers use to localize output
// without mutating the page builders.
type RenderOptions struct {
	// Locale selects the translation bundle, e.g. "es" or "en-GB". Empty means
	// the translator default.
	Locale string
	// Translator resolves label and message keys. Nil leaves the fallback text
	// already carried by the page.
	Translator Translator
	// OnMissing decides the text used when a key cannot be translated.
	OnMissing MissingTranslationHandler
}
