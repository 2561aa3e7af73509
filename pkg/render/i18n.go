package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-pizzaform/pkg/model"
	"github.com/goliatone/go-pizzaform/pkg/order"
)

// DefaultLocale is used when neither the request nor the configuration
// chooses one.
const DefaultLocale = "es"

// LabelRefreshHint is the tooltip of the refresh button, looked up by the
// HTML templates at render time.
const LabelRefreshHint = "form.refreshHint"

var (
	// ErrMissingTranslator is passed to MissingTranslationHandler when no
	// translator was configured.
	ErrMissingTranslator = errors.New("render: translator is not configured")
	// ErrMissingTranslation reports a key absent from the locale bundle.
	ErrMissingTranslation = errors.New("render: missing translation")
)

// Translator resolves a message key for a locale. Args are passed to
// fmt.Sprintf when the message contains verbs.
type Translator interface {
	Translate(locale, key string, args ...any) (string, error)
}

// MissingTranslationHandler returns the text used for an untranslated key.
// Args carry a map with a "default" entry holding the fallback text.
type MissingTranslationHandler func(locale, key string, args []any, err error) string

func missingTranslationDefault(_ string, key string, args []any, _ error) string {
	for _, arg := range args {
		values, ok := arg.(map[string]any)
		if !ok {
			continue
		}
		if fallback, ok := values["default"].(string); ok && strings.TrimSpace(fallback) != "" {
			return fallback
		}
	}
	return key
}

// MapTranslator is an in-memory Translator keyed by locale then message key.
// Regional locales fall back to their base language ("en-GB" to "en"), then
// to Fallback.
type MapTranslator struct {
	Bundles  map[string]map[string]string
	Fallback string
}

// Translate implements Translator.
func (m MapTranslator) Translate(locale, key string, args ...any) (string, error) {
	for _, candidate := range m.candidates(locale) {
		bundle, ok := m.Bundles[candidate]
		if !ok {
			continue
		}
		msg, ok := bundle[key]
		if !ok {
			continue
		}
		if len(args) > 0 && strings.Contains(msg, "%") {
			return fmt.Sprintf(msg, args...), nil
		}
		return msg, nil
	}
	return "", fmt.Errorf("%w: %s/%s", ErrMissingTranslation, locale, key)
}

// Locales lists the bundles the translator can serve.
func (m MapTranslator) Locales() []string {
	out := make([]string, 0, len(m.Bundles))
	for locale := range m.Bundles {
		out = append(out, locale)
	}
	return out
}

func (m MapTranslator) candidates(locale string) []string {
	locale = strings.ToLower(strings.TrimSpace(locale))
	var out []string
	if locale != "" {
		out = append(out, locale)
		if base, _, ok := strings.Cut(locale, "-"); ok {
			out = append(out, base)
		} else if base, _, ok := strings.Cut(locale, "_"); ok {
			out = append(out, base)
		}
	}
	if m.Fallback != "" {
		out = append(out, m.Fallback)
	}
	return out
}

// DefaultTranslator serves the built-in Spanish and English bundles.
func DefaultTranslator() MapTranslator {
	return MapTranslator{
		Fallback: DefaultLocale,
		Bundles: map[string]map[string]string{
			"es": spanishBundle(),
			"en": englishBundle(),
		},
	}
}

// DefaultMessage returns the Spanish text for a message key.
func DefaultMessage(key order.MessageKey) string {
	return spanishBundle()[string(key)]
}

func spanishBundle() map[string]string {
	bundle := model.DefaultLabels()
	bundle[string(order.MessageIncomplete)] = "⚠️ Por favor, rellena todos los campos"
	bundle[string(order.MessageMissingSize)] = "⚠️ Por favor, selecciona el tamaño de tu pizza"
	bundle[string(order.MessageMissingIngredient)] = "⚠️ Por favor, selecciona al menos 1 ingrediente"
	bundle[string(order.MessageFetchFailed)] = "Ups, ha ocurrido un error! :["
	bundle["field.nombre"] = "Nombre"
	bundle["field.direccion"] = "Dirección"
	bundle["field.telefono"] = "Teléfono"
	bundle["field.email"] = "Email"
	bundle[LabelRefreshHint] = "Vuelve a cargar tamaños e ingredientes"
	bundle["tui.menu"] = "¿Qué quieres hacer?"
	bundle["tui.quit"] = "Salir"
	return bundle
}

func englishBundle() map[string]string {
	return map[string]string{
		model.LabelTitle:                       "Pizzeria",
		model.LabelCustomer:                    "Your details",
		model.LabelSizes:                       "Size",
		model.LabelIngredients:                 "Toppings",
		model.LabelSubmit:                      "Place order",
		model.LabelRefresh:                     "Refresh",
		model.LabelReceiptTitle:                "Order placed",
		model.LabelReceiptSize:                 "Size",
		model.LabelReceiptTotal:                "Total",
		model.LabelReceiptNewOrder:             "New order",
		model.LabelErrorTitle:                  "Error",
		model.LabelErrorRetry:                  "Try again",
		string(order.MessageIncomplete):        "⚠️ Please fill in every field",
		string(order.MessageMissingSize):       "⚠️ Please choose your pizza size",
		string(order.MessageMissingIngredient): "⚠️ Please choose at least 1 topping",
		string(order.MessageFetchFailed):       "Oops, something went wrong! :[",
		"field.nombre":                         "Name",
		"field.direccion":                      "Address",
		"field.telefono":                       "Phone",
		"field.email":                          "Email",
		LabelRefreshHint:                       "Reload sizes and toppings",
		"tui.menu":                             "What next?",
		"tui.quit":                             "Quit",
	}
}

// Translate resolves key through opts, returning fallback when the key is
// unknown and no OnMissing handler decides otherwise.
func Translate(opts RenderOptions, key, fallback string) string {
	onMissing := opts.OnMissing
	if onMissing == nil {
		onMissing = missingTranslationDefault
	}
	return translate(opts.Locale, key, fallback, opts.Translator, onMissing)
}

// LocalizePage mutates page in place, replacing every keyed label and message
// with its translation for opts.Locale.
func LocalizePage(page *model.Page, opts RenderOptions) {
	if page == nil {
		return
	}
	if page.Locale == "" {
		page.Locale = opts.Locale
	}
	if page.Locale == "" {
		page.Locale = DefaultLocale
	}
	if page.Labels == nil {
		page.Labels = model.DefaultLabels()
	}
	for key, fallback := range page.Labels {
		page.Labels[key] = Translate(opts, key, fallback)
	}

	if form := page.Form; form != nil {
		localizeInputs(form.Inputs, opts)
		if form.MessageKey != "" {
			fallback := form.Message
			if fallback == "" {
				fallback = DefaultMessage(order.MessageKey(form.MessageKey))
			}
			form.Message = Translate(opts, form.MessageKey, fallback)
		}
	}
	if receipt := page.Receipt; receipt != nil {
		localizeInputs(receipt.Customer, opts)
	}
	if view := page.Error; view != nil && view.MessageKey != "" {
		fallback := view.Message
		if fallback == "" {
			fallback = DefaultMessage(order.MessageKey(view.MessageKey))
		}
		view.Message = Translate(opts, view.MessageKey, fallback)
	}
}

func localizeInputs(inputs []model.Input, opts RenderOptions) {
	for i := range inputs {
		if key := strings.TrimSpace(inputs[i].LabelKey); key != "" {
			inputs[i].Label = Translate(opts, key, inputs[i].Label)
		}
	}
}

func translate(locale, key, fallback string, t Translator, onMissing MissingTranslationHandler) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return fallback
	}

	if t == nil {
		return onMissing(locale, key, []any{map[string]any{"default": fallback}}, ErrMissingTranslator)
	}

	result, err := t.Translate(locale, key)
	if err == nil && strings.TrimSpace(result) != "" {
		return result
	}
	return onMissing(locale, key, []any{map[string]any{"default": fallback}}, err)
}
