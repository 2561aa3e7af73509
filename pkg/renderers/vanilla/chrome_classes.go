package vanilla

// ChromeClass is a typed identifier for the CSS hooks templates emit.
type ChromeClass string

const (
	ClassPage        ChromeClass = "pizzaform-page"
	ClassForm        ChromeClass = "pizzaform-form"
	ClassFieldset    ChromeClass = "pizzaform-fieldset"
	ClassChoices     ChromeClass = "pizzaform-choices"
	ClassMessage     ChromeClass = "pizzaform-message"
	ClassActions     ChromeClass = "pizzaform-actions"
	ClassReceipt     ChromeClass = "pizzaform-receipt"
	ClassError       ChromeClass = "pizzaform-error"
	ClassInvalid     ChromeClass = "pizzaform-invalid"
	ClassHidden      ChromeClass = "pizzaform-hidden"
	ClassRefresh     ChromeClass = "pizzaform-refresh"
)

func chromeClasses() map[string]string {
	return map[string]string{
		"page":     string(ClassPage),
		"form":     string(ClassForm),
		"fieldset": string(ClassFieldset),
		"choices":  string(ClassChoices),
		"message":  string(ClassMessage),
		"actions":  string(ClassActions),
		"receipt":  string(ClassReceipt),
		"error":    string(ClassError),
		"invalid":  string(ClassInvalid),
		"hidden":   string(ClassHidden),
		"refresh":  string(ClassRefresh),
	}
}
