package model

// PageKind selects which screen a Page describes.
type PageKind string

const (
	PageForm    PageKind = "form"
	PageReceipt PageKind = "receipt"
	PageError   PageKind = "error"
)

// Label keys shared by every renderer. Values in Page.Labels start as
// fallbacks and are replaced by translations during localization.
const (
	LabelTitle           = "page.title"
	LabelCustomer        = "form.customer"
	LabelSizes           = "form.sizes"
	LabelIngredients     = "form.ingredients"
	LabelSubmit          = "form.submit"
	LabelRefresh         = "form.refresh"
	LabelReceiptTitle    = "receipt.title"
	LabelReceiptSize     = "receipt.size"
	LabelReceiptTotal    = "receipt.total"
	LabelReceiptNewOrder = "receipt.newOrder"
	LabelErrorTitle      = "error.title"
	LabelErrorRetry      = "error.retry"
)

// Input is a customer text field.
type Input struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Label    string `json:"label"`
	LabelKey string `json:"labelKey,omitempty"`
	Value    string `json:"value,omitempty"`
	Invalid  bool   `json:"invalid,omitempty"`
}

// Choice is a size radio or an ingredient checkbox. Name is the submitted
// input name: "pizzaSize" for sizes, the ingredient value for ingredients.
type Choice struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Value   string `json:"value"`
	Label   string `json:"label"`
	Price   string `json:"price"`
	Checked bool   `json:"checked,omitempty"`
}

// FormView is the order form screen.
type FormView struct {
	Action        string   `json:"action"`
	RefreshAction string   `json:"refreshAction"`
	Inputs        []Input  `json:"inputs"`
	Sizes         []Choice `json:"sizes"`
	Ingredients   []Choice `json:"ingredients"`
	Message       string   `json:"message,omitempty"`
	MessageKey    string   `json:"messageKey,omitempty"`
}

// HasMessage reports whether the message container should be visible.
func (f FormView) HasMessage() bool {
	return f.MessageKey != "" || f.Message != ""
}

// ReceiptLine is a priced row on the receipt screen.
type ReceiptLine struct {
	Name  string `json:"name"`
	Price string `json:"price"`
	// Amount is Price without the currency, e.g. "8.50".
	Amount string `json:"amount"`
}

// ReceiptView is the confirmation screen.
type ReceiptView struct {
	ID          string        `json:"id"`
	Size        ReceiptLine   `json:"size"`
	Ingredients []ReceiptLine `json:"ingredients"`
	Total       string        `json:"total"`
	Amount      string        `json:"amount"`
	Customer    []Input       `json:"customer,omitempty"`
	NewOrderURL string        `json:"newOrderUrl"`
}

// ErrorView is shown when the catalog fetch fails.
type ErrorView struct {
	Message    string `json:"message"`
	MessageKey string `json:"messageKey,omitempty"`
	Detail     string `json:"detail,omitempty"`
	RetryURL   string `json:"retryUrl"`
}

// Page is the top-level value renderers consume.
type Page struct {
	Kind    PageKind          `json:"kind"`
	Locale  string            `json:"locale,omitempty"`
	Labels  map[string]string `json:"labels"`
	Form    *FormView         `json:"form,omitempty"`
	Receipt *ReceiptView      `json:"receipt,omitempty"`
	Error   *ErrorView        `json:"error,omitempty"`
}

// Clone returns a deep copy so renderers can localize without touching the
// caller's page.
func (p Page) Clone() Page {
	out := p
	if p.Labels != nil {
		out.Labels = make(map[string]string, len(p.Labels))
		for key, value := range p.Labels {
			out.Labels[key] = value
		}
	}
	if p.Form != nil {
		form := *p.Form
		form.Inputs = append([]Input(nil), p.Form.Inputs...)
		form.Sizes = append([]Choice(nil), p.Form.Sizes...)
		form.Ingredients = append([]Choice(nil), p.Form.Ingredients...)
		out.Form = &form
	}
	if p.Receipt != nil {
		receipt := *p.Receipt
		receipt.Ingredients = append([]ReceiptLine(nil), p.Receipt.Ingredients...)
		receipt.Customer = append([]Input(nil), p.Receipt.Customer...)
		out.Receipt = &receipt
	}
	if p.Error != nil {
		view := *p.Error
		out.Error = &view
	}
	return out
}
