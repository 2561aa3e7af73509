package order

// FieldType selects the HTML input type used for a customer field.
type FieldType string

const (
	FieldTypeText  FieldType = "text"
	FieldTypeEmail FieldType = "email"
	FieldTypeTel   FieldType = "tel"
)

// Field is a required customer text input rendered above the size and
// ingredient choices.
type Field struct {
	Name  string    `json:"name" yaml:"name"`
	Type  FieldType `json:"type,omitempty" yaml:"type,omitempty"`
	Label string    `json:"label,omitempty" yaml:"label,omitempty"`
}

// InputType returns the HTML input type, defaulting to text.
func (f Field) InputType() string {
	if f.Type == "" {
		return string(FieldTypeText)
	}
	return string(f.Type)
}

// DefaultFields lists the customer inputs of the standard order form.
func DefaultFields() []Field {
	return []Field{
		{Name: "nombre", Type: FieldTypeText, Label: "Nombre"},
		{Name: "direccion", Type: FieldTypeText, Label: "Dirección"},
		{Name: "telefono", Type: FieldTypeTel, Label: "Teléfono"},
		{Name: "email", Type: FieldTypeEmail, Label: "Email"},
	}
}
