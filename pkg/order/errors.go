package order

import (
	"errors"
	"fmt"
)

// MessageKey identifies a user-facing message; translations live with the
// renderers.
type MessageKey string

const (
	MessageIncomplete        MessageKey = "order.incomplete"
	MessageMissingSize       MessageKey = "order.missingSize"
	MessageMissingIngredient MessageKey = "order.missingIngredient"
	MessageFetchFailed       MessageKey = "catalog.fetchFailed"
)

// ErrUnknownSize is returned when the submitted size is not in the catalog.
var ErrUnknownSize = errors.New("order: unknown pizza size")

// ValidationError reports the first rule a form failed. Field names the
// offending input when one applies.
type ValidationError struct {
	Code  MessageKey
	Field string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("order: validation failed: %s (%s)", e.Code, e.Field)
	}
	return fmt.Sprintf("order: validation failed: %s", e.Code)
}

// AsValidationError unwraps err into a *ValidationError when possible.
func AsValidationError(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) && verr != nil {
		return verr, true
	}
	return nil, false
}
