package booking

import "errors"

// ValidationError reports the first missing required booking field, named in
// the canonical order date, time, name, email, phone, service.
type ValidationError struct {
	Field string
}

func (e ValidationError) Error() string {
	return "missing-field: " + e.Field
}

// StoreError carries the backing store's failure message verbatim.
type StoreError struct {
	Message string
}

func (e StoreError) Error() string {
	return e.Message
}

func ErrStore(message string) error {
	return StoreError{Message: message}
}

func AsValidation(err error) (ValidationError, bool) {
	var ve ValidationError
	ok := errors.As(err, &ve)
	return ve, ok
}

func AsStore(err error) (StoreError, bool) {
	var se StoreError
	ok := errors.As(err, &se)
	return se, ok
}
