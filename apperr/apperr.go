package apperr

import "errors"

// ErrNotFound reports that the targeted row does not exist. It is
// distinct from a validation failure: the request was well formed but
// named an unknown identity.
var ErrNotFound = errors.New("record not found")

// ValidationError reports malformed or missing user input, including
// an order referencing a nonexistent customer or menu item. Reason is
// human-readable and safe to surface directly to the user.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// Invalid builds a ValidationError with the given reason.
func Invalid(reason string) *ValidationError {
	return &ValidationError{Reason: reason}
}

// IsValidation reports whether err is a validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
