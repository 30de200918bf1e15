package services

import "errors"

// ValidationError marks a rejected field so handlers can surface it as a
// warning flash rather than a server error.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func newValidationError(msg string) error {
	return &ValidationError{Msg: msg}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Sentinel errors shared across services.
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrNotMember          = errors.New("user is not a member of this project")
	ErrUserNotFound       = errors.New("no user with that email")
	ErrAlreadyMember      = errors.New("user is already a member")
	ErrEmptyMessage       = errors.New("message content is empty")
)
