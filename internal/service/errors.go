package service

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

var (
	ErrValidation            = errors.New("validation failed")
	ErrGuestNotFound         = errors.New("guest not found")
	ErrInvalidQRCode         = errors.New("invalid or unknown QR code")
	ErrIdentifierExhausted   = errors.New("could not allocate unique guest identifiers")
	ErrWishNotFound          = errors.New("wish not found")
	ErrEventSettingsNotFound = errors.New("event settings not found")
	ErrInvalidCredentials    = errors.New("invalid credentials")
)

// validationError wraps ErrValidation with a client-facing reason.
type validationError struct {
	reason string
}

func (e *validationError) Error() string { return e.reason }

func (e *validationError) Unwrap() error { return ErrValidation }

func invalid(reason string) error {
	return &validationError{reason: reason}
}

// checkLength rejects values longer than max characters.
func checkLength(field, value string, max int) error {
	if utf8.RuneCountInString(value) > max {
		return invalid(fmt.Sprintf("%s must be at most %d characters", field, max))
	}
	return nil
}
