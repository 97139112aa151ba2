package domain

import (
	"errors"
	"strings"
)

var (
	ErrNoProfile           = errors.New("domain: no professional profile")
	ErrServiceNotFound     = errors.New("domain: service not found")
	ErrRequestNotFound     = errors.New("domain: request not found")
	ErrAppointmentNotFound = errors.New("domain: appointment not found")
	ErrAccountNotFound     = errors.New("domain: payment account not found")
	ErrOfferNotFound       = errors.New("domain: offer not found")
	ErrInvalidTransition   = errors.New("domain: invalid status transition")
)

// ValidationError reports the required fields a submission left empty.
type ValidationError struct {
	Form   string
	Fields []string
}

func (e *ValidationError) Error() string {
	return e.Form + ": missing required fields: " + strings.Join(e.Fields, ", ")
}

// IsValidation reports whether err carries a *ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
