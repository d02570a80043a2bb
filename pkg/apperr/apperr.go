package apperr

import (
	"errors"
	"fmt"
)

// Sentinel errors for the cart and order flows. Controllers map these to
// HTTP statuses; services return them untouched.
var (
	ErrCrossFoodtruckCart = errors.New("cart already holds items from another foodtruck")
	ErrItemNotFound       = errors.New("food item not found")
	ErrItemNotInCart      = errors.New("item not in cart")
	ErrUnauthorizedWorker = errors.New("worker is not staff of this foodtruck")
	ErrNoResults          = errors.New("no results")
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
)

// InvalidInput is a client-correctable validation failure. Field is a stable
// code the frontend maps straight to a form element, replacing the old
// message-prefix matching.
type InvalidInput struct {
	Field   string
	Message string
}

func (e *InvalidInput) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func Invalid(field, message string) *InvalidInput {
	return &InvalidInput{Field: field, Message: message}
}

// AsInvalidInput unwraps err into an *InvalidInput if it is one.
func AsInvalidInput(err error) (*InvalidInput, bool) {
	var ie *InvalidInput
	if errors.As(err, &ie) {
		return ie, true
	}
	return nil, false
}

// InvalidOrder rejects order creation before anything is persisted.
type InvalidOrder struct {
	Reason string
}

func (e *InvalidOrder) Error() string {
	return "invalid order: " + e.Reason
}

func BadOrder(reason string) *InvalidOrder {
	return &InvalidOrder{Reason: reason}
}

// MailSend wraps a mailer failure so callers can decide to swallow it.
type MailSend struct {
	Err error
}

func (e *MailSend) Error() string {
	return "mail send failed: " + e.Err.Error()
}

func (e *MailSend) Unwrap() error { return e.Err }
