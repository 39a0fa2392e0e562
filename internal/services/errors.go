package services

import (
	"errors"
	"fmt"
)

// Error taxonomy shared by all services. Handlers classify with errors.Is.
var (
	// ErrInvalidInput - malformed or missing caller-supplied fields (HTTP 400).
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound - no matching catalog entry (HTTP 404).
	ErrNotFound = errors.New("not found")
	// ErrDelivery - the webhook could not be delivered (HTTP 500).
	ErrDelivery = errors.New("webhook delivery failed")
)

// InputError carries the client-facing message of an ErrInvalidInput failure.
type InputError struct {
	Message string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidInput, e.Message)
}

func (e *InputError) Unwrap() error {
	return ErrInvalidInput
}

func invalidInput(msg string) error {
	return &InputError{Message: msg}
}

// DeliveryError is returned when a webhook request got no HTTP response.
type DeliveryError struct {
	// Err: transport error, timeout or DNS failure.
	Err error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("%s: %v", ErrDelivery, e.Err)
}

func (e *DeliveryError) Unwrap() []error {
	return []error{ErrDelivery, e.Err}
}
