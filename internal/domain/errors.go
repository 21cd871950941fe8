package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers. Transport maps each of them to a
// single HTTP status in one place.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
	ErrUpstream      = errors.New("upstream unavailable")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// NotFoundError carries a human readable message ("Case not found: INV-1")
// and unwraps to ErrNotFound.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// NewNotFound formats a NotFoundError.
func NewNotFound(format string, args ...any) *NotFoundError {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}

// UpstreamError describes a failed call to an external collaborator.
type UpstreamError struct {
	Service string
	Err     error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: %v", e.Service, e.Err)
}

func (e *UpstreamError) Unwrap() []error { return []error{ErrUpstream, e.Err} }

// MessageError attaches a caller-facing message to a sentinel.
type MessageError struct {
	Kind    error
	Message string
}

func (e *MessageError) Error() string { return e.Message }

func (e *MessageError) Unwrap() error { return e.Kind }

// NewUnauthorized returns an ErrUnauthorized carrying msg.
func NewUnauthorized(msg string) error {
	return &MessageError{Kind: ErrUnauthorized, Message: msg}
}

// NewForbidden returns an ErrForbidden carrying msg.
func NewForbidden(msg string) error {
	return &MessageError{Kind: ErrForbidden, Message: msg}
}

// NewAlreadyExists returns an ErrAlreadyExists carrying msg.
func NewAlreadyExists(msg string) error {
	return &MessageError{Kind: ErrAlreadyExists, Message: msg}
}
