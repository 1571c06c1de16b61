package utils

import "fmt"

// ValidationError reports missing or malformed request arguments. Fields maps
// the offending field name to a human-readable message.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	return "validation failed: " + FormatValidationErrors(e.Fields)
}

// UnknownCapabilityError reports an unrecognized tool or prompt name.
type UnknownCapabilityError struct {
	Kind string // "tool" or "prompt"
	Name string
}

func (e *UnknownCapabilityError) Error() string {
	return fmt.Sprintf("unknown %s: %s", e.Kind, e.Name)
}

// NotFoundError reports a booking id with no ledger entry behind it.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("booking not found: %s", e.ID)
}

// UnsupportedSchemeError reports a resource URI outside the booking:// scheme.
type UnsupportedSchemeError struct {
	Scheme string
}

func (e *UnsupportedSchemeError) Error() string {
	return fmt.Sprintf("unsupported URI scheme: %s", e.Scheme)
}
