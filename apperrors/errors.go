package apperrors

import (
	"errors"
	"fmt"
)

// ValidationError covers malformed or missing input. It is always detected
// before any store call is made.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidation(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// ReferentialError covers references that are well-formed but do not resolve
// to an existing entity. Like validation errors, it maps to a client error.
type ReferentialError struct {
	Message string
}

func (e *ReferentialError) Error() string {
	return e.Message
}

func NewReferential(message string) *ReferentialError {
	return &ReferentialError{Message: message}
}

// NotFoundError means the target of a fetch, update or delete does not exist.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func NewNotFound(message string) *NotFoundError {
	return &NotFoundError{Message: message}
}

// StoreError wraps a failed record-store or asset-store call.
type StoreError struct {
	Message string
	Cause   error
}

func (e *StoreError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *StoreError) Unwrap() error {
	return e.Cause
}

func NewStore(message string, cause error) *StoreError {
	return &StoreError{Message: message, Cause: cause}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsReferential(err error) bool {
	var re *ReferentialError
	return errors.As(err, &re)
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
