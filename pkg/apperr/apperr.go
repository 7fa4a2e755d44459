// Package apperr defines the error taxonomy shared by services and handlers.
// Handlers map these onto HTTP status codes; anything else is treated as an
// internal error.
package apperr

import (
	"errors"
	"fmt"
)

// ValidationError reports an input that fails a declared constraint. Field
// names the offending input so the client can surface it inline.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidation(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// PersistenceError wraps a failed read or write against the storage layer.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failure in %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

func NewPersistence(op string, err error) *PersistenceError {
	return &PersistenceError{Op: op, Err: err}
}

// UploadError reports a single file that failed validation or upload. Sibling
// files in the same batch are unaffected.
type UploadError struct {
	FileName string
	Reason   string
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("upload failed for %s: %s", e.FileName, e.Reason)
}

func NewUpload(fileName, reason string) *UploadError {
	return &UploadError{FileName: fileName, Reason: reason}
}

// NotFoundError reports a record that does not exist or fails its visibility
// predicate (e.g. an unpublished article requested by slug).
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

func NewNotFound(resource string) *NotFoundError {
	return &NotFoundError{Resource: resource}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsPersistence(err error) bool {
	var pe *PersistenceError
	return errors.As(err, &pe)
}

func IsUpload(err error) bool {
	var ue *UploadError
	return errors.As(err, &ue)
}

func IsNotFound(err error) bool {
	var ne *NotFoundError
	return errors.As(err, &ne)
}
