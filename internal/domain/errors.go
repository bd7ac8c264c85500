package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound            = errors.New("resource not found")
	ErrDuplicateTenantSlug = errors.New("tenant slug already exists")
	ErrTenantInactive      = errors.New("tenant is inactive")
	ErrSessionNotFound     = errors.New("cupping session not found")
	ErrSampleNotFound      = errors.New("sample not found")
	ErrGradingNotFound     = errors.New("no grading exists for this sample")
	ErrGradingExists       = errors.New("a grading already exists for this sample")
	ErrScoreNotFound       = errors.New("cupping score not found")
	ErrAttachmentNotFound  = errors.New("attachment not found")
	ErrAlreadyCertified    = errors.New("grading is already certified")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
	ErrUploadFailed        = errors.New("file upload to storage failed")
	ErrInvalidInput        = errors.New("invalid input")
)

// ValidationError reports a rejected input field. It matches ErrInvalidInput
// under errors.Is so handlers can map every field failure to one HTTP status.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid input: %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// Invalid constructs a ValidationError for the given field.
func Invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
