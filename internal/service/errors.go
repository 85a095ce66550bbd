package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/forgo/camp/internal/database"
	"github.com/forgo/camp/internal/model"
)

// Centralized service layer errors.
// All errors returned by service methods are defined here for consistency
// and to make error handling in handlers predictable.

// ===== Not Found Errors =====
var (
	ErrCamperNotFound   = errors.New("camper not found")
	ErrActivityNotFound = errors.New("activity not found")
	ErrSignupNotFound   = errors.New("signup not found")
)

// ===== Validation Errors =====
var (
	ErrValidation = errors.New("validation failed")
)

// ===== Integrity Errors =====
var (
	// ErrSignupReference is returned when a signup names a camper or activity
	// that does not exist.
	ErrSignupReference = fmt.Errorf("signup references a missing camper or activity: %w", database.ErrForeignKey)
)

// ValidationError carries the field-level failures of a rejected write.
// It matches ErrValidation with errors.Is.
type ValidationError struct {
	Fields []model.FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrValidation.Error()
	}
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + ": " + f.Message
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError wraps model validation failures. A non-field error
// becomes a single entry without a field name.
func NewValidationError(err error) *ValidationError {
	var fields model.FieldErrors
	if errors.As(err, &fields) {
		return &ValidationError{Fields: fields}
	}
	return &ValidationError{Fields: []model.FieldError{{Message: err.Error()}}}
}

// translateStoreError maps integrity failures that reached the database onto
// service errors. Anything else passes through unchanged.
func translateStoreError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, database.ErrForeignKey):
		return fmt.Errorf("%w (%v)", ErrSignupReference, err)
	case errors.Is(err, database.ErrConstraint):
		return &ValidationError{Fields: []model.FieldError{{Message: err.Error()}}}
	}
	return err
}
