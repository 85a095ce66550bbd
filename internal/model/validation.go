package model

import (
	"errors"
	"fmt"
	"strings"
)

// Field constraints
const (
	MinCamperAge  = 8
	MaxCamperAge  = 18
	MinSignupHour = 0
	MaxSignupHour = 23
)

// Validation errors returned by the field validators.
var (
	ErrNameRequired    = errors.New("name is required")
	ErrAgeOutOfRange   = fmt.Errorf("age must be between %d and %d", MinCamperAge, MaxCamperAge)
	ErrTimeOutOfRange  = fmt.Errorf("time must be between %d and %d", MinSignupHour, MaxSignupHour)
	ErrFieldRequired   = errors.New("field is required")
	ErrFieldNotAllowed = errors.New("field cannot be updated")
	ErrFieldType       = errors.New("field has the wrong type")
)

// ValidateName rejects empty or whitespace-only names.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameRequired
	}
	return nil
}

// ValidateAge accepts ages in [MinCamperAge, MaxCamperAge].
func ValidateAge(age int) error {
	if age < MinCamperAge || age > MaxCamperAge {
		return ErrAgeOutOfRange
	}
	return nil
}

// ValidateTime accepts signup hours in [MinSignupHour, MaxSignupHour].
func ValidateTime(hour int) error {
	if hour < MinSignupHour || hour > MaxSignupHour {
		return ErrTimeOutOfRange
	}
	return nil
}

// FieldError represents a validation error on a specific field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldErrors is a list of field validation failures. It implements error so it
// can travel through service boundaries unchanged.
type FieldErrors []FieldError

func (fe FieldErrors) Error() string {
	if len(fe) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(fe))
	for _, e := range fe {
		parts = append(parts, e.Field+": "+e.Message)
	}
	return strings.Join(parts, "; ")
}

func (fe *FieldErrors) add(field string, err error) {
	*fe = append(*fe, FieldError{Field: field, Message: err.Error()})
}

// check records err against field when non-nil.
func (fe *FieldErrors) check(field string, err error) {
	if err != nil {
		fe.add(field, err)
	}
}

// orNil returns nil for an empty list so callers can use a plain nil check.
func (fe FieldErrors) orNil() error {
	if len(fe) == 0 {
		return nil
	}
	return fe
}
