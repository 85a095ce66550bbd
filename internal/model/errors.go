package model

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Generic messages used in error bodies
const (
	MsgValidationErrors = "validation errors"
	MsgInternalError    = "internal server error"
)

// APIError is an error response body. Not-found and internal errors render as
// {"error": "..."}; validation errors render as {"errors": [...]}.
type APIError struct {
	Status  int      `json:"-"`
	Message string   `json:"error,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("[%d] %s", e.Status, e.Message)
	}
	return fmt.Sprintf("[%d] %v", e.Status, e.Errors)
}

// WriteJSON writes the error as a JSON response
func (e *APIError) WriteJSON(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.Status)
	_ = json.NewEncoder(w).Encode(e)
}

// Common error constructors

// NewNotFoundError builds a 404 body such as {"error": "Camper not found"}.
func NewNotFoundError(resource string) *APIError {
	return &APIError{
		Status:  http.StatusNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// NewValidationError builds the generic 400 body. Field details are not exposed.
func NewValidationError() *APIError {
	return &APIError{
		Status: http.StatusBadRequest,
		Errors: []string{MsgValidationErrors},
	}
}

func NewInternalError() *APIError {
	return &APIError{
		Status:  http.StatusInternalServerError,
		Message: MsgInternalError,
	}
}
