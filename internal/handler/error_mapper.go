package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/forgo/camp/internal/database"
	"github.com/forgo/camp/internal/middleware"
	"github.com/forgo/camp/internal/model"
	"github.com/forgo/camp/internal/service"
)

// MapServiceError converts a service error to an API error body.
// Validation and integrity failures share the generic 400 body; their
// details are only logged.
func MapServiceError(err error) *model.APIError {
	if err == nil {
		return nil
	}

	switch {
	// ===== Not Found Errors → 404 =====
	case errors.Is(err, service.ErrCamperNotFound):
		return model.NewNotFoundError("Camper")
	case errors.Is(err, service.ErrActivityNotFound):
		return model.NewNotFoundError("Activity")
	case errors.Is(err, service.ErrSignupNotFound):
		return model.NewNotFoundError("Signup")

	// ===== Validation & Integrity Errors → 400 =====
	case errors.Is(err, service.ErrValidation),
		errors.Is(err, service.ErrSignupReference),
		errors.Is(err, database.ErrForeignKey),
		errors.Is(err, database.ErrConstraint),
		errors.Is(err, database.ErrDuplicate):
		return model.NewValidationError()
	}

	return model.NewInternalError()
}

// writeServiceError maps err and writes it. Client errors are logged at debug
// level with their field details, anything else at error level.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	apiErr := MapServiceError(err)
	requestID := middleware.GetRequestID(r.Context())

	if apiErr.Status >= http.StatusInternalServerError {
		slog.Error("request failed",
			slog.String("request_id", requestID),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
	} else {
		slog.Debug("request rejected",
			slog.String("request_id", requestID),
			slog.Int("status", apiErr.Status),
			slog.String("error", err.Error()),
		)
	}

	WriteError(w, apiErr)
}

// writeValidationError writes the generic 400 body for a request that never
// reached the service, such as a malformed JSON body.
func writeValidationError(w http.ResponseWriter, r *http.Request, err error) {
	slog.Debug("invalid request body",
		slog.String("request_id", middleware.GetRequestID(r.Context())),
		slog.String("error", err.Error()),
	)
	WriteError(w, model.NewValidationError())
}
