package handler

import (
	"context"
	"net/http"

	"github.com/forgo/camp/internal/model"
	"github.com/forgo/camp/internal/service"
)

// SignupService defines the signup operations the handler needs
type SignupService interface {
	CreateSignup(ctx context.Context, req *model.CreateSignupRequest) (*model.Signup, error)
}

var _ SignupService = (*service.SignupService)(nil)

// SignupHandler handles signup endpoints
type SignupHandler struct {
	signupService SignupService
}

// NewSignupHandler creates a new signup handler
func NewSignupHandler(signupService SignupService) *SignupHandler {
	return &SignupHandler{
		signupService: signupService,
	}
}

// RegisterRoutes registers signup routes
func (h *SignupHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /signups", h.Create)
}

// Create handles POST /signups - sign a camper up for an activity
func (h *SignupHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateSignupRequest
	if err := DecodeJSON(r, &req); err != nil {
		writeValidationError(w, r, err)
		return
	}

	signup, err := h.signupService.CreateSignup(r.Context(), &req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	WriteJSON(w, http.StatusCreated, signup.View())
}
