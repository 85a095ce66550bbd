package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/forgo/camp/internal/model"
	"github.com/forgo/camp/internal/service"
)

// CamperService defines the camper operations the handler needs
type CamperService interface {
	ListCampers(ctx context.Context) ([]*model.Camper, error)
	CreateCamper(ctx context.Context, req *model.CreateCamperRequest) (*model.Camper, error)
	GetCamper(ctx context.Context, id int64) (*model.Camper, []*model.Signup, error)
	UpdateCamper(ctx context.Context, id int64, patch model.CamperPatch) (*model.Camper, error)
}

var _ CamperService = (*service.CamperService)(nil)

// CamperHandler handles camper endpoints
type CamperHandler struct {
	camperService CamperService
}

// NewCamperHandler creates a new camper handler
func NewCamperHandler(camperService CamperService) *CamperHandler {
	return &CamperHandler{
		camperService: camperService,
	}
}

// RegisterRoutes registers camper routes
func (h *CamperHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /campers", h.List)
	mux.HandleFunc("POST /campers", h.Create)
	mux.HandleFunc("GET /campers/{id}", h.Get)
	mux.HandleFunc("PATCH /campers/{id}", h.Update)
}

// List handles GET /campers - list all campers
func (h *CamperHandler) List(w http.ResponseWriter, r *http.Request) {
	campers, err := h.camperService.ListCampers(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	WriteJSON(w, http.StatusOK, model.CamperViews(campers))
}

// Create handles POST /campers - register a camper
func (h *CamperHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateCamperRequest
	if err := DecodeJSON(r, &req); err != nil {
		writeValidationError(w, r, err)
		return
	}

	camper, err := h.camperService.CreateCamper(r.Context(), &req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	WriteJSON(w, http.StatusCreated, camper.View())
}

// Get handles GET /campers/{id} - get a camper with its signups
func (h *CamperHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeServiceError(w, r, service.ErrCamperNotFound)
		return
	}

	camper, signups, err := h.camperService.GetCamper(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	WriteJSON(w, http.StatusOK, camper.DetailView(signups))
}

// Update handles PATCH /campers/{id} - partially update a camper
func (h *CamperHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeServiceError(w, r, service.ErrCamperNotFound)
		return
	}

	var patch model.CamperPatch
	if err := DecodeJSON(r, &patch); err != nil {
		writeValidationError(w, r, err)
		return
	}
	if patch == nil {
		writeValidationError(w, r, errors.New("patch body must be a JSON object"))
		return
	}

	camper, err := h.camperService.UpdateCamper(r.Context(), id, patch)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	WriteJSON(w, http.StatusAccepted, camper.View())
}
