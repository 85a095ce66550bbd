package handler

import (
	"context"
	"net/http"

	"github.com/forgo/camp/internal/model"
	"github.com/forgo/camp/internal/service"
)

// ActivityService defines the activity operations the handler needs
type ActivityService interface {
	ListActivities(ctx context.Context) ([]*model.Activity, error)
	DeleteActivity(ctx context.Context, id int64) error
}

var _ ActivityService = (*service.ActivityService)(nil)

// ActivityHandler handles activity endpoints
type ActivityHandler struct {
	activityService ActivityService
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(activityService ActivityService) *ActivityHandler {
	return &ActivityHandler{
		activityService: activityService,
	}
}

// RegisterRoutes registers activity routes
func (h *ActivityHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /activities", h.List)
	mux.HandleFunc("DELETE /activities/{id}", h.Delete)
}

// List handles GET /activities - list all activities
func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	activities, err := h.activityService.ListActivities(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	WriteJSON(w, http.StatusOK, model.ActivityViews(activities))
}

// Delete handles DELETE /activities/{id} - delete an activity and its signups
func (h *ActivityHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeServiceError(w, r, service.ErrActivityNotFound)
		return
	}

	if err := h.activityService.DeleteActivity(r.Context(), id); err != nil {
		writeServiceError(w, r, err)
		return
	}

	WriteNoContent(w)
}
