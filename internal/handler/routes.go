package handler

import (
	"net/http"

	"github.com/forgo/camp/internal/service"
)

// Services bundles what the router needs to build every handler
type Services struct {
	Campers    CamperService
	Activities ActivityService
	Signups    SignupService
	Store      Pinger
}

// NewServices wires the service layer over a single store
func NewServices(store service.Store) Services {
	return Services{
		Campers:    service.NewCamperService(service.CamperServiceConfig{Store: store}),
		Activities: service.NewActivityService(service.ActivityServiceConfig{Store: store}),
		Signups:    service.NewSignupService(service.SignupServiceConfig{Store: store}),
		Store:      store,
	}
}

// NewRouter registers every API route on a fresh mux
func NewRouter(s Services) *http.ServeMux {
	mux := http.NewServeMux()

	NewHealthHandler(s.Store).RegisterRoutes(mux)
	NewCamperHandler(s.Campers).RegisterRoutes(mux)
	NewActivityHandler(s.Activities).RegisterRoutes(mux)
	NewSignupHandler(s.Signups).RegisterRoutes(mux)

	return mux
}
