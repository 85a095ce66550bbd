package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/forgo/camp/internal/database"
	"github.com/forgo/camp/internal/model"
	"github.com/forgo/camp/internal/service"
)

func newTestRouter(campers *mockCamperService, activities *mockActivityService, signups *mockSignupService) *http.ServeMux {
	if campers == nil {
		campers = &mockCamperService{}
	}
	if activities == nil {
		activities = &mockActivityService{}
	}
	if signups == nil {
		signups = &mockSignupService{}
	}
	return NewRouter(Services{
		Campers:    campers,
		Activities: activities,
		Signups:    signups,
		Store:      &mockPinger{},
	})
}

func serve(mux http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func assertBody(t *testing.T, rec *httptest.ResponseRecorder, want string) {
	t.Helper()
	if got := strings.TrimSpace(rec.Body.String()); got != want {
		t.Errorf("body = %s, want %s", got, want)
	}
}

// ============================================================================
// MapServiceError Tests
// ============================================================================

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{"camper not found", service.ErrCamperNotFound, 404, `{"error":"Camper not found"}`},
		{"activity not found", fmt.Errorf("delete: %w", service.ErrActivityNotFound), 404, `{"error":"Activity not found"}`},
		{"validation", service.NewValidationError(model.ErrAgeOutOfRange), 400, `{"errors":["validation errors"]}`},
		{"signup reference", service.ErrSignupReference, 400, `{"errors":["validation errors"]}`},
		{"raw constraint", fmt.Errorf("insert: %w", database.ErrConstraint), 400, `{"errors":["validation errors"]}`},
		{"unexpected", errors.New("disk on fire"), 500, `{"error":"internal server error"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr := MapServiceError(tt.err)
			if apiErr.Status != tt.wantStatus {
				t.Errorf("status = %d, want %d", apiErr.Status, tt.wantStatus)
			}
			body, _ := json.Marshal(apiErr)
			if string(body) != tt.wantBody {
				t.Errorf("body = %s, want %s", body, tt.wantBody)
			}
		})
	}

	if MapServiceError(nil) != nil {
		t.Error("expected nil for nil error")
	}
}

// ============================================================================
// Camper Handler Tests
// ============================================================================

func TestCamperHandler_Create(t *testing.T) {
	campers := &mockCamperService{
		createCamperFunc: func(ctx context.Context, req *model.CreateCamperRequest) (*model.Camper, error) {
			c, err := req.Build()
			if err != nil {
				return nil, service.NewValidationError(err)
			}
			c.ID = 1
			return c, nil
		},
	}
	mux := newTestRouter(campers, nil, nil)

	t.Run("created", func(t *testing.T) {
		rec := serve(mux, http.MethodPost, "/campers", `{"name":"Ana","age":12}`)
		if rec.Code != http.StatusCreated {
			t.Fatalf("status = %d, want 201", rec.Code)
		}
		assertBody(t, rec, `{"id":1,"name":"Ana","age":12}`)
	})

	t.Run("unknown fields tolerated", func(t *testing.T) {
		rec := serve(mux, http.MethodPost, "/campers", `{"name":"Ana","age":12,"nickname":"A"}`)
		if rec.Code != http.StatusCreated {
			t.Errorf("status = %d, want 201", rec.Code)
		}
	})

	for name, body := range map[string]string{
		"age out of range": `{"name":"Ana","age":25}`,
		"missing age":      `{"name":"Ana"}`,
		"malformed json":   `{"name":`,
		"wrong type":       `{"name":"Ana","age":"twelve"}`,
		"array body":       `[]`,
	} {
		t.Run(name, func(t *testing.T) {
			rec := serve(mux, http.MethodPost, "/campers", body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
			assertBody(t, rec, `{"errors":["validation errors"]}`)
		})
	}
}

func TestCamperHandler_Get(t *testing.T) {
	var gotID int64
	campers := &mockCamperService{
		getCamperFunc: func(ctx context.Context, id int64) (*model.Camper, []*model.Signup, error) {
			gotID = id
			if id != 1 {
				return nil, nil, service.ErrCamperNotFound
			}
			return &model.Camper{ID: 1, Name: "Ana", Age: 12}, nil, nil
		},
	}
	mux := newTestRouter(campers, nil, nil)

	rec := serve(mux, http.MethodGet, "/campers/1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	assertBody(t, rec, `{"id":1,"name":"Ana","age":12,"signups":[]}`)

	rec = serve(mux, http.MethodGet, "/campers/999", "")
	if rec.Code != http.StatusNotFound || gotID != 999 {
		t.Fatalf("status = %d id = %d, want 404 for 999", rec.Code, gotID)
	}
	assertBody(t, rec, `{"error":"Camper not found"}`)
}

func TestCamperHandler_NonIntegerID(t *testing.T) {
	called := false
	campers := &mockCamperService{
		getCamperFunc: func(ctx context.Context, id int64) (*model.Camper, []*model.Signup, error) {
			called = true
			return nil, nil, nil
		},
		updateCamperFunc: func(ctx context.Context, id int64, patch model.CamperPatch) (*model.Camper, error) {
			called = true
			return nil, nil
		},
	}
	mux := newTestRouter(campers, nil, nil)

	for _, method := range []string{http.MethodGet, http.MethodPatch} {
		rec := serve(mux, method, "/campers/abc", `{}`)
		if rec.Code != http.StatusNotFound {
			t.Errorf("%s status = %d, want 404", method, rec.Code)
		}
		assertBody(t, rec, `{"error":"Camper not found"}`)
	}
	if called {
		t.Error("service should not be called for a non-integer id")
	}
}

func TestCamperHandler_Update(t *testing.T) {
	var gotPatch model.CamperPatch
	campers := &mockCamperService{
		updateCamperFunc: func(ctx context.Context, id int64, patch model.CamperPatch) (*model.Camper, error) {
			gotPatch = patch
			updated, err := patch.ApplyTo(&model.Camper{ID: id, Name: "Ana", Age: 12})
			if err != nil {
				return nil, service.NewValidationError(err)
			}
			return updated, nil
		},
	}
	mux := newTestRouter(campers, nil, nil)

	rec := serve(mux, http.MethodPatch, "/campers/1", `{"age":13}`)
	if rec.Code != http.StatusAccepted {
		t.Fatalf("status = %d, want 202", rec.Code)
	}
	assertBody(t, rec, `{"id":1,"name":"Ana","age":13}`)
	if _, ok := gotPatch["age"]; !ok || len(gotPatch) != 1 {
		t.Errorf("patch = %v, want only age", gotPatch)
	}

	for name, body := range map[string]string{
		"unknown field": `{"nickname":"A"}`,
		"id field":      `{"id":7}`,
		"null body":     `null`,
		"string body":   `"age"`,
	} {
		t.Run(name, func(t *testing.T) {
			rec := serve(mux, http.MethodPatch, "/campers/1", body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
			assertBody(t, rec, `{"errors":["validation errors"]}`)
		})
	}
}

func TestCamperHandler_ListInternalError(t *testing.T) {
	campers := &mockCamperService{
		listCampersFunc: func(ctx context.Context) ([]*model.Camper, error) {
			return nil, errors.New("connection reset")
		},
	}
	rec := serve(newTestRouter(campers, nil, nil), http.MethodGet, "/campers", "")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	assertBody(t, rec, `{"error":"internal server error"}`)
}

func TestCamperHandler_ListEmpty(t *testing.T) {
	rec := serve(newTestRouter(nil, nil, nil), http.MethodGet, "/campers", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	assertBody(t, rec, `[]`)
}

// ============================================================================
// Activity Handler Tests
// ============================================================================

func TestActivityHandler_Delete(t *testing.T) {
	activities := &mockActivityService{
		deleteActivityFunc: func(ctx context.Context, id int64) error {
			if id != 1 {
				return service.ErrActivityNotFound
			}
			return nil
		},
	}
	mux := newTestRouter(nil, activities, nil)

	rec := serve(mux, http.MethodDelete, "/activities/1", "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("expected empty body, got %q", rec.Body.String())
	}

	for _, path := range []string{"/activities/2", "/activities/x"} {
		rec = serve(mux, http.MethodDelete, path, "")
		if rec.Code != http.StatusNotFound {
			t.Errorf("%s status = %d, want 404", path, rec.Code)
		}
		assertBody(t, rec, `{"error":"Activity not found"}`)
	}
}

func TestActivityHandler_List(t *testing.T) {
	activities := &mockActivityService{
		listActivitiesFunc: func(ctx context.Context) ([]*model.Activity, error) {
			return []*model.Activity{{ID: 1, Name: "Archery", Difficulty: 2}}, nil
		},
	}
	rec := serve(newTestRouter(nil, activities, nil), http.MethodGet, "/activities", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	assertBody(t, rec, `[{"id":1,"name":"Archery","difficulty":2}]`)
}

// ============================================================================
// Signup Handler Tests
// ============================================================================

func TestSignupHandler_Create(t *testing.T) {
	signups := &mockSignupService{
		createSignupFunc: func(ctx context.Context, req *model.CreateSignupRequest) (*model.Signup, error) {
			s, err := req.Build()
			if err != nil {
				return nil, service.NewValidationError(err)
			}
			if s.CamperID != 1 {
				return nil, service.ErrSignupReference
			}
			s.ID = 5
			s.Activity = &model.Activity{ID: s.ActivityID, Name: "Archery", Difficulty: 2}
			s.Camper = &model.Camper{ID: s.CamperID, Name: "Ana", Age: 12}
			return s, nil
		},
	}
	mux := newTestRouter(nil, nil, signups)

	rec := serve(mux, http.MethodPost, "/signups", `{"time":9,"activity_id":1,"camper_id":1}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}
	assertBody(t, rec, `{"id":5,"time":9,"activity_id":1,"camper_id":1,`+
		`"activity":{"id":1,"name":"Archery","difficulty":2},`+
		`"camper":{"id":1,"name":"Ana","age":12}}`)

	for name, body := range map[string]string{
		"time out of range": `{"time":24,"activity_id":1,"camper_id":1}`,
		"missing camper":    `{"time":9,"activity_id":1,"camper_id":2}`,
		"missing field":     `{"time":9,"activity_id":1}`,
	} {
		t.Run(name, func(t *testing.T) {
			rec := serve(mux, http.MethodPost, "/signups", body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
			assertBody(t, rec, `{"errors":["validation errors"]}`)
		})
	}
}

// ============================================================================
// Health Handler Tests
// ============================================================================

func TestHealthHandler(t *testing.T) {
	pinger := &mockPinger{}
	mux := http.NewServeMux()
	NewHealthHandler(pinger).RegisterRoutes(mux)

	rec := serve(mux, http.MethodGet, "/", "")
	if rec.Code != http.StatusOK || rec.Body.Len() != 0 {
		t.Errorf("GET / = %d %q, want 200 with empty body", rec.Code, rec.Body.String())
	}

	rec = serve(mux, http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	assertBody(t, rec, `{"status":"ok"}`)

	pinger.err = database.ErrConnection
	rec = serve(mux, http.MethodGet, "/health", "")
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", rec.Code)
	}
	assertBody(t, rec, `{"status":"unavailable"}`)

	rec = serve(mux, http.MethodGet, "/nowhere", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown path status = %d, want 404", rec.Code)
	}
}
