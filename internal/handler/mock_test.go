package handler

import (
	"context"

	"github.com/forgo/camp/internal/model"
)

// ============================================================================
// Mock CamperService
// ============================================================================

type mockCamperService struct {
	listCampersFunc  func(ctx context.Context) ([]*model.Camper, error)
	createCamperFunc func(ctx context.Context, req *model.CreateCamperRequest) (*model.Camper, error)
	getCamperFunc    func(ctx context.Context, id int64) (*model.Camper, []*model.Signup, error)
	updateCamperFunc func(ctx context.Context, id int64, patch model.CamperPatch) (*model.Camper, error)
}

func (m *mockCamperService) ListCampers(ctx context.Context) ([]*model.Camper, error) {
	if m.listCampersFunc != nil {
		return m.listCampersFunc(ctx)
	}
	return nil, nil
}

func (m *mockCamperService) CreateCamper(ctx context.Context, req *model.CreateCamperRequest) (*model.Camper, error) {
	if m.createCamperFunc != nil {
		return m.createCamperFunc(ctx, req)
	}
	return nil, nil
}

func (m *mockCamperService) GetCamper(ctx context.Context, id int64) (*model.Camper, []*model.Signup, error) {
	if m.getCamperFunc != nil {
		return m.getCamperFunc(ctx, id)
	}
	return nil, nil, nil
}

func (m *mockCamperService) UpdateCamper(ctx context.Context, id int64, patch model.CamperPatch) (*model.Camper, error) {
	if m.updateCamperFunc != nil {
		return m.updateCamperFunc(ctx, id, patch)
	}
	return nil, nil
}

// ============================================================================
// Mock ActivityService
// ============================================================================

type mockActivityService struct {
	listActivitiesFunc func(ctx context.Context) ([]*model.Activity, error)
	deleteActivityFunc func(ctx context.Context, id int64) error
}

func (m *mockActivityService) ListActivities(ctx context.Context) ([]*model.Activity, error) {
	if m.listActivitiesFunc != nil {
		return m.listActivitiesFunc(ctx)
	}
	return nil, nil
}

func (m *mockActivityService) DeleteActivity(ctx context.Context, id int64) error {
	if m.deleteActivityFunc != nil {
		return m.deleteActivityFunc(ctx, id)
	}
	return nil
}

// ============================================================================
// Mock SignupService
// ============================================================================

type mockSignupService struct {
	createSignupFunc func(ctx context.Context, req *model.CreateSignupRequest) (*model.Signup, error)
}

func (m *mockSignupService) CreateSignup(ctx context.Context, req *model.CreateSignupRequest) (*model.Signup, error) {
	if m.createSignupFunc != nil {
		return m.createSignupFunc(ctx, req)
	}
	return nil, nil
}

// ============================================================================
// Mock Pinger
// ============================================================================

type mockPinger struct {
	err error
}

func (m *mockPinger) Ping(ctx context.Context) error { return m.err }
