package service

import (
	"context"

	"github.com/forgo/camp/internal/model"
)

// ============================================================================
// Mock Repositories
// ============================================================================

type mockCamperRepo struct {
	listFunc           func(ctx context.Context) ([]*model.Camper, error)
	getByIDFunc        func(ctx context.Context, id int64) (*model.Camper, error)
	createFunc         func(ctx context.Context, camper *model.Camper) error
	updateFunc         func(ctx context.Context, camper *model.Camper) error
	deleteFunc         func(ctx context.Context, id int64) error
	listByActivityFunc func(ctx context.Context, activityID int64) ([]*model.Camper, error)
}

func (m *mockCamperRepo) List(ctx context.Context) ([]*model.Camper, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockCamperRepo) GetByID(ctx context.Context, id int64) (*model.Camper, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockCamperRepo) Create(ctx context.Context, camper *model.Camper) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, camper)
	}
	return nil
}

func (m *mockCamperRepo) Update(ctx context.Context, camper *model.Camper) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, camper)
	}
	return nil
}

func (m *mockCamperRepo) Delete(ctx context.Context, id int64) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func (m *mockCamperRepo) ListByActivity(ctx context.Context, activityID int64) ([]*model.Camper, error) {
	if m.listByActivityFunc != nil {
		return m.listByActivityFunc(ctx, activityID)
	}
	return nil, nil
}

type mockActivityRepo struct {
	listFunc         func(ctx context.Context) ([]*model.Activity, error)
	getByIDFunc      func(ctx context.Context, id int64) (*model.Activity, error)
	createFunc       func(ctx context.Context, activity *model.Activity) error
	deleteFunc       func(ctx context.Context, id int64) error
	listByCamperFunc func(ctx context.Context, camperID int64) ([]*model.Activity, error)
}

func (m *mockActivityRepo) List(ctx context.Context) ([]*model.Activity, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockActivityRepo) GetByID(ctx context.Context, id int64) (*model.Activity, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockActivityRepo) Create(ctx context.Context, activity *model.Activity) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, activity)
	}
	return nil
}

func (m *mockActivityRepo) Delete(ctx context.Context, id int64) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func (m *mockActivityRepo) ListByCamper(ctx context.Context, camperID int64) ([]*model.Activity, error) {
	if m.listByCamperFunc != nil {
		return m.listByCamperFunc(ctx, camperID)
	}
	return nil, nil
}

type mockSignupRepo struct {
	createFunc         func(ctx context.Context, signup *model.Signup) error
	getByIDFunc        func(ctx context.Context, id int64) (*model.Signup, error)
	listByCamperFunc   func(ctx context.Context, camperID int64) ([]*model.Signup, error)
	listByActivityFunc func(ctx context.Context, activityID int64) ([]*model.Signup, error)
}

func (m *mockSignupRepo) Create(ctx context.Context, signup *model.Signup) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, signup)
	}
	return nil
}

func (m *mockSignupRepo) GetByID(ctx context.Context, id int64) (*model.Signup, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockSignupRepo) ListByCamper(ctx context.Context, camperID int64) ([]*model.Signup, error) {
	if m.listByCamperFunc != nil {
		return m.listByCamperFunc(ctx, camperID)
	}
	return nil, nil
}

func (m *mockSignupRepo) ListByActivity(ctx context.Context, activityID int64) ([]*model.Signup, error) {
	if m.listByActivityFunc != nil {
		return m.listByActivityFunc(ctx, activityID)
	}
	return nil, nil
}

// ============================================================================
// Mock Store
// ============================================================================

// mockStore runs fn against the mock repositories and records whether the
// unit of work would have committed.
type mockStore struct {
	campers    *mockCamperRepo
	activities *mockActivityRepo
	signups    *mockSignupRepo

	pingErr   error
	commits   int
	rollbacks int
}

func newMockStore() *mockStore {
	return &mockStore{
		campers:    &mockCamperRepo{},
		activities: &mockActivityRepo{},
		signups:    &mockSignupRepo{},
	}
}

func (m *mockStore) Atomic(ctx context.Context, fn func(ctx context.Context, uow UnitOfWork) error) error {
	if err := fn(ctx, m); err != nil {
		m.rollbacks++
		return err
	}
	m.commits++
	return nil
}

func (m *mockStore) Ping(ctx context.Context) error { return m.pingErr }

func (m *mockStore) Campers() CamperRepository { return m.campers }
func (m *mockStore) Activities() ActivityRepository { return m.activities }
func (m *mockStore) Signups() SignupRepository { return m.signups }

func camperFixture(id int64, name string, age int) *model.Camper {
	return &model.Camper{ID: id, Name: name, Age: age}
}

func activityFixture(id int64, name string, difficulty int) *model.Activity {
	return &model.Activity{ID: id, Name: name, Difficulty: difficulty}
}

func ptr[T any](v T) *T { return &v }
