package fixtures

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/forgo/camp/internal/model"
	"github.com/forgo/camp/internal/service"
)

// Factory creates test entities through a store
type Factory struct {
	store service.Store
	seq   atomic.Int64
}

// New creates a new fixture factory
func New(store service.Store) *Factory {
	return &Factory{store: store}
}

// ctx returns a context with timeout
func ctx() context.Context {
	c, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	_ = cancel
	return c
}

// ============================================================================
// Camper Fixtures
// ============================================================================

// CamperOpts customizes camper creation
type CamperOpts struct {
	Name string
	Age  int
}

// CreateCamper creates a camper with optional customizations
func (f *Factory) CreateCamper(t *testing.T, opts ...func(*CamperOpts)) *model.Camper {
	t.Helper()

	o := &CamperOpts{
		Name: fmt.Sprintf("Camper %d", f.seq.Add(1)),
		Age:  12,
	}
	for _, fn := range opts {
		fn(o)
	}

	camper, err := model.NewCamper(o.Name, o.Age)
	if err != nil {
		t.Fatalf("fixtures: invalid camper: %v", err)
	}
	err = f.store.Atomic(ctx(), func(ctx context.Context, uow service.UnitOfWork) error {
		return uow.Campers().Create(ctx, camper)
	})
	if err != nil {
		t.Fatalf("fixtures: failed to create camper: %v", err)
	}
	return camper
}

// WithCamperName sets the camper name
func WithCamperName(name string) func(*CamperOpts) {
	return func(o *CamperOpts) { o.Name = name }
}

// WithAge sets the camper age
func WithAge(age int) func(*CamperOpts) {
	return func(o *CamperOpts) { o.Age = age }
}

// ============================================================================
// Activity Fixtures
// ============================================================================

// ActivityOpts customizes activity creation
type ActivityOpts struct {
	Name       string
	Difficulty int
}

// CreateActivity creates an activity with optional customizations
func (f *Factory) CreateActivity(t *testing.T, opts ...func(*ActivityOpts)) *model.Activity {
	t.Helper()

	o := &ActivityOpts{
		Name:       fmt.Sprintf("Activity %d", f.seq.Add(1)),
		Difficulty: 2,
	}
	for _, fn := range opts {
		fn(o)
	}

	activity, err := model.NewActivity(o.Name, o.Difficulty)
	if err != nil {
		t.Fatalf("fixtures: invalid activity: %v", err)
	}
	err = f.store.Atomic(ctx(), func(ctx context.Context, uow service.UnitOfWork) error {
		return uow.Activities().Create(ctx, activity)
	})
	if err != nil {
		t.Fatalf("fixtures: failed to create activity: %v", err)
	}
	return activity
}

// WithActivityName sets the activity name
func WithActivityName(name string) func(*ActivityOpts) {
	return func(o *ActivityOpts) { o.Name = name }
}

// WithDifficulty sets the activity difficulty
func WithDifficulty(difficulty int) func(*ActivityOpts) {
	return func(o *ActivityOpts) { o.Difficulty = difficulty }
}

// ============================================================================
// Signup Fixtures
// ============================================================================

// CreateSignup signs camper up for activity at hour
func (f *Factory) CreateSignup(t *testing.T, camper *model.Camper, activity *model.Activity, hour int) *model.Signup {
	t.Helper()

	signup, err := model.NewSignup(hour, activity.ID, camper.ID)
	if err != nil {
		t.Fatalf("fixtures: invalid signup: %v", err)
	}
	err = f.store.Atomic(ctx(), func(ctx context.Context, uow service.UnitOfWork) error {
		return uow.Signups().Create(ctx, signup)
	})
	if err != nil {
		t.Fatalf("fixtures: failed to create signup: %v", err)
	}
	return signup
}
