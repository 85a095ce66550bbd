package service

import (
	"context"

	"github.com/forgo/camp/internal/model"
)

// CamperRepository defines the interface for camper storage.
// GetByID returns nil, nil when the camper does not exist.
type CamperRepository interface {
	List(ctx context.Context) ([]*model.Camper, error)
	GetByID(ctx context.Context, id int64) (*model.Camper, error)
	Create(ctx context.Context, camper *model.Camper) error
	Update(ctx context.Context, camper *model.Camper) error
	// Delete removes the camper and its signups
	Delete(ctx context.Context, id int64) error
	// ListByActivity returns the campers signed up for an activity, ordered by id
	ListByActivity(ctx context.Context, activityID int64) ([]*model.Camper, error)
}

// ActivityRepository defines the interface for activity storage
type ActivityRepository interface {
	List(ctx context.Context) ([]*model.Activity, error)
	GetByID(ctx context.Context, id int64) (*model.Activity, error)
	Create(ctx context.Context, activity *model.Activity) error
	// Delete removes the activity and its signups
	Delete(ctx context.Context, id int64) error
	// ListByCamper returns the activities a camper is signed up for, ordered by id
	ListByCamper(ctx context.Context, camperID int64) ([]*model.Activity, error)
}

// SignupRepository defines the interface for signup storage
type SignupRepository interface {
	// Create fails with database.ErrForeignKey when either reference is missing
	Create(ctx context.Context, signup *model.Signup) error
	GetByID(ctx context.Context, id int64) (*model.Signup, error)
	// ListByCamper returns the camper's signups with Activity populated
	ListByCamper(ctx context.Context, camperID int64) ([]*model.Signup, error)
	ListByActivity(ctx context.Context, activityID int64) ([]*model.Signup, error)
}

// UnitOfWork exposes the repositories bound to one storage transaction
type UnitOfWork interface {
	Campers() CamperRepository
	Activities() ActivityRepository
	Signups() SignupRepository
}

// Store opens units of work. Atomic commits when fn returns nil and rolls
// back otherwise.
type Store interface {
	Atomic(ctx context.Context, fn func(ctx context.Context, uow UnitOfWork) error) error
	Ping(ctx context.Context) error
}
