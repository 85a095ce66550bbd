package service

import (
	"context"

	"github.com/forgo/camp/internal/model"
)

// ActivityService handles activity business logic
type ActivityService struct {
	store Store
}

// ActivityServiceConfig holds configuration for the activity service
type ActivityServiceConfig struct {
	Store Store
}

// NewActivityService creates a new activity service
func NewActivityService(cfg ActivityServiceConfig) *ActivityService {
	return &ActivityService{
		store: cfg.Store,
	}
}

// ListActivities returns every activity ordered by id
func (s *ActivityService) ListActivities(ctx context.Context) ([]*model.Activity, error) {
	var activities []*model.Activity
	err := s.store.Atomic(ctx, func(ctx context.Context, uow UnitOfWork) error {
		var err error
		activities, err = uow.Activities().List(ctx)
		return err
	})
	return activities, err
}

// CreateActivity validates and inserts an activity
func (s *ActivityService) CreateActivity(ctx context.Context, name string, difficulty int) (*model.Activity, error) {
	activity, err := model.NewActivity(name, difficulty)
	if err != nil {
		return nil, NewValidationError(err)
	}

	err = s.store.Atomic(ctx, func(ctx context.Context, uow UnitOfWork) error {
		return uow.Activities().Create(ctx, activity)
	})
	if err != nil {
		return nil, translateStoreError(err)
	}
	return activity, nil
}

// DeleteActivity removes an activity and, in the same unit of work, its signups
func (s *ActivityService) DeleteActivity(ctx context.Context, id int64) error {
	return s.store.Atomic(ctx, func(ctx context.Context, uow UnitOfWork) error {
		activity, err := uow.Activities().GetByID(ctx, id)
		if err != nil {
			return err
		}
		if activity == nil {
			return ErrActivityNotFound
		}
		return uow.Activities().Delete(ctx, id)
	})
}

// ListActivityCampers returns the campers signed up for the activity
func (s *ActivityService) ListActivityCampers(ctx context.Context, id int64) ([]*model.Camper, error) {
	var campers []*model.Camper
	err := s.store.Atomic(ctx, func(ctx context.Context, uow UnitOfWork) error {
		activity, err := uow.Activities().GetByID(ctx, id)
		if err != nil {
			return err
		}
		if activity == nil {
			return ErrActivityNotFound
		}
		campers, err = uow.Campers().ListByActivity(ctx, id)
		return err
	})
	return campers, err
}
