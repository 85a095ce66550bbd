package service

import (
	"context"

	"github.com/forgo/camp/internal/model"
)

// CamperService handles camper business logic
type CamperService struct {
	store Store
}

// CamperServiceConfig holds configuration for the camper service
type CamperServiceConfig struct {
	Store Store
}

// NewCamperService creates a new camper service
func NewCamperService(cfg CamperServiceConfig) *CamperService {
	return &CamperService{
		store: cfg.Store,
	}
}

// ListCampers returns every camper ordered by id
func (s *CamperService) ListCampers(ctx context.Context) ([]*model.Camper, error) {
	var campers []*model.Camper
	err := s.store.Atomic(ctx, func(ctx context.Context, uow UnitOfWork) error {
		var err error
		campers, err = uow.Campers().List(ctx)
		return err
	})
	return campers, err
}

// CreateCamper validates the request and inserts the camper
func (s *CamperService) CreateCamper(ctx context.Context, req *model.CreateCamperRequest) (*model.Camper, error) {
	camper, err := req.Build()
	if err != nil {
		return nil, NewValidationError(err)
	}

	err = s.store.Atomic(ctx, func(ctx context.Context, uow UnitOfWork) error {
		return uow.Campers().Create(ctx, camper)
	})
	if err != nil {
		return nil, translateStoreError(err)
	}
	return camper, nil
}

// GetCamper returns the camper with its signups, each carrying its activity
func (s *CamperService) GetCamper(ctx context.Context, id int64) (*model.Camper, []*model.Signup, error) {
	var (
		camper  *model.Camper
		signups []*model.Signup
	)
	err := s.store.Atomic(ctx, func(ctx context.Context, uow UnitOfWork) error {
		var err error
		camper, err = uow.Campers().GetByID(ctx, id)
		if err != nil {
			return err
		}
		if camper == nil {
			return ErrCamperNotFound
		}
		signups, err = uow.Signups().ListByCamper(ctx, id)
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	return camper, signups, nil
}

// UpdateCamper applies an allow-listed partial update. Nothing is written
// when any field is rejected.
func (s *CamperService) UpdateCamper(ctx context.Context, id int64, patch model.CamperPatch) (*model.Camper, error) {
	var updated *model.Camper
	err := s.store.Atomic(ctx, func(ctx context.Context, uow UnitOfWork) error {
		camper, err := uow.Campers().GetByID(ctx, id)
		if err != nil {
			return err
		}
		if camper == nil {
			return ErrCamperNotFound
		}

		updated, err = patch.ApplyTo(camper)
		if err != nil {
			return NewValidationError(err)
		}
		if len(patch) == 0 {
			return nil
		}
		return uow.Campers().Update(ctx, updated)
	})
	if err != nil {
		return nil, translateStoreError(err)
	}
	return updated, nil
}

// DeleteCamper removes a camper and its signups
func (s *CamperService) DeleteCamper(ctx context.Context, id int64) error {
	return s.store.Atomic(ctx, func(ctx context.Context, uow UnitOfWork) error {
		camper, err := uow.Campers().GetByID(ctx, id)
		if err != nil {
			return err
		}
		if camper == nil {
			return ErrCamperNotFound
		}
		return uow.Campers().Delete(ctx, id)
	})
}

// ListCamperActivities returns the activities the camper is signed up for
func (s *CamperService) ListCamperActivities(ctx context.Context, id int64) ([]*model.Activity, error) {
	var activities []*model.Activity
	err := s.store.Atomic(ctx, func(ctx context.Context, uow UnitOfWork) error {
		camper, err := uow.Campers().GetByID(ctx, id)
		if err != nil {
			return err
		}
		if camper == nil {
			return ErrCamperNotFound
		}
		activities, err = uow.Activities().ListByCamper(ctx, id)
		return err
	})
	return activities, err
}
