package service

import (
	"context"

	"github.com/forgo/camp/internal/model"
)

// SignupService handles signup business logic
type SignupService struct {
	store Store
}

// SignupServiceConfig holds configuration for the signup service
type SignupServiceConfig struct {
	Store Store
}

// NewSignupService creates a new signup service
func NewSignupService(cfg SignupServiceConfig) *SignupService {
	return &SignupService{
		store: cfg.Store,
	}
}

// CreateSignup validates the hour, inserts the signup and returns it with
// its activity and camper loaded. A missing camper or activity yields
// ErrSignupReference and nothing is written.
func (s *SignupService) CreateSignup(ctx context.Context, req *model.CreateSignupRequest) (*model.Signup, error) {
	signup, err := req.Build()
	if err != nil {
		return nil, NewValidationError(err)
	}

	err = s.store.Atomic(ctx, func(ctx context.Context, uow UnitOfWork) error {
		if err := uow.Signups().Create(ctx, signup); err != nil {
			return err
		}
		return loadSignupRefs(ctx, uow, signup)
	})
	if err != nil {
		return nil, translateStoreError(err)
	}
	return signup, nil
}

// GetSignup returns a signup with its activity and camper loaded
func (s *SignupService) GetSignup(ctx context.Context, id int64) (*model.Signup, error) {
	var signup *model.Signup
	err := s.store.Atomic(ctx, func(ctx context.Context, uow UnitOfWork) error {
		var err error
		signup, err = uow.Signups().GetByID(ctx, id)
		if err != nil {
			return err
		}
		if signup == nil {
			return ErrSignupNotFound
		}
		return loadSignupRefs(ctx, uow, signup)
	})
	return signup, err
}

func loadSignupRefs(ctx context.Context, uow UnitOfWork, signup *model.Signup) error {
	activity, err := uow.Activities().GetByID(ctx, signup.ActivityID)
	if err != nil {
		return err
	}
	camper, err := uow.Campers().GetByID(ctx, signup.CamperID)
	if err != nil {
		return err
	}
	if activity == nil || camper == nil {
		return ErrSignupReference
	}
	signup.Activity = activity
	signup.Camper = camper
	return nil
}
