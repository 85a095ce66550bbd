package service

import (
	"context"
	"fmt"
	"time"

	"github.com/forgo/camp/internal/model"
)

// SeederService loads fixture data for development and demos
type SeederService struct {
	store Store
}

// NewSeederService creates a new seeder service
func NewSeederService(store Store) *SeederService {
	return &SeederService{store: store}
}

// SeedResult contains the results of a seeding operation
type SeedResult struct {
	Deleted    int   `json:"deleted"`
	Activities int   `json:"activities"`
	Campers    int   `json:"campers"`
	Signups    int   `json:"signups"`
	Duration   int64 `json:"duration_ms"`
}

// Seed inserts data in a single unit of work. With reset, every existing
// camper and activity (and so every signup) is removed first. Any invalid
// fixture aborts the whole seed.
func (s *SeederService) Seed(ctx context.Context, data *model.SeedData, reset bool) (*SeedResult, error) {
	if err := data.Validate(); err != nil {
		return nil, NewValidationError(err)
	}

	start := time.Now()
	result := &SeedResult{}

	err := s.store.Atomic(ctx, func(ctx context.Context, uow UnitOfWork) error {
		if reset {
			n, err := clearAll(ctx, uow)
			if err != nil {
				return fmt.Errorf("reset: %w", err)
			}
			result.Deleted = n
		}

		activityIDs := make(map[string]int64, len(data.Activities))
		for i, a := range data.Activities {
			activity, err := model.NewActivity(a.Name, a.Difficulty)
			if err != nil {
				return seedFixtureError("activities", i, err)
			}
			if err := uow.Activities().Create(ctx, activity); err != nil {
				return err
			}
			activityIDs[a.Ref] = activity.ID
			result.Activities++
		}

		camperIDs := make(map[string]int64, len(data.Campers))
		for i, c := range data.Campers {
			camper, err := model.NewCamper(c.Name, c.Age)
			if err != nil {
				return seedFixtureError("campers", i, err)
			}
			if err := uow.Campers().Create(ctx, camper); err != nil {
				return err
			}
			camperIDs[c.Ref] = camper.ID
			result.Campers++
		}

		for i, su := range data.Signups {
			signup, err := model.NewSignup(su.Time, activityIDs[su.Activity], camperIDs[su.Camper])
			if err != nil {
				return seedFixtureError("signups", i, err)
			}
			if err := uow.Signups().Create(ctx, signup); err != nil {
				return err
			}
			result.Signups++
		}
		return nil
	})
	if err != nil {
		return nil, translateStoreError(err)
	}

	result.Duration = time.Since(start).Milliseconds()
	return result, nil
}

// clearAll deletes every activity and camper, returning the number of rows removed
func clearAll(ctx context.Context, uow UnitOfWork) (int, error) {
	deleted := 0

	activities, err := uow.Activities().List(ctx)
	if err != nil {
		return 0, err
	}
	for _, a := range activities {
		if err := uow.Activities().Delete(ctx, a.ID); err != nil {
			return deleted, err
		}
		deleted++
	}

	campers, err := uow.Campers().List(ctx)
	if err != nil {
		return deleted, err
	}
	for _, c := range campers {
		if err := uow.Campers().Delete(ctx, c.ID); err != nil {
			return deleted, err
		}
		deleted++
	}
	return deleted, nil
}

// seedFixtureError prefixes field names with the fixture position
func seedFixtureError(section string, index int, err error) error {
	verr := NewValidationError(err)
	for i := range verr.Fields {
		verr.Fields[i].Field = fmt.Sprintf("%s[%d].%s", section, index, verr.Fields[i].Field)
	}
	return verr
}
