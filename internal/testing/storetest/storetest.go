// Package storetest holds the behavioural suite every service.Store
// implementation must pass. Backend packages call Run with a constructor that
// returns an empty, migrated store.
package storetest

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgo/camp/internal/database"
	"github.com/forgo/camp/internal/model"
	"github.com/forgo/camp/internal/service"
	"github.com/forgo/camp/internal/testing/fixtures"
)

// Backend describes the store under test.
type Backend struct {
	// NewStore returns an empty store; it is called once per subtest
	NewStore func(t *testing.T) service.Store
	// Transactional reports whether a failed unit of work rolls back writes
	// that already succeeded inside it
	Transactional bool
}

type storeTest struct {
	name string
	fn   func(t *testing.T, store service.Store)
}

// Run executes the suite against b.
func Run(t *testing.T, b Backend) {
	tests := []storeTest{
		{"CamperCRUD", testCamperCRUD},
		{"GetMissingReturnsNil", testGetMissingReturnsNil},
		{"ListOrderedByID", testListOrderedByID},
		{"SignupRequiresReferences", testSignupRequiresReferences},
		{"SignupListsJoinActivity", testSignupListsJoinActivity},
		{"DeleteActivityCascades", testDeleteActivityCascades},
		{"DeleteCamperCascades", testDeleteCamperCascades},
		{"DerivedCollections", testDerivedCollections},
	}
	if b.Transactional {
		tests = append(tests, storeTest{"RollbackOnError", testRollbackOnError})
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			tt.fn(t, b.NewStore(t))
		})
	}
}

func atomic(t *testing.T, store service.Store, fn func(ctx context.Context, uow service.UnitOfWork) error) {
	t.Helper()
	require.NoError(t, store.Atomic(context.Background(), fn))
}

func testCamperCRUD(t *testing.T, store service.Store) {
	camper, err := model.NewCamper("Ana", 12)
	require.NoError(t, err)

	atomic(t, store, func(ctx context.Context, uow service.UnitOfWork) error {
		return uow.Campers().Create(ctx, camper)
	})
	assert.NotZero(t, camper.ID)

	atomic(t, store, func(ctx context.Context, uow service.UnitOfWork) error {
		got, err := uow.Campers().GetByID(ctx, camper.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, *camper, *got)

		require.NoError(t, got.SetAge(13))
		return uow.Campers().Update(ctx, got)
	})

	atomic(t, store, func(ctx context.Context, uow service.UnitOfWork) error {
		got, err := uow.Campers().GetByID(ctx, camper.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, 13, got.Age)
		assert.Equal(t, "Ana", got.Name)
		return nil
	})
}

func testGetMissingReturnsNil(t *testing.T, store service.Store) {
	atomic(t, store, func(ctx context.Context, uow service.UnitOfWork) error {
		camper, err := uow.Campers().GetByID(ctx, 999)
		assert.NoError(t, err)
		assert.Nil(t, camper)

		activity, err := uow.Activities().GetByID(ctx, 999)
		assert.NoError(t, err)
		assert.Nil(t, activity)

		signup, err := uow.Signups().GetByID(ctx, 999)
		assert.NoError(t, err)
		assert.Nil(t, signup)
		return nil
	})
}

func testListOrderedByID(t *testing.T, store service.Store) {
	f := fixtures.New(store)
	c1 := f.CreateCamper(t)
	c2 := f.CreateCamper(t)
	a1 := f.CreateActivity(t)
	a2 := f.CreateActivity(t, fixtures.WithDifficulty(-1))

	atomic(t, store, func(ctx context.Context, uow service.UnitOfWork) error {
		campers, err := uow.Campers().List(ctx)
		require.NoError(t, err)
		require.Len(t, campers, 2)
		assert.Equal(t, c1.ID, campers[0].ID)
		assert.Equal(t, c2.ID, campers[1].ID)

		activities, err := uow.Activities().List(ctx)
		require.NoError(t, err)
		require.Len(t, activities, 2)
		assert.Equal(t, a1.ID, activities[0].ID)
		assert.Equal(t, a2.ID, activities[1].ID)
		assert.Equal(t, -1, activities[1].Difficulty)
		return nil
	})
}

func testSignupRequiresReferences(t *testing.T, store service.Store) {
	f := fixtures.New(store)
	camper := f.CreateCamper(t)
	activity := f.CreateActivity(t)

	for _, s := range []*model.Signup{
		{Time: 9, ActivityID: activity.ID, CamperID: camper.ID + 100},
		{Time: 9, ActivityID: activity.ID + 100, CamperID: camper.ID},
	} {
		err := store.Atomic(context.Background(), func(ctx context.Context, uow service.UnitOfWork) error {
			return uow.Signups().Create(ctx, s)
		})
		assert.True(t, errors.Is(err, database.ErrForeignKey), "expected ErrForeignKey, got %v", err)
	}

	atomic(t, store, func(ctx context.Context, uow service.UnitOfWork) error {
		signups, err := uow.Signups().ListByActivity(ctx, activity.ID)
		require.NoError(t, err)
		assert.Empty(t, signups)
		return nil
	})
}

func testSignupListsJoinActivity(t *testing.T, store service.Store) {
	f := fixtures.New(store)
	camper := f.CreateCamper(t)
	archery := f.CreateActivity(t, fixtures.WithActivityName("Archery"), fixtures.WithDifficulty(3))
	canoe := f.CreateActivity(t, fixtures.WithActivityName("Canoe"))
	s1 := f.CreateSignup(t, camper, canoe, 14)
	s2 := f.CreateSignup(t, camper, archery, 9)

	atomic(t, store, func(ctx context.Context, uow service.UnitOfWork) error {
		signups, err := uow.Signups().ListByCamper(ctx, camper.ID)
		require.NoError(t, err)
		require.Len(t, signups, 2)

		assert.Equal(t, s1.ID, signups[0].ID)
		assert.Equal(t, 14, signups[0].Time)
		require.NotNil(t, signups[0].Activity)
		assert.Equal(t, "Canoe", signups[0].Activity.Name)

		assert.Equal(t, s2.ID, signups[1].ID)
		require.NotNil(t, signups[1].Activity)
		assert.Equal(t, *archery, *signups[1].Activity)

		got, err := uow.Signups().GetByID(ctx, s2.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, archery.ID, got.ActivityID)
		assert.Equal(t, camper.ID, got.CamperID)
		return nil
	})
}

func testDeleteActivityCascades(t *testing.T, store service.Store) {
	f := fixtures.New(store)
	ana := f.CreateCamper(t)
	bo := f.CreateCamper(t)
	archery := f.CreateActivity(t)
	canoe := f.CreateActivity(t)
	f.CreateSignup(t, ana, archery, 9)
	f.CreateSignup(t, bo, archery, 10)
	kept := f.CreateSignup(t, ana, canoe, 11)

	atomic(t, store, func(ctx context.Context, uow service.UnitOfWork) error {
		return uow.Activities().Delete(ctx, archery.ID)
	})

	atomic(t, store, func(ctx context.Context, uow service.UnitOfWork) error {
		gone, err := uow.Activities().GetByID(ctx, archery.ID)
		require.NoError(t, err)
		assert.Nil(t, gone)

		orphans, err := uow.Signups().ListByActivity(ctx, archery.ID)
		require.NoError(t, err)
		assert.Empty(t, orphans)

		remaining, err := uow.Signups().ListByCamper(ctx, ana.ID)
		require.NoError(t, err)
		require.Len(t, remaining, 1)
		assert.Equal(t, kept.ID, remaining[0].ID)

		campers, err := uow.Campers().List(ctx)
		require.NoError(t, err)
		assert.Len(t, campers, 2)
		return nil
	})
}

func testDeleteCamperCascades(t *testing.T, store service.Store) {
	f := fixtures.New(store)
	ana := f.CreateCamper(t)
	archery := f.CreateActivity(t)
	f.CreateSignup(t, ana, archery, 9)

	atomic(t, store, func(ctx context.Context, uow service.UnitOfWork) error {
		return uow.Campers().Delete(ctx, ana.ID)
	})

	atomic(t, store, func(ctx context.Context, uow service.UnitOfWork) error {
		signups, err := uow.Signups().ListByActivity(ctx, archery.ID)
		require.NoError(t, err)
		assert.Empty(t, signups)

		activity, err := uow.Activities().GetByID(ctx, archery.ID)
		require.NoError(t, err)
		assert.NotNil(t, activity)
		return nil
	})
}

func testDerivedCollections(t *testing.T, store service.Store) {
	f := fixtures.New(store)
	ana := f.CreateCamper(t)
	bo := f.CreateCamper(t)
	archery := f.CreateActivity(t)
	canoe := f.CreateActivity(t)
	f.CreateSignup(t, ana, archery, 9)
	f.CreateSignup(t, ana, archery, 15)
	f.CreateSignup(t, ana, canoe, 10)
	f.CreateSignup(t, bo, canoe, 10)

	atomic(t, store, func(ctx context.Context, uow service.UnitOfWork) error {
		activities, err := uow.Activities().ListByCamper(ctx, ana.ID)
		require.NoError(t, err)
		require.Len(t, activities, 2, "repeated signups should not duplicate activities")
		assert.Equal(t, archery.ID, activities[0].ID)
		assert.Equal(t, canoe.ID, activities[1].ID)

		campers, err := uow.Campers().ListByActivity(ctx, canoe.ID)
		require.NoError(t, err)
		require.Len(t, campers, 2)
		assert.Equal(t, ana.ID, campers[0].ID)
		assert.Equal(t, bo.ID, campers[1].ID)

		none, err := uow.Activities().ListByCamper(ctx, 999)
		require.NoError(t, err)
		assert.NotNil(t, none)
		assert.Empty(t, none)
		return nil
	})
}

// testRollbackOnError checks a failed unit of work leaves no rows behind
func testRollbackOnError(t *testing.T, store service.Store) {
	failure := errors.New("abort")
	err := store.Atomic(context.Background(), func(ctx context.Context, uow service.UnitOfWork) error {
		camper, err := model.NewCamper("Ana", 12)
		require.NoError(t, err)
		if err := uow.Campers().Create(ctx, camper); err != nil {
			return err
		}
		return failure
	})
	require.ErrorIs(t, err, failure)

	atomic(t, store, func(ctx context.Context, uow service.UnitOfWork) error {
		campers, err := uow.Campers().List(ctx)
		require.NoError(t, err)
		assert.Empty(t, campers)
		return nil
	})
}
