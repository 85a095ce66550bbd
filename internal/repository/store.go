package repository

import (
	"context"

	"github.com/forgo/camp/internal/database"
	"github.com/forgo/camp/internal/service"
)

// Compile-time contract assertion ensuring the store satisfies the service interface.
var _ service.Store = (*Store)(nil)

// Store runs each unit of work in one SQL transaction
type Store struct {
	db *database.SQLDB
}

// NewStore creates a store over an open SQL connection
func NewStore(db *database.SQLDB) *Store {
	return &Store{db: db}
}

// Atomic runs fn with repositories bound to a fresh transaction. The
// transaction commits when fn returns nil and rolls back otherwise.
func (s *Store) Atomic(ctx context.Context, fn func(ctx context.Context, uow service.UnitOfWork) error) error {
	return database.WithTransaction(ctx, s.db, func(tx *database.SQLTx) error {
		return fn(ctx, newUnitOfWork(tx))
	})
}

// Ping checks the database connection
func (s *Store) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

type unitOfWork struct {
	campers    *CamperRepository
	activities *ActivityRepository
	signups    *SignupRepository
}

func newUnitOfWork(db database.Executor) *unitOfWork {
	return &unitOfWork{
		campers:    NewCamperRepository(db),
		activities: NewActivityRepository(db),
		signups:    NewSignupRepository(db),
	}
}

func (u *unitOfWork) Campers() service.CamperRepository { return u.campers }
func (u *unitOfWork) Activities() service.ActivityRepository { return u.activities }
func (u *unitOfWork) Signups() service.SignupRepository { return u.signups }
