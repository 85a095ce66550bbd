// Package surreal implements the camp repositories on SurrealDB.
//
// SurrealDB over RPC has no interactive transactions, so every repository
// method is atomic on its own: multi-statement writes are sent as a single
// BEGIN/COMMIT TRANSACTION block (database.TxBuilder, database.AtomicBatch)
// and reference checks run inside that block. A unit of work is therefore a
// sequence of atomic operations rather than one isolated transaction.
//
// Records use integer ids issued from the sequence table, so camper:3 is
// camper 3 in the API.
package surreal

import (
	"context"

	"github.com/forgo/camp/internal/database"
	"github.com/forgo/camp/internal/service"
)

var _ service.Store = (*Store)(nil)

// Store serves units of work from a SurrealDB connection
type Store struct {
	db  database.Database
	uow *unitOfWork
}

// NewStore creates a store over a connected SurrealDB
func NewStore(db database.Database) *Store {
	return &Store{
		db: db,
		uow: &unitOfWork{
			campers:    NewCamperRepository(db),
			activities: NewActivityRepository(db),
			signups:    NewSignupRepository(db),
		},
	}
}

// Atomic runs fn against the shared repositories
func (s *Store) Atomic(ctx context.Context, fn func(ctx context.Context, uow service.UnitOfWork) error) error {
	return fn(ctx, s.uow)
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

func (u *unitOfWork) Campers() service.CamperRepository { return u.campers }
func (u *unitOfWork) Activities() service.ActivityRepository { return u.activities }
func (u *unitOfWork) Signups() service.SignupRepository { return u.signups }
