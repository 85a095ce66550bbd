package repository

import (
	"context"

	"github.com/forgo/camp/internal/database"
	"github.com/forgo/camp/internal/model"
)

// SignupRepository handles signup data access
type SignupRepository struct {
	db database.Executor
}

// NewSignupRepository creates a new signup repository
func NewSignupRepository(db database.Executor) *SignupRepository {
	return &SignupRepository{db: db}
}

// Create inserts a signup and sets its ID. The foreign keys reject a missing
// camper or activity with database.ErrForeignKey.
func (r *SignupRepository) Create(ctx context.Context, signup *model.Signup) error {
	id, err := insertReturningID(r.db.QueryRow(ctx,
		`INSERT INTO signups ("time", activity_id, camper_id) VALUES (?, ?, ?) RETURNING id`,
		signup.Time, signup.ActivityID, signup.CamperID,
	))
	if err != nil {
		return err
	}
	signup.ID = id
	return nil
}

// GetByID retrieves a signup by ID, or nil when it does not exist
func (r *SignupRepository) GetByID(ctx context.Context, id int64) (*model.Signup, error) {
	row := r.db.QueryRow(ctx, `SELECT `+signupColumns+` FROM signups s WHERE s.id = ?`, id)
	return getOne(row, scanSignup)
}

// ListByCamper returns a camper's signups ordered by id, each with its activity
func (r *SignupRepository) ListByCamper(ctx context.Context, camperID int64) ([]*model.Signup, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+signupColumns+`, `+activityColumns+`
		FROM signups s
		JOIN activities a ON a.id = s.activity_id
		WHERE s.camper_id = ?
		ORDER BY s.id`, camperID)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanSignupWithActivity)
}

// ListByActivity returns an activity's signups ordered by id
func (r *SignupRepository) ListByActivity(ctx context.Context, activityID int64) ([]*model.Signup, error) {
	rows, err := r.db.Query(ctx, `SELECT `+signupColumns+` FROM signups s WHERE s.activity_id = ? ORDER BY s.id`, activityID)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanSignup)
}
