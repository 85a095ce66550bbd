package repository

import (
	"context"

	"github.com/forgo/camp/internal/database"
	"github.com/forgo/camp/internal/model"
)

// ActivityRepository handles activity data access
type ActivityRepository struct {
	db database.Executor
}

// NewActivityRepository creates a new activity repository
func NewActivityRepository(db database.Executor) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// List returns every activity ordered by id
func (r *ActivityRepository) List(ctx context.Context) ([]*model.Activity, error) {
	rows, err := r.db.Query(ctx, `SELECT `+activityColumns+` FROM activities a ORDER BY a.id`)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanActivity)
}

// GetByID retrieves an activity by ID, or nil when it does not exist
func (r *ActivityRepository) GetByID(ctx context.Context, id int64) (*model.Activity, error) {
	row := r.db.QueryRow(ctx, `SELECT `+activityColumns+` FROM activities a WHERE a.id = ?`, id)
	return getOne(row, scanActivity)
}

// Create inserts an activity and sets its ID
func (r *ActivityRepository) Create(ctx context.Context, activity *model.Activity) error {
	id, err := insertReturningID(r.db.QueryRow(ctx,
		`INSERT INTO activities (name, difficulty) VALUES (?, ?) RETURNING id`,
		activity.Name, activity.Difficulty,
	))
	if err != nil {
		return err
	}
	activity.ID = id
	return nil
}

// Delete removes an activity and its signups
func (r *ActivityRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM signups WHERE activity_id = ?`, id); err != nil {
		return err
	}
	res, err := r.db.Exec(ctx, `DELETE FROM activities WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireAffected(res, "activity", id)
}

// ListByCamper returns the distinct activities a camper is signed up for
func (r *ActivityRepository) ListByCamper(ctx context.Context, camperID int64) ([]*model.Activity, error) {
	rows, err := r.db.Query(ctx, `
		SELECT DISTINCT `+activityColumns+`
		FROM activities a
		JOIN signups s ON s.activity_id = a.id
		WHERE s.camper_id = ?
		ORDER BY a.id`, camperID)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanActivity)
}
