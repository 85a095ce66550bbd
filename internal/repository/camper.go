package repository

import (
	"context"

	"github.com/forgo/camp/internal/database"
	"github.com/forgo/camp/internal/model"
)

// CamperRepository handles camper data access
type CamperRepository struct {
	db database.Executor
}

// NewCamperRepository creates a new camper repository
func NewCamperRepository(db database.Executor) *CamperRepository {
	return &CamperRepository{db: db}
}

// List returns every camper ordered by id
func (r *CamperRepository) List(ctx context.Context) ([]*model.Camper, error) {
	rows, err := r.db.Query(ctx, `SELECT `+camperColumns+` FROM campers c ORDER BY c.id`)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanCamper)
}

// GetByID retrieves a camper by ID, or nil when it does not exist
func (r *CamperRepository) GetByID(ctx context.Context, id int64) (*model.Camper, error) {
	row := r.db.QueryRow(ctx, `SELECT `+camperColumns+` FROM campers c WHERE c.id = ?`, id)
	return getOne(row, scanCamper)
}

// Create inserts a camper and sets its ID
func (r *CamperRepository) Create(ctx context.Context, camper *model.Camper) error {
	id, err := insertReturningID(r.db.QueryRow(ctx,
		`INSERT INTO campers (name, age) VALUES (?, ?) RETURNING id`,
		camper.Name, camper.Age,
	))
	if err != nil {
		return err
	}
	camper.ID = id
	return nil
}

// Update writes every mutable field of an existing camper
func (r *CamperRepository) Update(ctx context.Context, camper *model.Camper) error {
	res, err := r.db.Exec(ctx,
		`UPDATE campers SET name = ?, age = ? WHERE id = ?`,
		camper.Name, camper.Age, camper.ID,
	)
	if err != nil {
		return err
	}
	return requireAffected(res, "camper", camper.ID)
}

// Delete removes a camper and its signups. Run it inside a transaction so
// both statements commit together.
func (r *CamperRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM signups WHERE camper_id = ?`, id); err != nil {
		return err
	}
	res, err := r.db.Exec(ctx, `DELETE FROM campers WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireAffected(res, "camper", id)
}

// ListByActivity returns the distinct campers signed up for an activity
func (r *CamperRepository) ListByActivity(ctx context.Context, activityID int64) ([]*model.Camper, error) {
	rows, err := r.db.Query(ctx, `
		SELECT DISTINCT `+camperColumns+`
		FROM campers c
		JOIN signups s ON s.camper_id = c.id
		WHERE s.activity_id = ?
		ORDER BY c.id`, activityID)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanCamper)
}
