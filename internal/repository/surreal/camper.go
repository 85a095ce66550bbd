package surreal

import (
	"context"
	"fmt"

	"github.com/forgo/camp/internal/database"
	"github.com/forgo/camp/internal/model"
)

const camperFields = `record::id(id) AS id, name, age`

// CamperRepository handles camper data access
type CamperRepository struct {
	db database.Database
}

// NewCamperRepository creates a new camper repository
func NewCamperRepository(db database.Database) *CamperRepository {
	return &CamperRepository{db: db}
}

// List returns every camper ordered by id
func (r *CamperRepository) List(ctx context.Context) ([]*model.Camper, error) {
	results, err := r.db.Query(ctx, `SELECT `+camperFields+` FROM camper ORDER BY id`, nil)
	if err != nil {
		return nil, err
	}
	return parseCampers(extractQueryResults(results, 0)), nil
}

// GetByID retrieves a camper by ID, or nil when it does not exist
func (r *CamperRepository) GetByID(ctx context.Context, id int64) (*model.Camper, error) {
	m, err := queryOneMap(r.db.QueryOne(ctx,
		`SELECT `+camperFields+` FROM type::thing('camper', $id)`,
		map[string]interface{}{"id": id},
	))
	if err != nil || m == nil {
		return nil, err
	}
	return parseCamper(m), nil
}

// Create inserts a camper under the next sequence id
func (r *CamperRepository) Create(ctx context.Context, camper *model.Camper) error {
	tb := database.NewTxBuilder()
	tb.AddRaw(nextIDStatement)
	tb.AddRaw(`CREATE type::thing('camper', $id) CONTENT { name: $name, age: $age }`)
	tb.AddRaw(`RETURN $id`)
	query, _ := tb.Build()

	result, err := r.db.QueryOne(ctx, query, map[string]interface{}{
		"table": database.SurrealCamper,
		"name":  camper.Name,
		"age":   camper.Age,
	})
	if err != nil {
		return err
	}
	id, ok := toInt64(result)
	if !ok {
		return fmt.Errorf("%w: unexpected id %v", database.ErrQuery, result)
	}
	camper.ID = id
	return nil
}

// Update writes every mutable field of an existing camper
func (r *CamperRepository) Update(ctx context.Context, camper *model.Camper) error {
	results, err := r.db.Query(ctx,
		`UPDATE type::thing('camper', $id) SET name = $name, age = $age`,
		map[string]interface{}{"id": camper.ID, "name": camper.Name, "age": camper.Age},
	)
	if err != nil {
		return err
	}
	if len(extractQueryResults(results, 0)) == 0 {
		return fmt.Errorf("%w: camper %d", database.ErrNotFound, camper.ID)
	}
	return nil
}

// Delete removes a camper and its signups in one transaction block
func (r *CamperRepository) Delete(ctx context.Context, id int64) error {
	vars := map[string]interface{}{"id": id}
	return database.NewAtomicBatch().
		Add(`DELETE signup WHERE camper = type::thing('camper', $id)`, vars).
		Add(`DELETE type::thing('camper', $id)`, vars).
		Execute(ctx, r.db)
}

// ListByActivity returns the campers signed up for an activity
func (r *CamperRepository) ListByActivity(ctx context.Context, activityID int64) ([]*model.Camper, error) {
	results, err := r.db.Query(ctx, `
		SELECT `+camperFields+` FROM camper
		WHERE id IN (SELECT VALUE camper FROM signup WHERE activity = type::thing('activity', $activity_id))
		ORDER BY id`,
		map[string]interface{}{"activity_id": activityID},
	)
	if err != nil {
		return nil, err
	}
	return parseCampers(extractQueryResults(results, 0)), nil
}

func parseCamper(m map[string]interface{}) *model.Camper {
	return &model.Camper{
		ID:   getInt64(m, "id"),
		Name: getString(m, "name"),
		Age:  getInt(m, "age"),
	}
}

func parseCampers(rows []map[string]interface{}) []*model.Camper {
	campers := make([]*model.Camper, 0, len(rows))
	for _, m := range rows {
		campers = append(campers, parseCamper(m))
	}
	return campers
}
