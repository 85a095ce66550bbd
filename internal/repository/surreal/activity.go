package surreal

import (
	"context"
	"fmt"

	"github.com/forgo/camp/internal/database"
	"github.com/forgo/camp/internal/model"
)

const activityFields = `record::id(id) AS id, name, difficulty`

// ActivityRepository handles activity data access
type ActivityRepository struct {
	db database.Database
}

// NewActivityRepository creates a new activity repository
func NewActivityRepository(db database.Database) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// List returns every activity ordered by id
func (r *ActivityRepository) List(ctx context.Context) ([]*model.Activity, error) {
	results, err := r.db.Query(ctx, `SELECT `+activityFields+` FROM activity ORDER BY id`, nil)
	if err != nil {
		return nil, err
	}
	return parseActivities(extractQueryResults(results, 0)), nil
}

// GetByID retrieves an activity by ID, or nil when it does not exist
func (r *ActivityRepository) GetByID(ctx context.Context, id int64) (*model.Activity, error) {
	m, err := queryOneMap(r.db.QueryOne(ctx,
		`SELECT `+activityFields+` FROM type::thing('activity', $id)`,
		map[string]interface{}{"id": id},
	))
	if err != nil || m == nil {
		return nil, err
	}
	return parseActivity(m), nil
}

// Create inserts an activity under the next sequence id
func (r *ActivityRepository) Create(ctx context.Context, activity *model.Activity) error {
	tb := database.NewTxBuilder()
	tb.AddRaw(nextIDStatement)
	tb.AddRaw(`CREATE type::thing('activity', $id) CONTENT { name: $name, difficulty: $difficulty }`)
	tb.AddRaw(`RETURN $id`)
	query, _ := tb.Build()

	result, err := r.db.QueryOne(ctx, query, map[string]interface{}{
		"table":      database.SurrealActivity,
		"name":       activity.Name,
		"difficulty": activity.Difficulty,
	})
	if err != nil {
		return err
	}
	id, ok := toInt64(result)
	if !ok {
		return fmt.Errorf("%w: unexpected id %v", database.ErrQuery, result)
	}
	activity.ID = id
	return nil
}

// Delete removes an activity and its signups in one transaction block
func (r *ActivityRepository) Delete(ctx context.Context, id int64) error {
	vars := map[string]interface{}{"id": id}
	return database.NewAtomicBatch().
		Add(`DELETE signup WHERE activity = type::thing('activity', $id)`, vars).
		Add(`DELETE type::thing('activity', $id)`, vars).
		Execute(ctx, r.db)
}

// ListByCamper returns the activities a camper is signed up for
func (r *ActivityRepository) ListByCamper(ctx context.Context, camperID int64) ([]*model.Activity, error) {
	results, err := r.db.Query(ctx, `
		SELECT `+activityFields+` FROM activity
		WHERE id IN (SELECT VALUE activity FROM signup WHERE camper = type::thing('camper', $camper_id))
		ORDER BY id`,
		map[string]interface{}{"camper_id": camperID},
	)
	if err != nil {
		return nil, err
	}
	return parseActivities(extractQueryResults(results, 0)), nil
}

func parseActivity(m map[string]interface{}) *model.Activity {
	return &model.Activity{
		ID:         getInt64(m, "id"),
		Name:       getString(m, "name"),
		Difficulty: getInt(m, "difficulty"),
	}
}

func parseActivities(rows []map[string]interface{}) []*model.Activity {
	activities := make([]*model.Activity, 0, len(rows))
	for _, m := range rows {
		activities = append(activities, parseActivity(m))
	}
	return activities
}
