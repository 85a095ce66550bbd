package surreal

import (
	"context"
	"fmt"

	"github.com/forgo/camp/internal/database"
	"github.com/forgo/camp/internal/model"
)

const signupFields = `record::id(id) AS id, time, record::id(activity) AS activity_id, record::id(camper) AS camper_id`

// SignupRepository handles signup data access
type SignupRepository struct {
	db database.Database
}

// NewSignupRepository creates a new signup repository
func NewSignupRepository(db database.Database) *SignupRepository {
	return &SignupRepository{db: db}
}

// Create inserts a signup. The reference check runs in the same transaction
// block as the insert and fails with database.ErrForeignKey.
func (r *SignupRepository) Create(ctx context.Context, signup *model.Signup) error {
	tb := database.NewTxBuilder()
	tb.AddRaw(`LET $activity = type::thing('activity', $activity_id)`)
	tb.AddRaw(`LET $camper = type::thing('camper', $camper_id)`)
	tb.AddRaw(`LET $found = (SELECT VALUE id FROM [$activity, $camper])`)
	tb.AddRaw(fmt.Sprintf(`IF array::len($found) < 2 { THROW "%s: signup references a missing camper or activity" }`, database.ErrForeignKey))
	tb.AddRaw(nextIDStatement)
	tb.AddRaw(`CREATE type::thing('signup', $id) CONTENT { time: $time, activity: $activity, camper: $camper }`)
	tb.AddRaw(`RETURN $id`)
	query, _ := tb.Build()

	result, err := r.db.QueryOne(ctx, query, map[string]interface{}{
		"table":       database.SurrealSignup,
		"time":        signup.Time,
		"activity_id": signup.ActivityID,
		"camper_id":   signup.CamperID,
	})
	if err != nil {
		return err
	}
	id, ok := toInt64(result)
	if !ok {
		return fmt.Errorf("%w: unexpected id %v", database.ErrQuery, result)
	}
	signup.ID = id
	return nil
}

// GetByID retrieves a signup by ID, or nil when it does not exist
func (r *SignupRepository) GetByID(ctx context.Context, id int64) (*model.Signup, error) {
	m, err := queryOneMap(r.db.QueryOne(ctx,
		`SELECT `+signupFields+` FROM type::thing('signup', $id)`,
		map[string]interface{}{"id": id},
	))
	if err != nil || m == nil {
		return nil, err
	}
	return parseSignup(m), nil
}

// ListByCamper returns a camper's signups ordered by id, each with its activity
func (r *SignupRepository) ListByCamper(ctx context.Context, camperID int64) ([]*model.Signup, error) {
	results, err := r.db.Query(ctx, `
		SELECT `+signupFields+`, activity.name AS activity_name, activity.difficulty AS activity_difficulty
		FROM signup
		WHERE camper = type::thing('camper', $camper_id)
		ORDER BY id`,
		map[string]interface{}{"camper_id": camperID},
	)
	if err != nil {
		return nil, err
	}

	rows := extractQueryResults(results, 0)
	signups := make([]*model.Signup, 0, len(rows))
	for _, m := range rows {
		s := parseSignup(m)
		s.Activity = &model.Activity{
			ID:         s.ActivityID,
			Name:       getString(m, "activity_name"),
			Difficulty: getInt(m, "activity_difficulty"),
		}
		signups = append(signups, s)
	}
	return signups, nil
}

// ListByActivity returns an activity's signups ordered by id
func (r *SignupRepository) ListByActivity(ctx context.Context, activityID int64) ([]*model.Signup, error) {
	results, err := r.db.Query(ctx,
		`SELECT `+signupFields+` FROM signup WHERE activity = type::thing('activity', $activity_id) ORDER BY id`,
		map[string]interface{}{"activity_id": activityID},
	)
	if err != nil {
		return nil, err
	}

	rows := extractQueryResults(results, 0)
	signups := make([]*model.Signup, 0, len(rows))
	for _, m := range rows {
		signups = append(signups, parseSignup(m))
	}
	return signups, nil
}

func parseSignup(m map[string]interface{}) *model.Signup {
	return &model.Signup{
		ID:         getInt64(m, "id"),
		Time:       getInt(m, "time"),
		ActivityID: getInt64(m, "activity_id"),
		CamperID:   getInt64(m, "camper_id"),
	}
}
