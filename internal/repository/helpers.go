package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/forgo/camp/internal/database"
	"github.com/forgo/camp/internal/model"
)

// scanner is satisfied by *sql.Row and *sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

const (
	camperColumns   = "c.id, c.name, c.age"
	activityColumns = "a.id, a.name, a.difficulty"
	signupColumns   = `s.id, s."time", s.activity_id, s.camper_id`
)

func scanCamper(row scanner) (*model.Camper, error) {
	var c model.Camper
	if err := row.Scan(&c.ID, &c.Name, &c.Age); err != nil {
		return nil, err
	}
	return &c, nil
}

func scanActivity(row scanner) (*model.Activity, error) {
	var a model.Activity
	if err := row.Scan(&a.ID, &a.Name, &a.Difficulty); err != nil {
		return nil, err
	}
	return &a, nil
}

func scanSignup(row scanner) (*model.Signup, error) {
	var s model.Signup
	if err := row.Scan(&s.ID, &s.Time, &s.ActivityID, &s.CamperID); err != nil {
		return nil, err
	}
	return &s, nil
}

// scanSignupWithActivity reads signupColumns followed by activityColumns
func scanSignupWithActivity(row scanner) (*model.Signup, error) {
	var (
		s model.Signup
		a model.Activity
	)
	err := row.Scan(&s.ID, &s.Time, &s.ActivityID, &s.CamperID, &a.ID, &a.Name, &a.Difficulty)
	if err != nil {
		return nil, err
	}
	s.Activity = &a
	return &s, nil
}

// collect drains rows through scan. It always returns a non-nil slice on success.
func collect[T any](rows *sql.Rows, scan func(scanner) (*T, error)) ([]*T, error) {
	defer func() { _ = rows.Close() }()

	out := make([]*T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, database.TranslateError(err)
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, database.TranslateError(err)
	}
	return out, nil
}

// getOne runs a single-row lookup and maps no rows to nil, nil
func getOne[T any](row *sql.Row, scan func(scanner) (*T, error)) (*T, error) {
	item, err := scan(row)
	if err != nil {
		err = database.TranslateError(err)
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return item, nil
}

// insertReturningID runs an INSERT ... RETURNING id statement
func insertReturningID(row *sql.Row) (int64, error) {
	var id int64
	if err := row.Scan(&id); err != nil {
		return 0, database.TranslateError(err)
	}
	return id, nil
}

// requireAffected turns a zero-row write into database.ErrNotFound
func requireAffected(res sql.Result, what string, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %s %d", database.ErrNotFound, what, id)
	}
	return nil
}
