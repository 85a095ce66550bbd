package database

import (
	"context"
	"fmt"

	"github.com/surrealdb/surrealdb.go"
)

// Database is a SurrealQL executor. Results come back as one
// {"status": ..., "result": ...} map per statement.
type Database interface {
	Query(ctx context.Context, query string, vars map[string]interface{}) ([]interface{}, error)
	QueryOne(ctx context.Context, query string, vars map[string]interface{}) (interface{}, error)
	Execute(ctx context.Context, query string, vars map[string]interface{}) error
	Ping(ctx context.Context) error
	Close() error
}

// SurrealDB implements the Database interface for SurrealDB
type SurrealDB struct {
	db     *surrealdb.DB
	config Config
}

// NewSurrealDB creates a new SurrealDB instance
func NewSurrealDB(cfg Config) *SurrealDB {
	return &SurrealDB{
		config: cfg,
	}
}

// Connect establishes a connection to SurrealDB
func (s *SurrealDB) Connect(ctx context.Context) error {
	scheme := s.config.Scheme
	if scheme == "" {
		scheme = "ws"
	}
	endpoint := fmt.Sprintf("%s://%s:%s", scheme, s.config.Host, s.config.Port)

	db, err := surrealdb.FromEndpointURLString(ctx, endpoint)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}

	if s.config.User != "" {
		_, err = db.SignIn(ctx, &surrealdb.Auth{
			Username: s.config.User,
			Password: s.config.Password,
		})
		if err != nil {
			_ = db.Close(ctx)
			return fmt.Errorf("%w: signin failed: %v", ErrConnection, err)
		}
	}

	if err := db.Use(ctx, s.config.Namespace, s.config.Database); err != nil {
		_ = db.Close(ctx)
		return fmt.Errorf("%w: use failed: %v", ErrConnection, err)
	}

	s.db = db
	return nil
}

// Close closes the database connection
func (s *SurrealDB) Close() error {
	if s.db != nil {
		return s.db.Close(context.Background())
	}
	return nil
}

// Ping checks the database connection
func (s *SurrealDB) Ping(ctx context.Context) error {
	if s.db == nil {
		return ErrConnection
	}
	if _, err := s.db.Version(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}
	return nil
}

// Query executes a query and returns one status/result map per statement.
// A statement that failed with a THROW carrying one of the package sentinels
// is reported as that sentinel.
func (s *SurrealDB) Query(ctx context.Context, query string, vars map[string]interface{}) ([]interface{}, error) {
	if s.db == nil {
		return nil, ErrConnection
	}

	results, err := surrealdb.Query[interface{}](ctx, s.db, query, vars)
	if results == nil {
		if err != nil {
			return nil, translateSurrealError(err.Error())
		}
		return nil, nil
	}

	output := make([]interface{}, 0, len(*results))
	var failure string
	for _, r := range *results {
		if r.Status != "OK" {
			// a failed transaction marks every statement as failed; keep the
			// message of the statement that caused it
			msg := "query failed"
			if r.Error != nil {
				msg = r.Error.Message
			}
			if failure == "" || containsFold(failure, notExecuted) {
				failure = msg
			}
			continue
		}
		output = append(output, map[string]interface{}{
			"status": r.Status,
			"result": r.Result,
		})
	}
	if failure != "" {
		return nil, translateSurrealError(failure)
	}
	if err != nil {
		return nil, translateSurrealError(err.Error())
	}

	return output, nil
}

// QueryOne executes a query and returns the first record of the last statement.
// Transaction blocks report their result on the final statement.
func (s *SurrealDB) QueryOne(ctx context.Context, query string, vars map[string]interface{}) (interface{}, error) {
	results, err := s.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	if len(results) == 0 {
		return nil, ErrNotFound
	}

	last := results[len(results)-1]
	if resp, ok := last.(map[string]interface{}); ok {
		if resultData, ok := resp["result"].([]interface{}); ok {
			if len(resultData) == 0 {
				return nil, ErrNotFound
			}
			return resultData[0], nil
		}
		if resp["result"] == nil {
			return nil, ErrNotFound
		}
		// scalar values
		return resp["result"], nil
	}

	return last, nil
}

// Execute runs a query without returning results
func (s *SurrealDB) Execute(ctx context.Context, query string, vars map[string]interface{}) error {
	_, err := s.Query(ctx, query, vars)
	return err
}

// notExecuted is reported for the statements of a cancelled transaction
const notExecuted = "not executed due to a failed transaction"

// translateSurrealError maps THROW messages raised by the repositories back
// onto the package sentinels.
func translateSurrealError(msg string) error {
	for _, sentinel := range []error{ErrForeignKey, ErrNotFound, ErrDuplicate, ErrConstraint} {
		if containsFold(msg, sentinel.Error()) {
			return fmt.Errorf("%w: %s", sentinel, msg)
		}
	}
	if containsFold(msg, "already exists") {
		return fmt.Errorf("%w: %s", ErrDuplicate, msg)
	}
	if containsFold(msg, "must conform") || containsFold(msg, "assert") {
		return fmt.Errorf("%w: %s", ErrConstraint, msg)
	}
	return fmt.Errorf("%w: %s", ErrQuery, msg)
}
