package testdb

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/forgo/camp/internal/database"
	"github.com/forgo/camp/internal/repository"
)

// SQL provides a migrated SQL database for one test.
type SQL struct {
	DB    *database.SQLDB
	Store *repository.Store
	t     *testing.T
}

var (
	// counterMu protects the name counter
	counterMu sync.Mutex
	counter   int64
)

// uniqueName generates a unique database or namespace name
func uniqueName(prefix string) string {
	counterMu.Lock()
	defer counterMu.Unlock()
	counter++
	return fmt.Sprintf("%s_%d_%d", prefix, time.Now().UnixNano(), counter)
}

// NewSQLite creates a migrated SQLite database in a temp file. The file is
// removed when the test finishes.
func NewSQLite(t *testing.T) *SQL {
	t.Helper()

	path := filepath.Join(t.TempDir(), uniqueName("camp")+".db")
	return open(t, "sqlite:///"+path)
}

// open connects to uri, applies migrations and registers cleanup
func open(t *testing.T, uri string) *SQL {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cfg, err := database.ParseURI(uri)
	if err != nil {
		t.Fatalf("testdb: %v", err)
	}
	db, err := database.NewSQLDB(cfg)
	if err != nil {
		t.Fatalf("testdb: %v", err)
	}
	if err := db.Connect(ctx); err != nil {
		t.Fatalf("testdb: failed to connect: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if _, err := database.Migrate(ctx, db); err != nil {
		t.Fatalf("testdb: migration failed: %v", err)
	}

	return &SQL{
		DB:    db,
		Store: repository.NewStore(db),
		t:     t,
	}
}

// Ctx returns a context with a reasonable timeout for test operations.
// The context is left to expire; test operations finish well within it.
func (s *SQL) Ctx() context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	_ = cancel
	return ctx
}

// MustExec executes a statement and fails the test on error.
func (s *SQL) MustExec(query string, args ...interface{}) {
	s.t.Helper()
	if _, err := s.DB.Exec(s.Ctx(), query, args...); err != nil {
		s.t.Fatalf("testdb: exec failed: %v\nQuery: %s", err, query)
	}
}

// Count returns the number of rows in table.
func (s *SQL) Count(table string) int {
	s.t.Helper()
	var n int
	if err := s.DB.QueryRow(s.Ctx(), "SELECT COUNT(*) FROM "+table).Scan(&n); err != nil {
		s.t.Fatalf("testdb: count %s: %v", table, err)
	}
	return n
}

// Reset clears all rows while preserving schema.
func (s *SQL) Reset() {
	s.t.Helper()
	for _, table := range []string{database.TableSignups, database.TableCampers, database.TableActivities} {
		s.MustExec("DELETE FROM " + table)
	}
}
