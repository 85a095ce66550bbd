package testdb

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/forgo/camp/internal/database"
	"github.com/forgo/camp/internal/repository/surreal"
)

// SurrealEnv names the variable holding the SurrealDB test endpoint,
// e.g. ws://root:root@localhost:8000
const SurrealEnv = "TEST_SURREAL_URI"

// Surreal provides an isolated SurrealDB namespace for one test.
type Surreal struct {
	DB        *database.SurrealDB
	Store     *surreal.Store
	Namespace string
}

// NewSurreal connects to the SurrealDB named by TEST_SURREAL_URI under a
// fresh namespace with the schema applied. The test is skipped when the
// variable is unset. The namespace is removed on cleanup.
func NewSurreal(t *testing.T) *Surreal {
	t.Helper()

	uri := os.Getenv(SurrealEnv)
	if uri == "" {
		t.Skipf("testdb: %s not set", SurrealEnv)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cfg, err := database.ParseURI(uri)
	if err != nil {
		t.Fatalf("testdb: %v", err)
	}
	if cfg.Driver != database.DriverSurrealDB {
		t.Fatalf("testdb: %s must be a ws:// or wss:// URI", SurrealEnv)
	}
	cfg.Namespace = uniqueName("test")
	cfg.Database = "test"

	db := database.NewSurrealDB(cfg)
	if err := db.Connect(ctx); err != nil {
		t.Fatalf("testdb: failed to connect: %v", err)
	}
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = db.Execute(ctx, fmt.Sprintf("REMOVE NAMESPACE %s", cfg.Namespace), nil)
		_ = db.Close()
	})

	if err := database.DefineSurrealSchema(ctx, db); err != nil {
		t.Fatalf("testdb: %v", err)
	}

	return &Surreal{
		DB:        db,
		Store:     surreal.NewStore(db),
		Namespace: cfg.Namespace,
	}
}
