// Package storage opens the configured backend and hands out its store.
package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/forgo/camp/internal/database"
	"github.com/forgo/camp/internal/repository"
	"github.com/forgo/camp/internal/repository/surreal"
	"github.com/forgo/camp/internal/service"
)

// Options configures Open
type Options struct {
	URI          string
	MaxOpenConns int
	// Migrate applies pending schema changes after connecting
	Migrate bool
	Logger  *slog.Logger
}

// Handle is an open storage backend
type Handle struct {
	Driver database.Driver
	Store  service.Store

	sql     *database.SQLDB
	surreal *database.SurrealDB
	logger  *slog.Logger
}

// Open connects to the backend named by opts.URI
func Open(ctx context.Context, opts Options) (*Handle, error) {
	cfg, err := database.ParseURI(opts.URI)
	if err != nil {
		return nil, err
	}
	cfg.MaxOpenConns = opts.MaxOpenConns

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	h := &Handle{Driver: cfg.Driver, logger: logger}

	switch cfg.Driver {
	case database.DriverSurrealDB:
		db := database.NewSurrealDB(cfg)
		if err := db.Connect(ctx); err != nil {
			return nil, err
		}
		h.surreal = db
		h.Store = surreal.NewStore(db)
	default:
		db, err := database.NewSQLDB(cfg)
		if err != nil {
			return nil, err
		}
		if err := db.Connect(ctx); err != nil {
			return nil, err
		}
		h.sql = db
		h.Store = repository.NewStore(db)
	}

	if opts.Migrate {
		if err := h.Migrate(ctx); err != nil {
			_ = h.Close()
			return nil, err
		}
	}
	return h, nil
}

// Migrate applies the schema for the backend
func (h *Handle) Migrate(ctx context.Context) error {
	if h.surreal != nil {
		if err := database.DefineSurrealSchema(ctx, h.surreal); err != nil {
			return err
		}
		h.logger.Info("surreal schema defined")
		return nil
	}

	ran, err := database.Migrate(ctx, h.sql)
	for _, m := range ran {
		h.logger.Info("migration applied", "version", m.Version, "name", m.Name)
	}
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// Schema returns the DDL the backend applies on Migrate
func (h *Handle) Schema() string {
	if h.surreal != nil {
		return database.SurrealSchemaQL()
	}
	return database.SchemaSQL(h.sql.Dialect())
}

// Ping checks the database connection
func (h *Handle) Ping(ctx context.Context) error {
	return h.Store.Ping(ctx)
}

// Close closes the underlying connection
func (h *Handle) Close() error {
	if h.surreal != nil {
		return h.surreal.Close()
	}
	if h.sql != nil {
		return h.sql.Close()
	}
	return nil
}

// SchemaFor renders the DDL for a URI without connecting
func SchemaFor(uri string) (string, error) {
	cfg, err := database.ParseURI(uri)
	if err != nil {
		return "", err
	}
	if cfg.Driver == database.DriverSurrealDB {
		return database.SurrealSchemaQL(), nil
	}
	dialect, err := database.DialectFor(cfg.Driver)
	if err != nil {
		return "", err
	}
	return database.SchemaSQL(dialect), nil
}
