package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib" // register pgx as a database/sql driver
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// Executor runs SQL written with ? placeholders. Implementations rebind the
// placeholders for their dialect and translate driver errors.
type Executor interface {
	Exec(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	Query(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// Dialect captures the differences between the SQL backends.
type Dialect struct {
	Driver     Driver
	DriverName string // database/sql driver name
	Numbered   bool   // $1 style placeholders
	IDColumn   string // column definition for generated integer keys
	RefColumn  string // column type referencing an IDColumn
}

var (
	SQLiteDialect = Dialect{
		Driver:     DriverSQLite,
		DriverName: "sqlite",
		IDColumn:   "INTEGER",
		RefColumn:  "INTEGER",
	}
	PostgresDialect = Dialect{
		Driver:     DriverPostgres,
		DriverName: "pgx",
		Numbered:   true,
		IDColumn:   "BIGINT GENERATED BY DEFAULT AS IDENTITY",
		RefColumn:  "BIGINT",
	}
)

// DialectFor returns the dialect of a SQL driver.
func DialectFor(d Driver) (Dialect, error) {
	switch d {
	case DriverSQLite:
		return SQLiteDialect, nil
	case DriverPostgres:
		return PostgresDialect, nil
	}
	return Dialect{}, fmt.Errorf("%w: %s is not a SQL driver", ErrUnsupportedURI, d)
}

// Rebind rewrites ? placeholders to $n for numbered dialects. Question marks
// inside single-quoted literals are left alone.
func (d Dialect) Rebind(query string) string {
	if !d.Numbered || !strings.Contains(query, "?") {
		return query
	}
	var sb strings.Builder
	sb.Grow(len(query) + 8)
	n := 0
	quoted := false
	for _, r := range query {
		switch {
		case r == '\'':
			quoted = !quoted
			sb.WriteRune(r)
		case r == '?' && !quoted:
			n++
			sb.WriteByte('$')
			sb.WriteString(strconv.Itoa(n))
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// SQLDB is a database/sql connection pool for SQLite or Postgres.
type SQLDB struct {
	db      *sql.DB
	config  Config
	dialect Dialect
}

// NewSQLDB creates a new SQL database handle. Call Connect before use.
func NewSQLDB(cfg Config) (*SQLDB, error) {
	dialect, err := DialectFor(cfg.Driver)
	if err != nil {
		return nil, err
	}
	return &SQLDB{config: cfg, dialect: dialect}, nil
}

// Connect opens the pool and verifies it with a ping
func (s *SQLDB) Connect(ctx context.Context) error {
	db, err := sql.Open(s.dialect.DriverName, s.config.DSN)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}
	switch {
	case strings.Contains(s.config.DSN, ":memory:"):
		// every connection to :memory: is a separate database
		db.SetMaxOpenConns(1)
	case s.config.MaxOpenConns > 0:
		db.SetMaxOpenConns(s.config.MaxOpenConns)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}
	s.db = db
	return nil
}

// Close closes the pool
func (s *SQLDB) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Ping checks the database connection
func (s *SQLDB) Ping(ctx context.Context) error {
	if s.db == nil {
		return ErrConnection
	}
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}
	return nil
}

// Dialect returns the SQL dialect of the connection
func (s *SQLDB) Dialect() Dialect {
	return s.dialect
}

func (s *SQLDB) Exec(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	if s.db == nil {
		return nil, ErrConnection
	}
	res, err := s.db.ExecContext(ctx, s.dialect.Rebind(query), args...)
	return res, TranslateError(err)
}

func (s *SQLDB) Query(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	if s.db == nil {
		return nil, ErrConnection
	}
	rows, err := s.db.QueryContext(ctx, s.dialect.Rebind(query), args...)
	return rows, TranslateError(err)
}

// QueryRow runs a single-row query. Errors surface from Scan and should be
// passed through TranslateError.
func (s *SQLDB) QueryRow(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return s.db.QueryRowContext(ctx, s.dialect.Rebind(query), args...)
}

// BeginTx starts a new transaction
func (s *SQLDB) BeginTx(ctx context.Context) (*SQLTx, error) {
	if s.db == nil {
		return nil, ErrConnection
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: begin: %v", ErrConnection, TranslateError(err))
	}
	return &SQLTx{tx: tx, dialect: s.dialect}, nil
}

// SQLTx is one database/sql transaction.
type SQLTx struct {
	tx      *sql.Tx
	dialect Dialect
}

func (t *SQLTx) Exec(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	res, err := t.tx.ExecContext(ctx, t.dialect.Rebind(query), args...)
	return res, TranslateError(err)
}

func (t *SQLTx) Query(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	rows, err := t.tx.QueryContext(ctx, t.dialect.Rebind(query), args...)
	return rows, TranslateError(err)
}

func (t *SQLTx) QueryRow(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return t.tx.QueryRowContext(ctx, t.dialect.Rebind(query), args...)
}

func (t *SQLTx) Commit() error {
	if err := t.tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit failed: %v", ErrQuery, TranslateError(err))
	}
	return nil
}

// Rollback aborts the transaction. Rolling back a finished transaction is a no-op.
func (t *SQLTx) Rollback() error {
	if err := t.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return err
	}
	return nil
}

// WithTransaction executes fn within a transaction.
// If fn returns an error, the transaction is rolled back.
func WithTransaction(ctx context.Context, db *SQLDB, fn func(tx *SQLTx) error) error {
	tx, err := db.BeginTx(ctx)
	if err != nil {
		return err
	}

	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}

// TranslateError maps driver errors onto the package sentinels. The driver
// error stays in the chain for logging.
func TranslateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23503":
			return fmt.Errorf("%w: %s", ErrForeignKey, pgErr.ConstraintName)
		case "23505":
			return fmt.Errorf("%w: %s", ErrDuplicate, pgErr.ConstraintName)
		case "23502", "23514":
			return fmt.Errorf("%w: %s", ErrConstraint, pgErr.ConstraintName)
		}
		return fmt.Errorf("%w: %v", ErrQuery, err)
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		switch liteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
			return fmt.Errorf("%w: %v", ErrForeignKey, err)
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return fmt.Errorf("%w: %v", ErrDuplicate, err)
		case sqlite3.SQLITE_CONSTRAINT_CHECK, sqlite3.SQLITE_CONSTRAINT_NOTNULL:
			return fmt.Errorf("%w: %v", ErrConstraint, err)
		}
		if liteErr.Code()&0xff == sqlite3.SQLITE_CONSTRAINT {
			// primary code only, without extended result codes
			if strings.Contains(err.Error(), "FOREIGN KEY") {
				return fmt.Errorf("%w: %v", ErrForeignKey, err)
			}
			return fmt.Errorf("%w: %v", ErrConstraint, err)
		}
		return fmt.Errorf("%w: %v", ErrQuery, err)
	}

	return err
}
