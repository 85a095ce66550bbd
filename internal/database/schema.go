package database

import (
	"context"
	"fmt"
	"strings"
)

// Table names
const (
	TableCampers    = "campers"
	TableActivities = "activities"
	TableSignups    = "signups"

	migrationsTable = "schema_migrations"
)

// Constraint names follow pk_<table>, fk_<table>_<column>_<referred>,
// ck_<table>_<name>, ix_<table>_<column> and uq_<table>_<column>.

func PrimaryKeyName(table string) string { return "pk_" + table }

func ForeignKeyName(table, column, referred string) string {
	return "fk_" + table + "_" + column + "_" + referred
}

func CheckName(table, name string) string { return "ck_" + table + "_" + name }

func IndexName(table, column string) string { return "ix_" + table + "_" + column }

func UniqueName(table, column string) string { return "uq_" + table + "_" + column }

// Migration is one versioned schema change.
type Migration struct {
	Version    int
	Name       string
	Statements func(d Dialect) []string
}

// Migrations lists every schema change in apply order.
var Migrations = []Migration{
	{Version: 1, Name: "create_camp_tables", Statements: createCampTables},
}

func createCampTables(d Dialect) []string {
	campers := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %[1]s (
	id %[2]s,
	name TEXT NOT NULL,
	age INTEGER NOT NULL,
	CONSTRAINT %[3]s PRIMARY KEY (id),
	CONSTRAINT %[4]s CHECK (length(trim(name)) > 0),
	CONSTRAINT %[5]s CHECK (age BETWEEN 8 AND 18)
)`,
		TableCampers, d.IDColumn,
		PrimaryKeyName(TableCampers),
		CheckName(TableCampers, "name_present"),
		CheckName(TableCampers, "age_range"),
	)

	activities := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %[1]s (
	id %[2]s,
	name TEXT NOT NULL,
	difficulty INTEGER NOT NULL DEFAULT 0,
	CONSTRAINT %[3]s PRIMARY KEY (id),
	CONSTRAINT %[4]s CHECK (length(trim(name)) > 0)
)`,
		TableActivities, d.IDColumn,
		PrimaryKeyName(TableActivities),
		CheckName(TableActivities, "name_present"),
	)

	signups := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %[1]s (
	id %[2]s,
	"time" INTEGER NOT NULL,
	activity_id %[3]s NOT NULL,
	camper_id %[3]s NOT NULL,
	CONSTRAINT %[4]s PRIMARY KEY (id),
	CONSTRAINT %[5]s CHECK ("time" BETWEEN 0 AND 23),
	CONSTRAINT %[6]s FOREIGN KEY (activity_id) REFERENCES %[8]s (id) ON DELETE CASCADE,
	CONSTRAINT %[7]s FOREIGN KEY (camper_id) REFERENCES %[9]s (id) ON DELETE CASCADE
)`,
		TableSignups, d.IDColumn, d.RefColumn,
		PrimaryKeyName(TableSignups),
		CheckName(TableSignups, "time_range"),
		ForeignKeyName(TableSignups, "activity_id", TableActivities),
		ForeignKeyName(TableSignups, "camper_id", TableCampers),
		TableActivities, TableCampers,
	)

	return []string{
		campers,
		activities,
		signups,
		fmt.Sprintf("CREATE INDEX IF NOT EXISTS %s ON %s (activity_id)", IndexName(TableSignups, "activity_id"), TableSignups),
		fmt.Sprintf("CREATE INDEX IF NOT EXISTS %s ON %s (camper_id)", IndexName(TableSignups, "camper_id"), TableSignups),
	}
}

func migrationsTableDDL() string {
	return fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
	version INTEGER NOT NULL,
	name TEXT NOT NULL,
	applied_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	CONSTRAINT %s PRIMARY KEY (version)
)`, migrationsTable, PrimaryKeyName(migrationsTable))
}

// SchemaStatements returns the full DDL for a dialect, migrations table included.
func SchemaStatements(d Dialect) []string {
	stmts := []string{migrationsTableDDL()}
	for _, m := range Migrations {
		stmts = append(stmts, m.Statements(d)...)
	}
	return stmts
}

// SchemaSQL renders SchemaStatements as a script.
func SchemaSQL(d Dialect) string {
	var sb strings.Builder
	for _, stmt := range SchemaStatements(d) {
		sb.WriteString(stmt)
		sb.WriteString(";\n\n")
	}
	return sb.String()
}

// Migrate applies every pending migration, each in its own transaction.
// It returns the migrations applied by this call.
func Migrate(ctx context.Context, db *SQLDB) ([]Migration, error) {
	if _, err := db.Exec(ctx, migrationsTableDDL()); err != nil {
		return nil, fmt.Errorf("create %s: %w", migrationsTable, err)
	}

	applied, err := appliedVersions(ctx, db)
	if err != nil {
		return nil, err
	}

	var ran []Migration
	for _, m := range Migrations {
		if applied[m.Version] {
			continue
		}
		err := WithTransaction(ctx, db, func(tx *SQLTx) error {
			for _, stmt := range m.Statements(db.Dialect()) {
				if _, err := tx.Exec(ctx, stmt); err != nil {
					return err
				}
			}
			_, err := tx.Exec(ctx,
				"INSERT INTO "+migrationsTable+" (version, name) VALUES (?, ?)",
				m.Version, m.Name,
			)
			return err
		})
		if err != nil {
			return ran, fmt.Errorf("migration %d (%s): %w", m.Version, m.Name, err)
		}
		ran = append(ran, m)
	}
	return ran, nil
}

func appliedVersions(ctx context.Context, db *SQLDB) (map[int]bool, error) {
	rows, err := db.Query(ctx, "SELECT version FROM "+migrationsTable)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", migrationsTable, err)
	}
	defer func() { _ = rows.Close() }()

	versions := make(map[int]bool)
	for rows.Next() {
		var v int
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		versions[v] = true
	}
	return versions, rows.Err()
}
