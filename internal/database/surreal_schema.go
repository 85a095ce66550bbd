package database

import (
	"context"
	"fmt"
	"strings"
)

// SurrealDB tables. Integer record ids are issued from the sequence table,
// one record per table.
const (
	SurrealCamper   = "camper"
	SurrealActivity = "activity"
	SurrealSignup   = "signup"
	SurrealSequence = "sequence"
)

// SurrealSchema defines the tables, field assertions and cascade events.
// Every statement is idempotent.
var SurrealSchema = []string{
	`DEFINE TABLE IF NOT EXISTS camper SCHEMAFULL`,
	`DEFINE FIELD IF NOT EXISTS name ON camper TYPE string ASSERT string::len(string::trim($value)) > 0`,
	`DEFINE FIELD IF NOT EXISTS age ON camper TYPE int ASSERT $value >= 8 AND $value <= 18`,

	`DEFINE TABLE IF NOT EXISTS activity SCHEMAFULL`,
	`DEFINE FIELD IF NOT EXISTS name ON activity TYPE string ASSERT string::len(string::trim($value)) > 0`,
	`DEFINE FIELD IF NOT EXISTS difficulty ON activity TYPE int DEFAULT 0`,

	`DEFINE TABLE IF NOT EXISTS signup SCHEMAFULL`,
	`DEFINE FIELD IF NOT EXISTS time ON signup TYPE int ASSERT $value >= 0 AND $value <= 23`,
	`DEFINE FIELD IF NOT EXISTS activity ON signup TYPE record<activity>`,
	`DEFINE FIELD IF NOT EXISTS camper ON signup TYPE record<camper>`,
	`DEFINE INDEX IF NOT EXISTS ix_signup_activity ON signup FIELDS activity`,
	`DEFINE INDEX IF NOT EXISTS ix_signup_camper ON signup FIELDS camper`,

	`DEFINE EVENT IF NOT EXISTS cascade_signups ON camper WHEN $event = "DELETE" THEN (DELETE signup WHERE camper = $before.id)`,
	`DEFINE EVENT IF NOT EXISTS cascade_signups ON activity WHEN $event = "DELETE" THEN (DELETE signup WHERE activity = $before.id)`,

	`DEFINE TABLE IF NOT EXISTS sequence SCHEMALESS`,
}

// SurrealSchemaQL renders SurrealSchema as a script.
func SurrealSchemaQL() string {
	return strings.Join(SurrealSchema, ";\n") + ";\n"
}

// DefineSurrealSchema applies SurrealSchema in one request.
func DefineSurrealSchema(ctx context.Context, db Database) error {
	if err := db.Execute(ctx, SurrealSchemaQL(), nil); err != nil {
		return fmt.Errorf("define surreal schema: %w", err)
	}
	return nil
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
