package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// appendOnlyTables are audit tables that must never be updated or deleted.
// The Ent schema rejects mutations at the application layer; these triggers
// enforce the same rule for anything reaching the database directly.
var appendOnlyTables = []string{"execution_logs", "user_feedback"}

// CreateAppendOnlyPolicies installs BEFORE UPDATE/DELETE triggers that raise
// on the append-only audit tables. Ent/Atlas cannot express these.
func CreateAppendOnlyPolicies(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE OR REPLACE FUNCTION reject_mutation() RETURNS trigger AS $$
		BEGIN
			RAISE EXCEPTION '% is append-only', TG_TABLE_NAME;
		END;
		$$ LANGUAGE plpgsql`)
	if err != nil {
		return fmt.Errorf("failed to create reject_mutation function: %w", err)
	}

	for _, table := range appendOnlyTables {
		_, err := db.ExecContext(ctx, fmt.Sprintf(
			`DO $$
			BEGIN
				IF NOT EXISTS (
					SELECT 1 FROM pg_trigger WHERE tgname = '%s_append_only'
				) THEN
					CREATE TRIGGER %s_append_only
					BEFORE UPDATE OR DELETE ON %s
					FOR EACH ROW EXECUTE FUNCTION reject_mutation();
				END IF;
			END
			$$`, table, table, table))
		if err != nil {
			return fmt.Errorf("failed to create append-only trigger on %s: %w", table, err)
		}
	}

	return nil
}
