package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// EnsureAuditSchema creates the operator_actions table if it is missing.
// Safe to call at startup.
func EnsureAuditSchema(db *sql.DB) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	exists, err := tableExists(ctx, db, "operator_actions")
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	ddl := `CREATE TABLE operator_actions (
		id BIGSERIAL PRIMARY KEY,
		operator TEXT NOT NULL,
		action TEXT NOT NULL,
		resource TEXT NOT NULL,
		record_id BIGINT,
		detail TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`
	if _, err := db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("creating operator_actions failed: %w", err)
	}
	return nil
}

func tableExists(ctx context.Context, db *sql.DB, table string) (bool, error) {
	row := db.QueryRowContext(ctx, `SELECT 1 FROM information_schema.tables WHERE table_name=$1`, table)
	var one int
	if err := row.Scan(&one); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
