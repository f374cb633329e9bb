package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates full-text search GIN indexes for PostgreSQL.
// These enable dashboard search over task titles and error messages and are
// not expressible in the Ent schema.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_tasks_title_gin
		ON tasks USING gin(to_tsvector('english', title || ' ' || COALESCE(description, '')))`)
	if err != nil {
		return fmt.Errorf("failed to create task title GIN index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_tasks_error_message_gin
		ON tasks USING gin(to_tsvector('english', COALESCE(error_message, '')))`)
	if err != nil {
		return fmt.Errorf("failed to create task error_message GIN index: %w", err)
	}

	return nil
}
