package postgres

import (
	"context"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
)

const slotsSchema = `CREATE TABLE IF NOT EXISTS site_slot (
	key        TEXT PRIMARY KEY,
	value      BYTEA NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

func New(dsn string) (*sqlx.DB, error) {
	return sqlx.Connect("pgx", dsn)
}

// EnsureSlots creates the slot table when it is missing.
func EnsureSlots(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, slotsSchema); err != nil {
		return fmt.Errorf("creating site_slot table: %w", err)
	}
	return nil
}
