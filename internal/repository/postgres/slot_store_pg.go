package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/njprem/discover-zimbabwe/internal/repository/ports"
)

type SlotStore struct {
	db *sqlx.DB
}

func NewSlotStore(db *sqlx.DB) *SlotStore {
	return &SlotStore{db: db}
}

func (s *SlotStore) Get(ctx context.Context, key string) ([]byte, error) {
	const query = `SELECT value FROM site_slot WHERE key = $1`

	var value []byte
	if err := s.db.GetContext(ctx, &value, query, key); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get slot %s: %w", key, err)
	}
	return value, nil
}

func (s *SlotStore) Set(ctx context.Context, key string, value []byte) error {
	const query = `
		INSERT INTO site_slot (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`
	if _, err := s.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("set slot %s: %w", key, err)
	}
	return nil
}

var _ ports.SlotStore = (*SlotStore)(nil)
