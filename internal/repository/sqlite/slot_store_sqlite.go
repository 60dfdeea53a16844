package sqlite

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
	var value []byte
	err := s.db.GetContext(ctx, &value, `SELECT value FROM slots WHERE key = ?`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get slot %s: %w", key, err)
	}
	return value, nil
}

func (s *SlotStore) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO slots (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, value)
	if err != nil {
		return fmt.Errorf("set slot %s: %w", key, err)
	}
	return nil
}

var _ ports.SlotStore = (*SlotStore)(nil)
