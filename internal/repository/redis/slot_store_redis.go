package redis

import (
	"context"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/njprem/discover-zimbabwe/internal/repository/ports"
)

// SlotStore keeps each slot as a plain string key, without expiry.
type SlotStore struct {
	client goredis.Cmdable
	prefix string
}

func NewClient(addr, password string, db int) *goredis.Client {
	return goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

func NewSlotStore(client goredis.Cmdable, prefix string) *SlotStore {
	return &SlotStore{client: client, prefix: prefix}
}

func (s *SlotStore) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get slot %s: %w", key, err)
	}
	return value, nil
}

func (s *SlotStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("set slot %s: %w", key, err)
	}
	return nil
}

var _ ports.SlotStore = (*SlotStore)(nil)
