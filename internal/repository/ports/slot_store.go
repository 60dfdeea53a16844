package ports

import "context"

// SlotStore is a string-keyed durable store holding whole values. Get returns
// (nil, nil) when the key has never been written.
type SlotStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}
