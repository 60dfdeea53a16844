package slot

import (
	"context"
	"sync"

	"github.com/njprem/discover-zimbabwe/internal/repository/ports"
)

// MemoryStore keeps slots in process memory. Values are copied on the way in
// and out so callers cannot mutate stored bytes.
type MemoryStore struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{slots: make(map[string][]byte)}
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.slots[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, value []byte) error {
	cp := make([]byte, len(value))
	copy(cp, value)
	s.mu.Lock()
	s.slots[key] = cp
	s.mu.Unlock()
	return nil
}

var _ ports.SlotStore = (*MemoryStore)(nil)
