package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/njprem/discover-zimbabwe/internal/domain"
	"github.com/njprem/discover-zimbabwe/internal/repository/slot"
)

type staticCatalog struct {
	items []domain.Destination
	err   error
}

func (s staticCatalog) ListAll(context.Context) ([]domain.Destination, error) {
	return s.items, s.err
}

func sampleCatalog() []domain.Destination {
	return []domain.Destination{
		{ID: 1, Name: "Victoria Falls", Location: "Matabeleland North", Description: "The world's largest sheet of falling water.", Category: domain.CategoryNature, Rating: decimal.RequireFromString("4.9"), ReviewCount: 2847},
		{ID: 2, Name: "Great Zimbabwe", Location: "Masvingo", Description: "Ancient city ruins of the Kingdom of Zimbabwe.", Category: domain.CategoryHistorical, Rating: decimal.RequireFromString("4.7"), ReviewCount: 1523},
		{ID: 3, Name: "Hwange National Park", Location: "Matabeleland North", Description: "Zimbabwe's largest game reserve.", Category: domain.CategoryWildlife, Rating: decimal.RequireFromString("4.8"), ReviewCount: 1876},
		{ID: 4, Name: "Mana Pools", Location: "Mashonaland Central", Description: "Remote wilderness and incredible wildlife encounters.", Category: domain.CategoryWildlife, Rating: decimal.RequireFromString("4.9"), ReviewCount: 1234},
		{ID: 5, Name: "Lake Kariba", Location: "Mashonaland West", Description: "One of the world's largest man-made lakes.", Category: domain.CategoryWater, Rating: decimal.RequireFromString("4.6"), ReviewCount: 987},
		{ID: 6, Name: "Eastern Highlands", Location: "Manicaland", Description: "Mountainous region with stunning scenery, waterfalls, and cool climate.", Category: domain.CategoryNature, Rating: decimal.RequireFromString("4.7"), ReviewCount: 1456},
	}
}

func newTestCatalog(t *testing.T) *CatalogService {
	t.Helper()
	svc, err := NewCatalogService(context.Background(), staticCatalog{items: sampleCatalog()})
	if err != nil {
		t.Fatalf("NewCatalogService returned error: %v", err)
	}
	return svc
}

// failingStore fails every write after it is armed.
type failingStore struct {
	*slot.MemoryStore
	failSet bool
	failGet bool
}

var errStoreDown = errors.New("store unavailable")

func (s *failingStore) Get(ctx context.Context, key string) ([]byte, error) {
	if s.failGet {
		return nil, errStoreDown
	}
	return s.MemoryStore.Get(ctx, key)
}

func (s *failingStore) Set(ctx context.Context, key string, value []byte) error {
	if s.failSet {
		return errStoreDown
	}
	return s.MemoryStore.Set(ctx, key, value)
}

func slotBytes(t *testing.T, store interface {
	Get(context.Context, string) ([]byte, error)
}, key string) []byte {
	t.Helper()
	raw, err := store.Get(context.Background(), key)
	if err != nil {
		t.Fatalf("Get(%s) returned error: %v", key, err)
	}
	return raw
}
