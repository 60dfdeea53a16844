package slot

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/njprem/discover-zimbabwe/internal/domain"
)

type failingStore struct{ err error }

func (f failingStore) Get(context.Context, string) ([]byte, error) { return nil, f.err }
func (f failingStore) Set(context.Context, string, []byte) error  { return f.err }

func TestMemoryStore_GetMissingReturnsNilNil(t *testing.T) {
	s := NewMemoryStore()
	v, err := s.Get(context.Background(), "absent")
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestMemoryStore_SetCopiesValue(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	buf := []byte("abc")
	require.NoError(t, s.Set(ctx, "k", buf))
	buf[0] = 'z'

	v, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("abc"), v)
}

func TestFavoriteRepo_RoundTrip(t *testing.T) {
	store := NewMemoryStore()
	repo := NewFavoriteRepo(store, "", nil)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, domain.Favorites{3, 1, 5}))

	raw, err := store.Get(ctx, DefaultFavoritesKey)
	require.NoError(t, err)
	assert.JSONEq(t, `[3,1,5]`, string(raw))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.True(t, loaded.Equal(domain.Favorites{1, 3, 5}))
}

func TestFavoriteRepo_MissingOrCorruptLoadsEmpty(t *testing.T) {
	ctx := context.Background()
	cases := map[string][]byte{
		"missing":      nil,
		"not json":     []byte("{oops"),
		"object":       []byte(`{"a":1}`),
		"mixed array":  []byte(`[1,"two"]`),
		"json null":    []byte(`null`),
		"empty string": []byte(``),
	}
	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			store := NewMemoryStore()
			if payload != nil {
				require.NoError(t, store.Set(ctx, DefaultFavoritesKey, payload))
			}
			loaded, err := NewFavoriteRepo(store, "", nil).Load(ctx)
			require.NoError(t, err)
			require.NotNil(t, loaded)
			assert.Empty(t, loaded)
		})
	}
}

func TestFavoriteRepo_SaveNilWritesEmptyArray(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, NewFavoriteRepo(store, "favs", nil).Save(ctx, nil))

	raw, err := store.Get(ctx, "favs")
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))
}

func TestFavoriteRepo_StoreErrorsPropagate(t *testing.T) {
	boom := errors.New("boom")
	repo := NewFavoriteRepo(failingStore{err: boom}, "", nil)

	_, err := repo.Load(context.Background())
	require.ErrorIs(t, err, boom)
	require.ErrorIs(t, repo.Save(context.Background(), domain.Favorites{1}), boom)
}

func TestReviewRepo_RoundTripPreservesOrder(t *testing.T) {
	store := NewMemoryStore()
	repo := NewReviewRepo(store, "", nil)
	ctx := context.Background()

	first := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	reviews := domain.ReviewMap{
		1: {
			{User: "a", Rating: 5, Comment: "Great trip", Date: first},
			{User: "b", Rating: 3, Comment: "Busy", Date: first.Add(time.Hour)},
		},
		4: {{User: "c", Rating: 4, Comment: "Elephants!", Date: first.Add(2 * time.Hour)}},
	}
	require.NoError(t, repo.Save(ctx, reviews))

	raw, err := store.Get(ctx, DefaultReviewsKey)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"1": [
			{"user":"a","rating":5,"comment":"Great trip","date":"2024-03-01T10:00:00.000Z"},
			{"user":"b","rating":3,"comment":"Busy","date":"2024-03-01T11:00:00.000Z"}
		],
		"4": [{"user":"c","rating":4,"comment":"Elephants!","date":"2024-03-01T12:00:00.000Z"}]
	}`, string(raw))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	require.Len(t, loaded[1], 2)
	assert.Equal(t, "a", loaded[1][0].User)
	assert.Equal(t, "b", loaded[1][1].User)
	assert.True(t, loaded[4][0].Date.Equal(first.Add(2*time.Hour)))
}

func TestReviewRepo_ReadsBrowserTimestamps(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	payload := `{"2":[{"user":"tendai","rating":4,"comment":"Stunning ruins","date":"2024-05-06T07:08:09.123Z"}]}`
	require.NoError(t, store.Set(ctx, DefaultReviewsKey, []byte(payload)))

	loaded, err := NewReviewRepo(store, "", nil).Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded[2], 1)
	assert.Equal(t, 123*time.Millisecond, time.Duration(loaded[2][0].Date.Nanosecond()))
}

func TestReviewRepo_CorruptLoadsEmpty(t *testing.T) {
	ctx := context.Background()
	for _, payload := range []string{"[]", "not-json", `{"x":[]}`, `{"1":"nope"}`} {
		store := NewMemoryStore()
		require.NoError(t, store.Set(ctx, DefaultReviewsKey, []byte(payload)))

		loaded, err := NewReviewRepo(store, "", nil).Load(ctx)
		require.NoError(t, err, payload)
		require.NotNil(t, loaded, payload)
		assert.Empty(t, loaded, payload)
	}
}
