package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) *SlotStore {
	t.Helper()
	db, err := Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewSlotStore(db)
}

func TestGet_MissingKeyReturnsNilNil(t *testing.T) {
	s := setupStore(t)

	v, err := s.Get(context.Background(), "absent")
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestSet_UpsertOverwritesValue(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", []byte("[1]")))
	require.NoError(t, s.Set(ctx, "k", []byte("[1,2]")))

	v, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("[1,2]"), v)
}

func TestSlotsSurviveReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "zimtour.db")

	db, err := Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, NewSlotStore(db).Set(ctx, "favorites", []byte("[3]")))
	require.NoError(t, db.Close())

	db, err = Open(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	v, err := NewSlotStore(db).Get(ctx, "favorites")
	require.NoError(t, err)
	require.Equal(t, []byte("[3]"), v)
}
