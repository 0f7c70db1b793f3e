package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T) *Store {
	t.Helper()

	s, err := Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	return s
}

func TestSaveLoadRoster(t *testing.T) {
	ctx := context.Background()
	s := testStore(t)

	require.NoError(t, s.SaveRoster(ctx, "ash", []int{25, 6, 1}))
	numbers, err := s.LoadRoster(ctx, "ash")
	require.NoError(t, err)
	assert.Equal(t, []int{25, 6, 1}, numbers)

	require.NoError(t, s.SaveRoster(ctx, "ash", []int{7}))
	numbers, err = s.LoadRoster(ctx, "ash")
	require.NoError(t, err)
	assert.Equal(t, []int{7}, numbers)

	require.NoError(t, s.SaveRoster(ctx, "ash", nil))
	numbers, err = s.LoadRoster(ctx, "ash")
	require.NoError(t, err)
	assert.Empty(t, numbers)
}

func TestLoadMissingRoster(t *testing.T) {
	_, err := testStore(t).LoadRoster(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrNoRoster)
}

func TestLoadCorruptRoster(t *testing.T) {
	ctx := context.Background()
	s := testStore(t)

	for owner, members := range map[string]string{
		"garbage":  "not json",
		"object":   `{"members": [1]}`,
		"negative": "[1, -4]",
	} {
		_, err := s.db.ExecContext(ctx,
			`INSERT INTO roster (owner, members, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)`,
			owner, members)
		require.NoError(t, err)

		_, err = s.LoadRoster(ctx, owner)
		assert.ErrorIs(t, err, ErrCorruptRoster, owner)
	}
}

func TestDeleteRoster(t *testing.T) {
	ctx := context.Background()
	s := testStore(t)

	require.NoError(t, s.SaveRoster(ctx, "misty", []int{120, 121}))
	require.NoError(t, s.DeleteRoster(ctx, "misty"))
	_, err := s.LoadRoster(ctx, "misty")
	assert.ErrorIs(t, err, ErrNoRoster)

	require.NoError(t, s.DeleteRoster(ctx, "misty"))
}

func TestReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "rosters.db")

	s, err := Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, s.SaveRoster(ctx, "brock", []int{74, 95}))
	require.NoError(t, s.Close())

	s, err = Open(ctx, path)
	require.NoError(t, err)
	defer s.Close()

	numbers, err := s.LoadRoster(ctx, "brock")
	require.NoError(t, err)
	assert.Equal(t, []int{74, 95}, numbers)
}
