package ambient

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	d, err := sql.Open("sqlite", "file::memory:?cache=shared&mode=rwc&_journal_mode=WAL")
	require.NoError(t, err)

	_, err = d.Exec(`
		CREATE TABLE ambient_slots (
			slot       TEXT PRIMARY KEY,
			value      TEXT NOT NULL,
			updated_at DATETIME NOT NULL DEFAULT (datetime('now'))
		);
	`)
	require.NoError(t, err)

	t.Cleanup(func() { assert.NoError(t, d.Close()) })
	return d
}

func TestSQLStoreGetMissing(t *testing.T) {
	s := NewSQLStore(openTestDB(t))

	_, ok, err := s.Get(context.Background(), SlotTheme)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSQLStoreSetGetClear(t *testing.T) {
	s := NewSQLStore(openTestDB(t))
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, SlotTheme, "blue"))
	require.NoError(t, s.Set(ctx, SlotTheme, "green"))

	value, ok, err := s.Get(ctx, SlotTheme)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "green", value)

	require.NoError(t, s.Clear(ctx, SlotTheme))
	_, ok, err = s.Get(ctx, SlotTheme)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemStoreSetGetClear(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, SlotGlobalEvent, `{"theme":"gold"}`))

	value, ok, err := s.Get(ctx, SlotGlobalEvent)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"theme":"gold"}`, value)

	require.NoError(t, s.Clear(ctx, SlotGlobalEvent))
	_, ok, err = s.Get(ctx, SlotGlobalEvent)
	require.NoError(t, err)
	assert.False(t, ok)
}
