package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenInMemory(t *testing.T) {
	db, err := sql.Open("sqlite", "file::memory:?cache=shared&mode=rwc&_journal_mode=WAL")
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, db.Close()) })

	err = db.Ping()
	assert.NoError(t, err)
}

func TestMigrationsApply(t *testing.T) {
	db, err := sql.Open("sqlite", "file::memory:?cache=shared&mode=rwc&_journal_mode=WAL")
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, db.Close()) })

	err = runMigrations(db)
	require.NoError(t, err)

	// Verify tables exist
	var tableName string

	err = db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='partitions'").Scan(&tableName)
	assert.NoError(t, err)
	assert.Equal(t, "partitions", tableName)

	err = db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='ambient_slots'").Scan(&tableName)
	assert.NoError(t, err)
	assert.Equal(t, "ambient_slots", tableName)
}

func TestOpenForTestingIndependentDatabases(t *testing.T) {
	a, err := OpenForTesting()
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, a.Close()) })

	b, err := OpenForTesting()
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, b.Close()) })

	_, err = a.Exec(`INSERT INTO partitions (name, blob) VALUES ('photos', '[]')`)
	require.NoError(t, err)

	// Writes to one database never show up in the other.
	var count int
	require.NoError(t, b.QueryRow(`SELECT COUNT(*) FROM partitions`).Scan(&count))
	assert.Zero(t, count)
}

func TestMigrationsIdempotent(t *testing.T) {
	db, err := sql.Open("sqlite", "file::memory:?cache=shared&mode=rwc&_journal_mode=WAL")
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, db.Close()) })

	require.NoError(t, runMigrations(db))
	assert.NoError(t, runMigrations(db))
}
