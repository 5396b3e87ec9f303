package store

import (
	"testing"

	"github.com/ftkrshna/channelpost/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(":memory:", logging.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

// --- DB/Migration tests ---

func TestOpen_InMemory(t *testing.T) {
	db := testDB(t)
	assert.NotNil(t, db)
	assert.NotNil(t, db.SQL())
}

func TestMigrations_Applied(t *testing.T) {
	db := testDB(t)

	var count int
	err := db.sql.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, len(migrations), count)
}

func TestMigrations_Idempotent(t *testing.T) {
	db := testDB(t)

	err := db.migrate()
	require.NoError(t, err)

	var count int
	err = db.sql.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, len(migrations), count)
}

func TestSchema_TablesExist(t *testing.T) {
	db := testDB(t)

	tables := []string{"channels", "default_buttons"}
	for _, table := range tables {
		var name string
		err := db.sql.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

// --- Channel store tests ---

func TestChannelStore_AddAndList(t *testing.T) {
	cs := NewChannelStore(testDB(t))

	inserted, err := cs.Add(-100123456789, "My Channel")
	require.NoError(t, err)
	assert.True(t, inserted)

	channels, err := cs.List()
	require.NoError(t, err)
	require.Len(t, channels, 1)
	assert.Equal(t, int64(-100123456789), channels[0].ID)
	assert.Equal(t, "My Channel", channels[0].Title)
}

func TestChannelStore_AddDuplicate(t *testing.T) {
	cs := NewChannelStore(testDB(t))

	inserted, err := cs.Add(-100123456789, "My Channel")
	require.NoError(t, err)
	assert.True(t, inserted)

	inserted, err = cs.Add(-100123456789, "My Channel")
	require.NoError(t, err)
	assert.False(t, inserted, "second insert of the same id must not duplicate")

	channels, err := cs.List()
	require.NoError(t, err)
	assert.Len(t, channels, 1)
}

func TestChannelStore_Remove(t *testing.T) {
	cs := NewChannelStore(testDB(t))

	_, err := cs.Add(-100555, "Gone Soon")
	require.NoError(t, err)

	removed, err := cs.Remove(-100555)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = cs.Remove(-100555)
	require.NoError(t, err)
	assert.False(t, removed)

	channels, err := cs.List()
	require.NoError(t, err)
	assert.Empty(t, channels)
}

func TestChannelStore_ClearAll(t *testing.T) {
	cs := NewChannelStore(testDB(t))

	for i, title := range []string{"A", "B", "C"} {
		_, err := cs.Add(int64(-100100-i), title)
		require.NoError(t, err)
	}

	n, err := cs.ClearAll()
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	channels, err := cs.List()
	require.NoError(t, err)
	assert.Empty(t, channels)
}

// --- Button store tests ---

func TestButtonStore_RoundTrip(t *testing.T) {
	bs := NewButtonStore(testDB(t))

	raw := "Website - https://example.com\nSupport - t.me/support"
	require.NoError(t, bs.Set(7, raw))

	got, ok, err := bs.Get(7)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, raw, got, "stored text must round-trip exactly")
}

func TestButtonStore_GetMissing(t *testing.T) {
	bs := NewButtonStore(testDB(t))

	_, ok, err := bs.Get(99)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestButtonStore_SetOverwrites(t *testing.T) {
	bs := NewButtonStore(testDB(t))

	require.NoError(t, bs.Set(7, "old"))
	require.NoError(t, bs.Set(7, "new"))

	got, ok, err := bs.Get(7)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "new", got)
}

func TestButtonStore_DeleteThenGet(t *testing.T) {
	bs := NewButtonStore(testDB(t))

	require.NoError(t, bs.Set(7, "something"))

	deleted, err := bs.Delete(7)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = bs.Delete(7)
	require.NoError(t, err)
	assert.False(t, deleted, "deleting twice reports nothing stored")

	_, ok, err := bs.Get(7)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestButtonStore_PerUserIsolation(t *testing.T) {
	bs := NewButtonStore(testDB(t))

	require.NoError(t, bs.Set(1, "one"))
	require.NoError(t, bs.Set(2, "two"))

	got, ok, err := bs.Get(1)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "one", got)

	deleted, err := bs.Delete(1)
	require.NoError(t, err)
	assert.True(t, deleted)

	got, ok, err = bs.Get(2)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "two", got)
}
