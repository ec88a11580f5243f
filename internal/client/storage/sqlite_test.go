package storage

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE settings (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
`)
	require.NoError(t, err)
	return db
}

func TestSQLiteStore_GetMissingKeyReturnsNil(t *testing.T) {
	ctx := context.Background()
	s := NewSQLiteStore(setupDB(t))

	v, err := s.Get(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestSQLiteStore_SetAndGet(t *testing.T) {
	ctx := context.Background()
	s := NewSQLiteStore(setupDB(t))

	require.NoError(t, s.Set(ctx, "k", []byte("v1")))

	v, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v1"), v)
}

func TestSQLiteStore_SetOverwrites(t *testing.T) {
	ctx := context.Background()
	s := NewSQLiteStore(setupDB(t))

	require.NoError(t, s.Set(ctx, "k", []byte("v1")))
	require.NoError(t, s.Set(ctx, "k", []byte("v2")))

	v, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), v)
}

func TestSQLiteStore_SetMany(t *testing.T) {
	ctx := context.Background()
	s := NewSQLiteStore(setupDB(t))

	err := s.SetMany(ctx, map[string][]byte{
		"a": []byte("1"),
		"b": []byte("2"),
	})
	require.NoError(t, err)

	a, err := s.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, []byte("1"), a)

	b, err := s.Get(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, []byte("2"), b)
}

func TestSQLiteStore_RemoveMany(t *testing.T) {
	ctx := context.Background()
	s := NewSQLiteStore(setupDB(t))

	require.NoError(t, s.Set(ctx, "a", []byte("1")))
	require.NoError(t, s.Set(ctx, "b", []byte("2")))
	require.NoError(t, s.Set(ctx, "c", []byte("3")))

	// "missing" is not an error
	require.NoError(t, s.RemoveMany(ctx, []string{"a", "b", "missing"}))

	a, err := s.Get(ctx, "a")
	require.NoError(t, err)
	assert.Nil(t, a)

	c, err := s.Get(ctx, "c")
	require.NoError(t, err)
	assert.Equal(t, []byte("3"), c)
}

func TestSQLiteStore_ClearAll(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)
	s := NewSQLiteStore(db)

	require.NoError(t, s.Set(ctx, "a", []byte("1")))
	require.NoError(t, s.ClearAll(ctx))

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM settings`).Scan(&n))
	assert.Equal(t, 0, n)
}
