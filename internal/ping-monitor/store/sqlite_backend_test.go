package store

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func newTestSQLiteBackend(t *testing.T) (Backend, *sql.DB) {
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "store.db"))
	require.NoError(t, err)
	backend, err := NewSQLiteBackend(context.Background(), db)
	require.NoError(t, err)
	t.Cleanup(func() { backend.Close() })
	return backend, db
}

func TestSQLiteBackend_SaveAndLoad(t *testing.T) {
	backend, _ := newTestSQLiteBackend(t)
	ctx := context.Background()

	require.NoError(t, backend.Save(ctx, map[string][]byte{
		"pingInterval": []byte("30"),
		"urls":         []byte(`[{"url":"https://example.com"}]`),
	}))
	require.NoError(t, backend.Save(ctx, map[string][]byte{"pingInterval": []byte("10")}))

	values, err := backend.Load(ctx, []string{"pingInterval", "urls", "hideLauncher"})
	require.NoError(t, err)
	assert.Equal(t, "10", string(values["pingInterval"]))
	assert.Equal(t, `[{"url":"https://example.com"}]`, string(values["urls"]))
	_, ok := values["hideLauncher"]
	assert.False(t, ok)
}

func TestSQLiteBackend_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.db")
	ctx := context.Background()

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	backend, err := NewSQLiteBackend(ctx, db)
	require.NoError(t, err)
	require.NoError(t, backend.Save(ctx, map[string][]byte{"installedAt": []byte("1700000000000")}))
	require.NoError(t, backend.Close())

	db, err = sql.Open("sqlite", path)
	require.NoError(t, err)
	backend, err = NewSQLiteBackend(ctx, db)
	require.NoError(t, err)
	defer backend.Close()

	values, err := backend.Load(ctx, []string{"installedAt"})
	require.NoError(t, err)
	assert.Equal(t, "1700000000000", string(values["installedAt"]))
}

func TestSQLiteBackend_EmptyInput(t *testing.T) {
	backend, _ := newTestSQLiteBackend(t)
	values, err := backend.Load(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, values)
	assert.NoError(t, backend.Save(context.Background(), nil))
}
