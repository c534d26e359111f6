package database

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"byaura/pkg/logger"
)

func newTestStore(t *testing.T) *StateStore {
	t.Helper()

	log := logger.New(logger.ErrorLevel, io.Discard)
	db, err := Open(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, NewMigrationService(db, log).RunMigrations())
	return NewStateStore(db, log)
}

func TestStateStoreSetGet(t *testing.T) {
	store := newTestStore(t)

	_, found, err := store.Get("access_token")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Set("access_token", "abc123"))

	value, found, err := store.Get("access_token")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "abc123", value)
}

func TestStateStoreUpsert(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Set("user", "first"))
	require.NoError(t, store.Set("user", "second"))

	value, found, err := store.Get("user")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "second", value)
}

func TestStateStoreDelete(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Set("user", "ana"))
	require.NoError(t, store.Delete("user"))

	_, found, err := store.Get("user")
	require.NoError(t, err)
	assert.False(t, found)

	// deleting a missing key is not an error
	require.NoError(t, store.Delete("user"))
}

func TestMigrationsAreIdempotent(t *testing.T) {
	log := logger.New(logger.ErrorLevel, io.Discard)
	db, err := Open(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	defer db.Close()

	svc := NewMigrationService(db, log)
	require.NoError(t, svc.RunMigrations())
	require.NoError(t, svc.RunMigrations())

	applied, err := svc.IsMigrationApplied("create_app_state_table")
	require.NoError(t, err)
	assert.True(t, applied)
}
