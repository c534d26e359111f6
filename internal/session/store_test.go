package session

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"byaura/internal/database"
	"byaura/internal/domain"
	"byaura/pkg/logger"
)

func newTestState(t *testing.T) *database.StateStore {
	t.Helper()

	log := logger.New(logger.ErrorLevel, io.Discard)
	db, err := database.Open(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.NewMigrationService(db, log).RunMigrations())
	return database.NewStateStore(db, log)
}

func newTestStore(t *testing.T) (*Store, *database.StateStore) {
	t.Helper()
	state := newTestState(t)
	return NewStore(state, logger.New(logger.ErrorLevel, io.Discard)), state
}

func adminUser() *domain.User {
	return &domain.User{ID: 1, Email: "ana@byaura.es", Role: domain.UserRoleAdmin, IsActive: true}
}

func TestEstablishAndRestore(t *testing.T) {
	store, state := newTestStore(t)

	require.NoError(t, store.Establish("token-1", adminUser()))
	assert.True(t, store.IsAuthenticated())

	header, ok := store.AuthHeader()
	require.True(t, ok)
	assert.Equal(t, "Bearer token-1", header)

	// a fresh store over the same state picks the session back up
	restored := NewStore(state, logger.New(logger.ErrorLevel, io.Discard))
	require.NoError(t, restored.Restore())

	session := restored.Current()
	require.NotNil(t, session)
	assert.Equal(t, "token-1", session.Token)
	assert.Equal(t, "ana@byaura.es", session.User.Email)
}

func TestRestoreWithNoState(t *testing.T) {
	store, _ := newTestStore(t)

	require.NoError(t, store.Restore())
	assert.False(t, store.IsAuthenticated())

	_, ok := store.AuthHeader()
	assert.False(t, ok)
}

func TestRestoreWipesPartialState(t *testing.T) {
	store, state := newTestStore(t)

	require.NoError(t, state.Set("access_token", "orphan"))
	require.NoError(t, store.Restore())

	assert.False(t, store.IsAuthenticated())
	_, found, err := state.Get("access_token")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRestoreWipesCorruptUser(t *testing.T) {
	store, state := newTestStore(t)

	require.NoError(t, state.Set("access_token", "token-1"))
	require.NoError(t, state.Set("user", "{not json"))

	require.NoError(t, store.Restore())
	assert.False(t, store.IsAuthenticated())

	_, found, err := state.Get("user")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestClear(t *testing.T) {
	store, state := newTestStore(t)

	require.NoError(t, store.Establish("token-1", adminUser()))
	store.Clear()

	assert.False(t, store.IsAuthenticated())
	assert.Nil(t, store.Current())

	_, found, err := state.Get("access_token")
	require.NoError(t, err)
	assert.False(t, found)
}
