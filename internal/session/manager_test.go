package session

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/medvault-dev/medvault/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "sessions_test.db")
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(&models.Session{}))

	return database
}

func TestCreateAndResolve(t *testing.T) {
	m := NewManager(newTestDB(t), 10*time.Minute)
	ctx := context.Background()

	token, err := m.Create(ctx, 7, "alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	sess, err := m.Resolve(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), sess.UserID)
	assert.Equal(t, "alice", sess.Username)
	assert.True(t, sess.ExpiresAt.After(time.Now()))
}

func TestResolveUnknownToken(t *testing.T) {
	m := NewManager(newTestDB(t), 10*time.Minute)

	_, err := m.Resolve(context.Background(), "no-such-token")
	assert.ErrorIs(t, err, ErrInvalidSession)

	_, err = m.Resolve(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestResolveExpiredSession(t *testing.T) {
	database := newTestDB(t)
	m := NewManager(database, 10*time.Minute)
	ctx := context.Background()

	token, err := m.Create(ctx, 1, "alice")
	require.NoError(t, err)

	expired := time.Now().Add(-time.Minute)
	require.NoError(t, database.Model(&models.Session{}).
		Where("token = ?", token).
		Update("expires_at", expired).Error)

	_, err = m.Resolve(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidSession)

	// The expired row is gone, not just rejected
	var count int64
	require.NoError(t, database.Model(&models.Session{}).Where("token = ?", token).Count(&count).Error)
	assert.Zero(t, count)
}

func TestDestroyIsIdempotent(t *testing.T) {
	m := NewManager(newTestDB(t), 10*time.Minute)
	ctx := context.Background()

	token, err := m.Create(ctx, 1, "alice")
	require.NoError(t, err)

	require.NoError(t, m.Destroy(ctx, token))
	require.NoError(t, m.Destroy(ctx, token))
	require.NoError(t, m.Destroy(ctx, "never-existed"))
	require.NoError(t, m.Destroy(ctx, ""))

	_, err = m.Resolve(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestConcurrentLoginsGetIndependentSessions(t *testing.T) {
	m := NewManager(newTestDB(t), 10*time.Minute)
	ctx := context.Background()

	first, err := m.Create(ctx, 1, "alice")
	require.NoError(t, err)

	second, err := m.Create(ctx, 1, "alice")
	require.NoError(t, err)
	require.NotEqual(t, first, second)

	require.NoError(t, m.Destroy(ctx, first))

	// Destroying one session leaves the other intact
	sess, err := m.Resolve(ctx, second)
	require.NoError(t, err)
	assert.Equal(t, uint(1), sess.UserID)
}

func TestNewManagerDefaultsTTL(t *testing.T) {
	m := NewManager(newTestDB(t), 0)
	assert.Equal(t, DefaultTTL, m.TTL())
}
