package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/medvault-dev/medvault/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "store_test.db")
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(&models.User{}, &models.MedicalProfile{}, &models.Session{}))

	return database
}

func TestCreateAndFindUser(t *testing.T) {
	s := NewUserStore(newTestDB(t))
	ctx := context.Background()

	created, err := s.Create(ctx, "alice", "hash-1")
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	found, err := s.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "alice", found.Username)
	assert.Equal(t, "hash-1", found.PasswordHash)
}

func TestCreateUserValidation(t *testing.T) {
	s := NewUserStore(newTestDB(t))
	ctx := context.Background()

	_, err := s.Create(ctx, "", "hash-1")
	assert.ErrorIs(t, err, ErrMissingFields)

	_, err = s.Create(ctx, "alice", "")
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestCreateDuplicateUsername(t *testing.T) {
	database := newTestDB(t)
	s := NewUserStore(database)
	ctx := context.Background()

	_, err := s.Create(ctx, "alice", "hash-1")
	require.NoError(t, err)

	_, err = s.Create(ctx, "alice", "hash-2")
	assert.ErrorIs(t, err, ErrUsernameTaken)

	// No second row was written
	var count int64
	require.NoError(t, database.Model(&models.User{}).Where("username = ?", "alice").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestFindByUsernameNotFound(t *testing.T) {
	s := NewUserStore(newTestDB(t))

	_, err := s.FindByUsername(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}
