package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/medvault-dev/medvault/internal/models"
	"gorm.io/gorm"
)

type UserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

// Create inserts a new user. The existence check and the insert are separate
// statements; a concurrent signup with the same username loses the race at the
// unique index and surfaces as a wrapped database error.
func (s *UserStore) Create(ctx context.Context, username, passwordHash string) (*models.User, error) {
	if username == "" || passwordHash == "" {
		return nil, ErrMissingFields
	}

	var existing models.User

	err := s.db.WithContext(ctx).Where("username = ?", username).First(&existing).Error

	if err == nil {
		return nil, ErrUsernameTaken
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("checking existing user: %w", err)
	}

	user := &models.User{
		Username:     username,
		PasswordHash: passwordHash,
	}

	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	return user, nil
}

func (s *UserStore) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User

	err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("fetching user: %w", err)
	}

	return &user, nil
}
