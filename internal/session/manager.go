package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/medvault-dev/medvault/internal/models"
	"gorm.io/gorm"
)

const CookieName = "medvault_session"

const DefaultTTL = 10 * time.Minute

var ErrInvalidSession = errors.New("invalid or expired session")

// Manager issues and resolves server-side sessions stored in the database,
// keyed by an opaque token carried in an HTTP-only cookie.
type Manager struct {
	db  *gorm.DB
	ttl time.Duration
}

func NewManager(db *gorm.DB, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &Manager{db: db, ttl: ttl}
}

func (m *Manager) TTL() time.Duration {
	return m.ttl
}

func (m *Manager) Create(ctx context.Context, userID uint, username string) (string, error) {
	sess := &models.Session{
		Token:     uuid.NewString(),
		UserID:    userID,
		Username:  username,
		ExpiresAt: time.Now().Add(m.ttl),
	}

	if err := m.db.WithContext(ctx).Create(sess).Error; err != nil {
		return "", fmt.Errorf("creating session: %w", err)
	}

	return sess.Token, nil
}

// Resolve returns the session for token, or ErrInvalidSession when the token
// is unknown or past its expiry. Expiry is fixed at creation time; resolving
// never extends a session. Expired rows are deleted on the spot.
func (m *Manager) Resolve(ctx context.Context, token string) (*models.Session, error) {
	if token == "" {
		return nil, ErrInvalidSession
	}

	var sess models.Session

	err := m.db.WithContext(ctx).Where("token = ?", token).First(&sess).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidSession
		}
		return nil, fmt.Errorf("fetching session: %w", err)
	}

	if !time.Now().Before(sess.ExpiresAt) {
		if err := m.db.WithContext(ctx).Delete(&models.Session{}, "token = ?", token).Error; err != nil {
			return nil, fmt.Errorf("deleting expired session: %w", err)
		}
		return nil, ErrInvalidSession
	}

	return &sess, nil
}

// Destroy removes the session. Destroying an unknown token is not an error.
func (m *Manager) Destroy(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	if err := m.db.WithContext(ctx).Delete(&models.Session{}, "token = ?", token).Error; err != nil {
		return fmt.Errorf("destroying session: %w", err)
	}

	return nil
}
