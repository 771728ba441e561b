package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mywallet/backend/internal/models"
	log "github.com/sirupsen/logrus"
)

const bearerPrefix = "Bearer "

// ExtractToken strips the first "Bearer " from an Authorization header. A
// header without the prefix is used whole.
func ExtractToken(header string) string {
	return strings.Replace(header, bearerPrefix, "", 1)
}

// SessionService issues and resolves opaque session tokens.
type SessionService struct {
	store    SessionStore
	newToken func() string
	now      func() time.Time
}

func NewSessionService(store SessionStore) *SessionService {
	return &SessionService{
		store:    store,
		newToken: func() string { return uuid.New().String() },
		now:      time.Now,
	}
}

// Issue binds a fresh random token to userID.
func (s *SessionService) Issue(ctx context.Context, userID string) (string, error) {
	token := s.newToken()
	err := s.store.Create(ctx, models.Session{
		Token:     token,
		UserID:    userID,
		CreatedAt: s.now().UnixNano(),
	})
	if err != nil {
		return "", err
	}

	log.WithField("user_id", userID).Debug("session issued")
	return token, nil
}

// Resolve returns the user bound to the token carried by header. Sessions
// have no expiry so any stored binding is accepted.
func (s *SessionService) Resolve(ctx context.Context, header string) (string, error) {
	token := ExtractToken(header)
	if token == "" {
		return "", ErrUnauthorized
	}

	session, err := s.store.Find(ctx, token)
	if err != nil {
		return "", err
	}
	return session.UserID, nil
}
