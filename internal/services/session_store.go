package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/mywallet/backend/internal/database"
	"github.com/mywallet/backend/internal/models"
)

// SessionStore persists token to user bindings.
type SessionStore interface {
	// Create fails with ErrTokenCollision when the token is already bound.
	Create(ctx context.Context, session models.Session) error
	// Find fails with ErrInvalidSession when nothing is bound to token.
	Find(ctx context.Context, token string) (*models.Session, error)
}

// SQLSessionStore keeps sessions in the gateway's sessions collection.
type SQLSessionStore struct {
	gw *database.Gateway
}

func NewSQLSessionStore(gw *database.Gateway) *SQLSessionStore {
	return &SQLSessionStore{gw: gw}
}

func (s *SQLSessionStore) Create(ctx context.Context, session models.Session) error {
	db := s.gw.DB()
	_, err := db.ExecContext(ctx, db.Rebind(`
		INSERT INTO sessions (token, user_id, created_at)
		VALUES (?, ?, ?)`),
		session.Token, session.UserID, session.CreatedAt)
	if database.IsUniqueViolation(err) {
		return ErrTokenCollision
	}
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

func (s *SQLSessionStore) Find(ctx context.Context, token string) (*models.Session, error) {
	db := s.gw.DB()
	var session models.Session
	err := db.GetContext(ctx, &session, db.Rebind(`
		SELECT token, user_id, created_at
		FROM sessions
		WHERE token = ?`), token)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrInvalidSession
	}
	if err != nil {
		return nil, fmt.Errorf("find session: %w", err)
	}
	return &session, nil
}

// RedisSessionStore keeps sessions as session:<token> keys without a TTL.
type RedisSessionStore struct {
	redis *redis.Client
}

func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{redis: client}
}

func sessionKey(token string) string {
	return fmt.Sprintf("session:%s", token)
}

func (s *RedisSessionStore) Create(ctx context.Context, session models.Session) error {
	ok, err := s.redis.SetNX(ctx, sessionKey(session.Token), session.UserID, 0).Result()
	if err != nil {
		return fmt.Errorf("store session: %w", err)
	}
	if !ok {
		return ErrTokenCollision
	}
	return nil
}

func (s *RedisSessionStore) Find(ctx context.Context, token string) (*models.Session, error) {
	userID, err := s.redis.Get(ctx, sessionKey(token)).Result()
	if err == redis.Nil {
		return nil, ErrInvalidSession
	}
	if err != nil {
		return nil, fmt.Errorf("find session: %w", err)
	}
	return &models.Session{Token: token, UserID: userID}, nil
}
