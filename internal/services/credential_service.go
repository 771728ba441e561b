package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mywallet/backend/internal/database"
	"github.com/mywallet/backend/internal/models"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

const DefaultBcryptCost = 10

// CredentialService registers users and exchanges credentials for sessions.
type CredentialService struct {
	gw         *database.Gateway
	sessions   *SessionService
	bcryptCost int
}

func NewCredentialService(gw *database.Gateway, sessions *SessionService, bcryptCost int) *CredentialService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = DefaultBcryptCost
	}
	return &CredentialService{
		gw:         gw,
		sessions:   sessions,
		bcryptCost: bcryptCost,
	}
}

// Register stores a new user. Name and email uniqueness is enforced by the
// users collection constraints; a violation is reported as ErrConflict.
func (s *CredentialService) Register(ctx context.Context, req SignUpRequest) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	userID := uuid.New().String()
	db := s.gw.DB()
	_, err = db.ExecContext(ctx, db.Rebind(`
		INSERT INTO users (id, name, email, password_hash, created_at)
		VALUES (?, ?, ?, ?, ?)`),
		userID, req.Name, req.Email, string(hash), time.Now().UnixNano())
	if database.IsUniqueViolation(err) {
		return "", ErrConflict
	}
	if err != nil {
		return "", fmt.Errorf("insert user: %w", err)
	}

	log.WithField("user_id", userID).Info("user created")
	return userID, nil
}

// Authenticate checks the password of the user registered under email and
// opens a new session. Unknown email and wrong password are not told apart.
func (s *CredentialService) Authenticate(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.FindByEmail(ctx, email)
	if errors.Is(err, ErrNotFound) {
		return nil, "", ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.sessions.Issue(ctx, user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("issue session: %w", err)
	}

	log.WithField("user_id", user.ID).Info("user signed in")
	user.PasswordHash = ""
	return user, token, nil
}

func (s *CredentialService) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.findOne(ctx, "email", email)
}

func (s *CredentialService) FindByID(ctx context.Context, id string) (*models.User, error) {
	return s.findOne(ctx, "id", id)
}

func (s *CredentialService) findOne(ctx context.Context, column, value string) (*models.User, error) {
	db := s.gw.DB()
	var user models.User
	err := db.GetContext(ctx, &user, db.Rebind(`
		SELECT id, name, email, password_hash, created_at
		FROM users
		WHERE `+column+` = ?`), value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user by %s: %w", column, err)
	}
	return &user, nil
}
