package services

import (
	"context"
	"database/sql/driver"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/mywallet/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var userColumns = []string{"id", "name", "email", "password_hash", "created_at"}

func TestCredentialService_Register(t *testing.T) {
	ctx := context.Background()
	gw, dbMock := newMockGateway(t)
	service := NewCredentialService(gw, NewSessionService(&MockSessionStore{}), bcrypt.MinCost)

	req := SignUpRequest{Name: "ana", Email: "a@x.com", Password: "p1"}

	t.Run("successful registration", func(t *testing.T) {
		dbMock.ExpectExec("INSERT INTO users \\(id, name, email, password_hash, created_at\\)").
			WithArgs(sqlmock.AnyArg(), "ana", "a@x.com", sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(1, 1))

		userID, err := service.Register(ctx, req)
		assert.NoError(t, err)
		assert.Len(t, userID, 36)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("duplicate name or email", func(t *testing.T) {
		dbMock.ExpectExec("INSERT INTO users").
			WithArgs(sqlmock.AnyArg(), "ana", "a@x.com", sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnError(&pq.Error{Code: "23505", Constraint: "users_email_key"})

		_, err := service.Register(ctx, req)
		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("storage failure", func(t *testing.T) {
		dbMock.ExpectExec("INSERT INTO users").
			WillReturnError(errors.New("connection reset"))

		_, err := service.Register(ctx, req)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrConflict)
	})
}

func TestCredentialService_PasswordIsHashed(t *testing.T) {
	ctx := context.Background()
	gw, dbMock := newMockGateway(t)
	service := NewCredentialService(gw, NewSessionService(&MockSessionStore{}), bcrypt.MinCost)

	var stored string
	dbMock.ExpectExec("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), "ana", "a@x.com", hashCapture{&stored}, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	_, err := service.Register(ctx, SignUpRequest{Name: "ana", Email: "a@x.com", Password: "p1"})
	require.NoError(t, err)

	assert.NotEqual(t, "p1", stored)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored), []byte("p1")))
}

// hashCapture records the argument it is matched against.
type hashCapture struct {
	dst *string
}

func (h hashCapture) Match(v driver.Value) bool {
	s, ok := v.(string)
	if ok {
		*h.dst = s
	}
	return ok
}

func TestNewCredentialService_CostFallback(t *testing.T) {
	service := NewCredentialService(nil, nil, 0)
	assert.Equal(t, DefaultBcryptCost, service.bcryptCost)

	service = NewCredentialService(nil, nil, 12)
	assert.Equal(t, 12, service.bcryptCost)
}

func TestCredentialService_Authenticate(t *testing.T) {
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("p1"), bcrypt.MinCost)
	require.NoError(t, err)

	t.Run("successful sign-in", func(t *testing.T) {
		gw, dbMock := newMockGateway(t)
		store := &MockSessionStore{}
		service := NewCredentialService(gw, NewSessionService(store), bcrypt.MinCost)

		dbMock.ExpectQuery("SELECT id, name, email, password_hash, created_at FROM users WHERE email = \\$1").
			WithArgs("a@x.com").
			WillReturnRows(sqlmock.NewRows(userColumns).AddRow("user-1", "ana", "a@x.com", string(hash), 1))
		store.On("Create", ctx, mock.MatchedBy(func(s models.Session) bool {
			return s.UserID == "user-1" && s.Token != ""
		})).Return(nil)

		user, token, err := service.Authenticate(ctx, "a@x.com", "p1")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, "user-1", user.ID)
		assert.Equal(t, "ana", user.Name)
		assert.Empty(t, user.PasswordHash)
		store.AssertExpectations(t)
	})

	t.Run("wrong password issues no token", func(t *testing.T) {
		gw, dbMock := newMockGateway(t)
		store := &MockSessionStore{}
		service := NewCredentialService(gw, NewSessionService(store), bcrypt.MinCost)

		dbMock.ExpectQuery("SELECT id, name, email, password_hash, created_at FROM users").
			WithArgs("a@x.com").
			WillReturnRows(sqlmock.NewRows(userColumns).AddRow("user-1", "ana", "a@x.com", string(hash), 1))

		_, token, err := service.Authenticate(ctx, "a@x.com", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.Empty(t, token)
		store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("unknown email looks the same as a wrong password", func(t *testing.T) {
		gw, dbMock := newMockGateway(t)
		service := NewCredentialService(gw, NewSessionService(&MockSessionStore{}), bcrypt.MinCost)

		dbMock.ExpectQuery("SELECT id, name, email, password_hash, created_at FROM users").
			WithArgs("nobody@x.com").
			WillReturnRows(sqlmock.NewRows(userColumns))

		_, _, err := service.Authenticate(ctx, "nobody@x.com", "p1")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("session store failure", func(t *testing.T) {
		gw, dbMock := newMockGateway(t)
		store := &MockSessionStore{}
		service := NewCredentialService(gw, NewSessionService(store), bcrypt.MinCost)

		dbMock.ExpectQuery("SELECT id, name, email, password_hash, created_at FROM users").
			WithArgs("a@x.com").
			WillReturnRows(sqlmock.NewRows(userColumns).AddRow("user-1", "ana", "a@x.com", string(hash), 1))
		store.On("Create", ctx, mock.Anything).Return(errors.New("redis down"))

		_, _, err := service.Authenticate(ctx, "a@x.com", "p1")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestCredentialService_FindByID(t *testing.T) {
	ctx := context.Background()
	gw, dbMock := newMockGateway(t)
	service := NewCredentialService(gw, nil, bcrypt.MinCost)

	dbMock.ExpectQuery("SELECT id, name, email, password_hash, created_at FROM users WHERE id = \\$1").
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow("user-1", "ana", "a@x.com", "hash", 1))

	user, err := service.FindByID(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", user.Email)

	dbMock.ExpectQuery("SELECT id, name, email, password_hash, created_at FROM users WHERE id = \\$1").
		WithArgs("gone").
		WillReturnRows(sqlmock.NewRows(userColumns))

	_, err = service.FindByID(ctx, "gone")
	assert.ErrorIs(t, err, ErrNotFound)
}
