package handlers

import (
	"context"

	"github.com/mywallet/backend/internal/models"
	"github.com/mywallet/backend/internal/services"
	"github.com/stretchr/testify/mock"
)

type MockCredentialStore struct {
	mock.Mock
}

func (m *MockCredentialStore) Register(ctx context.Context, req services.SignUpRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func (m *MockCredentialStore) Authenticate(ctx context.Context, email, password string) (*models.User, string, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*models.User), args.String(1), args.Error(2)
}

type MockSessionResolver struct {
	mock.Mock
}

func (m *MockSessionResolver) Resolve(ctx context.Context, header string) (string, error) {
	args := m.Called(ctx, header)
	return args.String(0), args.Error(1)
}

type MockEntryStore struct {
	mock.Mock
}

func (m *MockEntryStore) Create(ctx context.Context, userID string, in models.EntryInput) (*models.Entry, error) {
	args := m.Called(ctx, userID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Entry), args.Error(1)
}

func (m *MockEntryStore) ListByUser(ctx context.Context, userID string) ([]models.Entry, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Entry), args.Error(1)
}

func (m *MockEntryStore) Update(ctx context.Context, userID, entryID string, in models.EntryInput) error {
	args := m.Called(ctx, userID, entryID, in)
	return args.Error(0)
}

func (m *MockEntryStore) Delete(ctx context.Context, userID, entryID string) error {
	args := m.Called(ctx, userID, entryID)
	return args.Error(0)
}
