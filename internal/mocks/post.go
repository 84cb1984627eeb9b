package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/devconnect-app/backend/internal/models"
	"github.com/devconnect-app/backend/internal/types"
)

// MockPostService is a mock implementation of the IPostService interface
type MockPostService struct {
	mock.Mock
}

func (m *MockPostService) Create(ctx context.Context, callerID string, req *types.CreatePostRequest) (*models.Post, error) {
	args := m.Called(ctx, callerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostService) ListAll(ctx context.Context) ([]models.Post, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostService) GetByID(ctx context.Context, id string) (*models.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostService) Delete(ctx context.Context, callerID, id string) error {
	args := m.Called(ctx, callerID, id)
	return args.Error(0)
}

func (m *MockPostService) Like(ctx context.Context, callerID, id string) (*models.Post, error) {
	args := m.Called(ctx, callerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostService) Unlike(ctx context.Context, callerID, id string) (*models.Post, error) {
	args := m.Called(ctx, callerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}
