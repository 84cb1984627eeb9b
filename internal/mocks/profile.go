package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/devconnect-app/backend/internal/models"
	"github.com/devconnect-app/backend/internal/types"
)

// MockProfileService is a mock implementation of the IProfileService interface
type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) Upsert(ctx context.Context, callerID string, req *types.UpsertProfileRequest) (*models.Profile, error) {
	args := m.Called(ctx, callerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockProfileService) GetCurrent(ctx context.Context, callerID string) (*types.ProfileWithOwner, error) {
	args := m.Called(ctx, callerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.ProfileWithOwner), args.Error(1)
}

func (m *MockProfileService) GetByHandle(ctx context.Context, handle string) (*types.ProfileWithOwner, error) {
	args := m.Called(ctx, handle)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.ProfileWithOwner), args.Error(1)
}

func (m *MockProfileService) GetByUser(ctx context.Context, userID string) (*types.ProfileWithOwner, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.ProfileWithOwner), args.Error(1)
}

func (m *MockProfileService) ListAll(ctx context.Context) ([]types.ProfileWithOwner, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.ProfileWithOwner), args.Error(1)
}
