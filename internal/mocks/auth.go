package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/devconnect-app/backend/internal/types"
)

// MockAuthService is a mock implementation of the IAuthService interface
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req *types.RegisterRequest) (*types.AuthResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.AuthResponse), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*types.AuthResponse, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.AuthResponse), args.Error(1)
}

func (m *MockAuthService) ValidateToken(token string) (*types.TokenClaims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.TokenClaims), args.Error(1)
}

// MockAvatarService is a mock implementation of the IAvatarService interface
type MockAvatarService struct {
	mock.Mock
}

func (m *MockAvatarService) Upload(ctx context.Context, callerID, contentType string, body io.Reader, size int64) (string, error) {
	args := m.Called(ctx, callerID, contentType, body, size)
	return args.String(0), args.Error(1)
}
