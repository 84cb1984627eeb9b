package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devconnect-app/backend/internal/service"
	"github.com/devconnect-app/backend/internal/testhelpers"
	"github.com/devconnect-app/backend/internal/types"
)

func setupAuthService() (*service.AuthService, *testhelpers.FakeUserRepository) {
	users := testhelpers.NewFakeUserRepository()
	return service.NewAuthService(users, "test-secret"), users
}

func TestRegister(t *testing.T) {
	authSvc, users := setupAuthService()

	resp, err := authSvc.Register(context.Background(), &types.RegisterRequest{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.NotEmpty(t, resp.User.ID)
	assert.Equal(t, "Test User", resp.User.Name)
	assert.Contains(t, resp.User.Avatar, "gravatar.com/avatar/")

	// Verify user was created
	user, err := users.FindByEmail(context.Background(), "test@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", user.PasswordHash)

	// Verify token claims
	claims, err := authSvc.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "Test User", claims.Name)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	authSvc, _ := setupAuthService()

	_, err := authSvc.Register(context.Background(), &types.RegisterRequest{
		Name:     "First",
		Email:    "taken@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	_, err = authSvc.Register(context.Background(), &types.RegisterRequest{
		Name:     "Second",
		Email:    "taken@example.com",
		Password: "password456",
	})
	var statusErr *types.StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, types.KindConflict, statusErr.Kind)
	assert.Equal(t, "email", statusErr.Key)
}

func TestLogin(t *testing.T) {
	authSvc, _ := setupAuthService()

	reg, err := authSvc.Register(context.Background(), &types.RegisterRequest{
		Name:     "Login User",
		Email:    "login@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	resp, err := authSvc.Login(context.Background(), "login@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, resp.User.ID)

	claims, err := authSvc.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, claims.UserID)
}

func TestLoginInvalidCredentials(t *testing.T) {
	authSvc, _ := setupAuthService()

	_, err := authSvc.Register(context.Background(), &types.RegisterRequest{
		Name:     "Someone",
		Email:    "someone@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	// Wrong password
	_, err = authSvc.Login(context.Background(), "someone@example.com", "wrongpassword")
	var statusErr *types.StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, types.KindUnauthenticated, statusErr.Kind)

	// Unknown email reports the same error, not a not-found
	_, err = authSvc.Login(context.Background(), "nobody@example.com", "password123")
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, types.KindUnauthenticated, statusErr.Kind)
}

func TestValidateTokenRejectsTampering(t *testing.T) {
	authSvc, _ := setupAuthService()

	resp, err := authSvc.Register(context.Background(), &types.RegisterRequest{
		Name:     "Claims User",
		Email:    "claims@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	_, err = authSvc.ValidateToken(resp.Token + "x")
	assert.ErrorIs(t, err, service.ErrInvalidToken)

	// A token signed with a different secret must not validate
	other := service.NewAuthService(testhelpers.NewFakeUserRepository(), "other-secret")
	_, err = other.ValidateToken(resp.Token)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}
