package service

import (
	"context"
	"io"

	"github.com/devconnect-app/backend/internal/models"
	"github.com/devconnect-app/backend/internal/types"
)

// IAuthService defines the interface for authentication operations
type IAuthService interface {
	Register(ctx context.Context, req *types.RegisterRequest) (*types.AuthResponse, error)
	Login(ctx context.Context, email, password string) (*types.AuthResponse, error)
	ValidateToken(token string) (*types.TokenClaims, error)
}

// IProfileService defines the interface for profile operations
type IProfileService interface {
	Upsert(ctx context.Context, callerID string, req *types.UpsertProfileRequest) (*models.Profile, error)
	GetCurrent(ctx context.Context, callerID string) (*types.ProfileWithOwner, error)
	GetByHandle(ctx context.Context, handle string) (*types.ProfileWithOwner, error)
	GetByUser(ctx context.Context, userID string) (*types.ProfileWithOwner, error)
	ListAll(ctx context.Context) ([]types.ProfileWithOwner, error)
}

// IPostService defines the interface for post and engagement operations
type IPostService interface {
	Create(ctx context.Context, callerID string, req *types.CreatePostRequest) (*models.Post, error)
	ListAll(ctx context.Context) ([]models.Post, error)
	GetByID(ctx context.Context, id string) (*models.Post, error)
	Delete(ctx context.Context, callerID, id string) error
	Like(ctx context.Context, callerID, id string) (*models.Post, error)
	Unlike(ctx context.Context, callerID, id string) (*models.Post, error)
}

// IAvatarService defines the interface for avatar upload operations
type IAvatarService interface {
	Upload(ctx context.Context, callerID, contentType string, body io.Reader, size int64) (string, error)
}
