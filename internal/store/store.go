// Package store defines the document-store boundary of the backend: filter
// based finds, inserts, updates and deletes over the users, profiles and
// posts collections, plus the atomic like-set operations.
package store

import (
	"context"
	"errors"

	"github.com/devconnect-app/backend/internal/models"
)

var (
	// ErrNotFound is returned when a filter matches no document.
	ErrNotFound = errors.New("store: document not found")
	// ErrDuplicate is returned when an insert violates a unique index.
	ErrDuplicate = errors.New("store: duplicate key")
	// ErrNoMatch is returned by conditional updates whose guard filter
	// matched nothing; the caller decides whether the document is missing
	// or the guard failed.
	ErrNoMatch = errors.New("store: no document matched filter")
)

// UserRepository persists users.
type UserRepository interface {
	Insert(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByIDs(ctx context.Context, ids []string) ([]models.User, error)
	UpdateAvatar(ctx context.Context, id, avatarURL string) error
}

// ProfileRepository persists profiles, one per user.
type ProfileRepository interface {
	Insert(ctx context.Context, profile *models.Profile) error
	Update(ctx context.Context, profile *models.Profile) error
	FindByUser(ctx context.Context, userID string) (*models.Profile, error)
	FindByHandle(ctx context.Context, handle string) (*models.Profile, error)
	FindAll(ctx context.Context) ([]models.Profile, error)
	ExistsForUser(ctx context.Context, userID string) (bool, error)
}

// PostRepository persists posts. AddLike and RemoveLike are single atomic
// update expressions keyed by like identity, so concurrent toggles against
// the same post are each preserved; both return the post-image of the
// document and ErrNoMatch when the guard filter matched nothing.
type PostRepository interface {
	Insert(ctx context.Context, post *models.Post) error
	FindByID(ctx context.Context, id string) (*models.Post, error)
	FindAll(ctx context.Context) ([]models.Post, error)
	Delete(ctx context.Context, id string) error
	AddLike(ctx context.Context, postID, userID string) (*models.Post, error)
	RemoveLike(ctx context.Context, postID, userID string) (*models.Post, error)
}
