package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/devconnect-app/backend/internal/models"
	"github.com/devconnect-app/backend/internal/store"
	"github.com/devconnect-app/backend/internal/types"
)

// PostService handles the post feed: creation, reads, ownership-checked
// deletion and the like/unlike engagement toggle.
type PostService struct {
	posts    store.PostRepository
	profiles store.ProfileRepository
}

var _ IPostService = (*PostService)(nil)

// NewPostService creates a new PostService instance
func NewPostService(posts store.PostRepository, profiles store.ProfileRepository) *PostService {
	return &PostService{
		posts:    posts,
		profiles: profiles,
	}
}

// Create persists a new post owned by the caller with an empty like set.
func (s *PostService) Create(ctx context.Context, callerID string, req *types.CreatePostRequest) (*models.Post, error) {
	if errs := validatePostInput(req); errs != nil {
		return nil, errs
	}

	post := &models.Post{
		ID:     uuid.NewString(),
		UserID: callerID,
		Text:   req.Text,
		Name:   req.Name,
		Avatar: req.Avatar,
		Date:   time.Now().UTC(),
		Likes:  []models.Like{},
	}

	if err := s.posts.Insert(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// ListAll returns every post, newest first. An empty feed is a valid
// success here, unlike the profile listing.
func (s *PostService) ListAll(ctx context.Context) ([]models.Post, error) {
	posts, err := s.posts.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []models.Post{}
	}
	return posts, nil
}

// GetByID returns a single post.
func (s *PostService) GetByID(ctx context.Context, id string) (*models.Post, error) {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, types.NewNotFound("nopostfound", "post not found")
		}
		return nil, err
	}
	return post, nil
}

// Delete removes a post. The caller must have a profile and own the post;
// a missing profile is NotFound, not owning the post is Forbidden.
func (s *PostService) Delete(ctx context.Context, callerID, id string) error {
	if err := s.requireProfile(ctx, callerID); err != nil {
		return err
	}

	post, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if post.UserID != callerID {
		return types.NewForbidden("noauthorization", "user is not the owner of this post")
	}

	return s.posts.Delete(ctx, id)
}

// Like adds the caller to the post's like set, newest first. Liking a post
// twice is a Conflict, not a no-op, so client-side state bugs surface
// immediately.
func (s *PostService) Like(ctx context.Context, callerID, id string) (*models.Post, error) {
	if err := s.requireProfile(ctx, callerID); err != nil {
		return nil, err
	}

	post, err := s.posts.AddLike(ctx, id, callerID)
	if errors.Is(err, store.ErrNoMatch) {
		// The guarded update matched nothing: either the post is gone or
		// the caller already liked it.
		if _, err := s.GetByID(ctx, id); err != nil {
			return nil, err
		}
		return nil, types.NewConflict("alreadyliked", "user already liked this post")
	}
	if err != nil {
		return nil, err
	}
	return post, nil
}

// Unlike removes the caller's like by identity. Unliking a post the caller
// never liked is a Conflict.
func (s *PostService) Unlike(ctx context.Context, callerID, id string) (*models.Post, error) {
	if err := s.requireProfile(ctx, callerID); err != nil {
		return nil, err
	}

	post, err := s.posts.RemoveLike(ctx, id, callerID)
	if errors.Is(err, store.ErrNoMatch) {
		if _, err := s.GetByID(ctx, id); err != nil {
			return nil, err
		}
		return nil, types.NewConflict("notliked", "user has not liked this post")
	}
	if err != nil {
		return nil, err
	}
	return post, nil
}

// requireProfile is the precondition gate on delete/like/unlike: the caller
// must possess a profile before any ownership or membership check runs.
func (s *PostService) requireProfile(ctx context.Context, callerID string) error {
	exists, err := s.profiles.ExistsForUser(ctx, callerID)
	if err != nil {
		return err
	}
	if !exists {
		return types.NewNotFound("noprofile", "no profile exists for this user")
	}
	return nil
}
