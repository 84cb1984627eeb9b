// Package testhelpers provides the container-backed test database and
// in-memory repository fakes used by the service tests. The fakes mirror
// the store semantics, including the guard behavior of the conditional
// like updates.
package testhelpers

import (
	"context"
	"sort"
	"sync"

	"github.com/devconnect-app/backend/internal/models"
	"github.com/devconnect-app/backend/internal/store"
)

// FakeUserRepository is an in-memory store.UserRepository.
type FakeUserRepository struct {
	mu    sync.Mutex
	users map[string]models.User
}

func NewFakeUserRepository() *FakeUserRepository {
	return &FakeUserRepository{users: make(map[string]models.User)}
}

func (r *FakeUserRepository) Insert(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return store.ErrDuplicate
		}
	}
	r.users[user.ID] = *user
	return nil
}

func (r *FakeUserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &u, nil
}

func (r *FakeUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, store.ErrNotFound
}

func (r *FakeUserRepository) FindByIDs(ctx context.Context, ids []string) ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.User
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *FakeUserRepository) UpdateAvatar(ctx context.Context, id, avatarURL string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return store.ErrNotFound
	}
	u.Avatar = avatarURL
	r.users[id] = u
	return nil
}

// FakeProfileRepository is an in-memory store.ProfileRepository. Set
// UniqueHandles to make Insert and Update reject handles already taken by
// another user.
type FakeProfileRepository struct {
	mu            sync.Mutex
	profiles      map[string]models.Profile // keyed by user ID
	UniqueHandles bool
}

func NewFakeProfileRepository() *FakeProfileRepository {
	return &FakeProfileRepository{profiles: make(map[string]models.Profile)}
}

func (r *FakeProfileRepository) handleTaken(handle, ownerUserID string) bool {
	for _, p := range r.profiles {
		if p.Handle == handle && p.UserID != ownerUserID {
			return true
		}
	}
	return false
}

func (r *FakeProfileRepository) Insert(ctx context.Context, profile *models.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.profiles[profile.UserID]; ok {
		return store.ErrDuplicate
	}
	if r.UniqueHandles && r.handleTaken(profile.Handle, profile.UserID) {
		return store.ErrDuplicate
	}
	r.profiles[profile.UserID] = *profile
	return nil
}

func (r *FakeProfileRepository) Update(ctx context.Context, profile *models.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.profiles[profile.UserID]; !ok {
		return store.ErrNotFound
	}
	if r.UniqueHandles && r.handleTaken(profile.Handle, profile.UserID) {
		return store.ErrDuplicate
	}
	r.profiles[profile.UserID] = *profile
	return nil
}

func (r *FakeProfileRepository) FindByUser(ctx context.Context, userID string) (*models.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.profiles[userID]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &p, nil
}

func (r *FakeProfileRepository) FindByHandle(ctx context.Context, handle string) (*models.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.profiles {
		if p.Handle == handle {
			p := p
			return &p, nil
		}
	}
	return nil, store.ErrNotFound
}

func (r *FakeProfileRepository) FindAll(ctx context.Context) ([]models.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Profile, 0, len(r.profiles))
	for _, p := range r.profiles {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *FakeProfileRepository) ExistsForUser(ctx context.Context, userID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.profiles[userID]
	return ok, nil
}

// FakePostRepository is an in-memory store.PostRepository.
type FakePostRepository struct {
	mu    sync.Mutex
	posts map[string]models.Post
}

func NewFakePostRepository() *FakePostRepository {
	return &FakePostRepository{posts: make(map[string]models.Post)}
}

func (r *FakePostRepository) Insert(ctx context.Context, post *models.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.posts[post.ID]; ok {
		return store.ErrDuplicate
	}
	r.posts[post.ID] = clonePost(*post)
	return nil
}

func (r *FakePostRepository) FindByID(ctx context.Context, id string) (*models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.posts[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	p = clonePost(p)
	return &p, nil
}

func (r *FakePostRepository) FindAll(ctx context.Context) ([]models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Post, 0, len(r.posts))
	for _, p := range r.posts {
		out = append(out, clonePost(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (r *FakePostRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.posts[id]; !ok {
		return store.ErrNotFound
	}
	delete(r.posts, id)
	return nil
}

func (r *FakePostRepository) AddLike(ctx context.Context, postID, userID string) (*models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.posts[postID]
	if !ok || p.LikedBy(userID) {
		return nil, store.ErrNoMatch
	}
	p.Likes = append([]models.Like{{UserID: userID}}, p.Likes...)
	r.posts[postID] = clonePost(p)
	return &p, nil
}

func (r *FakePostRepository) RemoveLike(ctx context.Context, postID, userID string) (*models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.posts[postID]
	if !ok || !p.LikedBy(userID) {
		return nil, store.ErrNoMatch
	}
	likes := make([]models.Like, 0, len(p.Likes)-1)
	for _, l := range p.Likes {
		if l.UserID != userID {
			likes = append(likes, l)
		}
	}
	p.Likes = likes
	r.posts[postID] = clonePost(p)
	return &p, nil
}

func clonePost(p models.Post) models.Post {
	likes := make([]models.Like, len(p.Likes))
	copy(likes, p.Likes)
	p.Likes = likes
	return p
}
