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

// ProfileService handles profile upserts and reads.
type ProfileService struct {
	profiles      store.ProfileRepository
	users         store.UserRepository
	uniqueHandles bool
}

var _ IProfileService = (*ProfileService)(nil)

// NewProfileService creates a new ProfileService instance. With
// uniqueHandles set, upserts reject a handle already held by another user.
func NewProfileService(profiles store.ProfileRepository, users store.UserRepository, uniqueHandles bool) *ProfileService {
	return &ProfileService{
		profiles:      profiles,
		users:         users,
		uniqueHandles: uniqueHandles,
	}
}

// Upsert creates the calling user's profile if none exists, otherwise
// updates the existing one. Optional fields that are absent from the request
// are left untouched on update.
func (s *ProfileService) Upsert(ctx context.Context, callerID string, req *types.UpsertProfileRequest) (*models.Profile, error) {
	if errs := validateProfileInput(req); errs != nil {
		return nil, errs
	}

	if s.uniqueHandles {
		if err := s.checkHandleFree(ctx, callerID, req.Handle); err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()

	profile, err := s.profiles.FindByUser(ctx, callerID)
	if errors.Is(err, store.ErrNotFound) {
		profile = &models.Profile{
			ID:        uuid.NewString(),
			UserID:    callerID,
			CreatedAt: now,
		}
		applyProfileFields(profile, req)
		profile.UpdatedAt = now

		if err := s.profiles.Insert(ctx, profile); err != nil {
			if errors.Is(err, store.ErrDuplicate) {
				return nil, types.NewConflict("handle", "handle already in use")
			}
			return nil, err
		}
		return profile, nil
	}
	if err != nil {
		return nil, err
	}

	applyProfileFields(profile, req)
	profile.UpdatedAt = now

	if err := s.profiles.Update(ctx, profile); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, types.NewConflict("handle", "handle already in use")
		}
		return nil, err
	}
	return profile, nil
}

// GetCurrent returns the calling user's profile joined with the owner.
func (s *ProfileService) GetCurrent(ctx context.Context, callerID string) (*types.ProfileWithOwner, error) {
	return s.GetByUser(ctx, callerID)
}

// GetByHandle returns the profile with the given handle joined with the
// owning user's name and avatar.
func (s *ProfileService) GetByHandle(ctx context.Context, handle string) (*types.ProfileWithOwner, error) {
	profile, err := s.profiles.FindByHandle(ctx, handle)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, types.NewNotFound("noprofile", "no profile found for this handle")
		}
		return nil, err
	}
	return s.withOwner(ctx, profile)
}

// GetByUser returns the profile owned by userID joined with the owning
// user's name and avatar.
func (s *ProfileService) GetByUser(ctx context.Context, userID string) (*types.ProfileWithOwner, error) {
	profile, err := s.profiles.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, types.NewNotFound("noprofile", "no profile found for this user")
		}
		return nil, err
	}
	return s.withOwner(ctx, profile)
}

// ListAll returns every profile. An empty collection is reported as
// NotFound; the post feed treats empty as a normal success instead.
func (s *ProfileService) ListAll(ctx context.Context) ([]types.ProfileWithOwner, error) {
	profiles, err := s.profiles.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(profiles) == 0 {
		return nil, types.NewNotFound("noprofile", "no profiles exist")
	}

	ids := make([]string, 0, len(profiles))
	for _, p := range profiles {
		ids = append(ids, p.UserID)
	}
	users, err := s.users.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	owners := make(map[string]types.ProfileOwner, len(users))
	for _, u := range users {
		owners[u.ID] = types.ProfileOwner{ID: u.ID, Name: u.Name, Avatar: u.Avatar}
	}

	result := make([]types.ProfileWithOwner, 0, len(profiles))
	for _, p := range profiles {
		result = append(result, types.ProfileWithOwner{Profile: p, Owner: owners[p.UserID]})
	}
	return result, nil
}

func (s *ProfileService) withOwner(ctx context.Context, profile *models.Profile) (*types.ProfileWithOwner, error) {
	user, err := s.users.FindByID(ctx, profile.UserID)
	if err != nil {
		return nil, err
	}
	return &types.ProfileWithOwner{
		Profile: *profile,
		Owner:   types.ProfileOwner{ID: user.ID, Name: user.Name, Avatar: user.Avatar},
	}, nil
}

func (s *ProfileService) checkHandleFree(ctx context.Context, callerID, handle string) error {
	existing, err := s.profiles.FindByHandle(ctx, handle)
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if existing.UserID != callerID {
		return types.NewConflict("handle", "handle already in use")
	}
	return nil
}

// applyProfileFields copies the request onto the profile. Required fields
// always overwrite; optional fields only when supplied, so an update cannot
// blank out data the caller did not send.
func applyProfileFields(profile *models.Profile, req *types.UpsertProfileRequest) {
	profile.Handle = req.Handle
	profile.Status = req.Status
	profile.Skills = splitSkills(req.Skills)

	if req.Company != "" {
		profile.Company = req.Company
	}
	if req.Website != "" {
		profile.Website = req.Website
	}
	if req.Location != "" {
		profile.Location = req.Location
	}
	if req.Bio != "" {
		profile.Bio = req.Bio
	}
	if req.GithubUsername != "" {
		profile.GithubUsername = req.GithubUsername
	}
	if req.Wechat != "" {
		profile.Social.Wechat = req.Wechat
	}
	if req.QQ != "" {
		profile.Social.QQ = req.QQ
	}
	if req.Tengxunkt != "" {
		profile.Social.Tengxunkt = req.Tengxunkt
	}
	if req.Wangyikt != "" {
		profile.Social.Wangyikt = req.Wangyikt
	}
}
