package service

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/devconnect-app/backend/config"
	"github.com/devconnect-app/backend/internal/store"
	"github.com/devconnect-app/backend/internal/types"
)

const maxAvatarSize = 5 << 20 // 5MB

var avatarExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// AvatarService stores uploaded avatar images in S3 and records the public
// URL on the user document.
type AvatarService struct {
	s3Config *config.S3Config
	users    store.UserRepository
}

var _ IAvatarService = (*AvatarService)(nil)

// NewAvatarService creates a new AvatarService instance
func NewAvatarService(s3Config *config.S3Config, users store.UserRepository) *AvatarService {
	return &AvatarService{
		s3Config: s3Config,
		users:    users,
	}
}

// Upload validates the image, writes it to the avatar bucket under a per
// user key and updates the user's avatar URL. Re-uploading overwrites the
// previous object.
func (s *AvatarService) Upload(ctx context.Context, callerID, contentType string, body io.Reader, size int64) (string, error) {
	ext, ok := avatarExtensions[contentType]
	if !ok {
		return "", types.ValidationError{"avatar": "avatar must be a jpeg, png, gif or webp image"}
	}
	if size <= 0 || size > maxAvatarSize {
		return "", types.ValidationError{"avatar": "avatar must be between 1 byte and 5MB"}
	}

	key := fmt.Sprintf("avatars/%s%s", callerID, ext)
	_, err := s.s3Config.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.s3Config.BucketName),
		Key:           aws.String(key),
		Body:          body,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(size),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload avatar: %w", err)
	}

	url := s.s3Config.ObjectURL(key)
	if err := s.users.UpdateAvatar(ctx, callerID, url); err != nil {
		return "", err
	}
	return url, nil
}
