package service

import (
	"context"
	"crypto/md5"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/devconnect-app/backend/internal/models"
	"github.com/devconnect-app/backend/internal/store"
	"github.com/devconnect-app/backend/internal/types"
)

var (
	ErrInvalidToken       = errors.New("invalid token")
	ErrInvalidCredentials = types.NewUnauthenticated("credentials", "invalid email or password")
)

const tokenTTL = 24 * time.Hour

// AuthService issues and verifies identity tokens and handles registration.
type AuthService struct {
	users     store.UserRepository
	jwtSecret string
}

var _ IAuthService = (*AuthService)(nil)

// NewAuthService creates a new AuthService instance
func NewAuthService(users store.UserRepository, jwtSecret string) *AuthService {
	return &AuthService{
		users:     users,
		jwtSecret: jwtSecret,
	}
}

// Register creates a user with a bcrypt-hashed password and returns a signed
// token for it. A taken email yields a Conflict keyed "email".
func (s *AuthService) Register(ctx context.Context, req *types.RegisterRequest) (*types.AuthResponse, error) {
	if _, err := s.users.FindByEmail(ctx, req.Email); err == nil {
		return nil, types.NewConflict("email", "email already in use")
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
		Avatar:       gravatarURL(req.Email),
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.users.Insert(ctx, user); err != nil {
		// The unique email index backstops the pre-check under concurrent
		// registrations.
		if errors.Is(err, store.ErrDuplicate) {
			return nil, types.NewConflict("email", "email already in use")
		}
		return nil, err
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	return &types.AuthResponse{Token: token, User: user}, nil
}

// Login verifies the credentials and returns a signed token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*types.AuthResponse, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	return &types.AuthResponse{Token: token, User: user}, nil
}

func (s *AuthService) generateToken(user *models.User) (string, error) {
	now := time.Now()
	claims := &types.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
		UserID: user.ID,
		Name:   user.Name,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// ValidateToken parses and verifies a token, returning its claims.
func (s *AuthService) ValidateToken(tokenString string) (*types.TokenClaims, error) {
	claims := &types.TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.UserID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// gravatarURL builds the default avatar for an email address.
func gravatarURL(email string) string {
	hash := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email))))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%x?s=200&d=identicon", hash)
}
