package types

import (
	"github.com/devconnect-app/backend/internal/models"
)

// ProfileOwner is the slice of the owning user that profile reads expose:
// just the public identity, never the account fields.
type ProfileOwner struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// ProfileWithOwner is a profile joined with its owning user.
type ProfileWithOwner struct {
	models.Profile
	Owner ProfileOwner `json:"user"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}
