package models

import (
	"time"
)

// User is a registered account. The password is bcrypt-hashed before the
// document is inserted; the hash never leaves the API.
type User struct {
	ID           string    `bson:"_id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	Avatar       string    `bson:"avatar" json:"avatar"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}
