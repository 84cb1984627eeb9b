package models

import (
	"time"
)

// Like marks that a user has liked a post. Likes is an ordered set: newest
// first, at most one entry per user.
type Like struct {
	UserID string `bson:"user_id" json:"user_id"`
}

// Post is a feed entry. Apart from its likes and deletion a post is
// immutable once created.
type Post struct {
	ID     string    `bson:"_id" json:"id"`
	UserID string    `bson:"user_id" json:"user_id"`
	Text   string    `bson:"text" json:"text"`
	Name   string    `bson:"name" json:"name"`
	Avatar string    `bson:"avatar,omitempty" json:"avatar,omitempty"`
	Date   time.Time `bson:"date" json:"date"`
	Likes  []Like    `bson:"likes" json:"likes"`
}

// LikedBy reports whether userID is present in the post's like set.
func (p *Post) LikedBy(userID string) bool {
	for _, l := range p.Likes {
		if l.UserID == userID {
			return true
		}
	}
	return false
}
