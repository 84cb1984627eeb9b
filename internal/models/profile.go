package models

import (
	"time"
)

// SocialLinks holds the optional social accounts nested under a profile.
// Any subset may be set; absent fields are left untouched on update.
type SocialLinks struct {
	Wechat    string `bson:"wechat,omitempty" json:"wechat,omitempty"`
	QQ        string `bson:"qq,omitempty" json:"qq,omitempty"`
	Tengxunkt string `bson:"tengxunkt,omitempty" json:"tengxunkt,omitempty"`
	Wangyikt  string `bson:"wangyikt,omitempty" json:"wangyikt,omitempty"`
}

// Profile is the per-user profile document. Exactly one profile exists per
// user; writes go through an upsert keyed on UserID.
type Profile struct {
	ID             string      `bson:"_id" json:"id"`
	UserID         string      `bson:"user_id" json:"user_id"`
	Handle         string      `bson:"handle" json:"handle"`
	Status         string      `bson:"status" json:"status"`
	Skills         []string    `bson:"skills" json:"skills"`
	Company        string      `bson:"company,omitempty" json:"company,omitempty"`
	Website        string      `bson:"website,omitempty" json:"website,omitempty"`
	Location       string      `bson:"location,omitempty" json:"location,omitempty"`
	Bio            string      `bson:"bio,omitempty" json:"bio,omitempty"`
	GithubUsername string      `bson:"githubusername,omitempty" json:"githubusername,omitempty"`
	Social         SocialLinks `bson:"social" json:"social"`
	CreatedAt      time.Time   `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time   `bson:"updated_at" json:"updated_at"`
}
