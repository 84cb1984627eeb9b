package types

// RegisterRequest is the body for user registration.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest is the body for user login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpsertProfileRequest is the body for creating or updating the calling
// user's profile. Skills arrives as a single comma-separated string and is
// decomposed by the service. Social fields are flat in the request body,
// mirroring the wire format the frontend sends.
type UpsertProfileRequest struct {
	Handle         string `json:"handle"`
	Status         string `json:"status"`
	Skills         string `json:"skills"`
	Company        string `json:"company"`
	Website        string `json:"website"`
	Location       string `json:"location"`
	Bio            string `json:"bio"`
	GithubUsername string `json:"githubusername"`
	Wechat         string `json:"wechat"`
	QQ             string `json:"qq"`
	Tengxunkt      string `json:"tengxunkt"`
	Wangyikt       string `json:"wangyikt"`
}

// CreatePostRequest is the body for creating a post.
type CreatePostRequest struct {
	Text   string `json:"text"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}
