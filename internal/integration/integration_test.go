package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devconnect-app/backend/config"
	"github.com/devconnect-app/backend/internal/api"
	"github.com/devconnect-app/backend/internal/router"
	"github.com/devconnect-app/backend/internal/service"
	"github.com/devconnect-app/backend/internal/testhelpers"
	"github.com/devconnect-app/backend/internal/types"
)

// setupAPI wires the full HTTP surface onto in-memory repositories, so the
// tests below exercise routing, auth and service semantics end to end.
func setupAPI(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	users := testhelpers.NewFakeUserRepository()
	profiles := testhelpers.NewFakeProfileRepository()
	posts := testhelpers.NewFakePostRepository()

	authService := service.NewAuthService(users, "integration-test-secret")
	profileService := service.NewProfileService(profiles, users, false)
	postService := service.NewPostService(posts, profiles)

	cfg := &config.Config{AllowedOrigins: []string{"http://localhost:5173"}}
	return router.SetupRouter(cfg,
		api.NewAuthHandler(authService, nil),
		api.NewProfileHandler(profileService, authService),
		api.NewPostHandler(postService, authService, nil, nil),
	)
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func registerUser(t *testing.T, r *gin.Engine, name, email string) (token, userID string) {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/v1/users/register", "", types.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: "password123",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp types.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Token, resp.User.ID
}

func createProfile(t *testing.T, r *gin.Engine, token, handle string) {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/v1/profile", token, types.UpsertProfileRequest{
		Handle: handle,
		Status: "Developer",
		Skills: "go, mongodb",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestHealthEndpoint(t *testing.T) {
	r := setupAPI(t)

	w := doJSON(t, r, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}

func TestRegisterLoginFlow(t *testing.T) {
	r := setupAPI(t)

	token, userID := registerUser(t, r, "Alice", "alice@example.com")
	assert.NotEmpty(t, token)
	assert.NotEmpty(t, userID)

	// Registering the same email again conflicts
	w := doJSON(t, r, http.MethodPost, "/api/v1/users/register", "", types.RegisterRequest{
		Name:     "Other Alice",
		Email:    "alice@example.com",
		Password: "password456",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	// Login with the right password works, with the wrong one it does not
	w = doJSON(t, r, http.MethodPost, "/api/v1/users/login", "", types.LoginRequest{
		Email:    "alice@example.com",
		Password: "password123",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/v1/users/login", "", types.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrongpassword",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProfileLifecycle(t *testing.T) {
	r := setupAPI(t)

	token, userID := registerUser(t, r, "Alice", "alice@example.com")

	// No profile yet
	w := doJSON(t, r, http.MethodGet, "/api/v1/profile", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// The public listing of an empty collection is a 404 as well
	w = doJSON(t, r, http.MethodGet, "/api/v1/profile/all", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	createProfile(t, r, token, "alice")

	w = doJSON(t, r, http.MethodGet, "/api/v1/profile", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var current types.ProfileWithOwner
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &current))
	assert.Equal(t, "alice", current.Handle)
	assert.Equal(t, "Alice", current.Owner.Name)

	// Public reads by handle and by user id
	w = doJSON(t, r, http.MethodGet, "/api/v1/profile/handle?handle=alice", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/v1/profile/user?user_id=%s", userID), "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Upserting again keeps the same profile identity
	w = doJSON(t, r, http.MethodPost, "/api/v1/profile", token, types.UpsertProfileRequest{
		Handle: "alice-renamed",
		Status: "Senior Developer",
		Skills: "go",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/v1/profile/all", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var all []types.ProfileWithOwner
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &all))
	require.Len(t, all, 1)
	assert.Equal(t, current.ID, all[0].ID)
	assert.Equal(t, "alice-renamed", all[0].Handle)
}

func TestPostFeedAndEngagement(t *testing.T) {
	r := setupAPI(t)

	authorToken, _ := registerUser(t, r, "Author", "author@example.com")
	fanToken, _ := registerUser(t, r, "Fan", "fan@example.com")
	createProfile(t, r, authorToken, "author")
	createProfile(t, r, fanToken, "fan")

	// An empty feed is a 200 with an empty array
	w := doJSON(t, r, http.MethodGet, "/api/v1/posts/all", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = doJSON(t, r, http.MethodPost, "/api/v1/posts", authorToken, types.CreatePostRequest{
		Text: "a post body long enough to pass validation",
		Name: "Author",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var post struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &post))

	likePath := fmt.Sprintf("/api/v1/posts/like?id=%s", post.ID)
	unlikePath := fmt.Sprintf("/api/v1/posts/unlike?id=%s", post.ID)

	// Like, duplicate like, unlike, duplicate unlike
	w = doJSON(t, r, http.MethodPost, likePath, fanToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, likePath, fanToken, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "alreadyliked")

	w = doJSON(t, r, http.MethodPost, unlikePath, fanToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, unlikePath, fanToken, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "notliked")

	// Only the owner can delete
	deletePath := fmt.Sprintf("/api/v1/posts?id=%s", post.ID)
	w = doJSON(t, r, http.MethodDelete, deletePath, fanToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, r, http.MethodDelete, deletePath, authorToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/v1/posts?id=%s", post.ID), "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestEngagementRequiresProfile(t *testing.T) {
	r := setupAPI(t)

	authorToken, _ := registerUser(t, r, "Author", "author@example.com")
	lurkerToken, _ := registerUser(t, r, "Lurker", "lurker@example.com")
	createProfile(t, r, authorToken, "author")

	w := doJSON(t, r, http.MethodPost, "/api/v1/posts", authorToken, types.CreatePostRequest{
		Text: "a post body long enough to pass validation",
		Name: "Author",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var post struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &post))

	// A user without a profile cannot like or delete
	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/v1/posts/like?id=%s", post.ID), lurkerToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "noprofile")

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/v1/posts?id=%s", post.ID), lurkerToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPingEndpoints(t *testing.T) {
	r := setupAPI(t)

	for path, msg := range map[string]string{
		"/api/v1/users/test":   "users works",
		"/api/v1/profile/test": "profile works",
		"/api/v1/posts/test":   "posts works",
	} {
		w := doJSON(t, r, http.MethodGet, path, "", nil)
		require.Equal(t, http.StatusOK, w.Code, path)
		assert.Contains(t, w.Body.String(), msg)
	}
}
