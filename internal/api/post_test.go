package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/devconnect-app/backend/internal/mocks"
	"github.com/devconnect-app/backend/internal/models"
	"github.com/devconnect-app/backend/internal/types"
)

func postFixture(id, userID string, likes ...string) *models.Post {
	post := &models.Post{
		ID:     id,
		UserID: userID,
		Text:   "a post body long enough to pass validation",
		Name:   "Alice",
		Date:   time.Now().UTC(),
		Likes:  []models.Like{},
	}
	for _, l := range likes {
		post.Likes = append(post.Likes, models.Like{UserID: l})
	}
	return post
}

func authedPostRouter(t *testing.T, mockPostService *mocks.MockPostService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	mockAuthService := new(mocks.MockAuthService)
	mockAuthService.On("ValidateToken", "valid-token").Return(&types.TokenClaims{UserID: "u1"}, nil)

	router := gin.New()
	NewPostHandler(mockPostService, mockAuthService, nil, nil).RegisterRoutes(router.Group("/api/v1"))
	return router
}

func TestCreatePostHandler(t *testing.T) {
	mockPostService := new(mocks.MockPostService)
	router := authedPostRouter(t, mockPostService)

	mockPostService.On("Create", mock.Anything, "u1", mock.Anything).Return(postFixture("p1", "u1"), nil)

	body, _ := json.Marshal(types.CreatePostRequest{
		Text: "a post body long enough to pass validation",
		Name: "Alice",
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/posts", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer valid-token")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	var resp models.Post
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "p1", resp.ID)
	mockPostService.AssertExpectations(t)
}

func TestCreatePostRequiresAuth(t *testing.T) {
	mockPostService := new(mocks.MockPostService)
	router := authedPostRouter(t, mockPostService)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/posts", bytes.NewBufferString(`{}`))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mockPostService.AssertNotCalled(t, "Create")
}

func TestListAllPosts(t *testing.T) {
	mockPostService := new(mocks.MockPostService)
	router := authedPostRouter(t, mockPostService)

	feed := []models.Post{*postFixture("p2", "u2"), *postFixture("p1", "u1")}
	mockPostService.On("ListAll", mock.Anything).Return(feed, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/posts/all", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp []models.Post
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "p2", resp[0].ID)
}

func TestListAllPostsEmptyFeed(t *testing.T) {
	mockPostService := new(mocks.MockPostService)
	router := authedPostRouter(t, mockPostService)

	mockPostService.On("ListAll", mock.Anything).Return([]models.Post{}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/posts/all", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestGetPostByID(t *testing.T) {
	mockPostService := new(mocks.MockPostService)
	router := authedPostRouter(t, mockPostService)

	mockPostService.On("GetByID", mock.Anything, "p1").Return(postFixture("p1", "u1"), nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/posts?id=p1", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	// Missing id query param is rejected without touching the service
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/v1/posts", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeletePostHandler(t *testing.T) {
	mockPostService := new(mocks.MockPostService)
	router := authedPostRouter(t, mockPostService)

	mockPostService.On("Delete", mock.Anything, "u1", "p1").Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/posts?id=p1", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success": true}`, w.Body.String())
}

func TestDeletePostNotOwner(t *testing.T) {
	mockPostService := new(mocks.MockPostService)
	router := authedPostRouter(t, mockPostService)

	mockPostService.On("Delete", mock.Anything, "u1", "p1").
		Return(types.NewForbidden("noauthorization", "user is not the owner of this post"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/posts?id=p1", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusForbidden, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp, "noauthorization")
}

func TestLikePostHandler(t *testing.T) {
	mockPostService := new(mocks.MockPostService)
	router := authedPostRouter(t, mockPostService)

	mockPostService.On("Like", mock.Anything, "u1", "p1").Return(postFixture("p1", "u2", "u1"), nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/posts/like?id=p1", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp models.Post
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Likes, 1)
	assert.Equal(t, "u1", resp.Likes[0].UserID)
}

func TestLikePostAlreadyLiked(t *testing.T) {
	mockPostService := new(mocks.MockPostService)
	router := authedPostRouter(t, mockPostService)

	mockPostService.On("Like", mock.Anything, "u1", "p1").
		Return(nil, types.NewConflict("alreadyliked", "user already liked this post"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/posts/like?id=p1", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusConflict, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp, "alreadyliked")
}

func TestUnlikePostHandler(t *testing.T) {
	mockPostService := new(mocks.MockPostService)
	router := authedPostRouter(t, mockPostService)

	mockPostService.On("Unlike", mock.Anything, "u1", "p1").Return(postFixture("p1", "u2"), nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/posts/unlike?id=p1", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp models.Post
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Likes)
}

func TestUnlikePostNotLiked(t *testing.T) {
	mockPostService := new(mocks.MockPostService)
	router := authedPostRouter(t, mockPostService)

	mockPostService.On("Unlike", mock.Anything, "u1", "p1").
		Return(nil, types.NewConflict("notliked", "user has not liked this post"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/posts/unlike?id=p1", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusConflict, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp, "notliked")
}
