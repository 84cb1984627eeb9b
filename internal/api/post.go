package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devconnect-app/backend/internal/middleware"
	"github.com/devconnect-app/backend/internal/models"
	"github.com/devconnect-app/backend/internal/service"
	"github.com/devconnect-app/backend/internal/types"
)

// PostHandler serves the post feed and the like/unlike toggle.
type PostHandler struct {
	postService       service.IPostService
	validator         middleware.TokenValidator
	creationLimiter   *middleware.RateLimiter
	engagementLimiter *middleware.RateLimiter
}

// NewPostHandler creates a new post handler. Limiters may be nil when Redis
// is unavailable; the routes then run unthrottled.
func NewPostHandler(postService service.IPostService, validator middleware.TokenValidator,
	creationLimiter, engagementLimiter *middleware.RateLimiter) *PostHandler {
	return &PostHandler{
		postService:       postService,
		validator:         validator,
		creationLimiter:   creationLimiter,
		engagementLimiter: engagementLimiter,
	}
}

// RegisterRoutes registers the post routes. Reads are public; creation,
// deletion and the engagement toggle require auth.
func (h *PostHandler) RegisterRoutes(router *gin.RouterGroup) {
	posts := router.Group("/posts")
	{
		posts.GET("/test", h.Test)
		posts.GET("/all", h.ListAll)
		posts.GET("", h.GetByID)

		auth := middleware.AuthMiddleware(h.validator)
		posts.POST("", chain(auth, h.creationLimiter, h.Create)...)
		posts.DELETE("", auth, h.Delete)
		posts.POST("/like", chain(auth, h.engagementLimiter, h.Like)...)
		posts.POST("/unlike", chain(auth, h.engagementLimiter, h.Unlike)...)
	}
}

// chain builds auth → rate limit → handler, skipping the limiter when none
// is configured.
func chain(auth gin.HandlerFunc, rl *middleware.RateLimiter, handler gin.HandlerFunc) []gin.HandlerFunc {
	handlers := []gin.HandlerFunc{auth}
	if rl != nil {
		handlers = append(handlers, rl.RateLimitMiddleware())
	}
	return append(handlers, handler)
}

// Test is the public ping endpoint.
func (h *PostHandler) Test(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"msg": "posts works"})
}

// Create persists a new post owned by the caller.
func (h *PostHandler) Create(c *gin.Context) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req types.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	post, err := h.postService.Create(c.Request.Context(), callerID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, post)
}

// ListAll returns every post, newest first.
func (h *PostHandler) ListAll(c *gin.Context) {
	posts, err := h.postService.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

// GetByID returns the post named by the id query param.
func (h *PostHandler) GetByID(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "post id is required"})
		return
	}

	post, err := h.postService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// Delete removes a post owned by the caller.
func (h *PostHandler) Delete(c *gin.Context) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "post id is required"})
		return
	}

	if err := h.postService.Delete(c.Request.Context(), callerID, id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Like adds the caller's like to a post.
func (h *PostHandler) Like(c *gin.Context) {
	h.toggle(c, h.postService.Like)
}

// Unlike removes the caller's like from a post.
func (h *PostHandler) Unlike(c *gin.Context) {
	h.toggle(c, h.postService.Unlike)
}

func (h *PostHandler) toggle(c *gin.Context, op func(ctx context.Context, callerID, id string) (*models.Post, error)) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "post id is required"})
		return
	}

	post, err := op(c.Request.Context(), callerID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}
