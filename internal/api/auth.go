package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devconnect-app/backend/internal/middleware"
	"github.com/devconnect-app/backend/internal/service"
	"github.com/devconnect-app/backend/internal/types"
)

// AuthHandler serves registration, login and avatar upload.
type AuthHandler struct {
	authService   service.IAuthService
	avatarService service.IAvatarService
}

// NewAuthHandler creates a new auth handler. avatarService may be nil when
// no avatar storage is configured; the upload route is then not registered.
func NewAuthHandler(authService service.IAuthService, avatarService service.IAvatarService) *AuthHandler {
	return &AuthHandler{
		authService:   authService,
		avatarService: avatarService,
	}
}

// RegisterRoutes registers the user routes.
func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup) {
	users := router.Group("/users")
	{
		users.GET("/test", h.Test)
		users.POST("/register", h.Register)
		users.POST("/login", h.Login)
		if h.avatarService != nil {
			users.POST("/avatar", middleware.AuthMiddleware(h.authService), h.UploadAvatar)
		}
	}
}

// Test is the public ping endpoint.
func (h *AuthHandler) Test(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"msg": "users works"})
}

// Register creates a new user account.
func (h *AuthHandler) Register(c *gin.Context) {
	var req types.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	resp, err := h.authService.Register(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Login exchanges credentials for a token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UploadAvatar stores a new avatar image for the calling user.
func (h *AuthHandler) UploadAvatar(c *gin.Context) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	header, err := c.FormFile("avatar")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"avatar": "avatar file is required"})
		return
	}

	file, err := header.Open()
	if err != nil {
		respondError(c, err)
		return
	}
	defer file.Close()

	url, err := h.avatarService.Upload(c.Request.Context(), callerID,
		header.Header.Get("Content-Type"), file, header.Size)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"avatar": url})
}
