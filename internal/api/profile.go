package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devconnect-app/backend/internal/middleware"
	"github.com/devconnect-app/backend/internal/service"
	"github.com/devconnect-app/backend/internal/types"
)

// ProfileHandler serves profile upserts and lookups.
type ProfileHandler struct {
	profileService service.IProfileService
	validator      middleware.TokenValidator
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileService service.IProfileService, validator middleware.TokenValidator) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		validator:      validator,
	}
}

// RegisterRoutes registers the profile routes. Reads by handle, user and
// "all" are public; the current-profile read and the upsert require auth.
func (h *ProfileHandler) RegisterRoutes(router *gin.RouterGroup) {
	profile := router.Group("/profile")
	{
		profile.GET("/test", h.Test)
		profile.GET("/handle", h.GetByHandle)
		profile.GET("/user", h.GetByUser)
		profile.GET("/all", h.ListAll)

		auth := middleware.AuthMiddleware(h.validator)
		profile.GET("", auth, h.GetCurrent)
		profile.POST("", auth, h.Upsert)
	}
}

// Test is the public ping endpoint.
func (h *ProfileHandler) Test(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"msg": "profile works"})
}

// GetCurrent returns the calling user's profile.
func (h *ProfileHandler) GetCurrent(c *gin.Context) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	profile, err := h.profileService.GetCurrent(c.Request.Context(), callerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// Upsert creates or updates the calling user's profile.
func (h *ProfileHandler) Upsert(c *gin.Context) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req types.UpsertProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	profile, err := h.profileService.Upsert(c.Request.Context(), callerID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// GetByHandle returns the profile with the handle given as a query param.
func (h *ProfileHandler) GetByHandle(c *gin.Context) {
	handle := c.Query("handle")
	if handle == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "handle is required"})
		return
	}

	profile, err := h.profileService.GetByHandle(c.Request.Context(), handle)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// GetByUser returns the profile owned by the user_id query param.
func (h *ProfileHandler) GetByUser(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}

	profile, err := h.profileService.GetByUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// ListAll returns every profile; an empty collection is a 404 by policy.
func (h *ProfileHandler) ListAll(c *gin.Context) {
	profiles, err := h.profileService.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profiles)
}
