package router

import (
	"github.com/gin-gonic/gin"

	"github.com/devconnect-app/backend/config"
	"github.com/devconnect-app/backend/internal/api"
	"github.com/devconnect-app/backend/internal/middleware"
)

// SetupRouter configures the application routes
func SetupRouter(
	cfg *config.Config,
	authHandler *api.AuthHandler,
	profileHandler *api.ProfileHandler,
	postHandler *api.PostHandler,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg.AllowedOrigins))

	// Health check endpoint (no auth required)
	router.GET("/health", api.HealthCheck)

	v1 := router.Group("/api/v1")
	authHandler.RegisterRoutes(v1)
	profileHandler.RegisterRoutes(v1)
	postHandler.RegisterRoutes(v1)

	return router
}
