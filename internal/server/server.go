package server

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/devconnect-app/backend/config"
	"github.com/devconnect-app/backend/internal/api"
	"github.com/devconnect-app/backend/internal/middleware"
	"github.com/devconnect-app/backend/internal/router"
	"github.com/devconnect-app/backend/internal/service"
	"github.com/devconnect-app/backend/internal/store"
)

// Server represents the HTTP server
type Server struct {
	cfg    *config.Config
	engine *gin.Engine
	http   *http.Server
}

// NewServer wires the repositories, services and handlers together.
// The redis client and S3 config are optional; when nil the server
// runs without rate limiting or avatar uploads.
func NewServer(cfg *config.Config, db *mongo.Database, redisClient *redis.Client, s3Config *config.S3Config) *Server {
	users := store.NewMongoUserRepository(db)
	profiles := store.NewMongoProfileRepository(db, cfg.UniqueHandles)
	posts := store.NewMongoPostRepository(db)

	authService := service.NewAuthService(users, cfg.JWTSecret)
	profileService := service.NewProfileService(profiles, users, cfg.UniqueHandles)
	postService := service.NewPostService(posts, profiles)

	var avatarService service.IAvatarService
	if s3Config != nil {
		avatarService = service.NewAvatarService(s3Config, users)
	}

	var creationLimiter, engagementLimiter *middleware.RateLimiter
	if redisClient != nil {
		creationLimiter = middleware.NewPostCreationRateLimiter(redisClient)
		engagementLimiter = middleware.NewEngagementRateLimiter(redisClient)
	}

	authHandler := api.NewAuthHandler(authService, avatarService)
	profileHandler := api.NewProfileHandler(profileService, authService)
	postHandler := api.NewPostHandler(postService, authService, creationLimiter, engagementLimiter)

	engine := router.SetupRouter(cfg, authHandler, profileHandler, postHandler)

	return &Server{
		cfg:    cfg,
		engine: engine,
	}
}

// Start runs the server until an interrupt signal arrives, then shuts
// down gracefully.
func (s *Server) Start() error {
	s.http = &http.Server{
		Addr:    s.cfg.ServerHost + ":" + s.cfg.ServerPort,
		Handler: s.engine,
	}

	go func() {
		if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()
	log.Printf("Server listening on %s", s.http.Addr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return s.http.Shutdown(ctx)
}

// Stop gracefully stops the HTTP server
func (s *Server) Stop(ctx context.Context) error {
	if s.http != nil {
		return s.http.Shutdown(ctx)
	}
	return nil
}
