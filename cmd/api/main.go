package main

import (
	"context"
	"log"

	"github.com/devconnect-app/backend/config"
	"github.com/devconnect-app/backend/internal/database"
	"github.com/devconnect-app/backend/internal/server"
)

func main() {
	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.NewMongoDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	if err := database.EnsureIndexes(context.Background(), db, cfg.UniqueHandles); err != nil {
		log.Fatalf("Failed to ensure indexes: %v", err)
	}

	// Redis is optional: the server degrades to unlimited request rates
	// when it is unreachable.
	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		log.Printf("Redis unavailable, rate limiting disabled: %v", err)
		redisClient = nil
	}

	// S3 is optional as well; without it avatar uploads are not served.
	var s3Config *config.S3Config
	if cfg.S3Bucket != "" {
		s3Config, err = config.NewS3Config(context.Background(), cfg)
		if err != nil {
			log.Printf("S3 unavailable, avatar uploads disabled: %v", err)
			s3Config = nil
		}
	}

	srv := server.NewServer(cfg, db, redisClient, s3Config)
	if err := srv.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
	log.Println("Server stopped")
}
