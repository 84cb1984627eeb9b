package main

import (
	"context"
	"log"
	"time"

	"github.com/devconnect-app/backend/config"
	"github.com/devconnect-app/backend/internal/database"
)

// Creates the collection indexes the application relies on. Safe to run
// repeatedly; index creation is idempotent.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.NewMongoDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := database.EnsureIndexes(ctx, db, cfg.UniqueHandles); err != nil {
		log.Fatalf("Failed to ensure indexes: %v", err)
	}
	log.Println("Indexes ensured")
}
