package database

import (
	"context"
	"fmt"
	"log"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/devconnect-app/backend/internal/store"
)

// EnsureIndexes creates the indexes every collection relies on: the unique
// email index on users, the unique user_id (and optionally handle) index on
// profiles, and the feed-ordering indexes on posts.
func EnsureIndexes(ctx context.Context, db *mongo.Database, uniqueHandles bool) error {
	indexed := []interface {
		EnsureIndexes(ctx context.Context) error
	}{
		store.NewMongoUserRepository(db),
		store.NewMongoProfileRepository(db, uniqueHandles),
		store.NewMongoPostRepository(db),
	}

	for _, repo := range indexed {
		if err := repo.EnsureIndexes(ctx); err != nil {
			return fmt.Errorf("failed to ensure indexes: %w", err)
		}
	}

	log.Printf("Ensured indexes on users, profiles and posts")
	return nil
}
