package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/devconnect-app/backend/internal/models"
)

const collectionProfiles = "profiles"

// MongoProfileRepository implements ProfileRepository over the profiles
// collection.
type MongoProfileRepository struct {
	collection    *mongo.Collection
	uniqueHandles bool
}

var _ ProfileRepository = (*MongoProfileRepository)(nil)

// NewMongoProfileRepository creates a profile repository bound to db. When
// uniqueHandles is set, EnsureIndexes additionally creates a unique index on
// handle.
func NewMongoProfileRepository(db *mongo.Database, uniqueHandles bool) *MongoProfileRepository {
	return &MongoProfileRepository{
		collection:    db.Collection(collectionProfiles),
		uniqueHandles: uniqueHandles,
	}
}

// EnsureIndexes creates the unique user_id index and, when configured, the
// unique handle index.
func (r *MongoProfileRepository) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	if r.uniqueHandles {
		indexes = append(indexes, mongo.IndexModel{
			Keys:    bson.D{{Key: "handle", Value: 1}},
			Options: options.Index().SetUnique(true),
		})
	} else {
		indexes = append(indexes, mongo.IndexModel{
			Keys: bson.D{{Key: "handle", Value: 1}},
		})
	}

	_, err := r.collection.Indexes().CreateMany(ctx, indexes)
	return err
}

func (r *MongoProfileRepository) Insert(ctx context.Context, profile *models.Profile) error {
	if _, err := r.collection.InsertOne(ctx, profile); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("insert profile: %w", err)
	}
	return nil
}

// Update replaces the profile document matched by user_id.
func (r *MongoProfileRepository) Update(ctx context.Context, profile *models.Profile) error {
	res, err := r.collection.ReplaceOne(ctx, bson.M{"user_id": profile.UserID}, profile)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("update profile: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoProfileRepository) FindByUser(ctx context.Context, userID string) (*models.Profile, error) {
	return r.findOne(ctx, bson.M{"user_id": userID})
}

func (r *MongoProfileRepository) FindByHandle(ctx context.Context, handle string) (*models.Profile, error) {
	return r.findOne(ctx, bson.M{"handle": handle})
}

func (r *MongoProfileRepository) FindAll(ctx context.Context) ([]models.Profile, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find profiles: %w", err)
	}

	var profiles []models.Profile
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, fmt.Errorf("decode profiles: %w", err)
	}
	return profiles, nil
}

func (r *MongoProfileRepository) ExistsForUser(ctx context.Context, userID string) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"user_id": userID}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("count profiles: %w", err)
	}
	return count > 0, nil
}

func (r *MongoProfileRepository) findOne(ctx context.Context, filter bson.M) (*models.Profile, error) {
	var profile models.Profile
	if err := r.collection.FindOne(ctx, filter).Decode(&profile); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find profile: %w", err)
	}
	return &profile, nil
}
