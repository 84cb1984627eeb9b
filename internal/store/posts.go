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

const collectionPosts = "posts"

// MongoPostRepository implements PostRepository over the posts collection.
type MongoPostRepository struct {
	collection *mongo.Collection
}

var _ PostRepository = (*MongoPostRepository)(nil)

// NewMongoPostRepository creates a post repository bound to db.
func NewMongoPostRepository(db *mongo.Database) *MongoPostRepository {
	return &MongoPostRepository{collection: db.Collection(collectionPosts)}
}

// EnsureIndexes creates the feed-ordering and owner indexes.
func (r *MongoPostRepository) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "date", Value: -1}}},
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
	}
	_, err := r.collection.Indexes().CreateMany(ctx, indexes)
	return err
}

func (r *MongoPostRepository) Insert(ctx context.Context, post *models.Post) error {
	if _, err := r.collection.InsertOne(ctx, post); err != nil {
		return fmt.Errorf("insert post: %w", err)
	}
	return nil
}

func (r *MongoPostRepository) FindByID(ctx context.Context, id string) (*models.Post, error) {
	var post models.Post
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&post); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find post: %w", err)
	}
	return &post, nil
}

// FindAll returns every post, newest first.
func (r *MongoPostRepository) FindAll(ctx context.Context) ([]models.Post, error) {
	cursor, err := r.collection.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("find posts: %w", err)
	}

	var posts []models.Post
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, fmt.Errorf("decode posts: %w", err)
	}
	return posts, nil
}

func (r *MongoPostRepository) Delete(ctx context.Context, id string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// AddLike prepends a like for userID in one update expression. The guard
// filter only matches when the post exists and userID is not already in the
// like set, so two concurrent likes can never both pass and the insertion is
// duplicate-free without a read-modify-write cycle.
func (r *MongoPostRepository) AddLike(ctx context.Context, postID, userID string) (*models.Post, error) {
	filter := bson.M{
		"_id":           postID,
		"likes.user_id": bson.M{"$ne": userID},
	}
	update := bson.M{
		"$push": bson.M{
			"likes": bson.M{
				"$each":     []models.Like{{UserID: userID}},
				"$position": 0,
			},
		},
	}
	return r.findOneAndUpdate(ctx, filter, update)
}

// RemoveLike pulls userID's like by identity in one update expression. The
// guard filter only matches when the like is present.
func (r *MongoPostRepository) RemoveLike(ctx context.Context, postID, userID string) (*models.Post, error) {
	filter := bson.M{
		"_id":           postID,
		"likes.user_id": userID,
	}
	update := bson.M{
		"$pull": bson.M{
			"likes": bson.M{"user_id": userID},
		},
	}
	return r.findOneAndUpdate(ctx, filter, update)
}

func (r *MongoPostRepository) findOneAndUpdate(ctx context.Context, filter, update bson.M) (*models.Post, error) {
	var post models.Post
	err := r.collection.FindOneAndUpdate(ctx, filter, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&post)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNoMatch
		}
		return nil, fmt.Errorf("update post likes: %w", err)
	}
	return &post, nil
}
