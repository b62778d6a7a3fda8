package mongodb

import (
	"context"

	"campushub/internal/catering/domain/model"
	"campushub/internal/catering/usecase"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoReviewRepository implements ReviewRepository over the reviews
// collection.
type MongoReviewRepository struct {
	reviews *mongo.Collection
}

// NewMongoReviewRepository creates a new MongoDB review repository
func NewMongoReviewRepository(db *mongo.Database) *MongoReviewRepository {
	return &MongoReviewRepository{reviews: db.Collection("reviews")}
}

func (r *MongoReviewRepository) ListReviews(ctx context.Context) ([]model.Review, error) {
	return r.find(ctx, bson.M{})
}

func (r *MongoReviewRepository) ListReviewsByMeal(ctx context.Context, mealID string) ([]model.Review, error) {
	objectID, err := primitive.ObjectIDFromHex(mealID)
	if err != nil {
		return nil, usecase.ErrInvalidID
	}
	return r.find(ctx, bson.M{"mealId": objectID})
}

func (r *MongoReviewRepository) ListReviewsByEmail(ctx context.Context, email string) ([]model.Review, error) {
	return r.find(ctx, bson.M{"userEmail": email})
}

// InsertReview appends a review record.
func (r *MongoReviewRepository) InsertReview(ctx context.Context, review *model.Review) (string, error) {
	result, err := r.reviews.InsertOne(ctx, review)
	if err != nil {
		return "", err
	}
	insertedID, _ := result.InsertedID.(primitive.ObjectID)
	return insertedID.Hex(), nil
}

// DeleteReview removes a review by id.
func (r *MongoReviewRepository) DeleteReview(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return usecase.ErrInvalidID
	}

	result, err := r.reviews.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return usecase.ErrReviewNotFound
	}
	return nil
}

func (r *MongoReviewRepository) find(ctx context.Context, filter bson.M) ([]model.Review, error) {
	cursor, err := r.reviews.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	reviews := make([]model.Review, 0)
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}
