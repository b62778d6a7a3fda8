package mongodb

import (
	"context"
	"errors"

	"campushub/internal/catering/domain/model"
	"campushub/internal/catering/usecase"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoMealRequestRepository implements MealRequestRepository over the
// mealRequests collection.
type MongoMealRequestRepository struct {
	requests *mongo.Collection
}

// NewMongoMealRequestRepository creates a new MongoDB meal request repository
func NewMongoMealRequestRepository(db *mongo.Database) *MongoMealRequestRepository {
	return &MongoMealRequestRepository{requests: db.Collection("mealRequests")}
}

// SearchRequests returns all requests, or the subset matching search
// case-insensitively against the meal title, requester name/email and status.
func (r *MongoMealRequestRepository) SearchRequests(ctx context.Context, search string) ([]model.MealRequest, error) {
	filter := bson.M{}
	if search != "" {
		pattern := primitive.Regex{Pattern: search, Options: "i"}
		filter = bson.M{"$or": []bson.M{
			{"meal.title": pattern},
			{"user.email": pattern},
			{"user.name": pattern},
			{"status": pattern},
		}}
	}

	cursor, err := r.requests.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	requests := make([]model.MealRequest, 0)
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *MongoMealRequestRepository) InsertRequest(ctx context.Context, request *model.MealRequest) (string, error) {
	result, err := r.requests.InsertOne(ctx, request)
	if err != nil {
		return "", err
	}
	insertedID, _ := result.InsertedID.(primitive.ObjectID)
	return insertedID.Hex(), nil
}

// MarkDelivered flips a pending request to delivered. The status guard in the
// filter makes the transition idempotent under concurrent delivery attempts:
// the second caller matches nothing and gets ErrRequestNotFound.
func (r *MongoMealRequestRepository) MarkDelivered(ctx context.Context, id string) (*model.MealRequest, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, usecase.ErrInvalidID
	}

	filter := bson.M{"_id": objectID, "status": model.RequestStatusPending}
	update := bson.M{"$set": bson.M{"status": model.RequestStatusDelivered}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated model.MealRequest
	err = r.requests.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, usecase.ErrRequestNotFound
		}
		return nil, err
	}
	return &updated, nil
}
