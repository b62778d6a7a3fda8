package mongodb

import (
	"context"
	"time"

	"campushub/internal/catering/domain/model"
	"campushub/internal/catering/usecase"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoMealRepository implements MealRepository over the meals and mealLikes
// collections.
type MongoMealRepository struct {
	meals *mongo.Collection
	likes *mongo.Collection
}

// NewMongoMealRepository creates a new MongoDB meal repository
func NewMongoMealRepository(db *mongo.Database) (*MongoMealRepository, error) {
	repo := &MongoMealRepository{
		meals: db.Collection("meals"),
		likes: db.Collection("mealLikes"),
	}

	// Compound unique index backs the (meal, user) like set
	likeIndex := mongo.IndexModel{
		Keys: bson.D{
			{Key: "mealId", Value: 1},
			{Key: "userId", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	}
	if _, err := repo.likes.Indexes().CreateOne(context.Background(), likeIndex); err != nil {
		return nil, err
	}

	return repo, nil
}

// ListMeals returns all meals.
func (r *MongoMealRepository) ListMeals(ctx context.Context) ([]model.Meal, error) {
	cursor, err := r.meals.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	meals := make([]model.Meal, 0)
	if err := cursor.All(ctx, &meals); err != nil {
		return nil, err
	}
	return meals, nil
}

// GetMeal retrieves one meal by id.
func (r *MongoMealRepository) GetMeal(ctx context.Context, id string) (*model.Meal, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, usecase.ErrInvalidID
	}

	var meal model.Meal
	if err := r.meals.FindOne(ctx, bson.M{"_id": objectID}).Decode(&meal); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, usecase.ErrMealNotFound
		}
		return nil, err
	}
	return &meal, nil
}

// InsertMeal inserts a meal with a server-set creation timestamp.
func (r *MongoMealRepository) InsertMeal(ctx context.Context, meal *model.Meal) (string, error) {
	if meal.CreatedAt.IsZero() {
		meal.CreatedAt = time.Now().UTC()
	}

	result, err := r.meals.InsertOne(ctx, meal)
	if err != nil {
		return "", err
	}
	insertedID, _ := result.InsertedID.(primitive.ObjectID)
	return insertedID.Hex(), nil
}

// CountMealsByAdmin counts meals owned by the given admin email.
func (r *MongoMealRepository) CountMealsByAdmin(ctx context.Context, adminEmail string) (int64, error) {
	return r.meals.CountDocuments(ctx, bson.M{"adminEmail": adminEmail})
}

// ListMealsByUserEmail returns meals carrying the given requester email.
func (r *MongoMealRepository) ListMealsByUserEmail(ctx context.Context, email string) ([]model.Meal, error) {
	cursor, err := r.meals.Find(ctx, bson.M{"userEmail": email})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	meals := make([]model.Meal, 0)
	if err := cursor.All(ctx, &meals); err != nil {
		return nil, err
	}
	return meals, nil
}

// DeleteMeal removes a meal by id.
func (r *MongoMealRepository) DeleteMeal(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return usecase.ErrInvalidID
	}

	result, err := r.meals.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return usecase.ErrMealNotFound
	}
	return nil
}

// ToggleLike flips the (meal, user) membership in the like set. The counter
// on the meal is adjusted only on an actual membership transition, so it
// cannot drift under repeated calls.
func (r *MongoMealRepository) ToggleLike(ctx context.Context, mealID, userID string) (bool, error) {
	objectID, err := primitive.ObjectIDFromHex(mealID)
	if err != nil {
		return false, usecase.ErrInvalidID
	}

	if err := r.meals.FindOne(ctx, bson.M{"_id": objectID}).Err(); err != nil {
		if err == mongo.ErrNoDocuments {
			return false, usecase.ErrMealNotFound
		}
		return false, err
	}

	filter := bson.M{"mealId": objectID, "userId": userID}

	deleted, err := r.likes.DeleteOne(ctx, filter)
	if err != nil {
		return false, err
	}
	if deleted.DeletedCount == 1 {
		_, err := r.meals.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$inc": bson.M{"likes": -1}})
		return false, err
	}

	_, err = r.likes.InsertOne(ctx, model.MealLike{
		MealID:    objectID,
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		// A concurrent like won the race; the unique index keeps the set
		// consistent and the counter untouched.
		if mongo.IsDuplicateKeyError(err) {
			return true, nil
		}
		return false, err
	}

	_, err = r.meals.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$inc": bson.M{"likes": 1}})
	return true, err
}
