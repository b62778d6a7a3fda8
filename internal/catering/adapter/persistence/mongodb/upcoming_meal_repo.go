package mongodb

import (
	"context"
	"errors"
	"strings"
	"time"

	"campushub/internal/catering/domain/model"
	"campushub/internal/catering/usecase"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoUpcomingMealRepository implements UpcomingMealRepository over the
// upMeals collection, with publish moving records into meals.
type MongoUpcomingMealRepository struct {
	db       *mongo.Database
	upcoming *mongo.Collection
	meals    *mongo.Collection
}

// NewMongoUpcomingMealRepository creates a new MongoDB upcoming-meal repository
func NewMongoUpcomingMealRepository(db *mongo.Database) *MongoUpcomingMealRepository {
	return &MongoUpcomingMealRepository{
		db:       db,
		upcoming: db.Collection("upMeals"),
		meals:    db.Collection("meals"),
	}
}

// ListUpcomingMeals returns all staged meals.
func (r *MongoUpcomingMealRepository) ListUpcomingMeals(ctx context.Context) ([]model.Meal, error) {
	cursor, err := r.upcoming.Find(ctx, bson.M{})
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

// InsertUpcomingMeal stages a meal and returns the created record.
func (r *MongoUpcomingMealRepository) InsertUpcomingMeal(ctx context.Context, meal *model.Meal) (*model.Meal, error) {
	if meal.CreatedAt.IsZero() {
		meal.CreatedAt = time.Now().UTC()
	}

	result, err := r.upcoming.InsertOne(ctx, meal)
	if err != nil {
		return nil, err
	}
	if insertedID, ok := result.InsertedID.(primitive.ObjectID); ok {
		meal.ID = insertedID
	}
	return meal, nil
}

// PublishUpcomingMeal moves the staged record into the meals collection and
// destroys the staging record. Both writes run inside a session transaction
// when the deployment supports one; on standalone servers the original
// insert-then-delete order is kept, so a failed delete after a successful
// insert can leave a duplicate only in that fallback path.
func (r *MongoUpcomingMealRepository) PublishUpcomingMeal(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return usecase.ErrInvalidID
	}

	session, err := r.db.Client().StartSession()
	if err != nil {
		return r.publishWithoutTransaction(ctx, objectID)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, r.moveRecord(sc, objectID)
	})
	if err != nil {
		if errors.Is(err, usecase.ErrUpcomingMealNotFound) {
			return usecase.ErrUpcomingMealNotFound
		}
		if isTransactionUnsupported(err) {
			return r.publishWithoutTransaction(ctx, objectID)
		}
		return err
	}
	return nil
}

func (r *MongoUpcomingMealRepository) publishWithoutTransaction(ctx context.Context, objectID primitive.ObjectID) error {
	return r.moveRecord(ctx, objectID)
}

func (r *MongoUpcomingMealRepository) moveRecord(ctx context.Context, objectID primitive.ObjectID) error {
	var staged bson.M
	if err := r.upcoming.FindOne(ctx, bson.M{"_id": objectID}).Decode(&staged); err != nil {
		if err == mongo.ErrNoDocuments {
			return usecase.ErrUpcomingMealNotFound
		}
		return err
	}

	if _, err := r.meals.InsertOne(ctx, staged); err != nil {
		return err
	}

	_, err := r.upcoming.DeleteOne(ctx, bson.M{"_id": objectID})
	return err
}

// isTransactionUnsupported detects standalone deployments where sessions
// exist but multi-document transactions do not.
func isTransactionUnsupported(err error) bool {
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		if cmdErr.Code == 20 { // IllegalOperation
			return true
		}
		return strings.Contains(cmdErr.Message, "Transaction numbers")
	}
	return false
}
