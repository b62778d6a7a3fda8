package mongodb

import (
	"context"
	"time"

	"campushub/internal/auth/domain/model"
	"campushub/internal/auth/usecase"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoUserRepository implements the UserRepository interface using MongoDB
type MongoUserRepository struct {
	collection *mongo.Collection
}

// NewMongoUserRepository creates a new MongoDB user repository
func NewMongoUserRepository(db *mongo.Database) (*MongoUserRepository, error) {
	repo := &MongoUserRepository{
		collection: db.Collection("users"),
	}

	// Email index (unique) backs the idempotent insert
	emailIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := repo.collection.Indexes().CreateOne(context.Background(), emailIndex); err != nil {
		return nil, err
	}

	return repo, nil
}

// EnsureUser inserts the user unless a record with the same email exists.
func (r *MongoUserRepository) EnsureUser(ctx context.Context, user *model.User) (string, bool, error) {
	err := r.collection.FindOne(ctx, bson.M{"email": user.Email}).Err()
	if err == nil {
		return "", true, nil
	}
	if err != mongo.ErrNoDocuments {
		return "", false, err
	}

	user.CreatedAt = time.Now().UTC()
	result, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		// A concurrent first sign-in can race the existence check; the unique
		// index settles it.
		if mongo.IsDuplicateKeyError(err) {
			return "", true, nil
		}
		return "", false, err
	}

	insertedID, _ := result.InsertedID.(primitive.ObjectID)
	return insertedID.Hex(), false, nil
}

// GetUserByEmail retrieves a user by email
func (r *MongoUserRepository) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// ListUsers returns all users, optionally filtered by a case-insensitive
// search over name and email.
func (r *MongoUserRepository) ListUsers(ctx context.Context, search string) ([]model.User, error) {
	filter := bson.M{}
	if search != "" {
		filter = bson.M{
			"$or": bson.A{
				bson.M{"name": primitive.Regex{Pattern: search, Options: "i"}},
				bson.M{"email": primitive.Regex{Pattern: search, Options: "i"}},
			},
		}
	}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	users := make([]model.User, 0)
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// PromoteToAdmin sets the stored role to admin for the given record id.
func (r *MongoUserRepository) PromoteToAdmin(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return usecase.ErrInvalidID
	}

	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": bson.M{"role": model.RoleAdmin}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return usecase.ErrUserNotFound
	}
	return nil
}

// DeleteUser removes a user record by id.
func (r *MongoUserRepository) DeleteUser(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return usecase.ErrInvalidID
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return usecase.ErrUserNotFound
	}
	return nil
}
