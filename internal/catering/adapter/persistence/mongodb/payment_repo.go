package mongodb

import (
	"context"

	"campushub/internal/catering/domain/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoPaymentRepository implements PaymentRepository over the payments
// collection. Payments are append-only, there is no update or delete path.
type MongoPaymentRepository struct {
	payments *mongo.Collection
}

// NewMongoPaymentRepository creates a new MongoDB payment repository
func NewMongoPaymentRepository(db *mongo.Database) *MongoPaymentRepository {
	return &MongoPaymentRepository{payments: db.Collection("payments")}
}

func (r *MongoPaymentRepository) ListPayments(ctx context.Context) ([]model.Payment, error) {
	return r.find(ctx, bson.M{})
}

func (r *MongoPaymentRepository) ListPaymentsByEmail(ctx context.Context, email string) ([]model.Payment, error) {
	return r.find(ctx, bson.M{"email": email})
}

func (r *MongoPaymentRepository) InsertPayment(ctx context.Context, payment *model.Payment) (string, error) {
	result, err := r.payments.InsertOne(ctx, payment)
	if err != nil {
		return "", err
	}
	insertedID, _ := result.InsertedID.(primitive.ObjectID)
	return insertedID.Hex(), nil
}

func (r *MongoPaymentRepository) find(ctx context.Context, filter bson.M) ([]model.Payment, error) {
	cursor, err := r.payments.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	payments := make([]model.Payment, 0)
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}
