package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment is an append-only record in the payments collection; there is no
// update or delete path.
type Payment struct {
	ID            primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Email         string             `json:"email" bson:"email"`
	Name          string             `json:"name,omitempty" bson:"name,omitempty"`
	Price         float64            `json:"price" bson:"price"`
	TransactionID string             `json:"transactionId" bson:"transactionId"`
	Status        string             `json:"status,omitempty" bson:"status,omitempty"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
}
