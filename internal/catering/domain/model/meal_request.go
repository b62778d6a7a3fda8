package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Meal request statuses. The transition is one-directional:
// pending → delivered, exactly once.
const (
	RequestStatusPending   = "pending"
	RequestStatusDelivered = "delivered"
)

// RequestedMeal is the meal snapshot embedded in a meal request.
type RequestedMeal struct {
	MealID primitive.ObjectID `json:"mealId,omitempty" bson:"mealId,omitempty"`
	Title  string             `json:"title" bson:"title"`
	Price  float64            `json:"price,omitempty" bson:"price,omitempty"`
}

// Requester is the user snapshot embedded in a meal request, taken from
// verified claims at creation time.
type Requester struct {
	Name  string `json:"name,omitempty" bson:"name,omitempty"`
	Email string `json:"email" bson:"email"`
}

// MealRequest is a record in the mealRequests collection.
type MealRequest struct {
	ID          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	RequestID   string             `json:"requestId,omitempty" bson:"requestId,omitempty"`
	Meal        RequestedMeal      `json:"meal" bson:"meal"`
	User        Requester          `json:"user" bson:"user"`
	Status      string             `json:"status" bson:"status"`
	RequestedAt time.Time          `json:"requestedAt" bson:"requestedAt"`
}
