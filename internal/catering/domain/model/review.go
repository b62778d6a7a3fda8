package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review is immutable after creation except via deletion. The author identity
// is bound from verified token claims at write time, never from the request
// body.
type Review struct {
	ID        primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	MealID    primitive.ObjectID `json:"mealId,omitempty" bson:"mealId,omitempty"`
	MealTitle string             `json:"mealTitle,omitempty" bson:"mealTitle,omitempty"`
	UserEmail string             `json:"userEmail" bson:"userEmail"`
	UserName  string             `json:"userName,omitempty" bson:"userName,omitempty"`
	Rating    float64            `json:"rating,omitempty" bson:"rating,omitempty"`
	Comment   string             `json:"comment" bson:"comment"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}
