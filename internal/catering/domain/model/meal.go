package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Meal is a record in the meals collection. The same shape is staged in the
// upMeals collection before publication; publishing moves the document across
// collections, the staging record is destroyed.
type Meal struct {
	ID          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Category    string             `json:"category,omitempty" bson:"category,omitempty"`
	Image       string             `json:"image,omitempty" bson:"image,omitempty"`
	Ingredients []string           `json:"ingredients,omitempty" bson:"ingredients,omitempty"`
	Description string             `json:"description" bson:"description"`
	Price       float64            `json:"price" bson:"price"`
	Rating      float64            `json:"rating,omitempty" bson:"rating,omitempty"`
	Likes       int                `json:"likes" bson:"likes"`
	AdminName   string             `json:"adminName,omitempty" bson:"adminName,omitempty"`
	AdminEmail  string             `json:"adminEmail" bson:"adminEmail"`
	UserEmail   string             `json:"userEmail,omitempty" bson:"userEmail,omitempty"`
	CreatedAt   time.Time          `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
}

// MealLike is a (meal, user) pair in the mealLikes collection. The like
// counter on the meal is maintained from membership transitions in this set,
// never from a client-reported flag.
type MealLike struct {
	ID        primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	MealID    primitive.ObjectID `json:"mealId" bson:"mealId"`
	UserID    string             `json:"userId" bson:"userId"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}
