package repository

import (
	"context"

	"campushub/internal/catering/domain/model"
)

// MealRepository persists meals and the like-set backing the like counter.
type MealRepository interface {
	ListMeals(ctx context.Context) ([]model.Meal, error)
	GetMeal(ctx context.Context, id string) (*model.Meal, error)
	InsertMeal(ctx context.Context, meal *model.Meal) (string, error)
	CountMealsByAdmin(ctx context.Context, adminEmail string) (int64, error)
	ListMealsByUserEmail(ctx context.Context, email string) ([]model.Meal, error)
	DeleteMeal(ctx context.Context, id string) error
	// ToggleLike flips the (meal, user) membership in the like set and
	// adjusts the meal's like counter accordingly. It reports the resulting
	// liked state.
	ToggleLike(ctx context.Context, mealID, userID string) (liked bool, err error)
}

// UpcomingMealRepository persists staged meals awaiting publication.
type UpcomingMealRepository interface {
	ListUpcomingMeals(ctx context.Context) ([]model.Meal, error)
	InsertUpcomingMeal(ctx context.Context, meal *model.Meal) (*model.Meal, error)
	// PublishUpcomingMeal moves the staged record into the meals collection
	// and destroys the staging record.
	PublishUpcomingMeal(ctx context.Context, id string) error
}

// ReviewRepository persists reviews.
type ReviewRepository interface {
	ListReviews(ctx context.Context) ([]model.Review, error)
	ListReviewsByMeal(ctx context.Context, mealID string) ([]model.Review, error)
	ListReviewsByEmail(ctx context.Context, email string) ([]model.Review, error)
	InsertReview(ctx context.Context, review *model.Review) (string, error)
	DeleteReview(ctx context.Context, id string) error
}

// MealRequestRepository persists meal requests.
type MealRequestRepository interface {
	SearchRequests(ctx context.Context, search string) ([]model.MealRequest, error)
	InsertRequest(ctx context.Context, request *model.MealRequest) (string, error)
	// MarkDelivered transitions a pending request to delivered and returns
	// the updated record. The filter requires pending status, so the
	// transition happens at most once.
	MarkDelivered(ctx context.Context, id string) (*model.MealRequest, error)
}

// PaymentRepository persists payments (append-only).
type PaymentRepository interface {
	ListPayments(ctx context.Context) ([]model.Payment, error)
	ListPaymentsByEmail(ctx context.Context, email string) ([]model.Payment, error)
	InsertPayment(ctx context.Context, payment *model.Payment) (string, error)
}

// PaymentIntentService creates payment intents with the external provider.
type PaymentIntentService interface {
	CreateIntent(ctx context.Context, amountCents int64) (clientSecret string, err error)
}
