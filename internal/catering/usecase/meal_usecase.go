package usecase

import (
	"context"

	"campushub/internal/catering/domain/model"
	"campushub/internal/catering/domain/repository"
	apperrors "campushub/internal/shared/errors"
	"campushub/internal/shared/eventbus"
	"campushub/internal/shared/logger"

	"go.uber.org/zap"
)

// MealUsecaseInterface defines the contract for meal and upcoming-meal
// operations.
type MealUsecaseInterface interface {
	ListMeals(ctx context.Context) ([]model.Meal, error)
	GetMeal(ctx context.Context, id string) (*model.Meal, error)
	CreateMeal(ctx context.Context, meal *model.Meal) (string, error)
	CountMealsByAdmin(ctx context.Context, adminEmail string) (int64, error)
	ToggleLike(ctx context.Context, mealID, userID string) (bool, error)
	ListMealsByUserEmail(ctx context.Context, email string) ([]model.Meal, error)
	DeleteMeal(ctx context.Context, id string) error
	ListUpcomingMeals(ctx context.Context) ([]model.Meal, error)
	CreateUpcomingMeal(ctx context.Context, meal *model.Meal) (*model.Meal, error)
	PublishUpcomingMeal(ctx context.Context, id string) error
}

// MealUsecase implements meal operations over the meals and upMeals
// collections.
type MealUsecase struct {
	meals    repository.MealRepository
	upcoming repository.UpcomingMealRepository
	bus      eventbus.EventBusInterface
	log      logger.Logger
}

// NewMealUsecase creates a new MealUsecase.
func NewMealUsecase(
	meals repository.MealRepository,
	upcoming repository.UpcomingMealRepository,
	bus eventbus.EventBusInterface,
	log logger.Logger,
) *MealUsecase {
	return &MealUsecase{
		meals:    meals,
		upcoming: upcoming,
		bus:      bus,
		log:      log.WithComponent("meal_usecase"),
	}
}

func (uc *MealUsecase) ListMeals(ctx context.Context) ([]model.Meal, error) {
	return uc.meals.ListMeals(ctx)
}

func (uc *MealUsecase) GetMeal(ctx context.Context, id string) (*model.Meal, error) {
	return uc.meals.GetMeal(ctx, id)
}

// CreateMeal inserts a meal with a zeroed like counter.
func (uc *MealUsecase) CreateMeal(ctx context.Context, meal *model.Meal) (string, error) {
	meal.Likes = 0
	insertedID, err := uc.meals.InsertMeal(ctx, meal)
	if err != nil {
		uc.log.Error("Failed to insert meal", zap.String("title", meal.Title), zap.Error(err))
		return "", apperrors.WrapError(err, "failed to insert meal")
	}
	return insertedID, nil
}

func (uc *MealUsecase) CountMealsByAdmin(ctx context.Context, adminEmail string) (int64, error) {
	return uc.meals.CountMealsByAdmin(ctx, adminEmail)
}

// ToggleLike flips the caller's like on a meal. The liked state is derived
// from the server-held like set, not from anything the client reports.
func (uc *MealUsecase) ToggleLike(ctx context.Context, mealID, userID string) (bool, error) {
	liked, err := uc.meals.ToggleLike(ctx, mealID, userID)
	if err != nil {
		return false, err
	}
	uc.log.Debug("Like status updated",
		zap.String("mealId", mealID),
		zap.String("userId", userID),
		zap.Bool("liked", liked))
	return liked, nil
}

func (uc *MealUsecase) ListMealsByUserEmail(ctx context.Context, email string) ([]model.Meal, error) {
	return uc.meals.ListMealsByUserEmail(ctx, email)
}

func (uc *MealUsecase) DeleteMeal(ctx context.Context, id string) error {
	return uc.meals.DeleteMeal(ctx, id)
}

func (uc *MealUsecase) ListUpcomingMeals(ctx context.Context) ([]model.Meal, error) {
	return uc.upcoming.ListUpcomingMeals(ctx)
}

func (uc *MealUsecase) CreateUpcomingMeal(ctx context.Context, meal *model.Meal) (*model.Meal, error) {
	return uc.upcoming.InsertUpcomingMeal(ctx, meal)
}

// PublishUpcomingMeal promotes a staged meal into the live collection and
// announces the change on the event bus.
func (uc *MealUsecase) PublishUpcomingMeal(ctx context.Context, id string) error {
	if err := uc.upcoming.PublishUpcomingMeal(ctx, id); err != nil {
		if err != ErrUpcomingMealNotFound && err != ErrInvalidID {
			uc.log.Error("Failed to publish upcoming meal", zap.String("id", id), zap.Error(err))
		}
		return err
	}

	uc.bus.PublishAndForget(ctx, eventbus.NewEvent(EventMealPublished, "catering", map[string]interface{}{
		"mealId": id,
	}))
	return nil
}
