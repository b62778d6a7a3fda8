package http

import (
	"context"
	"errors"

	authmodel "campushub/internal/auth/domain/model"
	authrepo "campushub/internal/auth/domain/repository"
	authusecase "campushub/internal/auth/usecase"
	"campushub/internal/catering/domain/model"
)

// authStub satisfies the auth usecase contract for middleware wiring in
// handler tests. A request with any bearer token authenticates as the
// configured email; admin controls the role gate.
type authStub struct {
	email string
	admin bool
}

func (s *authStub) IssueToken(ctx context.Context, identity authmodel.Identity) (string, error) {
	return "stub-token", nil
}

func (s *authStub) ValidateToken(ctx context.Context, tokenString string) (*authrepo.Claims, error) {
	if s.email == "" {
		return nil, authusecase.ErrTokenInvalid
	}
	return &authrepo.Claims{Email: s.email, Name: "Test User", UserID: "user-1"}, nil
}

func (s *authStub) EnsureUser(ctx context.Context, user *authmodel.User) (string, bool, error) {
	return "", false, errors.New("not configured")
}

func (s *authStub) IsAdmin(ctx context.Context, email string) (bool, error) {
	return s.admin, nil
}

func (s *authStub) ListUsers(ctx context.Context, search string) ([]authmodel.User, error) {
	return nil, nil
}

func (s *authStub) PromoteToAdmin(ctx context.Context, id string) error { return nil }
func (s *authStub) DeleteUser(ctx context.Context, id string) error     { return nil }

// mockMealUsecase is a configurable test double for MealUsecaseInterface.
type mockMealUsecase struct {
	listMealsFunc       func(ctx context.Context) ([]model.Meal, error)
	getMealFunc         func(ctx context.Context, id string) (*model.Meal, error)
	createMealFunc      func(ctx context.Context, meal *model.Meal) (string, error)
	countFunc           func(ctx context.Context, adminEmail string) (int64, error)
	toggleLikeFunc      func(ctx context.Context, mealID, userID string) (bool, error)
	listByEmailFunc     func(ctx context.Context, email string) ([]model.Meal, error)
	deleteMealFunc      func(ctx context.Context, id string) error
	listUpcomingFunc    func(ctx context.Context) ([]model.Meal, error)
	createUpcomingFunc  func(ctx context.Context, meal *model.Meal) (*model.Meal, error)
	publishUpcomingFunc func(ctx context.Context, id string) error
}

func (m *mockMealUsecase) ListMeals(ctx context.Context) ([]model.Meal, error) {
	if m.listMealsFunc != nil {
		return m.listMealsFunc(ctx)
	}
	return nil, nil
}

func (m *mockMealUsecase) GetMeal(ctx context.Context, id string) (*model.Meal, error) {
	if m.getMealFunc != nil {
		return m.getMealFunc(ctx, id)
	}
	return nil, errors.New("not configured")
}

func (m *mockMealUsecase) CreateMeal(ctx context.Context, meal *model.Meal) (string, error) {
	if m.createMealFunc != nil {
		return m.createMealFunc(ctx, meal)
	}
	return "", errors.New("not configured")
}

func (m *mockMealUsecase) CountMealsByAdmin(ctx context.Context, adminEmail string) (int64, error) {
	if m.countFunc != nil {
		return m.countFunc(ctx, adminEmail)
	}
	return 0, nil
}

func (m *mockMealUsecase) ToggleLike(ctx context.Context, mealID, userID string) (bool, error) {
	if m.toggleLikeFunc != nil {
		return m.toggleLikeFunc(ctx, mealID, userID)
	}
	return false, errors.New("not configured")
}

func (m *mockMealUsecase) ListMealsByUserEmail(ctx context.Context, email string) ([]model.Meal, error) {
	if m.listByEmailFunc != nil {
		return m.listByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockMealUsecase) DeleteMeal(ctx context.Context, id string) error {
	if m.deleteMealFunc != nil {
		return m.deleteMealFunc(ctx, id)
	}
	return nil
}

func (m *mockMealUsecase) ListUpcomingMeals(ctx context.Context) ([]model.Meal, error) {
	if m.listUpcomingFunc != nil {
		return m.listUpcomingFunc(ctx)
	}
	return nil, nil
}

func (m *mockMealUsecase) CreateUpcomingMeal(ctx context.Context, meal *model.Meal) (*model.Meal, error) {
	if m.createUpcomingFunc != nil {
		return m.createUpcomingFunc(ctx, meal)
	}
	return meal, nil
}

func (m *mockMealUsecase) PublishUpcomingMeal(ctx context.Context, id string) error {
	if m.publishUpcomingFunc != nil {
		return m.publishUpcomingFunc(ctx, id)
	}
	return errors.New("not configured")
}

// mockReviewUsecase is a configurable test double for ReviewUsecaseInterface.
type mockReviewUsecase struct {
	listFunc         func(ctx context.Context) ([]model.Review, error)
	listByMealFunc   func(ctx context.Context, mealID string) ([]model.Review, error)
	listByEmailFunc  func(ctx context.Context, email string) ([]model.Review, error)
	createReviewFunc func(ctx context.Context, review *model.Review, authorEmail, authorName string) (string, error)
	deleteReviewFunc func(ctx context.Context, id string) error
}

func (m *mockReviewUsecase) ListReviews(ctx context.Context) ([]model.Review, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockReviewUsecase) ListReviewsByMeal(ctx context.Context, mealID string) ([]model.Review, error) {
	if m.listByMealFunc != nil {
		return m.listByMealFunc(ctx, mealID)
	}
	return nil, nil
}

func (m *mockReviewUsecase) ListReviewsByEmail(ctx context.Context, email string) ([]model.Review, error) {
	if m.listByEmailFunc != nil {
		return m.listByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockReviewUsecase) CreateReview(ctx context.Context, review *model.Review, authorEmail, authorName string) (string, error) {
	if m.createReviewFunc != nil {
		return m.createReviewFunc(ctx, review, authorEmail, authorName)
	}
	return "", errors.New("not configured")
}

func (m *mockReviewUsecase) DeleteReview(ctx context.Context, id string) error {
	if m.deleteReviewFunc != nil {
		return m.deleteReviewFunc(ctx, id)
	}
	return nil
}

// mockRequestUsecase is a configurable test double for RequestUsecaseInterface.
type mockRequestUsecase struct {
	searchFunc        func(ctx context.Context, search string) ([]model.MealRequest, error)
	createRequestFunc func(ctx context.Context, request *model.MealRequest, requesterEmail, requesterName string) (string, error)
	markDeliveredFunc func(ctx context.Context, id string) (*model.MealRequest, error)
}

func (m *mockRequestUsecase) SearchRequests(ctx context.Context, search string) ([]model.MealRequest, error) {
	if m.searchFunc != nil {
		return m.searchFunc(ctx, search)
	}
	return nil, nil
}

func (m *mockRequestUsecase) CreateRequest(ctx context.Context, request *model.MealRequest, requesterEmail, requesterName string) (string, error) {
	if m.createRequestFunc != nil {
		return m.createRequestFunc(ctx, request, requesterEmail, requesterName)
	}
	return "", errors.New("not configured")
}

func (m *mockRequestUsecase) MarkDelivered(ctx context.Context, id string) (*model.MealRequest, error) {
	if m.markDeliveredFunc != nil {
		return m.markDeliveredFunc(ctx, id)
	}
	return nil, errors.New("not configured")
}

// mockPaymentUsecase is a configurable test double for PaymentUsecaseInterface.
type mockPaymentUsecase struct {
	createIntentFunc  func(ctx context.Context, price float64) (string, error)
	listFunc          func(ctx context.Context) ([]model.Payment, error)
	listByEmailFunc   func(ctx context.Context, email string) ([]model.Payment, error)
	recordPaymentFunc func(ctx context.Context, payment *model.Payment) (string, error)
}

func (m *mockPaymentUsecase) CreatePaymentIntent(ctx context.Context, price float64) (string, error) {
	if m.createIntentFunc != nil {
		return m.createIntentFunc(ctx, price)
	}
	return "", errors.New("not configured")
}

func (m *mockPaymentUsecase) ListPayments(ctx context.Context) ([]model.Payment, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockPaymentUsecase) ListPaymentsByEmail(ctx context.Context, email string) ([]model.Payment, error) {
	if m.listByEmailFunc != nil {
		return m.listByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockPaymentUsecase) RecordPayment(ctx context.Context, payment *model.Payment) (string, error) {
	if m.recordPaymentFunc != nil {
		return m.recordPaymentFunc(ctx, payment)
	}
	return "", errors.New("not configured")
}
