package usecase

import (
	"context"
	"time"

	"campushub/internal/catering/domain/model"
	"campushub/internal/catering/domain/repository"
	apperrors "campushub/internal/shared/errors"
	"campushub/internal/shared/logger"

	"go.uber.org/zap"
)

// ReviewUsecaseInterface defines the contract for review operations.
type ReviewUsecaseInterface interface {
	ListReviews(ctx context.Context) ([]model.Review, error)
	ListReviewsByMeal(ctx context.Context, mealID string) ([]model.Review, error)
	ListReviewsByEmail(ctx context.Context, email string) ([]model.Review, error)
	CreateReview(ctx context.Context, review *model.Review, authorEmail, authorName string) (string, error)
	DeleteReview(ctx context.Context, id string) error
}

// ReviewUsecase implements review operations.
type ReviewUsecase struct {
	reviews repository.ReviewRepository
	log     logger.Logger
}

// NewReviewUsecase creates a new ReviewUsecase.
func NewReviewUsecase(reviews repository.ReviewRepository, log logger.Logger) *ReviewUsecase {
	return &ReviewUsecase{
		reviews: reviews,
		log:     log.WithComponent("review_usecase"),
	}
}

func (uc *ReviewUsecase) ListReviews(ctx context.Context) ([]model.Review, error) {
	return uc.reviews.ListReviews(ctx)
}

func (uc *ReviewUsecase) ListReviewsByMeal(ctx context.Context, mealID string) ([]model.Review, error) {
	return uc.reviews.ListReviewsByMeal(ctx, mealID)
}

func (uc *ReviewUsecase) ListReviewsByEmail(ctx context.Context, email string) ([]model.Review, error) {
	return uc.reviews.ListReviewsByEmail(ctx, email)
}

// CreateReview inserts a review. The author identity comes from verified
// claims, overriding anything the client put in the body, and the creation
// timestamp is server-assigned.
func (uc *ReviewUsecase) CreateReview(ctx context.Context, review *model.Review, authorEmail, authorName string) (string, error) {
	review.UserEmail = authorEmail
	if authorName != "" {
		review.UserName = authorName
	}
	review.CreatedAt = time.Now().UTC()

	insertedID, err := uc.reviews.InsertReview(ctx, review)
	if err != nil {
		uc.log.Error("Failed to insert review", zap.String("userEmail", authorEmail), zap.Error(err))
		return "", apperrors.WrapError(err, "failed to insert review")
	}
	return insertedID, nil
}

func (uc *ReviewUsecase) DeleteReview(ctx context.Context, id string) error {
	return uc.reviews.DeleteReview(ctx, id)
}
