package usecase

import (
	"context"
	"time"

	"campushub/internal/catering/domain/model"
	"campushub/internal/catering/domain/repository"
	apperrors "campushub/internal/shared/errors"
	"campushub/internal/shared/eventbus"
	"campushub/internal/shared/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestUsecaseInterface defines the contract for meal-request operations.
type RequestUsecaseInterface interface {
	SearchRequests(ctx context.Context, search string) ([]model.MealRequest, error)
	CreateRequest(ctx context.Context, request *model.MealRequest, requesterEmail, requesterName string) (string, error)
	MarkDelivered(ctx context.Context, id string) (*model.MealRequest, error)
}

// RequestUsecase implements meal-request operations.
type RequestUsecase struct {
	requests repository.MealRequestRepository
	bus      eventbus.EventBusInterface
	log      logger.Logger
}

// NewRequestUsecase creates a new RequestUsecase.
func NewRequestUsecase(requests repository.MealRequestRepository, bus eventbus.EventBusInterface, log logger.Logger) *RequestUsecase {
	return &RequestUsecase{
		requests: requests,
		bus:      bus,
		log:      log.WithComponent("request_usecase"),
	}
}

func (uc *RequestUsecase) SearchRequests(ctx context.Context, search string) ([]model.MealRequest, error) {
	return uc.requests.SearchRequests(ctx, search)
}

// CreateRequest inserts a pending meal request. The requester snapshot is
// bound from verified claims, never from the body.
func (uc *RequestUsecase) CreateRequest(ctx context.Context, request *model.MealRequest, requesterEmail, requesterName string) (string, error) {
	request.RequestID = uuid.NewString()
	request.User = model.Requester{Name: requesterName, Email: requesterEmail}
	request.Status = model.RequestStatusPending
	request.RequestedAt = time.Now().UTC()

	insertedID, err := uc.requests.InsertRequest(ctx, request)
	if err != nil {
		uc.log.Error("Failed to insert meal request", zap.String("email", requesterEmail), zap.Error(err))
		return "", apperrors.WrapError(err, "failed to insert meal request")
	}
	return insertedID, nil
}

// MarkDelivered transitions a pending request to delivered exactly once and
// announces the change on the event bus.
func (uc *RequestUsecase) MarkDelivered(ctx context.Context, id string) (*model.MealRequest, error) {
	updated, err := uc.requests.MarkDelivered(ctx, id)
	if err != nil {
		if err != ErrRequestNotFound && err != ErrInvalidID {
			uc.log.Error("Failed to update meal request status", zap.String("id", id), zap.Error(err))
		}
		return nil, err
	}

	uc.bus.PublishAndForget(ctx, eventbus.NewEvent(EventRequestDelivered, "catering", map[string]interface{}{
		"requestId": id,
		"email":     updated.User.Email,
	}))
	return updated, nil
}
