// Package catering wires the meals, reviews, requests and payments module.
package catering

import (
	"fmt"

	authhttp "campushub/internal/auth/adapter/http"
	cateringhttp "campushub/internal/catering/adapter/http"
	"campushub/internal/catering/adapter/payment"
	"campushub/internal/catering/adapter/persistence/mongodb"
	"campushub/internal/catering/domain/repository"
	"campushub/internal/catering/usecase"
	"campushub/internal/config"
	"campushub/internal/shared/eventbus"
	"campushub/internal/shared/logger"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"
)

// CateringModule represents the complete catering module
type CateringModule struct {
	meals    usecase.MealUsecaseInterface
	reviews  usecase.ReviewUsecaseInterface
	requests usecase.RequestUsecaseInterface
	payments usecase.PaymentUsecaseInterface
	handler  *cateringhttp.CateringHTTPHandler
}

// NewCateringModule creates a new catering module instance. The payment
// intent service stays nil when no provider key is configured; the intent
// route then answers service-unavailable.
func NewCateringModule(db *mongo.Database, cfg *config.Config, bus eventbus.EventBusInterface, log logger.Logger) (*CateringModule, error) {
	mealRepo, err := mongodb.NewMongoMealRepository(db)
	if err != nil {
		return nil, fmt.Errorf("failed to create meal repository: %w", err)
	}
	upcomingRepo := mongodb.NewMongoUpcomingMealRepository(db)
	reviewRepo := mongodb.NewMongoReviewRepository(db)
	requestRepo := mongodb.NewMongoMealRequestRepository(db)
	paymentRepo := mongodb.NewMongoPaymentRepository(db)

	var intents repository.PaymentIntentService
	if cfg.StripeSecretKey != "" {
		intents = payment.NewStripeIntentService(cfg.StripeSecretKey)
	}

	mealUC := usecase.NewMealUsecase(mealRepo, upcomingRepo, bus, log)
	reviewUC := usecase.NewReviewUsecase(reviewRepo, log)
	requestUC := usecase.NewRequestUsecase(requestRepo, bus, log)
	paymentUC := usecase.NewPaymentUsecase(paymentRepo, intents, bus, log)

	handler := cateringhttp.NewCateringHTTPHandler(mealUC, reviewUC, requestUC, paymentUC, log)

	return &CateringModule{
		meals:    mealUC,
		reviews:  reviewUC,
		requests: requestUC,
		payments: paymentUC,
		handler:  handler,
	}, nil
}

// RegisterRoutes registers catering routes with the provided router. The
// auth middleware supplies the token and role gates.
func (cm *CateringModule) RegisterRoutes(router fiber.Router, middleware *authhttp.AuthMiddleware) {
	cm.handler.RegisterRoutes(router, middleware)
}
