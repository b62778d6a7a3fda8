// Package http exposes the catering module over Fiber routes.
package http

import (
	authhttp "campushub/internal/auth/adapter/http"
	"campushub/internal/catering/usecase"
	"campushub/internal/shared/logger"

	"github.com/gofiber/fiber/v2"
)

// CateringHTTPHandler handles the meals, reviews, requests and payments
// surface.
type CateringHTTPHandler struct {
	meals    usecase.MealUsecaseInterface
	reviews  usecase.ReviewUsecaseInterface
	requests usecase.RequestUsecaseInterface
	payments usecase.PaymentUsecaseInterface
	log      logger.Logger
}

// NewCateringHTTPHandler creates a new catering HTTP handler
func NewCateringHTTPHandler(
	meals usecase.MealUsecaseInterface,
	reviews usecase.ReviewUsecaseInterface,
	requests usecase.RequestUsecaseInterface,
	payments usecase.PaymentUsecaseInterface,
	log logger.Logger,
) *CateringHTTPHandler {
	return &CateringHTTPHandler{
		meals:    meals,
		reviews:  reviews,
		requests: requests,
		payments: payments,
		log:      log.WithComponent("catering_handler"),
	}
}

// RegisterRoutes sets up the catering routes. The count route registers
// before the :id route so Fiber never captures "count" as a meal id.
func (h *CateringHTTPHandler) RegisterRoutes(router fiber.Router, middleware *authhttp.AuthMiddleware) {
	router.Get("/meals", h.ListMeals)
	router.Get("/meals/count", h.CountMeals)
	router.Get("/meals/:id", h.GetMeal)
	router.Post("/meals", middleware.RequireAdmin(), h.CreateMeal)
	router.Post("/meals/:id/like", middleware.Protect(), h.LikeMeal)
	router.Get("/meals/:id/reviews", h.ListMealReviews)
	router.Post("/meals/:id/reviews", middleware.Protect(), h.CreateMealReview)

	router.Get("/requestedMeals/:email", middleware.Protect(), h.ListRequestedMeals)
	router.Delete("/requestedMeals/:id", middleware.Protect(), h.DeleteRequestedMeal)

	router.Get("/upMeals", h.ListUpcomingMeals)
	router.Post("/upMeals", middleware.RequireAdmin(), h.CreateUpcomingMeal)
	router.Patch("/upcomingMeals/:id/publish", middleware.RequireAdmin(), h.PublishUpcomingMeal)

	router.Get("/reviews", h.ListReviews)
	router.Post("/reviews", middleware.Protect(), h.CreateReview)
	router.Get("/reviews/:email", middleware.Protect(), h.ListReviewsByEmail)
	router.Delete("/reviews/:id", middleware.RequireAdmin(), h.DeleteReview)

	router.Get("/serveMeals", h.SearchRequests)
	router.Post("/serveMeals", middleware.Protect(), h.CreateRequest)
	router.Patch("/serveMeals/:id/delivered", middleware.Protect(), h.DeliverRequest)

	router.Post("/create-payment-intent", middleware.Protect(), h.CreatePaymentIntent)
	router.Get("/payments", middleware.RequireAdmin(), h.ListPayments)
	router.Get("/payments/:email", middleware.Protect(), h.ListPaymentsByEmail)
	router.Post("/payments", middleware.Protect(), h.RecordPayment)
}
