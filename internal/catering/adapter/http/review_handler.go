package http

import (
	"campushub/internal/catering/domain/model"
	"campushub/internal/catering/usecase"
	"campushub/internal/shared/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ListReviews returns every review.
func (h *CateringHTTPHandler) ListReviews(c *fiber.Ctx) error {
	reviews, err := h.reviews.ListReviews(c.Context())
	if err != nil {
		h.log.Errorf("Error retrieving reviews: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error retrieving reviews",
		})
	}
	return c.JSON(reviews)
}

// ListMealReviews returns the reviews scoped to one meal.
func (h *CateringHTTPHandler) ListMealReviews(c *fiber.Ctx) error {
	reviews, err := h.reviews.ListReviewsByMeal(c.Context(), c.Params("id"))
	switch err {
	case nil:
		return c.JSON(reviews)
	case usecase.ErrInvalidID:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid meal ID",
		})
	default:
		h.log.Errorf("Error retrieving meal reviews: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error retrieving meal reviews",
		})
	}
}

// ListReviewsByEmail returns the caller's own reviews. The path email must
// match the verified claims email.
func (h *CateringHTTPHandler) ListReviewsByEmail(c *fiber.Ctx) error {
	email := c.Params("email")

	claimEmail, err := utils.GetUserEmailFromContext(c.UserContext())
	if err != nil || claimEmail != email {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "Forbidden access",
		})
	}

	reviews, err := h.reviews.ListReviewsByEmail(c.Context(), email)
	if err != nil {
		h.log.Errorf("Error retrieving reviews: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error retrieving reviews",
		})
	}
	return c.JSON(reviews)
}

// CreateReview inserts a review with the author taken from claims.
func (h *CateringHTTPHandler) CreateReview(c *fiber.Ctx) error {
	var review model.Review
	if err := c.BodyParser(&review); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}
	return h.insertReview(c, &review)
}

// CreateMealReview inserts a review bound to the meal in the path.
func (h *CateringHTTPHandler) CreateMealReview(c *fiber.Ctx) error {
	mealID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid meal ID",
		})
	}

	var review model.Review
	if err := c.BodyParser(&review); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}
	review.MealID = mealID
	return h.insertReview(c, &review)
}

func (h *CateringHTTPHandler) insertReview(c *fiber.Ctx, review *model.Review) error {
	email, err := utils.GetUserEmailFromContext(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Unauthorized access",
		})
	}
	name := utils.GetUserNameFromContext(c.UserContext())

	insertedID, err := h.reviews.CreateReview(c.Context(), review, email, name)
	if err != nil {
		h.log.Errorf("Error adding review: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error adding review",
		})
	}
	return c.JSON(fiber.Map{"insertedId": insertedID})
}

// DeleteReview removes a review by id.
func (h *CateringHTTPHandler) DeleteReview(c *fiber.Ctx) error {
	err := h.reviews.DeleteReview(c.Context(), c.Params("id"))
	switch err {
	case nil:
		return c.JSON(fiber.Map{"message": "Review deleted successfully"})
	case usecase.ErrInvalidID:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid review ID",
		})
	case usecase.ErrReviewNotFound:
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Review not found",
		})
	default:
		h.log.Errorf("Error deleting review: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error deleting review",
		})
	}
}
