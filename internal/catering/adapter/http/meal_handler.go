package http

import (
	"time"

	"campushub/internal/catering/domain/model"
	"campushub/internal/catering/usecase"
	"campushub/internal/shared/utils"

	"github.com/gofiber/fiber/v2"
)

// ListMeals returns every meal in the live collection.
func (h *CateringHTTPHandler) ListMeals(c *fiber.Ctx) error {
	meals, err := h.meals.ListMeals(c.Context())
	if err != nil {
		h.log.Errorf("Error retrieving meals: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error retrieving meals",
		})
	}
	return c.JSON(meals)
}

// CountMeals returns the number of meals owned by ?adminEmail=
func (h *CateringHTTPHandler) CountMeals(c *fiber.Ctx) error {
	adminEmail := c.Query("adminEmail")
	if adminEmail == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "adminEmail query parameter is required",
		})
	}

	count, err := h.meals.CountMealsByAdmin(c.Context(), adminEmail)
	if err != nil {
		h.log.Errorf("Error counting meals: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error counting meals",
		})
	}
	return c.JSON(fiber.Map{"count": count})
}

// GetMeal returns a single meal by id.
func (h *CateringHTTPHandler) GetMeal(c *fiber.Ctx) error {
	meal, err := h.meals.GetMeal(c.Context(), c.Params("id"))
	switch err {
	case nil:
		return c.JSON(meal)
	case usecase.ErrInvalidID:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid meal ID",
		})
	case usecase.ErrMealNotFound:
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Meal not found",
		})
	default:
		h.log.Errorf("Error retrieving meal: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error retrieving meal",
		})
	}
}

// CreateMeal inserts a meal. The admin-owner email falls back to the
// verified claims email when the body omits it.
func (h *CateringHTTPHandler) CreateMeal(c *fiber.Ctx) error {
	var meal model.Meal
	if err := c.BodyParser(&meal); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}
	if meal.AdminEmail == "" {
		if email, err := utils.GetUserEmailFromContext(c.UserContext()); err == nil {
			meal.AdminEmail = email
		}
	}
	if meal.CreatedAt.IsZero() {
		meal.CreatedAt = time.Now().UTC()
	}

	insertedID, err := h.meals.CreateMeal(c.Context(), &meal)
	if err != nil {
		h.log.Errorf("Error adding meal: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error adding meal",
		})
	}
	return c.JSON(fiber.Map{"insertedId": insertedID})
}

// likeRequest is the like toggle body. Both fields are accepted for wire
// compatibility and ignored: the toggle direction comes from the server-held
// like set, and the like identity comes from the verified claims.
type likeRequest struct {
	UserID  string `json:"userId"`
	IsLiked bool   `json:"isLiked"`
}

// LikeMeal flips the caller's like on a meal. The like-set key is the
// verified claims identity; a caller cannot vote more than once by varying
// the body's userId.
func (h *CateringHTTPHandler) LikeMeal(c *fiber.Ctx) error {
	var body likeRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	userID, _ := utils.GetUserIDFromContext(c.UserContext())
	if userID == "" {
		if email, err := utils.GetUserEmailFromContext(c.UserContext()); err == nil {
			userID = email
		}
	}
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Unauthorized access",
		})
	}

	liked, err := h.meals.ToggleLike(c.Context(), c.Params("id"), userID)
	switch err {
	case nil:
		return c.JSON(fiber.Map{
			"message": "Like status updated",
			"liked":   liked,
		})
	case usecase.ErrInvalidID:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid meal ID",
		})
	case usecase.ErrMealNotFound:
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Meal not found",
		})
	default:
		h.log.Errorf("Error updating like status: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error updating like status",
		})
	}
}

// ListRequestedMeals returns the meals tied to the caller's email. The path
// email must match the verified claims email.
func (h *CateringHTTPHandler) ListRequestedMeals(c *fiber.Ctx) error {
	email := c.Params("email")

	claimEmail, err := utils.GetUserEmailFromContext(c.UserContext())
	if err != nil || claimEmail != email {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "Forbidden access",
		})
	}

	meals, err := h.meals.ListMealsByUserEmail(c.Context(), email)
	if err != nil {
		h.log.Errorf("Error retrieving requested meals: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error retrieving requested meals",
		})
	}
	return c.JSON(meals)
}

// DeleteRequestedMeal removes a meal record by id.
func (h *CateringHTTPHandler) DeleteRequestedMeal(c *fiber.Ctx) error {
	err := h.meals.DeleteMeal(c.Context(), c.Params("id"))
	switch err {
	case nil:
		return c.JSON(fiber.Map{"message": "Meal deleted successfully"})
	case usecase.ErrInvalidID:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid meal ID",
		})
	case usecase.ErrMealNotFound:
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Meal not found",
		})
	default:
		h.log.Errorf("Error deleting meal: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error deleting meal",
		})
	}
}

// ListUpcomingMeals returns the staged meals.
func (h *CateringHTTPHandler) ListUpcomingMeals(c *fiber.Ctx) error {
	meals, err := h.meals.ListUpcomingMeals(c.Context())
	if err != nil {
		h.log.Errorf("Error retrieving upcoming meals: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error retrieving upcoming meals",
		})
	}
	return c.JSON(meals)
}

// CreateUpcomingMeal stages a meal for later publication.
func (h *CateringHTTPHandler) CreateUpcomingMeal(c *fiber.Ctx) error {
	var meal model.Meal
	if err := c.BodyParser(&meal); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	created, err := h.meals.CreateUpcomingMeal(c.Context(), &meal)
	if err != nil {
		h.log.Errorf("Error adding upcoming meal: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error adding upcoming meal",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// PublishUpcomingMeal promotes a staged meal into the live collection.
func (h *CateringHTTPHandler) PublishUpcomingMeal(c *fiber.Ctx) error {
	err := h.meals.PublishUpcomingMeal(c.Context(), c.Params("id"))
	switch err {
	case nil:
		return c.JSON(fiber.Map{"message": "Meal published successfully"})
	case usecase.ErrInvalidID:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid meal ID",
		})
	case usecase.ErrUpcomingMealNotFound:
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Upcoming meal not found",
		})
	default:
		h.log.Errorf("Error publishing meal: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error publishing meal",
		})
	}
}
