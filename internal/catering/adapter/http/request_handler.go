package http

import (
	"campushub/internal/catering/domain/model"
	"campushub/internal/catering/usecase"
	"campushub/internal/shared/utils"

	"github.com/gofiber/fiber/v2"
)

// SearchRequests returns meal requests, optionally filtered by ?search=
// matching the meal title, requester name/email or status.
func (h *CateringHTTPHandler) SearchRequests(c *fiber.Ctx) error {
	requests, err := h.requests.SearchRequests(c.Context(), c.Query("search"))
	if err != nil {
		h.log.Errorf("Error retrieving meal requests: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error retrieving meal requests",
		})
	}
	return c.JSON(requests)
}

// CreateRequest records a pending meal request for the caller.
func (h *CateringHTTPHandler) CreateRequest(c *fiber.Ctx) error {
	var request model.MealRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}
	if request.Meal.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Meal is required",
		})
	}

	email, err := utils.GetUserEmailFromContext(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Unauthorized access",
		})
	}
	name := utils.GetUserNameFromContext(c.UserContext())

	insertedID, err := h.requests.CreateRequest(c.Context(), &request, email, name)
	if err != nil {
		h.log.Errorf("Error adding meal request: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error adding meal request",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"insertedId": insertedID})
}

// DeliverRequest transitions a pending request to delivered. A request that
// is missing or already delivered answers the same not-found message.
func (h *CateringHTTPHandler) DeliverRequest(c *fiber.Ctx) error {
	updated, err := h.requests.MarkDelivered(c.Context(), c.Params("id"))
	switch err {
	case nil:
		return c.JSON(updated)
	case usecase.ErrInvalidID:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request ID",
		})
	case usecase.ErrRequestNotFound:
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Meal request not found or already delivered",
		})
	default:
		h.log.Errorf("Error updating meal request: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error updating meal request",
		})
	}
}
