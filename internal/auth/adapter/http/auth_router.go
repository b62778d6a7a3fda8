package http

import (
	"campushub/internal/auth/domain/model"
	"campushub/internal/auth/usecase"
	"campushub/internal/shared/logger"
	"campushub/internal/shared/utils"

	"github.com/gofiber/fiber/v2"
)

// AuthHTTPHandler handles token issuance and the users surface.
type AuthHTTPHandler struct {
	usecase usecase.AuthUsecaseInterface
	log     logger.Logger
}

// NewAuthHTTPHandler creates a new authentication HTTP handler
func NewAuthHTTPHandler(uc usecase.AuthUsecaseInterface, log logger.Logger) *AuthHTTPHandler {
	return &AuthHTTPHandler{
		usecase: uc,
		log:     log.WithComponent("auth_handler"),
	}
}

// RegisterRoutes sets up the auth and user-management routes
func (h *AuthHTTPHandler) RegisterRoutes(router fiber.Router, middleware *AuthMiddleware) {
	router.Post("/jwt", middleware.RateLimiter(), h.IssueToken)

	router.Post("/users", h.CreateUser)
	router.Get("/users", middleware.RequireAdmin(), h.ListUsers)
	router.Get("/users/admin/:email", middleware.Protect(), h.CheckAdmin)
	router.Patch("/users/admin/:id", middleware.RequireAdmin(), h.PromoteUser)
	router.Delete("/users/:id", middleware.RequireAdmin(), h.DeleteUser)
}

// IssueToken signs the caller-supplied identity and returns the token.
func (h *AuthHTTPHandler) IssueToken(c *fiber.Ctx) error {
	var identity model.Identity
	if err := c.BodyParser(&identity); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	token, err := h.usecase.IssueToken(c.Context(), identity)
	if err != nil {
		h.log.Errorf("Error issuing token: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error issuing token",
		})
	}

	return c.JSON(fiber.Map{"token": token})
}

// CreateUser creates a user unless one with the same email exists; the
// duplicate case answers success with a null insertedId marker.
func (h *AuthHTTPHandler) CreateUser(c *fiber.Ctx) error {
	var user model.User
	if err := c.BodyParser(&user); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}
	if user.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Email is required",
		})
	}

	insertedID, existed, err := h.usecase.EnsureUser(c.Context(), &user)
	if err != nil {
		h.log.Errorf("Error adding user: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error adding user",
		})
	}
	if existed {
		return c.JSON(fiber.Map{
			"message":    "User already exists",
			"insertedId": nil,
		})
	}

	return c.JSON(fiber.Map{"insertedId": insertedID})
}

// ListUsers returns all users, optionally filtered by ?search=
func (h *AuthHTTPHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.usecase.ListUsers(c.Context(), c.Query("search"))
	if err != nil {
		h.log.Errorf("Error retrieving users: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error retrieving users",
		})
	}
	return c.JSON(users)
}

// CheckAdmin reports whether the given email belongs to an admin. The path
// email must match the verified claims email.
func (h *AuthHTTPHandler) CheckAdmin(c *fiber.Ctx) error {
	email := c.Params("email")

	claimEmail, err := utils.GetUserEmailFromContext(c.UserContext())
	if err != nil || claimEmail != email {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "Forbidden access",
		})
	}

	admin, err := h.usecase.IsAdmin(c.Context(), email)
	if err != nil {
		h.log.Errorf("Error checking admin status: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error checking admin status",
		})
	}

	return c.JSON(fiber.Map{"admin": admin})
}

// PromoteUser sets the stored role to admin for the given record id.
func (h *AuthHTTPHandler) PromoteUser(c *fiber.Ctx) error {
	id := c.Params("id")

	err := h.usecase.PromoteToAdmin(c.Context(), id)
	switch err {
	case nil:
		return c.JSON(fiber.Map{"message": "User promoted to admin"})
	case usecase.ErrInvalidID:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid user ID",
		})
	case usecase.ErrUserNotFound:
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "User not found",
		})
	default:
		h.log.Errorf("Error updating user role: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error updating user role",
		})
	}
}

// DeleteUser removes a user record by id.
func (h *AuthHTTPHandler) DeleteUser(c *fiber.Ctx) error {
	id := c.Params("id")

	err := h.usecase.DeleteUser(c.Context(), id)
	switch err {
	case nil:
		return c.JSON(fiber.Map{"message": "User deleted successfully"})
	case usecase.ErrInvalidID:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid user ID",
		})
	case usecase.ErrUserNotFound:
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "User not found",
		})
	default:
		h.log.Errorf("Error deleting user: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error deleting user",
		})
	}
}
