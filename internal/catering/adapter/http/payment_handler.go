package http

import (
	"campushub/internal/catering/domain/model"
	"campushub/internal/catering/usecase"
	"campushub/internal/shared/utils"

	"github.com/gofiber/fiber/v2"
)

type paymentIntentRequest struct {
	Price float64 `json:"price"`
}

// CreatePaymentIntent opens a provider payment intent for the given price
// and returns the client secret.
func (h *CateringHTTPHandler) CreatePaymentIntent(c *fiber.Ctx) error {
	var body paymentIntentRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}
	if body.Price <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "price must be greater than zero",
		})
	}

	clientSecret, err := h.payments.CreatePaymentIntent(c.Context(), body.Price)
	switch err {
	case nil:
		return c.JSON(fiber.Map{"clientSecret": clientSecret})
	case usecase.ErrPaymentsDisabled:
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"message": "Payments are not configured",
		})
	default:
		h.log.Errorf("Error creating payment intent: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error creating payment intent",
		})
	}
}

// ListPayments returns every payment record.
func (h *CateringHTTPHandler) ListPayments(c *fiber.Ctx) error {
	payments, err := h.payments.ListPayments(c.Context())
	if err != nil {
		h.log.Errorf("Error retrieving payments: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error retrieving payments",
		})
	}
	return c.JSON(payments)
}

// ListPaymentsByEmail returns the caller's own payments. The path email must
// match the verified claims email.
func (h *CateringHTTPHandler) ListPaymentsByEmail(c *fiber.Ctx) error {
	email := c.Params("email")

	claimEmail, err := utils.GetUserEmailFromContext(c.UserContext())
	if err != nil || claimEmail != email {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "Forbidden access",
		})
	}

	payments, err := h.payments.ListPaymentsByEmail(c.Context(), email)
	if err != nil {
		h.log.Errorf("Error retrieving payments: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error retrieving payments",
		})
	}
	return c.JSON(payments)
}

// RecordPayment appends a payment record with the payer bound from claims.
func (h *CateringHTTPHandler) RecordPayment(c *fiber.Ctx) error {
	var payment model.Payment
	if err := c.BodyParser(&payment); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	email, err := utils.GetUserEmailFromContext(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Unauthorized access",
		})
	}
	payment.Email = email
	if name := utils.GetUserNameFromContext(c.UserContext()); name != "" {
		payment.Name = name
	}

	insertedID, err := h.payments.RecordPayment(c.Context(), &payment)
	if err != nil {
		h.log.Errorf("Error recording payment: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error recording payment",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"insertedId": insertedID})
}
