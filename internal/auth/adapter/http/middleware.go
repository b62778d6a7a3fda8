package http

import (
	"context"
	"strings"
	"time"

	"campushub/internal/auth/domain/repository"
	"campushub/internal/auth/usecase"
	"campushub/internal/shared/contextkeys"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

// AuthMiddleware provides the authentication and authorization gates.
type AuthMiddleware struct {
	usecase usecase.AuthUsecaseInterface
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(uc usecase.AuthUsecaseInterface) *AuthMiddleware {
	return &AuthMiddleware{usecase: uc}
}

// RequestID middleware
func (m *AuthMiddleware) RequestID() fiber.Handler {
	return requestid.New(requestid.Config{
		Header:     "X-Request-ID",
		ContextKey: string(contextkeys.RequestIDKey),
	})
}

// RateLimiter creates rate limiting middleware for the token-issuance route
func (m *AuthMiddleware) RateLimiter() fiber.Handler {
	return limiter.New(limiter.Config{
		Max:               20,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.Get("X-Forwarded-For", c.IP())
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"message": "Too many requests",
			})
		},
	})
}

// Protect returns the token verifier gate. A missing, malformed, expired or
// badly signed token is rejected with the same unauthorized signal; no
// distinction is surfaced to the caller.
func (m *AuthMiddleware) Protect() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := m.authenticate(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized access",
			})
		}

		storeClaims(c, claims)
		return c.Next()
	}
}

// RequireAdmin returns the role gate. It performs token verification itself
// before the role lookup, so it can never observe a request without verified
// claims regardless of route ordering. The role lookup hits the users
// collection on every gated call; the result is not cached across requests.
func (m *AuthMiddleware) RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := m.authenticate(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized access",
			})
		}

		admin, err := m.usecase.IsAdmin(c.Context(), claims.Email)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Error checking admin status",
			})
		}
		if !admin {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "Forbidden access",
			})
		}

		storeClaims(c, claims)
		return c.Next()
	}
}

// authenticate extracts and validates the bearer token.
func (m *AuthMiddleware) authenticate(c *fiber.Ctx) (*repository.Claims, error) {
	token, err := extractToken(c)
	if err != nil {
		return nil, err
	}
	return m.usecase.ValidateToken(c.Context(), token)
}

// extractToken extracts the token from the Authorization header
func extractToken(c *fiber.Ctx) (string, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return "", fiber.NewError(fiber.StatusUnauthorized, "No authentication token found")
	}
	return strings.TrimPrefix(authHeader, "Bearer "), nil
}

// storeClaims makes the decoded claims available to downstream handlers for
// the remainder of the request's lifecycle only.
func storeClaims(c *fiber.Ctx, claims *repository.Claims) {
	ctx := c.UserContext()
	ctx = context.WithValue(ctx, contextkeys.UserEmailKey, claims.Email)
	if claims.UserID != "" {
		ctx = context.WithValue(ctx, contextkeys.UserIDKey, claims.UserID)
	}
	if claims.Name != "" {
		ctx = context.WithValue(ctx, contextkeys.UserNameKey, claims.Name)
	}
	c.SetUserContext(ctx)
}
