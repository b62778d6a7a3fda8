package http

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"campushub/internal/auth/domain/repository"
	"campushub/internal/auth/usecase"
	"campushub/internal/shared/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProtectedApp(mockUC *mockAuthUsecase) *fiber.App {
	app := fiber.New()
	mw := NewAuthMiddleware(mockUC)
	app.Get("/protected", mw.Protect(), func(c *fiber.Ctx) error {
		email, err := utils.GetUserEmailFromContext(c.UserContext())
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
		return c.JSON(fiber.Map{"email": email})
	})
	app.Get("/admin-only", mw.RequireAdmin(), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})
	return app
}

func TestProtect_MissingAuthorizationHeader(t *testing.T) {
	app := newProtectedApp(&mockAuthUsecase{})

	req := httptest.NewRequest("GET", "/protected", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Unauthorized access", body["message"])
}

func TestProtect_MalformedHeader(t *testing.T) {
	app := newProtectedApp(&mockAuthUsecase{})

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Token abc")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestProtect_InvalidToken(t *testing.T) {
	app := newProtectedApp(&mockAuthUsecase{
		validateTokenFunc: func(ctx context.Context, tokenString string) (*repository.Claims, error) {
			return nil, usecase.ErrTokenInvalid
		},
	})

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer expired-or-forged")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestProtect_ValidToken_ClaimsAvailableDownstream(t *testing.T) {
	app := newProtectedApp(&mockAuthUsecase{
		validateTokenFunc: validClaims("student@campus.edu"),
	})

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "student@campus.edu", body["email"])
}

func TestRequireAdmin_WithoutToken(t *testing.T) {
	// The role gate verifies the token itself; it never dereferences
	// missing claims even when used without Protect.
	app := newProtectedApp(&mockAuthUsecase{})

	req := httptest.NewRequest("GET", "/admin-only", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAdmin_NonAdminRole(t *testing.T) {
	app := newProtectedApp(&mockAuthUsecase{
		validateTokenFunc: validClaims("student@campus.edu"),
		isAdminFunc: func(ctx context.Context, email string) (bool, error) {
			return false, nil
		},
	})

	req := httptest.NewRequest("GET", "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Forbidden access", body["message"])
}

func TestRequireAdmin_AdminRole(t *testing.T) {
	lookups := 0
	app := newProtectedApp(&mockAuthUsecase{
		validateTokenFunc: validClaims("admin@campus.edu"),
		isAdminFunc: func(ctx context.Context, email string) (bool, error) {
			lookups++
			assert.Equal(t, "admin@campus.edu", email)
			return true, nil
		},
	})

	req := httptest.NewRequest("GET", "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, lookups)

	// Every gated call pays one full lookup: no caching across requests
	req = httptest.NewRequest("GET", "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	_, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 2, lookups)
}
