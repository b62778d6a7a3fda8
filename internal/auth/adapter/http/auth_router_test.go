package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"campushub/internal/auth/domain/model"
	"campushub/internal/auth/usecase"
	"campushub/internal/shared/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthApp(mockUC *mockAuthUsecase) *fiber.App {
	app := fiber.New()
	handler := NewAuthHTTPHandler(mockUC, logger.NewLogger())
	handler.RegisterRoutes(app, NewAuthMiddleware(mockUC))
	return app
}

func TestIssueToken(t *testing.T) {
	app := newAuthApp(&mockAuthUsecase{
		issueTokenFunc: func(ctx context.Context, identity model.Identity) (string, error) {
			assert.Equal(t, "student@campus.edu", identity.Email)
			return "signed-token", nil
		},
	})

	body := []byte(`{"email":"student@campus.edu","name":"Student One"}`)
	req := httptest.NewRequest("POST", "/jwt", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, "signed-token", result["token"])
}

func TestCreateUser_New(t *testing.T) {
	app := newAuthApp(&mockAuthUsecase{
		ensureUserFunc: func(ctx context.Context, user *model.User) (string, bool, error) {
			return "65f000000000000000000001", false, nil
		},
	})

	body := []byte(`{"name":"Student One","email":"student@campus.edu"}`)
	req := httptest.NewRequest("POST", "/users", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, "65f000000000000000000001", result["insertedId"])
}

func TestCreateUser_AlreadyExists(t *testing.T) {
	app := newAuthApp(&mockAuthUsecase{
		ensureUserFunc: func(ctx context.Context, user *model.User) (string, bool, error) {
			return "", true, nil
		},
	})

	body := []byte(`{"name":"Student One","email":"student@campus.edu"}`)
	req := httptest.NewRequest("POST", "/users", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, "User already exists", result["message"])
	assert.Nil(t, result["insertedId"])
}

func TestCreateUser_MissingEmail(t *testing.T) {
	app := newAuthApp(&mockAuthUsecase{})

	req := httptest.NewRequest("POST", "/users", bytes.NewReader([]byte(`{"name":"No Email"}`)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestListUsers_RequiresAdmin(t *testing.T) {
	app := newAuthApp(&mockAuthUsecase{
		validateTokenFunc: validClaims("student@campus.edu"),
		isAdminFunc: func(ctx context.Context, email string) (bool, error) {
			return false, nil
		},
	})

	req := httptest.NewRequest("GET", "/users", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestListUsers_SearchForwarded(t *testing.T) {
	app := newAuthApp(&mockAuthUsecase{
		validateTokenFunc: validClaims("admin@campus.edu"),
		isAdminFunc: func(ctx context.Context, email string) (bool, error) {
			return true, nil
		},
		listUsersFunc: func(ctx context.Context, search string) ([]model.User, error) {
			assert.Equal(t, "alice", search)
			return []model.User{{Name: "Alice", Email: "alice@campus.edu"}}, nil
		},
	})

	req := httptest.NewRequest("GET", "/users?search=alice", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var users []model.User
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&users))
	require.Len(t, users, 1)
	assert.Equal(t, "Alice", users[0].Name)
}

func TestCheckAdmin_SelfOnly(t *testing.T) {
	app := newAuthApp(&mockAuthUsecase{
		validateTokenFunc: validClaims("student@campus.edu"),
		isAdminFunc: func(ctx context.Context, email string) (bool, error) {
			return false, nil
		},
	})

	// Path email differs from the claims email
	req := httptest.NewRequest("GET", "/users/admin/other@campus.edu", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestCheckAdmin_Self(t *testing.T) {
	app := newAuthApp(&mockAuthUsecase{
		validateTokenFunc: validClaims("admin@campus.edu"),
		isAdminFunc: func(ctx context.Context, email string) (bool, error) {
			return true, nil
		},
	})

	req := httptest.NewRequest("GET", "/users/admin/admin@campus.edu", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, true, result["admin"])
}

func TestPromoteUser_AdminGated(t *testing.T) {
	app := newAuthApp(&mockAuthUsecase{})

	// No token at all: 401, never 200
	req := httptest.NewRequest("PATCH", "/users/admin/65f000000000000000000001", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestDeleteUser_InvalidID(t *testing.T) {
	app := newAuthApp(&mockAuthUsecase{
		validateTokenFunc: validClaims("admin@campus.edu"),
		isAdminFunc: func(ctx context.Context, email string) (bool, error) {
			return true, nil
		},
		deleteFunc: func(ctx context.Context, id string) error {
			return usecase.ErrInvalidID
		},
	})

	req := httptest.NewRequest("DELETE", "/users/not-a-hex-id", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
