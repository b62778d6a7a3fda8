package http

import (
	"context"
	"errors"

	"campushub/internal/auth/domain/model"
	"campushub/internal/auth/domain/repository"
	"campushub/internal/auth/usecase"
)

// mockAuthUsecase is a configurable test double for AuthUsecaseInterface.
type mockAuthUsecase struct {
	issueTokenFunc    func(ctx context.Context, identity model.Identity) (string, error)
	validateTokenFunc func(ctx context.Context, tokenString string) (*repository.Claims, error)
	ensureUserFunc    func(ctx context.Context, user *model.User) (string, bool, error)
	isAdminFunc       func(ctx context.Context, email string) (bool, error)
	listUsersFunc     func(ctx context.Context, search string) ([]model.User, error)
	promoteFunc       func(ctx context.Context, id string) error
	deleteFunc        func(ctx context.Context, id string) error
}

func (m *mockAuthUsecase) IssueToken(ctx context.Context, identity model.Identity) (string, error) {
	if m.issueTokenFunc != nil {
		return m.issueTokenFunc(ctx, identity)
	}
	return "test-token", nil
}

func (m *mockAuthUsecase) ValidateToken(ctx context.Context, tokenString string) (*repository.Claims, error) {
	if m.validateTokenFunc != nil {
		return m.validateTokenFunc(ctx, tokenString)
	}
	return nil, usecase.ErrTokenInvalid
}

func (m *mockAuthUsecase) EnsureUser(ctx context.Context, user *model.User) (string, bool, error) {
	if m.ensureUserFunc != nil {
		return m.ensureUserFunc(ctx, user)
	}
	return "", false, errors.New("not configured")
}

func (m *mockAuthUsecase) IsAdmin(ctx context.Context, email string) (bool, error) {
	if m.isAdminFunc != nil {
		return m.isAdminFunc(ctx, email)
	}
	return false, nil
}

func (m *mockAuthUsecase) ListUsers(ctx context.Context, search string) ([]model.User, error) {
	if m.listUsersFunc != nil {
		return m.listUsersFunc(ctx, search)
	}
	return nil, nil
}

func (m *mockAuthUsecase) PromoteToAdmin(ctx context.Context, id string) error {
	if m.promoteFunc != nil {
		return m.promoteFunc(ctx, id)
	}
	return nil
}

func (m *mockAuthUsecase) DeleteUser(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

// validClaims returns a validateTokenFunc that accepts any token as the
// given identity.
func validClaims(email string) func(ctx context.Context, tokenString string) (*repository.Claims, error) {
	return func(ctx context.Context, tokenString string) (*repository.Claims, error) {
		return &repository.Claims{Email: email, Name: "Test User"}, nil
	}
}
