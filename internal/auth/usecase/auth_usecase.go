package usecase

import (
	"context"
	"errors"

	"campushub/internal/auth/domain/model"
	"campushub/internal/auth/domain/repository"
	apperrors "campushub/internal/shared/errors"
	"campushub/internal/shared/logger"

	"go.uber.org/zap"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrTokenInvalid = errors.New("token is invalid")
	ErrInvalidID    = errors.New("invalid user ID")
)

// AuthUsecaseInterface defines the contract for authentication use cases.
type AuthUsecaseInterface interface {
	IssueToken(ctx context.Context, identity model.Identity) (string, error)
	ValidateToken(ctx context.Context, tokenString string) (*repository.Claims, error)
	EnsureUser(ctx context.Context, user *model.User) (insertedID string, existed bool, err error)
	IsAdmin(ctx context.Context, email string) (bool, error)
	ListUsers(ctx context.Context, search string) ([]model.User, error)
	PromoteToAdmin(ctx context.Context, id string) error
	DeleteUser(ctx context.Context, id string) error
}

// AuthUsecase implements the authentication and user-management logic.
type AuthUsecase struct {
	repo     repository.UserRepository
	tokenSvc repository.TokenService
	log      logger.Logger
}

// NewAuthUsecase creates a new instance of AuthUsecase.
func NewAuthUsecase(repo repository.UserRepository, tokenSvc repository.TokenService, log logger.Logger) *AuthUsecase {
	return &AuthUsecase{
		repo:     repo,
		tokenSvc: tokenSvc,
		log:      log.WithComponent("auth_usecase"),
	}
}

// IssueToken signs the caller-supplied identity. The payload is not validated;
// the users collection remains the source of truth for roles.
func (uc *AuthUsecase) IssueToken(ctx context.Context, identity model.Identity) (string, error) {
	return uc.tokenSvc.GenerateToken(ctx, identity)
}

// ValidateToken verifies signature and expiry and returns the decoded claims.
func (uc *AuthUsecase) ValidateToken(ctx context.Context, tokenString string) (*repository.Claims, error) {
	claims, err := uc.tokenSvc.ValidateToken(ctx, tokenString)
	if err != nil {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

// EnsureUser creates the user unless one with the same email already exists.
func (uc *AuthUsecase) EnsureUser(ctx context.Context, user *model.User) (string, bool, error) {
	if user.Role == "" {
		user.Role = model.RoleUser
	}
	insertedID, existed, err := uc.repo.EnsureUser(ctx, user)
	if err != nil {
		uc.log.Error("Failed to ensure user", zap.String("email", user.Email), zap.Error(err))
		return "", false, apperrors.WrapError(err, "failed to ensure user")
	}
	if existed {
		uc.log.Debugf("User already exists: %s", user.Email)
	}
	return insertedID, existed, nil
}

// IsAdmin looks up the user record by email and checks the stored role.
// A missing record is treated as not-admin, never as an error.
func (uc *AuthUsecase) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := uc.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return false, nil
		}
		return false, apperrors.WrapError(err, "failed to check user role")
	}
	return user.IsAdmin(), nil
}

// ListUsers returns users matching the optional search term.
func (uc *AuthUsecase) ListUsers(ctx context.Context, search string) ([]model.User, error) {
	return uc.repo.ListUsers(ctx, search)
}

// PromoteToAdmin sets the stored role to admin for the given record id.
func (uc *AuthUsecase) PromoteToAdmin(ctx context.Context, id string) error {
	if err := uc.repo.PromoteToAdmin(ctx, id); err != nil {
		uc.log.Error("Failed to promote user", zap.String("id", id), zap.Error(err))
		return err
	}
	uc.log.Infof("User promoted to admin: %s", id)
	return nil
}

// DeleteUser removes a user record by id.
func (uc *AuthUsecase) DeleteUser(ctx context.Context, id string) error {
	if err := uc.repo.DeleteUser(ctx, id); err != nil {
		uc.log.Error("Failed to delete user", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}
