package repository

import (
	"context"

	"campushub/internal/auth/domain/model"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the decoded payload of a verified token.
type Claims struct {
	Email  string `json:"email"`
	Name   string `json:"name,omitempty"`
	UserID string `json:"userId,omitempty"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies bearer tokens.
type TokenService interface {
	GenerateToken(ctx context.Context, identity model.Identity) (string, error)
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// UserRepository persists user records. Every operation is a single
// database-side call; callers do not retry.
type UserRepository interface {
	// EnsureUser inserts the user unless a record with the same email exists.
	// When the record exists the returned id is empty and existed is true.
	EnsureUser(ctx context.Context, user *model.User) (insertedID string, existed bool, err error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	// ListUsers returns all users, optionally filtered by a case-insensitive
	// search over name and email.
	ListUsers(ctx context.Context, search string) ([]model.User, error)
	// PromoteToAdmin sets the stored role to admin for the given record id.
	PromoteToAdmin(ctx context.Context, id string) error
	DeleteUser(ctx context.Context, id string) error
}
