package utils

import (
	"context"
	"testing"

	"campushub/internal/shared/contextkeys"

	"github.com/stretchr/testify/assert"
)

func TestGetUserEmailFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), contextkeys.UserEmailKey, "student@campus.edu")

	email, err := GetUserEmailFromContext(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "student@campus.edu", email)

	_, err = GetUserEmailFromContext(context.Background())
	assert.ErrorIs(t, err, ErrUserEmailNotFound)

	badCtx := context.WithValue(context.Background(), contextkeys.UserEmailKey, 42)
	_, err = GetUserEmailFromContext(badCtx)
	assert.ErrorIs(t, err, ErrUserEmailNotString)
}

func TestGetUserIDFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), contextkeys.UserIDKey, "user-1")

	userID, err := GetUserIDFromContext(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", userID)

	_, err = GetUserIDFromContext(context.Background())
	assert.ErrorIs(t, err, ErrUserIDNotFound)
}

func TestGetUserNameFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), contextkeys.UserNameKey, "Student One")
	assert.Equal(t, "Student One", GetUserNameFromContext(ctx))
	assert.Equal(t, "", GetUserNameFromContext(context.Background()))
}
