package logger

import (
	"context"
	"testing"

	"campushub/internal/shared/contextkeys"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	log := NewLogger()
	require.NotNil(t, log)

	// Must not panic on any level
	log.Debug("debug message")
	log.Infof("info %s", "message")
	log.Warn("warn message")
	log.Errorf("error %d", 42)
}

func TestWithComponent(t *testing.T) {
	log := NewLogger().WithComponent("meal_handler")
	require.NotNil(t, log)

	logrusLog, ok := log.(*LogrusLogger)
	require.True(t, ok)
	assert.Equal(t, "meal_handler", logrusLog.entry.Data["component"])
}

func TestWithFields(t *testing.T) {
	log := NewLogger().WithFields(map[string]interface{}{
		"meal_id": "abc123",
		"likes":   3,
	})

	logrusLog, ok := log.(*LogrusLogger)
	require.True(t, ok)
	assert.Equal(t, "abc123", logrusLog.entry.Data["meal_id"])
	assert.Equal(t, 3, logrusLog.entry.Data["likes"])
}

func TestWithContext_ExtractsIdentityFields(t *testing.T) {
	ctx := context.Background()
	ctx = context.WithValue(ctx, contextkeys.UserEmailKey, "student@campus.edu")
	ctx = context.WithValue(ctx, contextkeys.RequestIDKey, "req-1")

	log := NewLogger().WithContext(ctx)
	logrusLog, ok := log.(*LogrusLogger)
	require.True(t, ok)

	assert.Equal(t, "student@campus.edu", logrusLog.entry.Data["user_email"])
	assert.Equal(t, "req-1", logrusLog.entry.Data["request_id"])
	assert.NotContains(t, logrusLog.entry.Data, "user_id")
}
