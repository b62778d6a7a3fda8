package contextkeys

// contextKey is an unexported type to prevent collisions with context keys defined in
// other packages.
type contextKey string

// String makes contextKey satisfy the Stringer interface to assist with debugging.
func (c contextKey) String() string {
	return "campushub context key " + string(c)
}

// UserIDKey is the key for the verified user ID in context.Context
const UserIDKey = contextKey("userID")

// UserEmailKey is the key for the verified user email in context.Context
const UserEmailKey = contextKey("userEmail")

// UserNameKey is the key for the verified user display name in context.Context
const UserNameKey = contextKey("userName")

// RequestIDKey is the key for the request ID in context.Context
const RequestIDKey = contextKey("requestID")
