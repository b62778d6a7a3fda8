package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Roles stored on user records. The role gate only ever checks for RoleAdmin.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a user record in the users collection. Users are created on
// first sign-in (idempotent insert keyed by email) and mutated only by role
// promotion or explicit admin deletion.
type User struct {
	ID        primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Email     string             `json:"email" bson:"email"`
	Role      string             `json:"role" bson:"role"`
	Badge     string             `json:"badge,omitempty" bson:"badge,omitempty"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}

// IsAdmin reports whether the stored role grants admin access.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// Identity is the caller-supplied payload signed into a token. It is not
// validated beyond what the signer needs; the users collection is the source
// of truth for roles.
type Identity struct {
	Email  string `json:"email"`
	Name   string `json:"name,omitempty"`
	UserID string `json:"userId,omitempty"`
}
