// Package utils provides general-purpose helper utilities used across
// different parts of the application: type-safe context keys, bcrypt
// password hashing, session token generation and validation, and HTTP
// response writing.
package utils

import (
	"context"

	"github.com/skti-dev/bncc-backend/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UserCtxKey is the key under which the authentication middleware stores the
// resolved user for the remainder of the request lifecycle. The stored value
// is the normalized [models.UserResponse] — the password hash never enters
// the context.
var UserCtxKey = contextKey("user")

// GetUserFromContext retrieves the authenticated user from the context.
//
// The ok flag is false when no user has been attached (unauthenticated
// request or a value of an unexpected type).
func GetUserFromContext(ctx context.Context) (models.UserResponse, bool) {
	user, ok := ctx.Value(UserCtxKey).(models.UserResponse)
	return user, ok
}
