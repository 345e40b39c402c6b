// SPDX-License-Identifier: Apache-2.0

package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is the claim set embedded in every session token:
// the standard sub/iat/exp registered claims plus the user's email.
//
// A token is stateless and immutable once issued — there is no revocation
// list and no refresh mechanism; it is valid strictly before its expiry.
type SessionClaims struct {
	// Email mirrors the authenticated user's email for downstream
	// convenience; the authoritative identity is the "sub" claim.
	Email string `json:"email"`

	jwt.RegisteredClaims
}
