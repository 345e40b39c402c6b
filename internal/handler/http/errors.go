// SPDX-License-Identifier: Apache-2.0

package http

import "errors"

// Sentinel errors used by the authentication middleware when extracting the
// session token from the request. Callers can match against them with
// [errors.Is].
var (
	// ErrNoSessionCookie is returned in cookie transport mode when the
	// incoming request carries no session cookie.
	ErrNoSessionCookie = errors.New("missing session cookie")

	// ErrEmptyAuthorizationHeader is returned in bearer transport mode when
	// the incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but cannot be split into at least two space-separated
	// parts (i.e. the token value is missing entirely).
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the extracted token value is an empty
	// string.
	ErrEmptyToken = errors.New("empty token")
)
