package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/skti-dev/bncc-backend/models"
)

// Sentinel errors returned by VerifyToken. The verdict is binary on purpose:
// callers only ever need to tell an expired token from a broken one, and the
// error messages double as the 401 response body.
var (
	// ErrTokenExpired is returned when the token's exp claim is in the past.
	ErrTokenExpired = errors.New("Token expirado")

	// ErrTokenMalformed is returned when the token is structurally invalid,
	// carries a bad signature, or was signed with an unexpected method.
	ErrTokenMalformed = errors.New("Token inválido")
)

// IssueToken creates a signed HMAC-SHA256 session token for the given user.
//
// Claims: sub (user id), email, iat (now) and exp (now + duration).
// The function is a pure function of its input, the sign key and the clock.
//
// Returns an error if the subject, duration or sign key is empty.
func IssueToken(subject, email string, duration time.Duration, signKey string) (string, error) {
	if subject == "" || duration == 0 || signKey == "" {
		return "", errors.New("invalid params for issuing session token")
	}

	now := time.Now()
	claims := &models.SessionClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(signKey))
}

// VerifyToken validates a raw session token string and, on success, returns
// its claims unchanged.
//
// Failure modes:
//   - [ErrTokenExpired] when the token's expiry is in the past;
//   - [ErrTokenMalformed] for every other validation failure (bad signature,
//     wrong signing method, unparseable structure).
func VerifyToken(tokenString, signKey string) (*models.SessionClaims, error) {
	claims := &models.SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(signKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenMalformed
	}

	if !token.Valid {
		return nil, ErrTokenMalformed
	}

	return claims, nil
}
