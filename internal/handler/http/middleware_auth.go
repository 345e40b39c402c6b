package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/skti-dev/bncc-backend/internal/config"
	"github.com/skti-dev/bncc-backend/internal/logger"
	"github.com/skti-dev/bncc-backend/internal/service"
	"github.com/skti-dev/bncc-backend/internal/utils"
	"github.com/skti-dev/bncc-backend/models"
)

// auth is the HTTP middleware that enforces session-token authentication.
//
// The token source follows the configured transport: the session cookie by
// default, or the "Authorization: Bearer" header. On success the resolved
// user is stored in the request context under [utils.UserCtxKey] and its
// id/email are tagged onto the audit note before delegating to the next
// handler.
//
// Every rejection is HTTP 401 with the structured error envelope, and each
// failure mode tags the audit note with its own outcome:
//   - missing/empty token → "Not authenticated", outcome unauthenticated;
//   - expired token → outcome invalid_token;
//   - malformed token → outcome validation_error;
//   - missing subject or unknown user → outcome invalid_token with the
//     reason recorded in detalhes.
//
// Unexpected resolution failures are 500, never 401.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		note := noteFromContext(r.Context())

		tokenString, err := h.tokenFromRequest(r)
		if err != nil {
			log.Warn().Err(err).Msg("request without credentials")
			note.setOutcome(models.OutcomeUnauthenticated)
			writeAPIError(w, http.StatusUnauthorized, "Not authenticated")
			return
		}

		ctx := r.Context()
		user, err := h.services.Auth.Authenticate(ctx, tokenString)
		if err != nil {
			switch {
			case errors.Is(err, utils.ErrTokenExpired):
				log.Warn().Err(err).Msg("token expired")
				note.setOutcome(models.OutcomeInvalidToken)
				writeAPIError(w, http.StatusUnauthorized, utils.ErrTokenExpired.Error())
			case errors.Is(err, utils.ErrTokenMalformed):
				log.Warn().Err(err).Msg("token malformed")
				note.setOutcome(models.OutcomeValidationError)
				writeAPIError(w, http.StatusUnauthorized, utils.ErrTokenMalformed.Error())
			case errors.Is(err, service.ErrTokenSubjectMissing):
				log.Warn().Err(err).Msg("token without usable subject")
				note.setOutcome(models.OutcomeInvalidToken)
				note.addDetail("motivo", "token sem subject")
				writeAPIError(w, http.StatusUnauthorized, service.ErrTokenSubjectMissing.Error())
			case errors.Is(err, service.ErrUserNotFound):
				log.Warn().Err(err).Msg("token subject matches no account")
				note.setOutcome(models.OutcomeInvalidToken)
				note.addDetail("motivo", "usuário do token não encontrado")
				writeAPIError(w, http.StatusUnauthorized, service.ErrUserNotFound.Error())
			default:
				log.Err(err).Msg("unexpected error during token resolution")
				writeAPIError(w, http.StatusInternalServerError, "Erro interno do servidor")
			}
			return
		}

		note.addDetail("user_id", user.ID)
		note.addDetail("user_email", user.Email)

		// Store the authenticated user in the context so that downstream
		// handlers can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.UserCtxKey, user)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// tokenFromRequest extracts the raw session token according to the
// configured transport.
func (h *Handler) tokenFromRequest(r *http.Request) (string, error) {
	if h.cfg.AuthTransport == config.TransportBearer {
		return getTokenFromAuthHeader(r.Header.Get("Authorization"))
	}

	cookie, err := r.Cookie(h.cfg.CookieName)
	if err != nil {
		return "", ErrNoSessionCookie
	}
	if cookie.Value == "" {
		return "", ErrEmptyToken
	}

	return cookie.Value, nil
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value.
//
// The header is expected to follow the standard format:
//
//	Authorization: <scheme> <token>
//
// It returns the following sentinel errors:
//   - [ErrEmptyAuthorizationHeader] — if the header is absent entirely.
//   - [ErrInvalidAuthorizationHeader] — if the header contains fewer than
//     two space-separated parts (i.e. the token is missing entirely).
//   - [ErrEmptyToken] — if the second part exists but is an empty string.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrEmptyAuthorizationHeader
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
