package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/skti-dev/bncc-backend/internal/config"
	"github.com/skti-dev/bncc-backend/internal/logger"
	"github.com/skti-dev/bncc-backend/internal/service"
	"github.com/skti-dev/bncc-backend/internal/utils"
	"github.com/skti-dev/bncc-backend/models"
)

// loginRequest is the credentials payload accepted by POST /auth/login.
type loginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

// loginResponse is the success body of POST /auth/login. The token fields
// are populated only in bearer transport mode; in cookie mode the token
// travels exclusively in the HTTP-only session cookie.
type loginResponse struct {
	Message     string              `json:"message"`
	User        models.UserResponse `json:"user"`
	AccessToken string              `json:"access_token,omitempty"`
	TokenType   string              `json:"token_type,omitempty"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	note := noteFromContext(ctx)

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn().Err(err).Msg("invalid login payload")
		note.setOutcome(models.OutcomeValidationError)
		writeDetail(w, http.StatusUnprocessableEntity, "JSON inválido")
		return
	}

	note.addDetail("email", req.Email)

	user, token, err := h.services.Auth.Login(ctx, req.Email, req.Senha)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			log.Warn().Err(err).Msg("login payload rejected by validation")
			note.setOutcome(models.OutcomeValidationError)
			writeDetail(w, http.StatusUnprocessableEntity, clientDetail(err, service.ErrValidation))
		case errors.Is(err, service.ErrUserNotFound):
			log.Warn().Str("email", req.Email).Msg("login for unknown user")
			note.setOutcome(models.OutcomeErro)
			note.addDetail("motivo", "usuário não encontrado")
			writeDetail(w, http.StatusNotFound, service.ErrUserNotFound.Error())
		case errors.Is(err, service.ErrWrongPassword), errors.Is(err, service.ErrNoStoredPassword):
			log.Warn().Str("email", req.Email).Msg("login with bad credentials")
			note.setOutcome(models.OutcomeErro)
			note.addDetail("motivo", "credenciais inválidas")
			writeAPIError(w, http.StatusUnauthorized, service.ErrWrongPassword.Error())
		default:
			log.Err(err).Msg("unexpected error during login")
			writeAPIError(w, http.StatusInternalServerError, "Erro interno do servidor")
		}
		return
	}

	resp := loginResponse{Message: "Login realizado", User: user}
	if h.cfg.AuthTransport == config.TransportBearer {
		resp.AccessToken = token
		resp.TokenType = "bearer"
	} else {
		http.SetCookie(w, h.sessionCookie(token, int(h.cfg.TokenDuration.Seconds())))
	}

	note.addDetail("user_id", user.ID)
	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	note := noteFromContext(r.Context())

	if user, ok := utils.GetUserFromContext(r.Context()); ok {
		note.addDetail("user_id", user.ID)
	}

	if h.cfg.AuthTransport == config.TransportCookie {
		http.SetCookie(w, h.sessionCookie("", -1))
	}

	utils.WriteJSON(w, map[string]string{"message": "Logout realizado"}, http.StatusOK)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		// unreachable behind the auth middleware
		writeAPIError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	utils.WriteJSON(w, map[string]models.UserResponse{"user": user}, http.StatusOK)
}

// sessionCookie builds the HTTP-only session cookie. maxAge -1 clears it.
func (h *Handler) sessionCookie(token string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     h.cfg.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.cfg.CookieSecure,
		SameSite: sameSiteFromConfig(h.cfg.CookieSameSite),
	}
}

func sameSiteFromConfig(mode string) http.SameSite {
	switch mode {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
