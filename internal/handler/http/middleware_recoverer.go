package http

import (
	"net/http"
	"runtime/debug"

	"github.com/skti-dev/bncc-backend/internal/logger"
	"github.com/skti-dev/bncc-backend/models"
)

// withRecover converts a downstream panic into a generic 500 error envelope.
// The panic value and stack are logged server-side and never leak to the
// client; the audit note is tagged so the entry records the failure.
func (h *Handler) withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				logger.FromRequest(r).Error().
					Any("panic", rec).
					Bytes("stack", debug.Stack()).
					Msg("panic recovered in http handler")

				note := noteFromContext(r.Context())
				note.setOutcome(models.OutcomeErro)
				note.addDetail("motivo", "panic")

				writeAPIError(w, http.StatusInternalServerError, "Erro interno do servidor")
			}
		}()

		next.ServeHTTP(w, r)
	})
}
