package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/skti-dev/bncc-backend/internal/logger"
	"github.com/skti-dev/bncc-backend/internal/service"
	"github.com/skti-dev/bncc-backend/internal/utils"
	"github.com/skti-dev/bncc-backend/models"
)

// apiError is the inner body of the structured error envelope used for
// authentication and server failures.
type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type apiErrorEnvelope struct {
	Error apiError `json:"error"`
}

// detailEnvelope is the flat error shape used for ordinary client errors
// such as validation failures and missing resources.
type detailEnvelope struct {
	Detail string `json:"detail"`
}

// writeAPIError writes the structured {"error":{code,message}} envelope.
func writeAPIError(w http.ResponseWriter, statusCode int, message string) {
	utils.WriteJSON(w, apiErrorEnvelope{Error: apiError{Code: statusCode, Message: message}}, statusCode)
}

// writeDetail writes the flat {"detail": message} envelope.
func writeDetail(w http.ResponseWriter, statusCode int, detail string) {
	utils.WriteJSON(w, detailEnvelope{Detail: detail}, statusCode)
}

// mapServiceError translates a service-layer error into its HTTP response
// and tags the request's audit note with the matching outcome.
//
// Validation failures are 422 with the flat detail envelope; lookup misses
// are 404; everything else is an opaque 500 in the structured envelope.
func mapServiceError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	note := noteFromContext(r.Context())

	switch {
	case errors.Is(err, service.ErrValidation):
		detail := clientDetail(err, service.ErrValidation)
		log.Warn().Err(err).Msg("request rejected by validation")
		note.setOutcome(models.OutcomeValidationError)
		note.addDetail("motivo", detail)
		writeDetail(w, http.StatusUnprocessableEntity, detail)
	case errors.Is(err, service.ErrNotFound):
		log.Warn().Err(err).Msg("resource not found")
		writeDetail(w, http.StatusNotFound, clientDetail(err, service.ErrNotFound))
	default:
		log.Err(err).Msg("unexpected service error")
		writeAPIError(w, http.StatusInternalServerError, "Erro interno do servidor")
	}
}

// clientDetail strips the sentinel prefix from a wrapped service error,
// leaving only the human-readable portion that is safe to return to clients.
func clientDetail(err, sentinel error) string {
	detail := strings.TrimPrefix(err.Error(), sentinel.Error()+": ")
	if detail == "" {
		return sentinel.Error()
	}
	return detail
}
