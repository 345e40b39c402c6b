package http

import (
	"net/http"

	"github.com/skti-dev/bncc-backend/internal/service"
	"github.com/skti-dev/bncc-backend/internal/utils"
)

func (h *Handler) listLogs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	page, limit, err := parsePagination(r, logsDefaultLimit, logsMaxLimit)
	if err != nil {
		mapServiceError(w, r, err)
		return
	}

	result, err := h.services.Log.List(ctx, service.LogListQuery{
		Page:      page,
		Limit:     limit,
		Origem:    r.URL.Query().Get("origem"),
		Resultado: r.URL.Query().Get("resultado"),
	})
	if err != nil {
		mapServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}
