package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/skti-dev/bncc-backend/internal/logger"
	"github.com/skti-dev/bncc-backend/internal/service"
	"github.com/skti-dev/bncc-backend/internal/utils"
	"github.com/skti-dev/bncc-backend/models"
)

// resultadoCreatedResponse is the success body of PUT /resultados.
type resultadoCreatedResponse struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Data    resultadoCreateData `json:"data"`
}

type resultadoCreateData struct {
	ResultadoID string                   `json:"resultado_id"`
	Resultado   models.ResultadoResponse `json:"resultado"`
}

func (h *Handler) saveResultado(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	note := noteFromContext(ctx)

	var create models.ResultadoCreate
	if err := json.NewDecoder(r.Body).Decode(&create); err != nil {
		log.Warn().Err(err).Msg("invalid result payload")
		note.setOutcome(models.OutcomeValidationError)
		writeDetail(w, http.StatusUnprocessableEntity, "JSON inválido")
		return
	}

	resultado, err := h.services.Resultado.Save(ctx, create)
	if err != nil {
		mapServiceError(w, r, err)
		return
	}

	note.addDetail("resultado_id", resultado.ID)

	utils.WriteJSON(w, resultadoCreatedResponse{
		Success: true,
		Message: "Resultado salvo",
		Data: resultadoCreateData{
			ResultadoID: resultado.ID,
			Resultado:   resultado,
		},
	}, http.StatusCreated)
}

func (h *Handler) listResultados(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	page, limit, err := parsePagination(r, resultadosDefaultLimit, resultadosMaxLimit)
	if err != nil {
		mapServiceError(w, r, err)
		return
	}

	ano, err := parseAno(r)
	if err != nil {
		mapServiceError(w, r, err)
		return
	}

	result, err := h.services.Resultado.ListPaginated(ctx, service.ResultadoListQuery{
		Page:       page,
		Limit:      limit,
		Disciplina: r.URL.Query().Get("disciplina"),
		Ano:        ano,
		Email:      r.URL.Query().Get("email"),
	})
	if err != nil {
		mapServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) getResultado(w http.ResponseWriter, r *http.Request) {
	resultado, err := h.services.Resultado.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		mapServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, resultado, http.StatusOK)
}
