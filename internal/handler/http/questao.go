package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/skti-dev/bncc-backend/internal/logger"
	"github.com/skti-dev/bncc-backend/internal/service"
	"github.com/skti-dev/bncc-backend/internal/utils"
	"github.com/skti-dev/bncc-backend/models"
)

// questaoCreatedResponse is the success body of POST /questoes/adicionar.
type questaoCreatedResponse struct {
	Message   string                 `json:"message"`
	QuestaoID string                 `json:"questao_id"`
	Questao   models.QuestaoResponse `json:"questao"`
}

func (h *Handler) listQuestoes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	page, limit, err := parsePagination(r, questoesDefaultLimit, questoesMaxLimit)
	if err != nil {
		mapServiceError(w, r, err)
		return
	}

	ano, err := parseAno(r)
	if err != nil {
		mapServiceError(w, r, err)
		return
	}

	shuffle, _ := strconv.ParseBool(r.URL.Query().Get("shuffle"))

	result, err := h.services.Questao.ListPaginated(ctx, service.QuestaoListQuery{
		Page:       page,
		Limit:      limit,
		Disciplina: r.URL.Query().Get("disciplina"),
		Ano:        ano,
		Shuffle:    shuffle,
	})
	if err != nil {
		mapServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) getQuestao(w http.ResponseWriter, r *http.Request) {
	questao, err := h.services.Questao.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		mapServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, questao, http.StatusOK)
}

func (h *Handler) addQuestao(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	note := noteFromContext(ctx)

	var create models.QuestaoCreate
	if err := json.NewDecoder(r.Body).Decode(&create); err != nil {
		log.Warn().Err(err).Msg("invalid question payload")
		note.setOutcome(models.OutcomeValidationError)
		writeDetail(w, http.StatusUnprocessableEntity, "JSON inválido")
		return
	}

	questao, err := h.services.Questao.Add(ctx, create)
	if err != nil {
		mapServiceError(w, r, err)
		return
	}

	note.addDetail("questao_id", questao.ID)

	utils.WriteJSON(w, questaoCreatedResponse{
		Message:   "Questão adicionada",
		QuestaoID: questao.ID,
		Questao:   questao,
	}, http.StatusCreated)
}
