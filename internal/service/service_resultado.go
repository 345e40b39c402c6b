// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/skti-dev/bncc-backend/internal/logger"
	"github.com/skti-dev/bncc-backend/internal/store"
	"github.com/skti-dev/bncc-backend/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// resultadoService implements ResultadoService on top of a ResultadoRepository.
type resultadoService struct {
	resultadoRepository store.ResultadoRepository
	validate            *validator.Validate
	logger              *logger.Logger
}

// NewResultadoService constructs a ResultadoService backed by the given
// repository.
func NewResultadoService(resultadoRepository store.ResultadoRepository, logger *logger.Logger) ResultadoService {
	return &resultadoService{
		resultadoRepository: resultadoRepository,
		validate:            validator.New(validator.WithRequiredStructEnabled()),
		logger:              logger,
	}
}

// percentual computes the server-side hit percentage, rounded to two decimal
// places. The caller never supplies this value.
func percentual(pontuacao, totalQuestoes int) float64 {
	return math.Round(float64(pontuacao)/float64(totalQuestoes)*100*100) / 100
}

// Save validates a submitted quiz result, computes percentual_acerto and
// persists it, then reads the document back as stored.
func (r *resultadoService) Save(ctx context.Context, create models.ResultadoCreate) (models.ResultadoResponse, error) {
	log := logger.FromContext(ctx)

	if err := r.validate.Struct(create); err != nil {
		return models.ResultadoResponse{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	now := time.Now().UTC()
	resultado := models.Resultado{
		Email:            create.Email,
		Disciplina:       create.Disciplina,
		Ano:              create.Ano,
		Respostas:        create.Respostas,
		Pontuacao:        create.Pontuacao,
		TotalQuestoes:    create.TotalQuestoes,
		PercentualAcerto: percentual(create.Pontuacao, create.TotalQuestoes),
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	insertedID, err := r.resultadoRepository.Insert(ctx, resultado)
	if err != nil {
		log.Err(err).Str("email", create.Email).Msg("result insert failed")
		return models.ResultadoResponse{}, fmt.Errorf("%w: result insert failed: %w", ErrService, err)
	}

	stored, err := r.resultadoRepository.FindByID(ctx, insertedID)
	if err != nil {
		log.Err(err).Str("id", insertedID.Hex()).Msg("inserted result read-back failed")
		return models.ResultadoResponse{}, fmt.Errorf("%w: inserted result read-back failed: %w", ErrService, err)
	}

	return stored.Normalize(), nil
}

// GetByID fetches a single stored result by its hex document id.
func (r *resultadoService) GetByID(ctx context.Context, id string) (models.ResultadoResponse, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.ResultadoResponse{}, fmt.Errorf("%w: ID inválido: %q", ErrValidation, id)
	}

	resultado, err := r.resultadoRepository.FindByID(ctx, objectID)
	if err != nil {
		if errors.Is(err, store.ErrDocumentNotFound) {
			return models.ResultadoResponse{}, fmt.Errorf("%w: Resultado não encontrado", ErrNotFound)
		}
		logger.FromContext(ctx).Err(err).Str("id", id).Msg("result lookup failed")
		return models.ResultadoResponse{}, fmt.Errorf("%w: result lookup failed: %w", ErrService, err)
	}

	return resultado.Normalize(), nil
}

// ListPaginated returns one page of stored results matching the optional
// disciplina/ano/email filters, newest first.
func (r *resultadoService) ListPaginated(ctx context.Context, query ResultadoListQuery) (models.Page[models.ResultadoResponse], error) {
	log := logger.FromContext(ctx)

	filter := store.ResultadoFilter{
		Disciplina: query.Disciplina,
		Ano:        query.Ano,
		Email:      query.Email,
	}

	total, err := r.resultadoRepository.Count(ctx, filter)
	if err != nil {
		log.Err(err).Msg("result count failed")
		return models.Page[models.ResultadoResponse]{}, fmt.Errorf("%w: result count failed: %w", ErrService, err)
	}

	pages := totalPages(total, query.Limit)
	if total == 0 || query.Page > pages {
		return newPage[models.ResultadoResponse](nil, total, query.Page, query.Limit), nil
	}

	skip := int64(query.Page-1) * int64(query.Limit)
	resultados, err := r.resultadoRepository.FindPage(ctx, filter, skip, int64(query.Limit))
	if err != nil {
		log.Err(err).Msg("result page retrieval failed")
		return models.Page[models.ResultadoResponse]{}, fmt.Errorf("%w: result page retrieval failed: %w", ErrService, err)
	}

	data := make([]models.ResultadoResponse, 0, len(resultados))
	for _, resultado := range resultados {
		data = append(data, resultado.Normalize())
	}

	return newPage(data, total, query.Page, query.Limit), nil
}
