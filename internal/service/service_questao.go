// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/skti-dev/bncc-backend/internal/logger"
	"github.com/skti-dev/bncc-backend/internal/store"
	"github.com/skti-dev/bncc-backend/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// questaoService implements QuestaoService on top of a QuestaoRepository.
type questaoService struct {
	questaoRepository store.QuestaoRepository
	validate          *validator.Validate
	logger            *logger.Logger
}

// NewQuestaoService constructs a QuestaoService backed by the given repository.
func NewQuestaoService(questaoRepository store.QuestaoRepository, logger *logger.Logger) QuestaoService {
	return &questaoService{
		questaoRepository: questaoRepository,
		validate:          validator.New(validator.WithRequiredStructEnabled()),
		logger:            logger,
	}
}

// Add validates and stores a new question, then reads it back so the caller
// receives the document exactly as persisted.
//
// Beyond struct-tag validation, the gabarito must name one of the declared
// alternativas; a question whose answer key points nowhere is never written.
func (q *questaoService) Add(ctx context.Context, create models.QuestaoCreate) (models.QuestaoResponse, error) {
	log := logger.FromContext(ctx)

	if err := q.validate.Struct(create); err != nil {
		return models.QuestaoResponse{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	if _, ok := create.Questao.Alternativas[create.Questao.Gabarito]; !ok {
		return models.QuestaoResponse{}, fmt.Errorf("%w: gabarito %q não consta nas alternativas", ErrValidation, create.Questao.Gabarito)
	}

	now := time.Now().UTC()
	questao := models.Questao{
		Disciplina: create.Disciplina,
		Ano:        create.Ano,
		Codigo:     create.Codigo,
		Questao:    create.Questao,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	insertedID, err := q.questaoRepository.Insert(ctx, questao)
	if err != nil {
		log.Err(err).Str("codigo", create.Codigo).Msg("question insert failed")
		return models.QuestaoResponse{}, fmt.Errorf("%w: question insert failed: %w", ErrService, err)
	}

	stored, err := q.questaoRepository.FindByID(ctx, insertedID)
	if err != nil {
		log.Err(err).Str("id", insertedID.Hex()).Msg("inserted question read-back failed")
		return models.QuestaoResponse{}, fmt.Errorf("%w: inserted question read-back failed: %w", ErrService, err)
	}

	return stored.Normalize(), nil
}

// GetByID fetches a single question by its hex document id.
//
// A malformed id is a client error (ErrValidation), not a lookup miss.
func (q *questaoService) GetByID(ctx context.Context, id string) (models.QuestaoResponse, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.QuestaoResponse{}, fmt.Errorf("%w: ID inválido: %q", ErrValidation, id)
	}

	questao, err := q.questaoRepository.FindByID(ctx, objectID)
	if err != nil {
		if errors.Is(err, store.ErrDocumentNotFound) {
			return models.QuestaoResponse{}, fmt.Errorf("%w: Questão não encontrada", ErrNotFound)
		}
		logger.FromContext(ctx).Err(err).Str("id", id).Msg("question lookup failed")
		return models.QuestaoResponse{}, fmt.Errorf("%w: question lookup failed: %w", ErrService, err)
	}

	return questao.Normalize(), nil
}

// ListPaginated returns one page of questions matching the optional
// disciplina/ano filters, sorted by codigo ascending.
//
// Total and TotalPages always reflect the filtered collection, so a page
// past the end comes back empty but with accurate pagination metadata.
// When Shuffle is set, only the returned page is shuffled; the underlying
// sort order that defines page boundaries is untouched.
func (q *questaoService) ListPaginated(ctx context.Context, query QuestaoListQuery) (models.Page[models.QuestaoResponse], error) {
	log := logger.FromContext(ctx)

	filter := store.QuestaoFilter{Disciplina: query.Disciplina, Ano: query.Ano}

	total, err := q.questaoRepository.Count(ctx, filter)
	if err != nil {
		log.Err(err).Msg("question count failed")
		return models.Page[models.QuestaoResponse]{}, fmt.Errorf("%w: question count failed: %w", ErrService, err)
	}

	pages := totalPages(total, query.Limit)
	if total == 0 || query.Page > pages {
		return newPage[models.QuestaoResponse](nil, total, query.Page, query.Limit), nil
	}

	skip := int64(query.Page-1) * int64(query.Limit)
	questoes, err := q.questaoRepository.FindPage(ctx, filter, skip, int64(query.Limit))
	if err != nil {
		log.Err(err).Msg("question page retrieval failed")
		return models.Page[models.QuestaoResponse]{}, fmt.Errorf("%w: question page retrieval failed: %w", ErrService, err)
	}

	data := make([]models.QuestaoResponse, 0, len(questoes))
	for _, questao := range questoes {
		data = append(data, questao.Normalize())
	}

	if query.Shuffle {
		rand.Shuffle(len(data), func(i, j int) { data[i], data[j] = data[j], data[i] })
	}

	return newPage(data, total, query.Page, query.Limit), nil
}
