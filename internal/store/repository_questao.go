package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/skti-dev/bncc-backend/internal/logger"
	"github.com/skti-dev/bncc-backend/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// questaoRepository is the MongoDB-backed implementation of
// [QuestaoRepository] over the questions collection.
type questaoRepository struct {
	logger     *logger.Logger
	collection *mongo.Collection
}

// NewQuestaoRepository constructs a [QuestaoRepository] backed by the
// provided collection and logger.
func NewQuestaoRepository(collection *mongo.Collection, logger *logger.Logger) QuestaoRepository {
	logger.Debug().Msg("creating questao repository")
	return &questaoRepository{
		collection: collection,
		logger:     logger,
	}
}

// buildQuestaoFilter converts the optional equality predicates into a bson
// conjunction. Absent (zero-valued) predicates are not applied.
func buildQuestaoFilter(filter QuestaoFilter) bson.M {
	query := bson.M{}
	if filter.Disciplina != "" {
		query["disciplina"] = filter.Disciplina
	}
	if filter.Ano != 0 {
		query["ano"] = filter.Ano
	}
	return query
}

// Insert persists a new question document and returns the server-assigned id.
func (r *questaoRepository) Insert(ctx context.Context, questao models.Questao) (primitive.ObjectID, error) {
	log := logger.FromContext(ctx)

	result, err := r.collection.InsertOne(ctx, questao)
	if err != nil {
		log.Err(err).Str("func", "*questaoRepository.Insert").Msg("error inserting questao")
		return primitive.NilObjectID, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("%w: unexpected inserted id type", ErrExecutingQuery)
	}

	return id, nil
}

// FindByID retrieves one question; [ErrDocumentNotFound] when no document
// matches.
func (r *questaoRepository) FindByID(ctx context.Context, id primitive.ObjectID) (models.Questao, error) {
	log := logger.FromContext(ctx)

	var questao models.Questao
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&questao)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Questao{}, ErrDocumentNotFound
		}
		log.Err(err).Str("func", "*questaoRepository.FindByID").Msg("error finding questao by id")
		return models.Questao{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return questao, nil
}

// Count returns the number of documents matching the filter.
func (r *questaoRepository) Count(ctx context.Context, filter QuestaoFilter) (int64, error) {
	total, err := r.collection.CountDocuments(ctx, buildQuestaoFilter(filter))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return total, nil
}

// FindPage returns one page of matching questions sorted by codigo ascending.
func (r *questaoRepository) FindPage(ctx context.Context, filter QuestaoFilter, skip, limit int64) ([]models.Questao, error) {
	log := logger.FromContext(ctx)

	opts := options.Find().
		SetSort(bson.D{{Key: "codigo", Value: 1}}).
		SetSkip(skip).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, buildQuestaoFilter(filter), opts)
	if err != nil {
		log.Err(err).Str("func", "*questaoRepository.FindPage").Msg("error finding questoes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer cursor.Close(ctx)

	var questoes []models.Questao
	if err := cursor.All(ctx, &questoes); err != nil {
		log.Err(err).Str("func", "*questaoRepository.FindPage").Msg("error decoding questoes")
		return nil, fmt.Errorf("%w: %w", ErrDecodingDocument, err)
	}

	return questoes, nil
}
