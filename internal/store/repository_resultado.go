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

// resultadoRepository is the MongoDB-backed implementation of
// [ResultadoRepository] over the results collection.
type resultadoRepository struct {
	logger     *logger.Logger
	collection *mongo.Collection
}

// NewResultadoRepository constructs a [ResultadoRepository] backed by the
// provided collection and logger.
func NewResultadoRepository(collection *mongo.Collection, logger *logger.Logger) ResultadoRepository {
	logger.Debug().Msg("creating resultado repository")
	return &resultadoRepository{
		collection: collection,
		logger:     logger,
	}
}

// buildResultadoFilter converts the optional equality predicates into a bson
// conjunction. Absent (zero-valued) predicates are not applied.
func buildResultadoFilter(filter ResultadoFilter) bson.M {
	query := bson.M{}
	if filter.Disciplina != "" {
		query["disciplina"] = filter.Disciplina
	}
	if filter.Ano != 0 {
		query["ano"] = filter.Ano
	}
	if filter.Email != "" {
		query["email"] = filter.Email
	}
	return query
}

// Insert persists a new result document and returns the server-assigned id.
func (r *resultadoRepository) Insert(ctx context.Context, resultado models.Resultado) (primitive.ObjectID, error) {
	log := logger.FromContext(ctx)

	result, err := r.collection.InsertOne(ctx, resultado)
	if err != nil {
		log.Err(err).Str("func", "*resultadoRepository.Insert").Msg("error inserting resultado")
		return primitive.NilObjectID, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("%w: unexpected inserted id type", ErrExecutingQuery)
	}

	return id, nil
}

// FindByID retrieves one result; [ErrDocumentNotFound] when no document
// matches.
func (r *resultadoRepository) FindByID(ctx context.Context, id primitive.ObjectID) (models.Resultado, error) {
	log := logger.FromContext(ctx)

	var resultado models.Resultado
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&resultado)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Resultado{}, ErrDocumentNotFound
		}
		log.Err(err).Str("func", "*resultadoRepository.FindByID").Msg("error finding resultado by id")
		return models.Resultado{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return resultado, nil
}

// Count returns the number of documents matching the filter.
func (r *resultadoRepository) Count(ctx context.Context, filter ResultadoFilter) (int64, error) {
	total, err := r.collection.CountDocuments(ctx, buildResultadoFilter(filter))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return total, nil
}

// FindPage returns one page of matching results sorted by created_at
// descending (most recent first).
func (r *resultadoRepository) FindPage(ctx context.Context, filter ResultadoFilter, skip, limit int64) ([]models.Resultado, error) {
	log := logger.FromContext(ctx)

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, buildResultadoFilter(filter), opts)
	if err != nil {
		log.Err(err).Str("func", "*resultadoRepository.FindPage").Msg("error finding resultados")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer cursor.Close(ctx)

	var resultados []models.Resultado
	if err := cursor.All(ctx, &resultados); err != nil {
		log.Err(err).Str("func", "*resultadoRepository.FindPage").Msg("error decoding resultados")
		return nil, fmt.Errorf("%w: %w", ErrDecodingDocument, err)
	}

	return resultados, nil
}
